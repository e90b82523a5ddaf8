package domain

type Dish struct {
	ID          string
	Name        string
	Description string
	Price       int
	ImageURL    string
}
