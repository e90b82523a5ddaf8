package dto

type DishPayload struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"` // number on the wire so the integer check runs in the chain
	ImageURL    string  `json:"image_url"`
}

type DishRequest struct {
	Data DishPayload `json:"data"`
}

type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}
