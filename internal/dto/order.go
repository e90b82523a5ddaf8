package dto

type OrderPayload struct {
	ID           string             `json:"id,omitempty"`
	DeliverTo    string             `json:"deliverTo"`
	MobileNumber string             `json:"mobileNumber"`
	Status       string             `json:"status,omitempty"`
	Dishes       []OrderDishPayload `json:"dishes"`
}

type OrderDishPayload struct {
	DishID   string  `json:"dishId"`
	Quantity float64 `json:"quantity"` // number on the wire, same deal as dish price
}

type OrderRequest struct {
	Data OrderPayload `json:"data"`
}

type Order struct {
	ID           string      `json:"id"`
	DeliverTo    string      `json:"deliverTo"`
	MobileNumber string      `json:"mobileNumber"`
	Status       string      `json:"status"`
	Dishes       []OrderDish `json:"dishes"`
}

type OrderDish struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}
