package domain

type Order struct {
	ID           string
	DeliverTo    string
	MobileNumber string
	Status       string
	Dishes       []OrderDish
}

type OrderDish struct {
	DishID   string
	Quantity int
}

const (
	OrderStatusPending        = "pending"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out-for-delivery"
	OrderStatusDelivered      = "delivered"
)

// Lifecycle order; the status validation message joins these verbatim.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if status == s {
			return true
		}
	}
	return false
}

func (o Order) Pending() bool {
	return o.Status == OrderStatusPending
}

func (o Order) Delivered() bool {
	return o.Status == OrderStatusDelivered
}
