package domain

import "time"

type Order struct {
	ID          uint
	UserID      uint
	Total       float64
	Status      string
	ExternalRef *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Items       []OrderItem
}

const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// OrderItem carries the price snapshotted at purchase time. It is never
// re-read from Product after creation.
type OrderItem struct {
	ID        uint
	OrderID   uint
	ProductID uint
	Name      string
	Price     float64
	Image     string
}

// ComputedTotal sums the snapshotted item prices. Quantity is always one in
// this model, so the total is a plain sum.
func (o Order) ComputedTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price
	}
	return total
}
