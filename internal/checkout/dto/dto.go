package dto

import "time"

// CartItem is one line of the submitted cart. Price is the unit price the
// storefront displayed; it becomes the order item's snapshot.
type CartItem struct {
	ProductID uint    `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

type CheckoutRequest struct {
	Items []CartItem `json:"items"`
}

type CheckoutResponse struct {
	TraceID     string    `json:"traceId"`
	OrderID     uint      `json:"orderId"`
	RedirectURL string    `json:"redirectUrl"`
	Timestamp   time.Time `json:"timestamp"`
}

type OrderItemDTO struct {
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Image     string `json:"image,omitempty"`
}

type ConfirmationResponse struct {
	OrderID   uint           `json:"orderId"`
	Status    string         `json:"status"`
	Total     string         `json:"total"`
	CreatedAt time.Time      `json:"createdAt"`
	Items     []OrderItemDTO `json:"items"`
}

type OrderSummaryDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Total     string    `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type OrderDetailDTO struct {
	OrderSummaryDTO
	Items []OrderItemDTO `json:"items"`
}
