package models

import "time"

// OrderStatus represents the fulfillment state of an order. Transitions
// happen on the backend; the storefront only observes them via refresh.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is an order summary merged with its separately fetched line items.
type Order struct {
	ID            string      `json:"id"`
	Status        OrderStatus `json:"status"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"payment_method"`
	PaymentStatus string      `json:"payment_status"`
	CreatedAt     time.Time   `json:"created_at"`
	Items         []OrderLine `json:"items"`
}

// OrderLine is one product entry of an order. Image refs arrive from the
// backend as bare upload names and are rewritten to absolute URLs before
// the order leaves the aggregator.
type OrderLine struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Quantity  int      `json:"quantity"`
	Size      string   `json:"size"`
	Image     []string `json:"image"`
}
