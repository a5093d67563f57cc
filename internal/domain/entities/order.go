package entities

import "time"

// OrderStatus represents the lifecycle of a shop order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusFailed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// OrderItem is a snapshot of a product at purchase time. Later product edits do
// not touch it.
type OrderItem struct {
	ProductID string `json:"product"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"`
	Name      string `json:"name"`
}

// Order is created pending and moved to paid by the payment webhooks.
//
// Storage model (DynamoDB):
//   - PK: id
type Order struct {
	ID               string      `json:"id"`
	UserID           string      `json:"user_id,omitempty"`
	Items            []OrderItem `json:"items"`
	TotalAmount      int64       `json:"total_amount"`
	Currency         Currency    `json:"currency"`
	PaymentReference string      `json:"payment_reference,omitempty"`
	Provider         string      `json:"provider,omitempty"`
	Status           OrderStatus `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
