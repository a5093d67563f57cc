package response

import (
	"time"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase"
)

type OrderItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"`
}

// CreateOrderResponse is the body of POST /create-order.
type CreateOrderResponse struct {
	OrderID     string              `json:"orderId"`
	TotalAmount int64               `json:"totalAmount"`
	Currency    string              `json:"currency"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items"`
}

// CheckoutSessionResponse is the body of POST /create-checkout-session.
type CheckoutSessionResponse struct {
	SessionID   string `json:"sessionId"`
	URL         string `json:"url"`
	TotalAmount int64  `json:"totalAmount"`
	OrderID     string `json:"orderId"`
}

type OrderResponse struct {
	ID               string              `json:"id"`
	UserID           string              `json:"user_id,omitempty"`
	Items            []OrderItemResponse `json:"items"`
	TotalAmount      int64               `json:"total_amount"`
	Currency         string              `json:"currency"`
	Status           string              `json:"status"`
	Provider         string              `json:"provider,omitempty"`
	PaymentReference string              `json:"payment_reference,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func FromCreatedOrder(o entities.Order) CreateOrderResponse {
	return CreateOrderResponse{
		OrderID:     o.ID,
		TotalAmount: o.TotalAmount,
		Currency:    string(o.Currency),
		Status:      string(o.Status),
		Items:       fromOrderItems(o.Items),
	}
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutSessionResponse {
	return CheckoutSessionResponse{
		SessionID:   r.SessionID,
		URL:         r.URL,
		TotalAmount: r.TotalAmount,
		OrderID:     r.OrderID,
	}
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		UserID:           o.UserID,
		Items:            fromOrderItems(o.Items),
		TotalAmount:      o.TotalAmount,
		Currency:         string(o.Currency),
		Status:           string(o.Status),
		Provider:         o.Provider,
		PaymentReference: o.PaymentReference,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func fromOrderItems(items []entities.OrderItem) []OrderItemResponse {
	out := make([]OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItemResponse{ProductID: it.ProductID, Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	return out
}
