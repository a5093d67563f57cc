package request

import (
	"strings"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase"
)

// OrderItemRequest is one cart line. Quantity and product id are validated by
// the order use case so the client gets the catalog-aware message.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

func (r CreateOrderRequest) ToItemInputs() []usecase.OrderItemInput {
	return toItemInputs(r.Items)
}

// CheckoutSessionRequest opens a hosted checkout. OrderID links the session to
// an order created earlier through /create-order.
type CheckoutSessionRequest struct {
	Items         []OrderItemRequest `json:"items"`
	SuccessURL    string             `json:"successUrl"`
	CancelURL     string             `json:"cancelUrl"`
	CustomerEmail string             `json:"customerEmail" binding:"omitempty,email"`
	OrderID       string             `json:"orderId"`
}

func (r CheckoutSessionRequest) ToCheckoutInput(userID string) usecase.CheckoutInput {
	return usecase.CheckoutInput{
		UserID:        userID,
		OrderID:       strings.TrimSpace(r.OrderID),
		Items:         toItemInputs(r.Items),
		SuccessURL:    strings.TrimSpace(r.SuccessURL),
		CancelURL:     strings.TrimSpace(r.CancelURL),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateOrderStatusRequest) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

func toItemInputs(items []OrderItemRequest) []usecase.OrderItemInput {
	out := make([]usecase.OrderItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, usecase.OrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out
}
