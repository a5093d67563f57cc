package interfaces

import (
	"context"

	"festival_backend/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Line items are written once by Create and never touched afterwards.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, paymentReference string) (entities.Order, error)
}
