package interfaces

import (
	"context"

	"festival_backend/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
// GetByID and Update return a zero value when the product does not exist.
type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Delete(ctx context.Context, id string) error
}
