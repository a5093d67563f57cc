package interfaces

import (
	"context"

	"festival_backend/internal/domain/entities"
)

// IMediaRepository stores media metadata. Create allocates the numeric id.
type IMediaRepository interface {
	Create(ctx context.Context, m entities.Media) (entities.Media, error)
	GetByID(ctx context.Context, id string) (entities.Media, error)
}
