package interfaces

import (
	"context"

	"festival_backend/internal/domain/entities"
)

// IImportedPostRepository persists mirrored posts keyed by their external id.
//
// GetByInstagramID returns a zero value when the post is unknown. UpdateSync
// overwrites counters, caption and original URLs; a nil local media id keeps
// the stored reference.
type IImportedPostRepository interface {
	Create(ctx context.Context, p entities.ImportedPost) (entities.ImportedPost, error)
	GetByInstagramID(ctx context.Context, instagramPostID string) (entities.ImportedPost, error)
	UpdateSync(ctx context.Context, p entities.ImportedPost) (entities.ImportedPost, error)
	List(ctx context.Context, ownerUsername string) ([]entities.ImportedPost, error)
}
