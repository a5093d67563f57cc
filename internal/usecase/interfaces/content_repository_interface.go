package interfaces

import (
	"context"

	"festival_backend/internal/domain/entities"
)

// IArtistRepository abstracts DynamoDB persistence for Artist.
// GetByID and Update return a zero value when the artist does not exist.
type IArtistRepository interface {
	Create(ctx context.Context, a entities.Artist) (entities.Artist, error)
	GetByID(ctx context.Context, id string) (entities.Artist, error)
	Update(ctx context.Context, a entities.Artist) (entities.Artist, error)
	List(ctx context.Context) ([]entities.Artist, error)
	Delete(ctx context.Context, id string) error
}

// INewsArticleRepository abstracts DynamoDB persistence for NewsArticle.
// List returns drafts too; visibility is decided by the caller.
type INewsArticleRepository interface {
	Create(ctx context.Context, a entities.NewsArticle) (entities.NewsArticle, error)
	GetByID(ctx context.Context, id string) (entities.NewsArticle, error)
	Update(ctx context.Context, a entities.NewsArticle) (entities.NewsArticle, error)
	List(ctx context.Context) ([]entities.NewsArticle, error)
	Delete(ctx context.Context, id string) error
}

type IFAQItemRepository interface {
	Create(ctx context.Context, f entities.FAQItem) (entities.FAQItem, error)
	GetByID(ctx context.Context, id string) (entities.FAQItem, error)
	Update(ctx context.Context, f entities.FAQItem) (entities.FAQItem, error)
	List(ctx context.Context) ([]entities.FAQItem, error)
	Delete(ctx context.Context, id string) error
}
