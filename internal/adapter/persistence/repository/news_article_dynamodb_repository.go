package repository

import (
	"context"
	"sort"
	"time"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/infrastructure/database"
	"festival_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type newsArticleItem struct {
	ID            string `dynamodbav:"id"`
	Title         string `dynamodbav:"title"`
	CoverImageID  int64  `dynamodbav:"cover_image_id"`
	Excerpt       string `dynamodbav:"excerpt,omitempty"`
	Content       string `dynamodbav:"content"`
	Category      string `dynamodbav:"category,omitempty"`
	PublishedDate string `dynamodbav:"published_date"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// NewsArticleDynamoRepository persists news posts, drafts included.
//
// Table requirements:
//   - PK: id (string)
type NewsArticleDynamoRepository struct {
	table itemTable[newsArticleItem]
}

var _ interfaces.INewsArticleRepository = (*NewsArticleDynamoRepository)(nil)

func NewNewsArticleDynamoRepository(ddb database.DynamoDBAPI, tableName string) *NewsArticleDynamoRepository {
	return &NewsArticleDynamoRepository{table: itemTable[newsArticleItem]{ddb: ddb, name: tableName}}
}

func (r *NewsArticleDynamoRepository) Create(ctx context.Context, a entities.NewsArticle) (entities.NewsArticle, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	a.CreatedAt, a.UpdatedAt = now, now
	if err := r.table.create(ctx, toNewsArticleItem(a)); err != nil {
		return entities.NewsArticle{}, err
	}
	return a, nil
}

func (r *NewsArticleDynamoRepository) GetByID(ctx context.Context, id string) (entities.NewsArticle, error) {
	it, found, err := r.table.get(ctx, id)
	if err != nil || !found {
		return entities.NewsArticle{}, err
	}
	return fromNewsArticleItem(it), nil
}

func (r *NewsArticleDynamoRepository) Update(ctx context.Context, a entities.NewsArticle) (entities.NewsArticle, error) {
	a.UpdatedAt = time.Now().UTC()
	ok, err := r.table.replace(ctx, toNewsArticleItem(a))
	if err != nil || !ok {
		return entities.NewsArticle{}, err
	}
	return a, nil
}

// List returns the newest publication first.
func (r *NewsArticleDynamoRepository) List(ctx context.Context) ([]entities.NewsArticle, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	articles := make([]entities.NewsArticle, 0, len(items))
	for _, it := range items {
		articles = append(articles, fromNewsArticleItem(it))
	}
	sort.SliceStable(articles, func(i, j int) bool {
		if !articles[i].PublishedDate.Equal(articles[j].PublishedDate) {
			return articles[i].PublishedDate.After(articles[j].PublishedDate)
		}
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
	return articles, nil
}

func (r *NewsArticleDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

func toNewsArticleItem(a entities.NewsArticle) newsArticleItem {
	return newsArticleItem{
		ID:            a.ID,
		Title:         a.Title,
		CoverImageID:  a.CoverImageID,
		Excerpt:       a.Excerpt,
		Content:       a.Content,
		Category:      a.Category,
		PublishedDate: formatTime(a.PublishedDate),
		Status:        string(a.Status),
		CreatedAt:     formatTime(a.CreatedAt),
		UpdatedAt:     formatTime(a.UpdatedAt),
	}
}

func fromNewsArticleItem(it newsArticleItem) entities.NewsArticle {
	return entities.NewsArticle{
		ID:            it.ID,
		Title:         it.Title,
		CoverImageID:  it.CoverImageID,
		Excerpt:       it.Excerpt,
		Content:       it.Content,
		Category:      it.Category,
		PublishedDate: parseTime(it.PublishedDate),
		Status:        entities.NewsStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
