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

type faqItemItem struct {
	ID        string `dynamodbav:"id"`
	Question  string `dynamodbav:"question"`
	Answer    string `dynamodbav:"answer"`
	Order     *int64 `dynamodbav:"sort_order,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// FAQItemDynamoRepository persists FAQ entries.
//
// Table requirements:
//   - PK: id (string)
type FAQItemDynamoRepository struct {
	table itemTable[faqItemItem]
}

var _ interfaces.IFAQItemRepository = (*FAQItemDynamoRepository)(nil)

func NewFAQItemDynamoRepository(ddb database.DynamoDBAPI, tableName string) *FAQItemDynamoRepository {
	return &FAQItemDynamoRepository{table: itemTable[faqItemItem]{ddb: ddb, name: tableName}}
}

func (r *FAQItemDynamoRepository) Create(ctx context.Context, f entities.FAQItem) (entities.FAQItem, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	f.CreatedAt, f.UpdatedAt = now, now
	if err := r.table.create(ctx, toFAQItemItem(f)); err != nil {
		return entities.FAQItem{}, err
	}
	return f, nil
}

func (r *FAQItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.FAQItem, error) {
	it, found, err := r.table.get(ctx, id)
	if err != nil || !found {
		return entities.FAQItem{}, err
	}
	return fromFAQItemItem(it), nil
}

func (r *FAQItemDynamoRepository) Update(ctx context.Context, f entities.FAQItem) (entities.FAQItem, error) {
	f.UpdatedAt = time.Now().UTC()
	ok, err := r.table.replace(ctx, toFAQItemItem(f))
	if err != nil || !ok {
		return entities.FAQItem{}, err
	}
	return f, nil
}

// List sorts by Order ascending; items without one follow in creation order.
func (r *FAQItemDynamoRepository) List(ctx context.Context) ([]entities.FAQItem, error) {
	items, err := r.table.scan(ctx)
	if err != nil {
		return nil, err
	}
	faq := make([]entities.FAQItem, 0, len(items))
	for _, it := range items {
		faq = append(faq, fromFAQItemItem(it))
	}
	sort.SliceStable(faq, func(i, j int) bool {
		a, b := faq[i].Order, faq[j].Order
		switch {
		case a != nil && b != nil && *a != *b:
			return *a < *b
		case (a == nil) != (b == nil):
			return a != nil
		}
		return faq[i].CreatedAt.Before(faq[j].CreatedAt)
	})
	return faq, nil
}

func (r *FAQItemDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.table.delete(ctx, id)
}

func toFAQItemItem(f entities.FAQItem) faqItemItem {
	return faqItemItem{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		Order:     f.Order,
		CreatedAt: formatTime(f.CreatedAt),
		UpdatedAt: formatTime(f.UpdatedAt),
	}
}

func fromFAQItemItem(it faqItemItem) entities.FAQItem {
	return entities.FAQItem{
		ID:        it.ID,
		Question:  it.Question,
		Answer:    it.Answer,
		Order:     it.Order,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
