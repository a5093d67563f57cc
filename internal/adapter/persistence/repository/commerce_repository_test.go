package repository

import (
	"context"
	"testing"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/infrastructure/database/dynamodbtest"
)

func TestMediaDynamoRepository_AllocatesSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMediaDynamoRepository(dynamodbtest.New(), "media", "counters")

	first, err := repo.Create(ctx, entities.Media{Filename: "a.jpg", Alt: "fest Instagram content"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := repo.Create(ctx, entities.Media{Filename: "b.jpg"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != "1" || second.ID != "2" {
		t.Fatalf("expected ids 1 and 2, got %s and %s", first.ID, second.ID)
	}

	got, err := repo.GetByID(ctx, "1")
	if err != nil || got.Filename != "a.jpg" || got.Alt != "fest Instagram content" {
		t.Fatalf("unexpected media %+v err=%v", got, err)
	}
}

func TestProductDynamoRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProductDynamoRepository(dynamodbtest.New(), "products")
	stock := int64(5)

	created, err := repo.Create(ctx, entities.Product{Name: "Tee", Price: 2500, Currency: entities.CurrencyEUR, Stock: &stock})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	created.StripePriceID = "price_2"
	updated, err := repo.Update(ctx, created)
	if err != nil || updated.ID != created.ID {
		t.Fatalf("update: %+v err=%v", updated, err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.StripePriceID != "price_2" || got.Stock == nil || *got.Stock != 5 || got.Currency != entities.CurrencyEUR {
		t.Fatalf("unexpected product: %+v", got)
	}

	missing, err := repo.Update(ctx, entities.Product{ID: "ghost"})
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero value for missing product, got %+v err=%v", missing, err)
	}

	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %+v err=%v", list, err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	gone, err := repo.GetByID(ctx, created.ID)
	if err != nil || gone.ID != "" {
		t.Fatalf("expected product deleted, got %+v err=%v", gone, err)
	}
}

func TestOrderDynamoRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderDynamoRepository(dynamodbtest.New(), "orders")

	created, err := repo.Create(ctx, entities.Order{
		Items:       []entities.OrderItem{{ProductID: "p1", Quantity: 2, Price: 1000, Name: "Tee"}},
		TotalAmount: 2000,
		Currency:    entities.CurrencyUSD,
		Status:      entities.OrderStatusPending,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	paid, err := repo.UpdateStatus(ctx, created.ID, entities.OrderStatusPaid, "pi_123")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if paid.Status != entities.OrderStatusPaid || paid.PaymentReference != "pi_123" {
		t.Fatalf("unexpected order: %+v", paid)
	}
	if len(paid.Items) != 1 || paid.Items[0].Name != "Tee" || paid.Items[0].Price != 1000 {
		t.Fatalf("line items must be untouched: %+v", paid.Items)
	}

	shipped, err := repo.UpdateStatus(ctx, created.ID, entities.OrderStatusShipped, "")
	if err != nil || shipped.PaymentReference != "pi_123" {
		t.Fatalf("payment reference should be kept: %+v err=%v", shipped, err)
	}

	missing, err := repo.UpdateStatus(ctx, "ghost", entities.OrderStatusPaid, "x")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero value for missing order, got %+v err=%v", missing, err)
	}
}
