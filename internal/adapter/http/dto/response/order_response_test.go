package response

import (
	"testing"
	"time"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase"
)

func TestFromCreatedOrder(t *testing.T) {
	o := entities.Order{
		ID:          "order-1",
		Items:       []entities.OrderItem{{ProductID: "p-1", Name: "Tee", Quantity: 2, Price: 1500}},
		TotalAmount: 3000,
		Currency:    entities.CurrencyUSD,
		Status:      entities.OrderStatusPending,
	}

	res := FromCreatedOrder(o)
	if res.OrderID != "order-1" || res.TotalAmount != 3000 || res.Currency != "usd" || res.Status != "pending" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].ProductID != "p-1" || res.Items[0].Price != 1500 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
}

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:               "order-2",
		Status:           entities.OrderStatusPaid,
		PaymentReference: "pi_123",
		Provider:         "stripe",
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	res := FromOrder(o)
	if res.Status != "paid" || res.PaymentReference != "pi_123" || res.Provider != "stripe" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Items == nil {
		t.Fatalf("items should render as an empty list")
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", res.CreatedAt)
	}
}

func TestFromCheckoutResult(t *testing.T) {
	res := FromCheckoutResult(usecase.CheckoutResult{SessionID: "cs_1", URL: "https://pay", TotalAmount: 10, OrderID: "o-1", Provider: "stripe"})
	if res.SessionID != "cs_1" || res.URL != "https://pay" || res.TotalAmount != 10 || res.OrderID != "o-1" {
		t.Fatalf("unexpected response: %+v", res)
	}
}
