package request

import (
	"testing"

	"festival_backend/internal/domain/entities"
)

func TestCreateProductRequest_ToInput(t *testing.T) {
	stock := int64(3)
	in := CreateProductRequest{Name: "Tee", Price: 2500, Currency: "EUR", Stock: &stock}.ToInput()
	if in.Currency != entities.CurrencyEUR {
		t.Fatalf("expected eur, got %q", in.Currency)
	}
	if in.Stock == nil || *in.Stock != 3 || in.Price != 2500 {
		t.Fatalf("unexpected input: %+v", in)
	}

	if got := (CreateProductRequest{Name: "Cap"}).ToInput().Currency; got != "" {
		t.Fatalf("expected empty currency to be left for the default, got %q", got)
	}
}

func TestUpdateProductRequest_ToPatch(t *testing.T) {
	cur := " USD"
	price := int64(100)
	patch := UpdateProductRequest{Currency: &cur, Price: &price, RemoveImage: true}.ToPatch()

	if patch.Currency == nil || *patch.Currency != entities.CurrencyUSD {
		t.Fatalf("unexpected currency: %v", patch.Currency)
	}
	if patch.Price == nil || *patch.Price != 100 {
		t.Fatalf("unexpected price: %v", patch.Price)
	}
	if !patch.RemoveImage || patch.RemoveStock {
		t.Fatalf("unexpected flags: %+v", patch)
	}
	if patch.Name != nil || patch.Description != nil {
		t.Fatalf("untouched fields should stay nil: %+v", patch)
	}
}
