package entities

import "time"

// Currency is the ISO code used for product prices, lower-cased the way the
// payment provider expects it.
type Currency string

const (
	CurrencyUSD Currency = "usd"
	CurrencyEUR Currency = "eur"
)

func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyEUR
}

// Product is a shop item mirrored to the payment provider catalog.
//
// Monetary representation:
//   - Price is in minor currency units (cents).
//
// Stock nil means unlimited.
type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           int64     `json:"price"`
	Currency        Currency  `json:"currency"`
	ImageID         *int64    `json:"image_id,omitempty"`
	Stock           *int64    `json:"stock,omitempty"`
	StripeProductID string    `json:"stripe_product_id,omitempty"`
	StripePriceID   string    `json:"stripe_price_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HasStockFor reports whether quantity units can be sold.
func (p Product) HasStockFor(quantity int64) bool {
	return p.Stock == nil || *p.Stock >= quantity
}

// ProductSyncDecision is threaded through the catalog sync steps for a single
// write. Handled means the external catalog already reflects this write and
// the generic field mirroring must not run.
type ProductSyncDecision struct {
	Handled         bool
	StripeProductID string
	StripePriceID   string
	Steps           []string
}

func (d *ProductSyncDecision) Record(step string) {
	d.Steps = append(d.Steps, step)
}
