package interfaces

import (
	"context"

	"festival_backend/internal/domain/entities"
)

// CatalogProductInput is what the payment provider needs to create a product
// together with its initial price.
type CatalogProductInput struct {
	Name        string
	Description string
	UnitAmount  int64
	Currency    entities.Currency
	ImageURL    string
}

// CatalogProductRef identifies a created external product. DefaultPriceID may
// be empty when the provider did not echo it back.
type CatalogProductRef struct {
	ProductID      string
	DefaultPriceID string
}

// ICatalogGateway mirrors local products into the payment provider catalog.
type ICatalogGateway interface {
	CreateProduct(ctx context.Context, in CatalogProductInput) (CatalogProductRef, error)
	FirstActivePrice(ctx context.Context, productID string) (string, error)
	CreatePrice(ctx context.Context, productID string, unitAmount int64, currency entities.Currency) (string, error)
	SetDefaultPrice(ctx context.Context, productID, priceID string) error
	DeactivatePrice(ctx context.Context, priceID string) error
	UpdateProductDetails(ctx context.Context, productID, name, description string) error
	// SetProductImages replaces the product images; nil clears them.
	SetProductImages(ctx context.Context, productID string, imageURLs []string, name, description string) error
	ArchiveProduct(ctx context.Context, productID string) error
}

// ICheckoutGateway opens a hosted checkout at a payment provider.
type ICheckoutGateway interface {
	Provider() string
	// RequiresCatalogPrice reports whether lines must carry a catalog price id.
	RequiresCatalogPrice() bool
	CreateCheckoutSession(ctx context.Context, in entities.CheckoutSessionInput) (entities.CheckoutSession, error)
}

// IWebhookVerifier authenticates a signed webhook body and decodes it.
type IWebhookVerifier interface {
	ParseEvent(payload []byte, signatureHeader string) (entities.PaymentEvent, error)
}

// IPaymentLookup resolves a payment notification id into its current state.
type IPaymentLookup interface {
	LookupPayment(ctx context.Context, paymentID string) (entities.PaymentEvent, error)
}
