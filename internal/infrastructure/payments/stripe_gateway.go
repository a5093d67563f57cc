package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/infrastructure/config"
	"festival_backend/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap"
)

const ProviderStripe = "stripe"

var (
	ErrMissingStripeSecretKey     = errors.New("missing STRIPE_SECRET_KEY")
	ErrMissingStripeWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")
)

// StripeGateway talks to Stripe for catalog sync, hosted checkout and
// webhook verification.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	log           *zap.Logger
}

var (
	_ interfaces.ICatalogGateway  = (*StripeGateway)(nil)
	_ interfaces.ICheckoutGateway = (*StripeGateway)(nil)
	_ interfaces.IWebhookVerifier = (*StripeGateway)(nil)
)

// NewStripeGateway uses the default Stripe backends when backends is nil.
func NewStripeGateway(cfg config.StripeConfig, backends *stripe.Backends, log *zap.Logger) (*StripeGateway, error) {
	if cfg.SecretKey == "" {
		return nil, ErrMissingStripeSecretKey
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &StripeGateway{
		api:           client.New(cfg.SecretKey, backends),
		webhookSecret: cfg.WebhookSecret,
		log:           log.Named("stripe"),
	}, nil
}

func (g *StripeGateway) CreateProduct(ctx context.Context, in interfaces.CatalogProductInput) (interfaces.CatalogProductRef, error) {
	params := &stripe.ProductParams{
		Name: stripe.String(in.Name),
		DefaultPriceData: &stripe.ProductDefaultPriceDataParams{
			Currency:   stripe.String(string(in.Currency)),
			UnitAmount: stripe.Int64(in.UnitAmount),
		},
	}
	if in.Description != "" {
		params.Description = stripe.String(in.Description)
	}
	if in.ImageURL != "" {
		params.Images = stripe.StringSlice([]string{in.ImageURL})
	}
	params.Context = ctx

	p, err := g.api.Products.New(params)
	if err != nil {
		return interfaces.CatalogProductRef{}, fmt.Errorf("stripe: failed to create product: %w", err)
	}
	ref := interfaces.CatalogProductRef{ProductID: p.ID}
	if p.DefaultPrice != nil {
		ref.DefaultPriceID = p.DefaultPrice.ID
	}
	g.log.Debug("created product", zap.String("stripe_product_id", p.ID), zap.String("stripe_price_id", ref.DefaultPriceID))
	return ref, nil
}

func (g *StripeGateway) FirstActivePrice(ctx context.Context, productID string) (string, error) {
	params := &stripe.PriceListParams{
		Product: stripe.String(productID),
		Active:  stripe.Bool(true),
	}
	params.Limit = stripe.Int64(1)
	params.Context = ctx

	it := g.api.Prices.List(params)
	if it.Next() {
		return it.Price().ID, nil
	}
	if err := it.Err(); err != nil {
		return "", fmt.Errorf("stripe: failed to list prices: %w", err)
	}
	return "", nil
}

func (g *StripeGateway) CreatePrice(ctx context.Context, productID string, unitAmount int64, currency entities.Currency) (string, error) {
	params := &stripe.PriceParams{
		Product:    stripe.String(productID),
		UnitAmount: stripe.Int64(unitAmount),
		Currency:   stripe.String(string(currency)),
	}
	params.Context = ctx

	p, err := g.api.Prices.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: failed to create price: %w", err)
	}
	return p.ID, nil
}

func (g *StripeGateway) SetDefaultPrice(ctx context.Context, productID, priceID string) error {
	params := &stripe.ProductParams{DefaultPrice: stripe.String(priceID)}
	params.Context = ctx
	if _, err := g.api.Products.Update(productID, params); err != nil {
		return fmt.Errorf("stripe: failed to set default price: %w", err)
	}
	return nil
}

func (g *StripeGateway) DeactivatePrice(ctx context.Context, priceID string) error {
	params := &stripe.PriceParams{Active: stripe.Bool(false)}
	params.Context = ctx
	if _, err := g.api.Prices.Update(priceID, params); err != nil {
		return fmt.Errorf("stripe: failed to archive price: %w", err)
	}
	return nil
}

func (g *StripeGateway) UpdateProductDetails(ctx context.Context, productID, name, description string) error {
	params := &stripe.ProductParams{
		Name:        stripe.String(name),
		Description: stripe.String(description),
	}
	params.Context = ctx
	if _, err := g.api.Products.Update(productID, params); err != nil {
		return fmt.Errorf("stripe: failed to update product: %w", err)
	}
	return nil
}

func (g *StripeGateway) SetProductImages(ctx context.Context, productID string, imageURLs []string, name, description string) error {
	params := &stripe.ProductParams{
		Name:        stripe.String(name),
		Description: stripe.String(description),
	}
	if len(imageURLs) == 0 {
		// An empty value unsets a list parameter.
		params.AddExtra("images", "")
	} else {
		params.Images = stripe.StringSlice(imageURLs)
	}
	params.Context = ctx
	if _, err := g.api.Products.Update(productID, params); err != nil {
		return fmt.Errorf("stripe: failed to update product images: %w", err)
	}
	return nil
}

func (g *StripeGateway) ArchiveProduct(ctx context.Context, productID string) error {
	params := &stripe.ProductParams{Active: stripe.Bool(false)}
	params.Context = ctx
	if _, err := g.api.Products.Update(productID, params); err != nil {
		return fmt.Errorf("stripe: failed to archive product: %w", err)
	}
	return nil
}

func (g *StripeGateway) Provider() string { return ProviderStripe }

func (g *StripeGateway) RequiresCatalogPrice() bool { return true }

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, in entities.CheckoutSessionInput) (entities.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes:       stripe.StringSlice([]string{"card"}),
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		BillingAddressCollection: stripe.String("required"),
		SuccessURL:               stripe.String(in.SuccessURL),
		CancelURL:                stripe.String(in.CancelURL),
	}
	for _, l := range in.Lines {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(l.StripePriceID),
			Quantity: stripe.Int64(l.Quantity),
		})
	}
	if in.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(in.CustomerEmail)
	}
	if in.OrderID != "" {
		params.ClientReferenceID = stripe.String(in.OrderID)
	}
	params.AddMetadata("orderId", in.OrderID)
	params.Context = ctx

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("stripe: failed to create checkout session: %w", err)
	}
	return entities.CheckoutSession{ID: s.ID, URL: s.URL, Provider: ProviderStripe}, nil
}

// ParseEvent verifies the Stripe-Signature header and reduces the event.
// Account API version drift is tolerated.
func (g *StripeGateway) ParseEvent(payload []byte, signatureHeader string) (entities.PaymentEvent, error) {
	if g.webhookSecret == "" {
		return entities.PaymentEvent{}, ErrMissingStripeWebhookSecret
	}
	ev, err := webhook.ConstructEventWithOptions(payload, signatureHeader, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return entities.PaymentEvent{}, err
	}

	out := entities.PaymentEvent{ID: ev.ID, Provider: ProviderStripe, Type: entities.PaymentEventType(ev.Type)}
	if ev.Data == nil {
		return out, nil
	}

	switch out.Type {
	case entities.PaymentEventCheckoutCompleted:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(ev.Data.Raw, &s); err != nil {
			return entities.PaymentEvent{}, fmt.Errorf("stripe: failed to decode checkout session: %w", err)
		}
		out.OrderID = s.ClientReferenceID
		out.PaymentReference = s.ID
		if s.PaymentIntent != nil && s.PaymentIntent.ID != "" {
			out.PaymentReference = s.PaymentIntent.ID
		}
		out.Status = string(s.PaymentStatus)
	case entities.PaymentEventPaymentIntentSucceeded, entities.PaymentEventPaymentIntentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
			return entities.PaymentEvent{}, fmt.Errorf("stripe: failed to decode payment intent: %w", err)
		}
		out.PaymentReference = pi.ID
		out.Status = string(pi.Status)
	}
	return out, nil
}
