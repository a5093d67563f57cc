package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/infrastructure/config"
	"festival_backend/internal/usecase/interfaces"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

const ProviderMercadoPago = "mercadopago"

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidMercadoPagoPaymentID     = errors.New("invalid mercado pago payment id")
)

// MercadoPagoGateway opens Checkout Pro preferences and resolves payment
// notifications. In mock mode no request leaves the process.
type MercadoPagoGateway struct {
	preferences     preference.Client
	payments        payment.Client
	notificationURL string
	mockMode        bool
	log             *zap.Logger
}

var (
	_ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)
	_ interfaces.IPaymentLookup   = (*MercadoPagoGateway)(nil)
)

func NewMercadoPagoGateway(cfg config.MercadoPagoConfig, mock bool, log *zap.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("mercadopago")

	if mock {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log}, nil
	}
	if cfg.AccessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: failed creating sdk config: %w", err)
	}
	log.Info("client initialized")

	return &MercadoPagoGateway{
		preferences:     preference.NewClient(sdkCfg),
		payments:        payment.NewClient(sdkCfg),
		notificationURL: cfg.NotificationURL,
		log:             log,
	}, nil
}

func (g *MercadoPagoGateway) Provider() string { return ProviderMercadoPago }

// RequiresCatalogPrice is false: preference items carry their own unit price.
func (g *MercadoPagoGateway) RequiresCatalogPrice() bool { return false }

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, in entities.CheckoutSessionInput) (entities.CheckoutSession, error) {
	if g.mockMode {
		id := "mock-pref-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		g.log.Info("mock preference created", zap.String("preference_id", id), zap.String("order_id", in.OrderID))
		return entities.CheckoutSession{ID: id, URL: in.SuccessURL, Provider: ProviderMercadoPago}, nil
	}
	if g.preferences == nil {
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	req := preference.Request{
		ExternalReference: in.OrderID,
		NotificationURL:   g.notificationURL,
		BackURLs: &preference.BackURLsRequest{
			Success: in.SuccessURL,
			Failure: in.CancelURL,
			Pending: in.CancelURL,
		},
	}
	for _, l := range in.Lines {
		req.Items = append(req.Items, preference.ItemRequest{
			ID:         l.ProductID,
			Title:      l.Name,
			Quantity:   int(l.Quantity),
			UnitPrice:  float64(l.UnitAmount) / 100,
			CurrencyID: currencyID(l.Currency),
		})
	}
	if in.CustomerEmail != "" {
		req.Payer = &preference.PayerRequest{Email: in.CustomerEmail}
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("mercadopago: failed to create preference: %w", err)
	}
	g.log.Info("preference created", zap.String("preference_id", resp.ID), zap.String("order_id", in.OrderID))
	return entities.CheckoutSession{ID: resp.ID, URL: resp.InitPoint, Provider: ProviderMercadoPago}, nil
}

func (g *MercadoPagoGateway) LookupPayment(ctx context.Context, paymentID string) (entities.PaymentEvent, error) {
	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %q", ErrInvalidMercadoPagoPaymentID, paymentID)
	}
	if g.mockMode {
		g.log.Info("mock payment lookup", zap.Int("payment_id", id))
		return entities.PaymentEvent{
			ID:               paymentID,
			Provider:         ProviderMercadoPago,
			Type:             entities.PaymentEventPaymentUpdated,
			PaymentReference: paymentID,
			Status:           "approved",
		}, nil
	}
	if g.payments == nil {
		return entities.PaymentEvent{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("mercadopago: failed to get payment: %w", err)
	}
	ev := entities.PaymentEvent{
		ID:               strconv.Itoa(resp.ID),
		Provider:         ProviderMercadoPago,
		Type:             entities.PaymentEventPaymentUpdated,
		OrderID:          resp.ExternalReference,
		PaymentReference: strconv.Itoa(resp.ID),
		Status:           resp.Status,
	}
	if resp.Status == "approved" {
		ev.Type = entities.PaymentEventPaymentApproved
	}
	return ev, nil
}

// Checkout Pro expects upper-case ISO codes.
func currencyID(c entities.Currency) string {
	switch c {
	case entities.CurrencyEUR:
		return "EUR"
	default:
		return "USD"
	}
}
