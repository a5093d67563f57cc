package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrWebhookUnavailable      = errors.New("webhook provider not configured")
	ErrMissingPaymentID        = errors.New("payment notification without id")
)

const mercadoPagoPaymentTopic = "payment"

// IOrderFulfillmentUseCase moves orders to paid from payment provider
// notifications. Repeated deliveries of the same event are harmless.
type IOrderFulfillmentUseCase interface {
	HandleStripeEvent(ctx context.Context, payload []byte, signature string) error
	HandleMercadoPagoNotification(ctx context.Context, topic, paymentID string) error
	Apply(ctx context.Context, ev entities.PaymentEvent) error
}

type OrderFulfillmentUseCase struct {
	orders   interfaces.IOrderRepository
	verifier interfaces.IWebhookVerifier
	lookup   interfaces.IPaymentLookup
	log      *zap.Logger
}

var _ IOrderFulfillmentUseCase = (*OrderFulfillmentUseCase)(nil)

// NewOrderFulfillmentUseCase accepts nil for a provider that is not configured.
func NewOrderFulfillmentUseCase(orders interfaces.IOrderRepository, verifier interfaces.IWebhookVerifier, lookup interfaces.IPaymentLookup, log *zap.Logger) *OrderFulfillmentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderFulfillmentUseCase{orders: orders, verifier: verifier, lookup: lookup, log: log.Named("fulfillment")}
}

func (u *OrderFulfillmentUseCase) HandleStripeEvent(ctx context.Context, payload []byte, signature string) error {
	if u.verifier == nil {
		return ErrWebhookUnavailable
	}
	ev, err := u.verifier.ParseEvent(payload, signature)
	if err != nil {
		u.log.Warn("stripe webhook rejected", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrInvalidWebhookSignature, err)
	}
	return u.Apply(ctx, ev)
}

func (u *OrderFulfillmentUseCase) HandleMercadoPagoNotification(ctx context.Context, topic, paymentID string) error {
	if topic != mercadoPagoPaymentTopic {
		u.log.Debug("ignoring mercado pago notification", zap.String("topic", topic))
		return nil
	}
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return ErrMissingPaymentID
	}
	if u.lookup == nil {
		return ErrWebhookUnavailable
	}
	ev, err := u.lookup.LookupPayment(ctx, paymentID)
	if err != nil {
		u.log.Error("mercado pago payment lookup failed", zap.String("payment_id", paymentID), zap.Error(err))
		return err
	}
	return u.Apply(ctx, ev)
}

// Apply reacts to a decoded provider event. Only a database failure is
// returned, so the provider retries delivery.
func (u *OrderFulfillmentUseCase) Apply(ctx context.Context, ev entities.PaymentEvent) error {
	log := u.log.With(
		zap.String("provider", ev.Provider),
		zap.String("event_id", ev.ID),
		zap.String("event_type", string(ev.Type)))

	switch ev.Type {
	case entities.PaymentEventCheckoutCompleted, entities.PaymentEventPaymentApproved:
		return u.markPaid(ctx, log, ev)
	case entities.PaymentEventPaymentUpdated:
		if ev.Status == "approved" {
			return u.markPaid(ctx, log, ev)
		}
		log.Info("payment status update", zap.String("status", ev.Status), zap.String("order_id", ev.OrderID))
	case entities.PaymentEventPaymentIntentSucceeded:
		log.Info("payment intent succeeded", zap.String("payment_reference", ev.PaymentReference))
	case entities.PaymentEventPaymentIntentFailed:
		log.Warn("payment intent failed", zap.String("payment_reference", ev.PaymentReference))
	default:
		log.Debug("unhandled payment event")
	}
	return nil
}

func (u *OrderFulfillmentUseCase) markPaid(ctx context.Context, log *zap.Logger, ev entities.PaymentEvent) error {
	if ev.OrderID == "" {
		log.Warn("payment event has no order reference")
		return nil
	}
	log = log.With(zap.String("order_id", ev.OrderID))

	o, err := u.orders.UpdateStatus(ctx, ev.OrderID, entities.OrderStatusPaid, ev.PaymentReference)
	if err != nil {
		log.Error("failed to mark order paid", zap.Error(err))
		return err
	}
	if o.ID == "" {
		log.Error("order referenced by payment event not found")
		return nil
	}
	log.Info("order paid", zap.String("payment_reference", o.PaymentReference))
	return nil
}
