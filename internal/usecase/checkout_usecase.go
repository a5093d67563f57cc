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
	ErrCheckoutUnavailable = errors.New("checkout provider not configured")
	ErrCheckoutFailed      = errors.New("failed to create checkout session")
)

// CheckoutInput is a checkout request. OrderID is optional; without it a
// pending order is created from Items.
type CheckoutInput struct {
	UserID        string
	OrderID       string
	Items         []OrderItemInput
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
}

type CheckoutResult struct {
	SessionID   string
	URL         string
	TotalAmount int64
	OrderID     string
	Provider    string
}

type ICheckoutUseCase interface {
	CreateSession(ctx context.Context, in CheckoutInput) (CheckoutResult, error)
}

type CheckoutUseCase struct {
	products    interfaces.IProductRepository
	orders      interfaces.IOrderRepository
	gateway     interfaces.ICheckoutGateway
	frontendURL string
	log         *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	products interfaces.IProductRepository,
	orders interfaces.IOrderRepository,
	gateway interfaces.ICheckoutGateway,
	frontendURL string,
	log *zap.Logger,
) *CheckoutUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckoutUseCase{
		products:    products,
		orders:      orders,
		gateway:     gateway,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		log:         log.Named("checkout"),
	}
}

func (u *CheckoutUseCase) CreateSession(ctx context.Context, in CheckoutInput) (CheckoutResult, error) {
	if u.gateway == nil {
		return CheckoutResult{}, ErrCheckoutUnavailable
	}
	priced, err := priceItems(ctx, u.products, in.Items, u.gateway.RequiresCatalogPrice())
	if err != nil {
		return CheckoutResult{}, err
	}

	orderID := strings.TrimSpace(in.OrderID)
	if orderID == "" {
		o, err := persistPendingOrder(ctx, u.orders, u.log, in.UserID, priced, u.gateway.Provider())
		if err != nil {
			return CheckoutResult{}, err
		}
		orderID = o.ID
	} else {
		existing, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return CheckoutResult{}, err
		}
		if existing.ID == "" {
			return CheckoutResult{}, detailed(ErrOrderNotFound, "Order with ID %s not found", orderID)
		}
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, entities.CheckoutSessionInput{
		OrderID:       orderID,
		Lines:         priced.lines,
		SuccessURL:    firstNonEmpty(in.SuccessURL, u.frontendURL+"/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     firstNonEmpty(in.CancelURL, u.frontendURL+"/checkout/cancel"),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
	})
	if err != nil {
		u.log.Error("checkout session create failed", zap.String("order_id", orderID), zap.Error(err))
		return CheckoutResult{}, detailed(fmt.Errorf("%w: %w", ErrCheckoutFailed, err), "%s", err.Error())
	}

	u.log.Info("checkout session created",
		zap.String("session_id", session.ID),
		zap.String("order_id", orderID),
		zap.String("provider", session.Provider))
	return CheckoutResult{
		SessionID:   session.ID,
		URL:         session.URL,
		TotalAmount: priced.total,
		OrderID:     orderID,
		Provider:    session.Provider,
	}, nil
}

func firstNonEmpty(v, fallback string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return fallback
}
