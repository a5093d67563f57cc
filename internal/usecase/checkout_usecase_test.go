package usecase

import (
	"context"
	"errors"
	"testing"

	"festival_backend/internal/domain/entities"
	mock_interfaces "festival_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type checkoutDeps struct {
	products *mock_interfaces.MockIProductRepository
	orders   *mock_interfaces.MockIOrderRepository
	gateway  *mock_interfaces.MockICheckoutGateway
	uc       *CheckoutUseCase
}

func newCheckoutDeps(t *testing.T, requirePrice bool) *checkoutDeps {
	ctrl := gomock.NewController(t)
	d := &checkoutDeps{
		products: mock_interfaces.NewMockIProductRepository(ctrl),
		orders:   mock_interfaces.NewMockIOrderRepository(ctrl),
		gateway:  mock_interfaces.NewMockICheckoutGateway(ctrl),
	}
	d.gateway.EXPECT().RequiresCatalogPrice().Return(requirePrice).AnyTimes()
	d.gateway.EXPECT().Provider().Return("stripe").AnyTimes()
	d.uc = NewCheckoutUseCase(d.products, d.orders, d.gateway, "https://shop.example/", nil)
	return d
}

func TestCheckoutUseCase_CreateSession(t *testing.T) {
	tee := entities.Product{ID: "p1", Name: "Tee", Price: 1200, Currency: "usd", StripePriceID: "price_1"}

	t.Run("provider not configured", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, "", nil)
		if _, err := uc.CreateSession(context.Background(), CheckoutInput{}); !errors.Is(err, ErrCheckoutUnavailable) {
			t.Fatalf("expected ErrCheckoutUnavailable, got %v", err)
		}
	})

	t.Run("product without catalog price", func(t *testing.T) {
		d := newCheckoutDeps(t, true)
		d.products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Name: "Tee", Price: 1200}, nil)

		_, err := d.uc.CreateSession(context.Background(), CheckoutInput{Items: []OrderItemInput{{ProductID: "p1", Quantity: 1}}})
		if !errors.Is(err, ErrMissingCatalogPrice) || Detail(err, "") != "Product Tee does not have a Stripe price configured" {
			t.Fatalf("unexpected error %v", err)
		}
	})

	t.Run("creates pending order when none supplied", func(t *testing.T) {
		d := newCheckoutDeps(t, true)
		d.products.EXPECT().GetByID(gomock.Any(), "p1").Return(tee, nil)
		d.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			if o.Provider != "stripe" || o.TotalAmount != 3600 {
				t.Fatalf("unexpected order: %+v", o)
			}
			return o, nil
		})
		d.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.AssignableToTypeOf(entities.CheckoutSessionInput{})).DoAndReturn(
			func(_ context.Context, in entities.CheckoutSessionInput) (entities.CheckoutSession, error) {
				if in.OrderID == "" || in.CustomerEmail != "fan@example.com" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if in.SuccessURL != "https://shop.example/checkout/success?session_id={CHECKOUT_SESSION_ID}" || in.CancelURL != "https://shop.example/checkout/cancel" {
					t.Fatalf("unexpected urls: %s %s", in.SuccessURL, in.CancelURL)
				}
				if len(in.Lines) != 1 || in.Lines[0].StripePriceID != "price_1" || in.Lines[0].Quantity != 3 {
					t.Fatalf("unexpected lines: %+v", in.Lines)
				}
				return entities.CheckoutSession{ID: "cs_1", URL: "https://pay.example/cs_1", Provider: "stripe"}, nil
			},
		)

		res, err := d.uc.CreateSession(context.Background(), CheckoutInput{
			Items:         []OrderItemInput{{ProductID: "p1", Quantity: 3}},
			CustomerEmail: " fan@example.com ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.SessionID != "cs_1" || res.TotalAmount != 3600 || res.OrderID == "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("existing order id is verified", func(t *testing.T) {
		d := newCheckoutDeps(t, true)
		d.products.EXPECT().GetByID(gomock.Any(), "p1").Return(tee, nil)
		d.orders.EXPECT().GetByID(gomock.Any(), "o-9").Return(entities.Order{}, nil)

		_, err := d.uc.CreateSession(context.Background(), CheckoutInput{OrderID: "o-9", Items: []OrderItemInput{{ProductID: "p1", Quantity: 1}}})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		d := newCheckoutDeps(t, false)
		d.products.EXPECT().GetByID(gomock.Any(), "p1").Return(tee, nil)
		d.orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1"}, nil)
		d.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, errors.New("card_declined"))

		_, err := d.uc.CreateSession(context.Background(), CheckoutInput{
			OrderID: "o-1", Items: []OrderItemInput{{ProductID: "p1", Quantity: 1}}, SuccessURL: "https://x/ok",
		})
		if !errors.Is(err, ErrCheckoutFailed) || Detail(err, "") != "card_declined" {
			t.Fatalf("unexpected error %v", err)
		}
	})
}
