package usecase

import (
	"context"
	"errors"
	"testing"

	"festival_backend/internal/domain/entities"
	mock_interfaces "festival_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("empty items", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), "", nil)
		if !errors.Is(err, ErrInvalidOrderItems) || Detail(err, "") != "Items array is required and must not be empty" {
			t.Fatalf("unexpected error %v", err)
		}
	})

	t.Run("bad quantity", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.CreateOrder(context.Background(), "", []OrderItemInput{{ProductID: "p1", Quantity: 0}})
		if !errors.Is(err, ErrInvalidOrderItems) || Detail(err, "") != "Each item must have a valid productId and quantity >= 1" {
			t.Fatalf("unexpected error %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewOrderUseCase(products, mock_interfaces.NewMockIOrderRepository(ctrl), nil)

		products.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Product{}, nil)

		_, err := uc.CreateOrder(context.Background(), "", []OrderItemInput{{ProductID: "missing", Quantity: 1}})
		if !errors.Is(err, ErrProductNotFound) || Detail(err, "") != "Product with ID missing not found" {
			t.Fatalf("unexpected error %v", err)
		}
	})

	t.Run("quantity above stock creates no order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(products, orders, nil)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Name: "Tee", Price: 1000, Currency: "usd", Stock: int64Ptr(2)}, nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.CreateOrder(context.Background(), "", []OrderItemInput{{ProductID: "p1", Quantity: 3}})
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		if got := Detail(err, ""); got != "Insufficient stock for product Tee. Available: 2, Requested: 3" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("line total overflow is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(products, orders, nil)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Name: "Tee", Price: 1000, Currency: "usd"}, nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.CreateOrder(context.Background(), "", []OrderItemInput{{ProductID: "p1", Quantity: 9223372036854776}})
		if !errors.Is(err, ErrInvalidOrderItems) {
			t.Fatalf("expected ErrInvalidOrderItems, got %v", err)
		}
	})

	t.Run("running total overflow is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(products, orders, nil)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Name: "Tee", Price: 1 << 62, Currency: "usd"}, nil).Times(2)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.CreateOrder(context.Background(), "", []OrderItemInput{{ProductID: "p1", Quantity: 1}, {ProductID: "p1", Quantity: 1}})
		if !errors.Is(err, ErrInvalidOrderItems) {
			t.Fatalf("expected ErrInvalidOrderItems, got %v", err)
		}
	})

	t.Run("prices from product data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(products, orders, nil)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Name: "Tee", Price: 1000, Currency: "eur"}, nil)
		products.EXPECT().GetByID(gomock.Any(), "p2").Return(entities.Product{ID: "p2", Name: "Cap", Price: 550, Currency: "usd", Stock: int64Ptr(5)}, nil)
		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Status != entities.OrderStatusPending || o.TotalAmount != 3100 || o.Currency != entities.CurrencyEUR {
					t.Fatalf("unexpected order: %+v", o)
				}
				if len(o.Items) != 2 || o.Items[1] != (entities.OrderItem{ProductID: "p2", Quantity: 2, Price: 550, Name: "Cap"}) {
					t.Fatalf("unexpected items: %+v", o.Items)
				}
				return o, nil
			},
		)

		o, err := uc.CreateOrder(context.Background(), "user-1", []OrderItemInput{{ProductID: "p1", Quantity: 2}, {ProductID: "p2", Quantity: 2}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID == "" || o.UserID != "user-1" {
			t.Fatalf("unexpected order: %+v", o)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		if _, err := uc.UpdateStatus(context.Background(), "o1", "lost"); !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(nil, orders, nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), "o1", entities.OrderStatusShipped, "").Return(entities.Order{}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "o1", entities.OrderStatusShipped); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}
