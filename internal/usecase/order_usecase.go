package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidOrderItems   = errors.New("invalid order items")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrMissingCatalogPrice = errors.New("product has no catalog price")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
)

// OrderItemInput is one requested line before pricing.
type OrderItemInput struct {
	ProductID string
	Quantity  int64
}

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, userID string, items []OrderItemInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

type OrderUseCase struct {
	products interfaces.IProductRepository
	orders   interfaces.IOrderRepository
	log      *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(products interfaces.IProductRepository, orders interfaces.IOrderRepository, log *zap.Logger) *OrderUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderUseCase{products: products, orders: orders, log: log.Named("orders")}
}

// CreateOrder prices the items from stored product data and persists a
// pending order. Stock is checked but not decremented.
func (u *OrderUseCase) CreateOrder(ctx context.Context, userID string, items []OrderItemInput) (entities.Order, error) {
	priced, err := priceItems(ctx, u.products, items, false)
	if err != nil {
		return entities.Order{}, err
	}
	return persistPendingOrder(ctx, u.orders, u.log, userID, priced, "")
}

func persistPendingOrder(ctx context.Context, orders interfaces.IOrderRepository, log *zap.Logger, userID string, priced pricedItems, provider string) (entities.Order, error) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		Items:       priced.items,
		TotalAmount: priced.total,
		Currency:    priced.currency,
		Provider:    provider,
		Status:      entities.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := orders.Create(ctx, o)
	if err != nil {
		log.Error("order create failed", zap.Error(err))
		return entities.Order{}, err
	}
	log.Info("order created",
		zap.String("order_id", created.ID),
		zap.Int64("total_amount", created.TotalAmount),
		zap.String("currency", string(created.Currency)))
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	o, err := u.orders.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	if !status.Valid() {
		return entities.Order{}, detailed(ErrInvalidOrderStatus, "Unknown order status %q", status)
	}
	o, err := u.orders.UpdateStatus(ctx, strings.TrimSpace(id), status, "")
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

type pricedItems struct {
	items    []entities.OrderItem
	lines    []entities.CheckoutLine
	total    int64
	currency entities.Currency
}

// priceItems validates the request lines against the product catalog. The
// order currency is taken from the first product.
func priceItems(ctx context.Context, products interfaces.IProductRepository, items []OrderItemInput, requireCatalogPrice bool) (pricedItems, error) {
	var out pricedItems
	if len(items) == 0 {
		return out, detailed(ErrInvalidOrderItems, "Items array is required and must not be empty")
	}
	for _, it := range items {
		productID := strings.TrimSpace(it.ProductID)
		if productID == "" || it.Quantity < 1 {
			return pricedItems{}, detailed(ErrInvalidOrderItems, "Each item must have a valid productId and quantity >= 1")
		}
		p, err := products.GetByID(ctx, productID)
		if err != nil {
			return pricedItems{}, err
		}
		if p.ID == "" {
			return pricedItems{}, detailed(ErrProductNotFound, "Product with ID %s not found", productID)
		}
		if requireCatalogPrice && p.StripePriceID == "" {
			return pricedItems{}, detailed(ErrMissingCatalogPrice, "Product %s does not have a Stripe price configured", p.Name)
		}
		if !p.HasStockFor(it.Quantity) {
			return pricedItems{}, detailed(ErrInsufficientStock,
				"Insufficient stock for product %s. Available: %d, Requested: %d", p.Name, *p.Stock, it.Quantity)
		}

		if p.Price > 0 && (it.Quantity > math.MaxInt64/p.Price || out.total > math.MaxInt64-p.Price*it.Quantity) {
			return pricedItems{}, detailed(ErrInvalidOrderItems, "Order total for product %s exceeds the supported amount", p.Name)
		}
		out.total += p.Price * it.Quantity
		out.items = append(out.items, entities.OrderItem{
			ProductID: p.ID,
			Quantity:  it.Quantity,
			Price:     p.Price,
			Name:      p.Name,
		})
		out.lines = append(out.lines, entities.CheckoutLine{
			ProductID:     p.ID,
			Name:          p.Name,
			StripePriceID: p.StripePriceID,
			UnitAmount:    p.Price,
			Currency:      p.Currency,
			Quantity:      it.Quantity,
		})
		if len(out.items) == 1 {
			out.currency = p.Currency
		}
	}
	return out, nil
}
