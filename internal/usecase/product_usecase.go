package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
)

// ProductInput carries the fields of a new product.
type ProductInput struct {
	Name        string
	Description string
	Price       int64
	Currency    entities.Currency
	ImageID     *int64
	Stock       *int64
}

// ProductPatch is a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *int64
	Currency    *entities.Currency
	ImageID     *int64
	RemoveImage bool
	Stock       *int64
	RemoveStock bool
}

type IProductUseCase interface {
	Create(ctx context.Context, in ProductInput) (entities.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
	sync *ProductSyncPipeline
	log  *zap.Logger
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, sync *ProductSyncPipeline, log *zap.Logger) *ProductUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if sync == nil {
		sync = NewProductSyncPipeline(nil, nil, "", log)
	}
	return &ProductUseCase{repo: repo, sync: sync, log: log.Named("products")}
}

func (u *ProductUseCase) Create(ctx context.Context, in ProductInput) (entities.Product, error) {
	now := time.Now().UTC()
	p := entities.Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Currency:    in.Currency,
		ImageID:     in.ImageID,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Currency == "" {
		p.Currency = entities.CurrencyUSD
	}
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}

	if _, err := u.sync.BeforeCreate(ctx, &p); err != nil {
		return entities.Product{}, err
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("product create failed", zap.String("product_id", p.ID), zap.Error(err))
		return entities.Product{}, err
	}
	return created, nil
}

func (u *ProductUseCase) Update(ctx context.Context, id string, patch ProductPatch) (entities.Product, error) {
	id = strings.TrimSpace(id)
	prev, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if prev.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	next := applyProductPatch(prev, patch)
	if err := validateProduct(next); err != nil {
		return entities.Product{}, err
	}

	decision, err := u.sync.BeforeUpdate(ctx, prev, &next)
	if err != nil {
		return entities.Product{}, err
	}
	next.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		u.log.Error("product update failed", zap.String("product_id", id), zap.Error(err))
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	u.log.Debug("product updated", zap.String("product_id", id), zap.Strings("sync_steps", decision.Steps))
	return updated, nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	p, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

// Delete archives the external product before removing the local one.
func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.sync.BeforeDelete(ctx, p)
	return u.repo.Delete(ctx, p.ID)
}

func applyProductPatch(p entities.Product, patch ProductPatch) entities.Product {
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Currency != nil {
		p.Currency = *patch.Currency
	}
	switch {
	case patch.RemoveImage:
		p.ImageID = nil
	case patch.ImageID != nil:
		v := *patch.ImageID
		p.ImageID = &v
	}
	switch {
	case patch.RemoveStock:
		p.Stock = nil
	case patch.Stock != nil:
		v := *patch.Stock
		p.Stock = &v
	}
	return p
}

func validateProduct(p entities.Product) error {
	switch {
	case p.Name == "":
		return detailed(ErrInvalidProduct, "Product name is required")
	case p.Price < 0:
		return detailed(ErrInvalidProduct, "Product price must not be negative")
	case !p.Currency.Valid():
		return detailed(ErrInvalidProduct, "Unsupported currency %q", p.Currency)
	case p.Stock != nil && *p.Stock < 0:
		return detailed(ErrInvalidProduct, "Product stock must not be negative")
	}
	return nil
}
