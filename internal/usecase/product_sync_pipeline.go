package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrCatalogSync = errors.New("payment catalog sync failed")

// ProductSyncPipeline mirrors a product write into the payment provider
// catalog before the write is persisted. The returned decision tells later
// steps whether the catalog already reflects the write.
type ProductSyncPipeline struct {
	catalog   interfaces.ICatalogGateway
	media     interfaces.IMediaRepository
	serverURL string
	log       *zap.Logger
}

// NewProductSyncPipeline accepts a nil catalog; every step is then skipped.
func NewProductSyncPipeline(catalog interfaces.ICatalogGateway, media interfaces.IMediaRepository, serverURL string, log *zap.Logger) *ProductSyncPipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductSyncPipeline{
		catalog:   catalog,
		media:     media,
		serverURL: strings.TrimRight(serverURL, "/"),
		log:       log.Named("product_sync"),
	}
}

// BeforeCreate creates the external product with its initial price and
// stores both ids on p. Provider errors abort the write.
func (s *ProductSyncPipeline) BeforeCreate(ctx context.Context, p *entities.Product) (entities.ProductSyncDecision, error) {
	var d entities.ProductSyncDecision
	if s.catalog == nil {
		s.log.Warn("payment catalog not configured; skipping product sync", zap.String("product", p.Name))
		return d, nil
	}
	if p.StripeProductID != "" {
		d.Record("already_linked")
		return d, nil
	}
	return d, s.createExternal(ctx, p, &d)
}

// BeforeUpdate runs the update steps in order: price rotation, image push,
// then plain field mirroring when nothing earlier handled the write.
func (s *ProductSyncPipeline) BeforeUpdate(ctx context.Context, prev entities.Product, next *entities.Product) (entities.ProductSyncDecision, error) {
	var d entities.ProductSyncDecision
	if s.catalog == nil {
		s.log.Warn("payment catalog not configured; skipping product sync", zap.String("product_id", next.ID))
		return d, nil
	}
	if next.StripeProductID == "" {
		return d, s.createExternal(ctx, next, &d)
	}

	if next.Price != prev.Price || next.Currency != prev.Currency {
		if err := s.rotatePrice(ctx, prev, next, &d); err != nil {
			return d, err
		}
	}
	if !d.Handled && !sameImage(prev.ImageID, next.ImageID) {
		s.pushImage(ctx, next, &d)
	}
	if !d.Handled {
		s.mirrorFields(ctx, prev, *next, &d)
	}
	d.StripeProductID, d.StripePriceID = next.StripeProductID, next.StripePriceID
	return d, nil
}

// BeforeDelete archives the external product. Failures are logged only.
func (s *ProductSyncPipeline) BeforeDelete(ctx context.Context, p entities.Product) {
	if s.catalog == nil || p.StripeProductID == "" {
		return
	}
	if err := s.catalog.ArchiveProduct(ctx, p.StripeProductID); err != nil {
		s.log.Warn("failed to archive external product", zap.String("stripe_product_id", p.StripeProductID), zap.Error(err))
	}
}

func (s *ProductSyncPipeline) createExternal(ctx context.Context, p *entities.Product, d *entities.ProductSyncDecision) error {
	log := s.log.With(zap.String("product", p.Name))

	imageURL, err := s.imageURL(ctx, p.ImageID)
	if err != nil {
		log.Error("could not resolve product image url", zap.Error(err))
	}

	ref, err := s.catalog.CreateProduct(ctx, interfaces.CatalogProductInput{
		Name:        p.Name,
		Description: p.Description,
		UnitAmount:  p.Price,
		Currency:    p.Currency,
		ImageURL:    imageURL,
	})
	if err != nil {
		log.Error("external product create failed", zap.Error(err))
		return fmt.Errorf("%w: product creation: %w", ErrCatalogSync, err)
	}

	priceID := ref.DefaultPriceID
	if priceID == "" {
		priceID, err = s.catalog.FirstActivePrice(ctx, ref.ProductID)
		if err != nil {
			log.Warn("could not list prices of new external product", zap.String("stripe_product_id", ref.ProductID), zap.Error(err))
		}
	}

	p.StripeProductID, p.StripePriceID = ref.ProductID, priceID
	d.Handled = true
	d.StripeProductID, d.StripePriceID = ref.ProductID, priceID
	d.Record("create_product")
	log.Info("external product created", zap.String("stripe_product_id", ref.ProductID), zap.String("stripe_price_id", priceID))
	return nil
}

func (s *ProductSyncPipeline) rotatePrice(ctx context.Context, prev entities.Product, next *entities.Product, d *entities.ProductSyncDecision) error {
	log := s.log.With(zap.String("product_id", next.ID), zap.String("stripe_product_id", next.StripeProductID))

	priceID, err := s.catalog.CreatePrice(ctx, next.StripeProductID, next.Price, next.Currency)
	if err != nil {
		log.Error("external price create failed", zap.Error(err))
		return fmt.Errorf("%w: price creation: %w", ErrCatalogSync, err)
	}
	if err := s.catalog.SetDefaultPrice(ctx, next.StripeProductID, priceID); err != nil {
		log.Error("external default price update failed", zap.String("stripe_price_id", priceID), zap.Error(err))
		return fmt.Errorf("%w: default price update: %w", ErrCatalogSync, err)
	}
	next.StripePriceID = priceID
	d.Record("rotate_price")

	if prev.StripePriceID != "" && prev.StripePriceID != priceID {
		if err := s.catalog.DeactivatePrice(ctx, prev.StripePriceID); err != nil {
			log.Warn("could not archive previous price", zap.String("stripe_price_id", prev.StripePriceID), zap.Error(err))
		} else {
			d.Record("archive_price")
		}
	}
	d.Handled = true
	log.Info("external price rotated", zap.String("stripe_price_id", priceID), zap.Int64("unit_amount", next.Price))
	return nil
}

// pushImage is best-effort: the write goes through even if the provider
// rejects the image.
func (s *ProductSyncPipeline) pushImage(ctx context.Context, p *entities.Product, d *entities.ProductSyncDecision) {
	log := s.log.With(zap.String("product_id", p.ID), zap.String("stripe_product_id", p.StripeProductID))

	imageURL, err := s.imageURL(ctx, p.ImageID)
	if err != nil {
		log.Error("could not resolve product image url", zap.Error(err))
		return
	}
	var images []string
	if imageURL != "" {
		images = []string{imageURL}
	}
	if err := s.catalog.SetProductImages(ctx, p.StripeProductID, images, p.Name, p.Description); err != nil {
		log.Error("external image update failed", zap.Error(err))
		return
	}
	d.Handled = true
	d.Record("push_image")
}

func (s *ProductSyncPipeline) mirrorFields(ctx context.Context, prev, next entities.Product, d *entities.ProductSyncDecision) {
	if prev.Name == next.Name && prev.Description == next.Description {
		return
	}
	if err := s.catalog.UpdateProductDetails(ctx, next.StripeProductID, next.Name, next.Description); err != nil {
		s.log.Error("external field mirror failed", zap.String("stripe_product_id", next.StripeProductID), zap.Error(err))
		return
	}
	d.Record("mirror_fields")
}

func (s *ProductSyncPipeline) imageURL(ctx context.Context, imageID *int64) (string, error) {
	if imageID == nil {
		return "", nil
	}
	m, err := s.media.GetByID(ctx, strconv.FormatInt(*imageID, 10))
	if err != nil {
		return "", err
	}
	if m.ID == "" || m.URL == "" {
		return "", fmt.Errorf("media %d not found", *imageID)
	}
	if s.serverURL == "" {
		return "", errors.New("server url not configured; cannot build absolute image url")
	}
	u := m.URL
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	abs := s.serverURL + u
	if !strings.HasPrefix(abs, "http") {
		return "", fmt.Errorf("image url is not absolute: %s", abs)
	}
	return abs, nil
}

func sameImage(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
