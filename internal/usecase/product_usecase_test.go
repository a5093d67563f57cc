package usecase

import (
	"context"
	"errors"
	"testing"

	"festival_backend/internal/domain/entities"
	"festival_backend/internal/usecase/interfaces"
	mock_interfaces "festival_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

func int64Ptr(v int64) *int64 { return &v }

type productDeps struct {
	repo    *mock_interfaces.MockIProductRepository
	catalog *mock_interfaces.MockICatalogGateway
	media   *mock_interfaces.MockIMediaRepository
	uc      *ProductUseCase
}

func newProductDeps(t *testing.T) *productDeps {
	ctrl := gomock.NewController(t)
	d := &productDeps{
		repo:    mock_interfaces.NewMockIProductRepository(ctrl),
		catalog: mock_interfaces.NewMockICatalogGateway(ctrl),
		media:   mock_interfaces.NewMockIMediaRepository(ctrl),
	}
	log := zaptest.NewLogger(t)
	d.uc = NewProductUseCase(d.repo, NewProductSyncPipeline(d.catalog, d.media, "https://cms.example/", log), log)
	return d
}

func TestProductUseCase_Create(t *testing.T) {
	t.Run("invalid currency", func(t *testing.T) {
		d := newProductDeps(t)
		_, err := d.uc.Create(context.Background(), ProductInput{Name: "Tee", Price: 100, Currency: "brl"})
		if !errors.Is(err, ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})

	t.Run("creates external product with image", func(t *testing.T) {
		d := newProductDeps(t)

		d.media.EXPECT().GetByID(gomock.Any(), "9").Return(entities.Media{ID: "9", URL: "/v1/media/file/tee.jpg"}, nil)
		d.catalog.EXPECT().CreateProduct(gomock.Any(), interfaces.CatalogProductInput{
			Name: "Tee", Description: "black", UnitAmount: 2500, Currency: entities.CurrencyEUR,
			ImageURL: "https://cms.example/v1/media/file/tee.jpg",
		}).Return(interfaces.CatalogProductRef{ProductID: "prod_1", DefaultPriceID: "price_1"}, nil)
		d.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" || p.StripeProductID != "prod_1" || p.StripePriceID != "price_1" {
					t.Fatalf("unexpected product: %+v", p)
				}
				return p, nil
			},
		)

		_, err := d.uc.Create(context.Background(), ProductInput{
			Name: " Tee ", Description: "black", Price: 2500, Currency: entities.CurrencyEUR, ImageID: int64Ptr(9),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("falls back to listing prices", func(t *testing.T) {
		d := newProductDeps(t)

		d.catalog.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(interfaces.CatalogProductRef{ProductID: "prod_1"}, nil)
		d.catalog.EXPECT().FirstActivePrice(gomock.Any(), "prod_1").Return("price_listed", nil)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.StripePriceID != "price_listed" || p.Currency != entities.CurrencyUSD {
					t.Fatalf("unexpected product: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := d.uc.Create(context.Background(), ProductInput{Name: "Cap", Price: 900}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("provider error aborts write", func(t *testing.T) {
		d := newProductDeps(t)
		d.catalog.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(interfaces.CatalogProductRef{}, errors.New("stripe down"))

		_, err := d.uc.Create(context.Background(), ProductInput{Name: "Cap", Price: 900})
		if !errors.Is(err, ErrCatalogSync) {
			t.Fatalf("expected ErrCatalogSync, got %v", err)
		}
	})
}

func TestProductUseCase_UpdatePriceRotatesExternalPrice(t *testing.T) {
	d := newProductDeps(t)
	stored := entities.Product{
		ID: "p1", Name: "Tee", Price: 1000, Currency: entities.CurrencyUSD, Stock: int64Ptr(4),
		StripeProductID: "prod_1", StripePriceID: "price_old",
	}

	d.repo.EXPECT().GetByID(gomock.Any(), "p1").Return(stored, nil)
	d.catalog.EXPECT().CreatePrice(gomock.Any(), "prod_1", int64(1500), entities.CurrencyUSD).Return("price_new", nil).Times(1)
	d.catalog.EXPECT().SetDefaultPrice(gomock.Any(), "prod_1", "price_new").Return(nil)
	d.catalog.EXPECT().DeactivatePrice(gomock.Any(), "price_old").Return(nil).Times(1)
	d.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
		func(_ context.Context, p entities.Product) (entities.Product, error) {
			if p.Price != 1500 || p.StripePriceID != "price_new" {
				t.Fatalf("unexpected product: %+v", p)
			}
			if p.Stock == nil || *p.Stock != 4 {
				t.Fatalf("stock must not change, got %v", p.Stock)
			}
			return p, nil
		},
	)

	if _, err := d.uc.Update(context.Background(), "p1", ProductPatch{Price: int64Ptr(1500)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductUseCase_UpdatePriceFailureAbortsWrite(t *testing.T) {
	stored := entities.Product{
		ID: "p1", Name: "Tee", Price: 1000, Currency: entities.CurrencyUSD,
		StripeProductID: "prod_1", StripePriceID: "price_old",
	}

	t.Run("price create fails", func(t *testing.T) {
		d := newProductDeps(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "p1").Return(stored, nil)
		d.catalog.EXPECT().CreatePrice(gomock.Any(), "prod_1", int64(1500), entities.CurrencyUSD).Return("", errors.New("stripe down"))
		d.catalog.EXPECT().SetDefaultPrice(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		d.catalog.EXPECT().DeactivatePrice(gomock.Any(), gomock.Any()).Times(0)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := d.uc.Update(context.Background(), "p1", ProductPatch{Price: int64Ptr(1500)})
		if !errors.Is(err, ErrCatalogSync) {
			t.Fatalf("expected ErrCatalogSync, got %v", err)
		}
	})

	t.Run("default price update fails", func(t *testing.T) {
		d := newProductDeps(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "p1").Return(stored, nil)
		d.catalog.EXPECT().CreatePrice(gomock.Any(), "prod_1", int64(1500), entities.CurrencyUSD).Return("price_new", nil)
		d.catalog.EXPECT().SetDefaultPrice(gomock.Any(), "prod_1", "price_new").Return(errors.New("rate limited"))
		d.catalog.EXPECT().DeactivatePrice(gomock.Any(), gomock.Any()).Times(0)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := d.uc.Update(context.Background(), "p1", ProductPatch{Price: int64Ptr(1500)})
		if !errors.Is(err, ErrCatalogSync) {
			t.Fatalf("expected ErrCatalogSync, got %v", err)
		}
	})
}

func TestProductUseCase_UpdateDeactivationFailureIsNotFatal(t *testing.T) {
	d := newProductDeps(t)
	stored := entities.Product{ID: "p1", Name: "Tee", Price: 1000, Currency: entities.CurrencyUSD, StripeProductID: "prod_1", StripePriceID: "price_old"}
	eur := entities.CurrencyEUR

	d.repo.EXPECT().GetByID(gomock.Any(), "p1").Return(stored, nil)
	d.catalog.EXPECT().CreatePrice(gomock.Any(), "prod_1", int64(1000), entities.CurrencyEUR).Return("price_eur", nil)
	d.catalog.EXPECT().SetDefaultPrice(gomock.Any(), "prod_1", "price_eur").Return(nil)
	d.catalog.EXPECT().DeactivatePrice(gomock.Any(), "price_old").Return(errors.New("already archived"))
	d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Product) (entities.Product, error) { return p, nil })

	got, err := d.uc.Update(context.Background(), "p1", ProductPatch{Currency: &eur})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StripePriceID != "price_eur" {
		t.Fatalf("unexpected price id %q", got.StripePriceID)
	}
}

func TestProductUseCase_UpdateImageAndFields(t *testing.T) {
	stored := entities.Product{ID: "p1", Name: "Tee", Description: "old", Price: 1000, Currency: entities.CurrencyUSD, ImageID: int64Ptr(1), StripeProductID: "prod_1", StripePriceID: "price_1"}

	t.Run("image removed clears external images", func(t *testing.T) {
		d := newProductDeps(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "p1").Return(stored, nil)
		d.catalog.EXPECT().SetProductImages(gomock.Any(), "prod_1", nil, "Tee", "new").Return(nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Product) (entities.Product, error) {
			if p.ImageID != nil {
				t.Fatalf("expected image removed")
			}
			return p, nil
		})

		desc := "new"
		if _, err := d.uc.Update(context.Background(), "p1", ProductPatch{RemoveImage: true, Description: &desc}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("image push failure falls back to field mirror", func(t *testing.T) {
		d := newProductDeps(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "p1").Return(stored, nil)
		d.media.EXPECT().GetByID(gomock.Any(), "2").Return(entities.Media{ID: "2", URL: "/v1/media/file/b.jpg"}, nil)
		d.catalog.EXPECT().SetProductImages(gomock.Any(), "prod_1", []string{"https://cms.example/v1/media/file/b.jpg"}, "Shirt", "old").Return(errors.New("bad url"))
		d.catalog.EXPECT().UpdateProductDetails(gomock.Any(), "prod_1", "Shirt", "old").Return(nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Product) (entities.Product, error) { return p, nil })

		name := "Shirt"
		if _, err := d.uc.Update(context.Background(), "p1", ProductPatch{Name: &name, ImageID: int64Ptr(2)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("field mirror error is logged only", func(t *testing.T) {
		d := newProductDeps(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "p1").Return(stored, nil)
		d.catalog.EXPECT().UpdateProductDetails(gomock.Any(), "prod_1", "Tee 2", "old").Return(errors.New("timeout"))
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Product) (entities.Product, error) { return p, nil })

		name := "Tee 2"
		if _, err := d.uc.Update(context.Background(), "p1", ProductPatch{Name: &name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		d := newProductDeps(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Product{}, nil)
		if _, err := d.uc.Update(context.Background(), "nope", ProductPatch{}); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}

func TestProductUseCase_WithoutCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewProductUseCase(repo, nil, nil)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Product) (entities.Product, error) {
		if p.StripeProductID != "" {
			t.Fatalf("unexpected external id")
		}
		return p, nil
	})
	if _, err := uc.Create(context.Background(), ProductInput{Name: "Poster", Price: 500}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductUseCase_DeleteArchivesExternalProduct(t *testing.T) {
	d := newProductDeps(t)
	d.repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", StripeProductID: "prod_1"}, nil)
	d.catalog.EXPECT().ArchiveProduct(gomock.Any(), "prod_1").Return(errors.New("ignored"))
	d.repo.EXPECT().Delete(gomock.Any(), "p1").Return(nil)

	if err := d.uc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
