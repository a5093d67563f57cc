package routes

import (
	"context"
	"fmt"

	"festival_backend/internal/adapter/http/handlers"
	"festival_backend/internal/adapter/http/middleware"
	"festival_backend/internal/adapter/persistence/repository"
	"festival_backend/internal/infrastructure/auth"
	"festival_backend/internal/infrastructure/config"
	"festival_backend/internal/infrastructure/database"
	"festival_backend/internal/infrastructure/httpclient"
	"festival_backend/internal/infrastructure/payments"
	"festival_backend/internal/infrastructure/scraping"
	"festival_backend/internal/infrastructure/storage"
	"festival_backend/internal/usecase"
	"festival_backend/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers is everything getRoutes mounts.
type Handlers struct {
	Instagram    *handlers.InstagramHandler
	Media        *handlers.MediaHandler
	Products     *handlers.ProductHandler
	Orders       *handlers.OrderHandler
	Webhooks     *handlers.WebhookHandler
	Artists      *handlers.ArtistHandler
	News         *handlers.NewsHandler
	FAQ          *handlers.FAQHandler
	Authenticate gin.HandlerFunc
	RequireAuth  gin.HandlerFunc
	RequireAdmin gin.HandlerFunc
}

func buildHandlers(ctx context.Context, cfg *config.Config, log *zap.Logger) (Handlers, error) {
	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return Handlers{}, err
	}

	ddb := database.ConnectDynamoDB(awsCfg, cfg.DynamoDB)
	if cfg.DynamoDB.AutoCreateTables {
		if err := database.EnsureTables(ctx, ddb, database.Specs(cfg.DynamoDB.Tables), log); err != nil {
			return Handlers{}, fmt.Errorf("ensure dynamodb tables: %w", err)
		}
	}

	objects, err := storage.NewS3ObjectStorage(storage.NewS3Client(awsCfg, cfg.Storage), cfg.Storage.Bucket, log)
	if err != nil {
		return Handlers{}, err
	}
	if cfg.Storage.AutoCreateBucket {
		if err := objects.EnsureBucket(ctx); err != nil {
			return Handlers{}, fmt.Errorf("ensure s3 bucket: %w", err)
		}
	}

	tables := cfg.DynamoDB.Tables
	fetchLogRepo := repository.NewFetchLogDynamoRepository(ddb, tables.FetchLogs)
	fetchClaimRepo := repository.NewFetchClaimDynamoRepository(ddb, tables.FetchClaims)
	postRepo := repository.NewImportedPostDynamoRepository(ddb, tables.InstagramPosts)
	mediaRepo := repository.NewMediaDynamoRepository(ddb, tables.Media, tables.Counters)
	productRepo := repository.NewProductDynamoRepository(ddb, tables.Products)
	orderRepo := repository.NewOrderDynamoRepository(ddb, tables.Orders)
	artistRepo := repository.NewArtistDynamoRepository(ddb, tables.Artists)
	newsRepo := repository.NewNewsArticleDynamoRepository(ddb, tables.NewsArticles)
	faqRepo := repository.NewFAQItemDynamoRepository(ddb, tables.FAQItems)

	ledger := usecase.NewFetchLedgerUseCase(fetchLogRepo, fetchClaimRepo, cfg.Instagram.FetchClaimStaleAfter, log)
	importer := usecase.NewAssetImporter(httpclient.NewDownloader(cfg.Storage.DownloadTimeout), objects, mediaRepo, log)
	scraper := scraping.NewClient(cfg.Scrapfly, cfg.Instagram.AppID, log)
	instagramSync := usecase.NewInstagramSyncUseCase(ledger, importer, scraper, postRepo, cfg.Instagram.DefaultUsername, log)

	gw := buildPaymentGateways(cfg, log)

	productSync := usecase.NewProductSyncPipeline(gw.catalog, mediaRepo, cfg.App.ServerURL, log)
	productUseCase := usecase.NewProductUseCase(productRepo, productSync, log)
	orderUseCase := usecase.NewOrderUseCase(productRepo, orderRepo, log)
	checkoutUseCase := usecase.NewCheckoutUseCase(productRepo, orderRepo, gw.checkout, cfg.App.FrontendURL, log)
	fulfillment := usecase.NewOrderFulfillmentUseCase(orderRepo, gw.verifier, gw.lookup, log)
	artistUseCase := usecase.NewArtistUseCase(artistRepo, mediaRepo, log)
	newsUseCase := usecase.NewNewsUseCase(newsRepo, mediaRepo, log)
	faqUseCase := usecase.NewFAQUseCase(faqRepo, log)

	jwtService := auth.NewJWTService(cfg.JWT)
	if cfg.JWT.Secret == "" {
		log.Warn("JWT_SECRET is not set; authenticated endpoints will reject every request")
	}

	return Handlers{
		Instagram:    handlers.NewInstagramHandler(instagramSync),
		Media:        handlers.NewMediaHandler(importer),
		Products:     handlers.NewProductHandler(productUseCase),
		Orders:       handlers.NewOrderHandler(orderUseCase, checkoutUseCase),
		Webhooks:     handlers.NewWebhookHandler(fulfillment),
		Artists:      handlers.NewArtistHandler(artistUseCase),
		News:         handlers.NewNewsHandler(newsUseCase, cfg.JWT.AdminRole),
		FAQ:          handlers.NewFAQHandler(faqUseCase),
		Authenticate: middleware.Authenticate(jwtService, log),
		RequireAuth:  middleware.RequireAuth(jwtService, log),
		RequireAdmin: middleware.RequireRole(cfg.JWT.AdminRole, log),
	}, nil
}

type paymentGateways struct {
	catalog  interfaces.ICatalogGateway
	checkout interfaces.ICheckoutGateway
	verifier interfaces.IWebhookVerifier
	lookup   interfaces.IPaymentLookup
}

// buildPaymentGateways leaves a port nil when its provider is not configured;
// the use cases report that per request instead of failing startup.
func buildPaymentGateways(cfg *config.Config, log *zap.Logger) paymentGateways {
	var gw paymentGateways

	if cfg.StripeEnabled() {
		stripeGateway, err := payments.NewStripeGateway(cfg.Stripe, nil, log)
		if err != nil {
			log.Warn("stripe gateway not configured", zap.Error(err))
		} else {
			gw.catalog = stripeGateway
			gw.verifier = stripeGateway
			if cfg.Payments.CheckoutProvider == config.CheckoutProviderStripe {
				gw.checkout = stripeGateway
			}
		}
	} else {
		log.Warn("STRIPE_SECRET_KEY is not set; product catalog sync is disabled")
	}

	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago, cfg.Payments.Mock, log)
	if err != nil {
		log.Info("mercado pago gateway not configured", zap.Error(err))
		return gw
	}
	gw.lookup = mpGateway
	if cfg.Payments.CheckoutProvider == config.CheckoutProviderMercadoPago {
		gw.checkout = mpGateway
	}
	return gw
}
