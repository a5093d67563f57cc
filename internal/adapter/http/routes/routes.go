package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "festival_backend/docs"
	"festival_backend/internal/adapter/http/middleware"
	"festival_backend/internal/infrastructure/config"
	"festival_backend/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

const shutdownTimeout = 10 * time.Second

// Run wires every dependency from cfg and serves until SIGINT or SIGTERM.
func Run(cfg *config.Config, log *zap.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	setMiddlewares(cfg, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h, err := buildHandlers(ctx, cfg, log)
	if err != nil {
		return err
	}
	getRoutes(router, h)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// getRoutes mounts the storefront endpoints at the root, where the existing
// frontend calls them, and again under /v1 next to the admin API.
func getRoutes(r *gin.Engine, h Handlers) {
	r.Use(h.Authenticate)

	addStorefrontRoutes(&r.RouterGroup, h)

	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, h)
	addInstagramRoutes(v1, h.Instagram, h.Media)
	addCommerceRoutes(v1, h.Products, h.Orders, h.RequireAuth, h.RequireAdmin)
	addContentRoutes(v1, h.Artists, h.News, h.FAQ, h.RequireAuth, h.RequireAdmin)
	addWebhookRoutes(v1, h.Webhooks)
}

func setMiddlewares(cfg *config.Config, log *zap.Logger) {
	router.Use(logger.GinMiddleware(log))
	router.Use(logger.Recovery(log))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.App.AllowedOrigins())))
}
