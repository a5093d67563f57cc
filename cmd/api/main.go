package main

import (
	"fmt"
	"os"

	_ "festival_backend/docs"
	"festival_backend/internal/adapter/http/routes"
	"festival_backend/internal/infrastructure/config"
	"festival_backend/internal/infrastructure/logger"

	"go.uber.org/zap"
)

// @title           Festival Backend API
// @version         1.0
// @description     Instagram ingestion, shop catalog sync and checkout for the festival site.

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	if err := routes.Run(cfg, log); err != nil {
		log.Fatal("failed to startup the application", zap.Error(err))
	}
}
