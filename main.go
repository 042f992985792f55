package main

import (
	"context"
	"log"

	"poap-drops/internal/bootstrap"
	"poap-drops/internal/config"
	"poap-drops/internal/observability"
	"poap-drops/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := observability.NewLoggerWithOptions(observability.LoggerOptions{
		FilePath:   cfg.Logging.FilePath,
		MaxSizeMB:  100,
		MaxBackups: 5,
		MaxAgeDays: 14,
		Debug:      cfg.Logging.Debug,
	})
	ctx := context.Background()

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to initialize dependencies", err)
		log.Fatalf("failed to initialize dependencies: %v", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}
}
