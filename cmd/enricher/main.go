package main

import (
	"context"
	"os"

	"github.com/damon-houk/rate-enrichment/internal/app"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/config"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/logger"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", map[string]interface{}{"error": err.Error()})
	}

	// stdout carries the report, logs go to stderr
	log := logger.NewJSONLogger(os.Stderr, logger.ParseLevel(cfg.LogLevel))
	logger.SetDefaultLogger(log)

	ctx := middleware.WithRequestID(context.Background(), "")

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize application", map[string]interface{}{"error": err.Error()})
	}

	err = application.PrintReport(ctx, os.Stdout)

	if closeErr := application.Close(); closeErr != nil {
		log.Error("Error closing storage", map[string]interface{}{"error": closeErr.Error()})
	}

	if err != nil {
		log.Fatal("Failed to print report", map[string]interface{}{"error": err.Error()})
	}
}
