package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/damon-houk/rate-enrichment/internal/app"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/config"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/handler"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/logger"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/middleware"
	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", map[string]interface{}{"error": err.Error()})
	}

	log := logger.NewJSONLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel))
	logger.SetDefaultLogger(log)

	log.Info("Starting rate enrichment server", nil)

	application, err := app.New(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize application", map[string]interface{}{"error": err.Error()})
	}

	defer func() {
		if err := application.Close(); err != nil {
			log.Error("Error closing storage", map[string]interface{}{"error": err.Error()})
		}
	}()

	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	cleanupDone := make(chan struct{})
	go func() {
		defer close(cleanupDone)
		application.RunCacheCleanup(cleanupCtx, cfg.CacheCleanup)
	}()

	// Setup router
	router := mux.NewRouter()
	router.Use(middleware.RequestIDMiddleware, middleware.LoggingMiddleware(log))
	handler.NewRateHandler(application.Service, application.Strategy, log).RegisterRoutes(router)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Server listening", map[string]interface{}{"addr": cfg.HTTPAddr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server stopped unexpectedly", map[string]interface{}{"error": err.Error()})
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed", map[string]interface{}{"error": err.Error()})
	}

	stopCleanup()
	<-cleanupDone
	log.Info("Server stopped", nil)
}
