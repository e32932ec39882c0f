// Package config loads application settings from the environment
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store names the repository backend
type Store string

const (
	// StoreMemory keeps data in process memory
	StoreMemory Store = "memory"
	// StoreBadger keeps data in a BadgerDB directory
	StoreBadger Store = "badger"
)

// Config holds all configuration for the application
type Config struct {
	LogLevel         string
	Store            Store
	DataDir          string
	HTTPAddr         string
	CurrencyCacheTTL time.Duration
	CacheCleanup     time.Duration
	EnrichStrategy   string
}

// Load loads configuration from environment variables, reading a .env file first if one exists
func Load() (*Config, error) {
	_ = godotenv.Load()

	ttl, err := strconv.Atoi(getEnv("CURRENCY_CACHE_TTL_SECONDS", "86400"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid CURRENCY_CACHE_TTL_SECONDS: %q", os.Getenv("CURRENCY_CACHE_TTL_SECONDS"))
	}

	cleanup, err := strconv.Atoi(getEnv("CACHE_CLEANUP_INTERVAL_SECONDS", "600"))
	if err != nil || cleanup <= 0 {
		return nil, fmt.Errorf("invalid CACHE_CLEANUP_INTERVAL_SECONDS: %q", os.Getenv("CACHE_CLEANUP_INTERVAL_SECONDS"))
	}

	store := Store(strings.ToLower(getEnv("STORE", string(StoreMemory))))
	if store != StoreMemory && store != StoreBadger {
		return nil, fmt.Errorf("invalid STORE: %q (expected %q or %q)", store, StoreMemory, StoreBadger)
	}

	return &Config{
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Store:            store,
		DataDir:          getEnv("DATA_DIR", "./data"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		CurrencyCacheTTL: time.Duration(ttl) * time.Second,
		CacheCleanup:     time.Duration(cleanup) * time.Second,
		EnrichStrategy:   getEnv("ENRICH_STRATEGY", "combined"),
	}, nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
