package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "STORE", "DATA_DIR", "HTTP_ADDR", "CURRENCY_CACHE_TTL_SECONDS", "CACHE_CLEANUP_INTERVAL_SECONDS", "ENRICH_STRATEGY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 24*time.Hour, cfg.CurrencyCacheTTL)
	assert.Equal(t, 10*time.Minute, cfg.CacheCleanup)
	assert.Equal(t, "combined", cfg.EnrichStrategy)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORE", "Badger")
	t.Setenv("DATA_DIR", "/tmp/rates")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("CURRENCY_CACHE_TTL_SECONDS", "30")
	t.Setenv("CACHE_CLEANUP_INTERVAL_SECONDS", "5")
	t.Setenv("ENRICH_STRATEGY", "sequential")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, StoreBadger, cfg.Store)
	assert.Equal(t, "/tmp/rates", cfg.DataDir)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Second, cfg.CurrencyCacheTTL)
	assert.Equal(t, 5*time.Second, cfg.CacheCleanup)
	assert.Equal(t, "sequential", cfg.EnrichStrategy)
}

func TestLoadInvalid(t *testing.T) {
	t.Run("Bad TTL", func(t *testing.T) {
		t.Setenv("STORE", "")
		t.Setenv("CURRENCY_CACHE_TTL_SECONDS", "soon")

		_, err := Load()
		assert.ErrorContains(t, err, "CURRENCY_CACHE_TTL_SECONDS")
	})

	t.Run("Bad cleanup interval", func(t *testing.T) {
		t.Setenv("STORE", "")
		t.Setenv("CURRENCY_CACHE_TTL_SECONDS", "")
		t.Setenv("CACHE_CLEANUP_INTERVAL_SECONDS", "-1")

		_, err := Load()
		assert.ErrorContains(t, err, "CACHE_CLEANUP_INTERVAL_SECONDS")
	})

	t.Run("Bad store", func(t *testing.T) {
		t.Setenv("CURRENCY_CACHE_TTL_SECONDS", "")
		t.Setenv("CACHE_CLEANUP_INTERVAL_SECONDS", "")
		t.Setenv("STORE", "postgres")

		_, err := Load()
		assert.ErrorContains(t, err, "STORE")
	})
}
