package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/damon-houk/rate-enrichment/internal/domain/enrich"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/config"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expectedReport = `Qty : 3
1 - [Base Currency : 1 - Euro : EUR] - [Quote Currency : 2 - Dollar US : USD] | 1.1
2 - [Base Currency : 1 - Euro : EUR] - [Quote Currency : 3 - Livre Sterling : GBP] | 0.86
3 - [Base Currency : 1 - Euro : EUR] - [Quote Currency : 4 - Franc Suisse : CHF] | 1.1
****************************************************************************************************
1 - [Base Currency : 1 - Euro : EUR] - [Quote Currency : 2 - Dollar US : USD] | 1.1
2 - [Base Currency : 1 - Euro : EUR] - [Quote Currency : 3 - Livre Sterling : GBP] | 0.86
3 - [Base Currency : 1 - Euro : EUR] - [Quote Currency : 4 - Franc Suisse : CHF] | 1.1
That's all folk!
`

func testConfig(store config.Store, dir string) *config.Config {
	return &config.Config{
		LogLevel:         "info",
		Store:            store,
		DataDir:          dir,
		CurrencyCacheTTL: time.Hour,
		EnrichStrategy:   "combined",
	}
}

func TestPrintReport(t *testing.T) {
	ctx := context.Background()
	log := logger.NewJSONLogger(io.Discard, logger.InfoLevel)

	t.Run("Memory store", func(t *testing.T) {
		a, err := New(ctx, testConfig(config.StoreMemory, ""), log)
		require.NoError(t, err)
		defer a.Close()

		var buf bytes.Buffer
		require.NoError(t, a.PrintReport(ctx, &buf))
		assert.Equal(t, expectedReport, buf.String())
	})

	t.Run("Badger store", func(t *testing.T) {
		dir, err := os.MkdirTemp("", "badger-app-test")
		require.NoError(t, err)
		defer os.RemoveAll(dir)

		a, err := New(ctx, testConfig(config.StoreBadger, dir), log)
		require.NoError(t, err)
		defer a.Close()

		var buf bytes.Buffer
		require.NoError(t, a.PrintReport(ctx, &buf))
		assert.Equal(t, expectedReport, buf.String())
	})
}

func TestNew(t *testing.T) {
	ctx := context.Background()
	log := logger.NewJSONLogger(io.Discard, logger.InfoLevel)

	t.Run("Strategy from config", func(t *testing.T) {
		cfg := testConfig(config.StoreMemory, "")
		cfg.EnrichStrategy = "sequential"

		a, err := New(ctx, cfg, log)
		require.NoError(t, err)
		assert.Equal(t, enrich.StrategySequential, a.Strategy)
	})

	t.Run("Unknown strategy", func(t *testing.T) {
		cfg := testConfig(config.StoreMemory, "")
		cfg.EnrichStrategy = "outer"

		_, err := New(ctx, cfg, log)
		assert.ErrorIs(t, err, enrich.ErrUnknownStrategy)
	})
}

func TestReportSeparatorWidth(t *testing.T) {
	lines := strings.Split(expectedReport, "\n")
	assert.Equal(t, strings.Repeat("*", 100), lines[4])
}

func TestRunCacheCleanupStops(t *testing.T) {
	log := logger.NewJSONLogger(io.Discard, logger.DebugLevel)
	a, err := New(context.Background(), testConfig(config.StoreMemory, ""), log)
	require.NoError(t, err)
	defer a.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.RunCacheCleanup(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cache cleanup did not stop after cancel")
	}
}
