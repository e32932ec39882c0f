// Package app wires configuration, storage and services together
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/damon-houk/rate-enrichment/internal/application/service"
	"github.com/damon-houk/rate-enrichment/internal/domain/enrich"
	"github.com/damon-houk/rate-enrichment/internal/domain/fixtures"
	"github.com/damon-houk/rate-enrichment/internal/domain/repository"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/cache"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/config"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/db"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/logger"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/report"
)

// App holds the wired application components
type App struct {
	Service  *service.EnrichmentService
	Strategy enrich.Strategy

	currencyCache *cache.CurrencyCache
	logger        logger.Logger
	close         func() error
}

// New builds the repositories selected by cfg, seeds them with the sample
// data and creates the enrichment service.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	strategy, err := enrich.ParseStrategy(cfg.EnrichStrategy)
	if err != nil {
		return nil, err
	}

	var (
		currencyRepo repository.CurrencyRepository
		rateRepo     repository.RateRepository
		closeFn      = func() error { return nil }
	)

	switch cfg.Store {
	case config.StoreBadger:
		badgerDB, err := db.OpenBadger(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		currencyRepo = db.NewBadgerCurrencyRepository(badgerDB)
		rateRepo = db.NewBadgerRateRepository(badgerDB)
		closeFn = badgerDB.Close
	default:
		currencyRepo = db.NewMemoryCurrencyRepository()
		rateRepo = db.NewMemoryRateRepository()
	}

	currencyCache := cache.NewCurrencyCache(cfg.CurrencyCacheTTL)
	currencyRepo = cache.NewCurrencyRepository(currencyRepo, currencyCache)

	if err := db.Seed(ctx, currencyRepo, rateRepo, fixtures.Currencies(), fixtures.Rates()); err != nil {
		closeFn()
		return nil, err
	}

	log.Info("Storage ready", map[string]interface{}{
		"store":    string(cfg.Store),
		"strategy": string(strategy),
	})

	return &App{
		Service:       service.NewEnrichmentService(currencyRepo, rateRepo, log),
		Strategy:      strategy,
		currencyCache: currencyCache,
		logger:        log,
		close:         closeFn,
	}, nil
}

// RunCacheCleanup evicts expired currencies every interval until ctx is done
func (a *App) RunCacheCleanup(ctx context.Context, interval time.Duration) {
	a.currencyCache.RunCleanup(ctx, interval, func(removed int) {
		if removed > 0 {
			a.logger.Debug("Expired currencies evicted", map[string]interface{}{
				"removed":   removed,
				"remaining": a.currencyCache.Size(),
			})
		}
	})
}

// Close releases the storage
func (a *App) Close() error {
	return a.close()
}

// PrintReport writes the enriched rates twice, once per join strategy,
// separated by a line of asterisks.
func (a *App) PrintReport(ctx context.Context, out io.Writer) error {
	w := report.NewWriter(out)

	combined, err := a.Service.ListEnrichedRates(ctx, enrich.StrategyCombined)
	if err != nil {
		return err
	}
	w.WriteListing(combined)

	w.WriteSeparator()

	sequential, err := a.Service.ListEnrichedRates(ctx, enrich.StrategySequential)
	if err != nil {
		return err
	}
	w.WriteRates(sequential)

	w.WriteFooter()

	if err := w.Err(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
