package db

import (
	"context"
	"fmt"

	"github.com/damon-houk/rate-enrichment/internal/domain/entity"
	"github.com/damon-houk/rate-enrichment/internal/domain/repository"
)

// Seed stores the given currencies and rates
func Seed(ctx context.Context, currencyRepo repository.CurrencyRepository, rateRepo repository.RateRepository,
	currencies []entity.Currency, rates []entity.Rate) error {
	for i := range currencies {
		if err := currencyRepo.Store(ctx, &currencies[i]); err != nil {
			return fmt.Errorf("failed to seed currencies: %w", err)
		}
	}

	for i := range rates {
		if err := rateRepo.Store(ctx, &rates[i]); err != nil {
			return fmt.Errorf("failed to seed rates: %w", err)
		}
	}

	return nil
}
