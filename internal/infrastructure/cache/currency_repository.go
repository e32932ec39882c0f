package cache

import (
	"context"

	"github.com/damon-houk/rate-enrichment/internal/domain/entity"
	"github.com/damon-houk/rate-enrichment/internal/domain/repository"
)

// CurrencyRepository is a write-through cache in front of another currency repository
type CurrencyRepository struct {
	next  repository.CurrencyRepository
	cache *CurrencyCache
}

// NewCurrencyRepository wraps next with currencyCache
func NewCurrencyRepository(next repository.CurrencyRepository, currencyCache *CurrencyCache) *CurrencyRepository {
	return &CurrencyRepository{next: next, cache: currencyCache}
}

// Store saves the currency and refreshes its cache entry
func (r *CurrencyRepository) Store(ctx context.Context, currency *entity.Currency) error {
	if err := r.next.Store(ctx, currency); err != nil {
		return err
	}

	r.cache.Put(*currency)
	return nil
}

// FindByID serves from the cache, falling back to the wrapped repository
func (r *CurrencyRepository) FindByID(ctx context.Context, id int) (*entity.Currency, error) {
	if c, ok := r.cache.Get(id); ok {
		return &c, nil
	}

	c, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.cache.Put(*c)
	return c, nil
}

// List always reads the wrapped repository
func (r *CurrencyRepository) List(ctx context.Context) ([]entity.Currency, error) {
	return r.next.List(ctx)
}
