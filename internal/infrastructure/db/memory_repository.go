package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/damon-houk/rate-enrichment/internal/domain/entity"
	"github.com/damon-houk/rate-enrichment/internal/domain/repository"
)

// MemoryCurrencyRepository keeps currencies in insertion order
type MemoryCurrencyRepository struct {
	mu    sync.RWMutex
	items []entity.Currency
	index map[int]int
}

// NewMemoryCurrencyRepository creates an empty in-memory currency repository
func NewMemoryCurrencyRepository() *MemoryCurrencyRepository {
	return &MemoryCurrencyRepository{index: make(map[int]int)}
}

// Store saves a currency. Replacing an existing ID keeps its position.
func (r *MemoryCurrencyRepository) Store(ctx context.Context, currency *entity.Currency) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pos, ok := r.index[currency.ID]; ok {
		r.items[pos] = *currency
		return nil
	}

	r.index[currency.ID] = len(r.items)
	r.items = append(r.items, *currency)
	return nil
}

// FindByID retrieves a currency by its identifier
func (r *MemoryCurrencyRepository) FindByID(ctx context.Context, id int) (*entity.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("currency %d: %w", id, repository.ErrNotFound)
	}

	c := r.items[pos]
	return &c, nil
}

// List returns a copy of all currencies in insertion order
func (r *MemoryCurrencyRepository) List(ctx context.Context) ([]entity.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]entity.Currency{}, r.items...), nil
}

// MemoryRateRepository keeps rates in insertion order
type MemoryRateRepository struct {
	mu    sync.RWMutex
	items []entity.Rate
	index map[int]int
}

// NewMemoryRateRepository creates an empty in-memory rate repository
func NewMemoryRateRepository() *MemoryRateRepository {
	return &MemoryRateRepository{index: make(map[int]int)}
}

// Store saves a rate without its resolved currencies
func (r *MemoryRateRepository) Store(ctx context.Context, rate *entity.Rate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := rate.Unresolved()
	if pos, ok := r.index[rate.ID]; ok {
		r.items[pos] = stored
		return nil
	}

	r.index[rate.ID] = len(r.items)
	r.items = append(r.items, stored)
	return nil
}

// FindByID retrieves a rate by its identifier
func (r *MemoryRateRepository) FindByID(ctx context.Context, id int) (*entity.Rate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("rate %d: %w", id, repository.ErrNotFound)
	}

	rate := r.items[pos]
	return &rate, nil
}

// List returns a copy of all rates in insertion order
func (r *MemoryRateRepository) List(ctx context.Context) ([]entity.Rate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]entity.Rate{}, r.items...), nil
}
