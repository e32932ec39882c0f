// Package repository defines storage interfaces for currencies and rates
package repository

import (
	"context"
	"errors"

	"github.com/damon-houk/rate-enrichment/internal/domain/entity"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("not found")

// CurrencyRepository defines the interface for currency storage
type CurrencyRepository interface {
	// Store saves a currency, replacing any currency with the same ID
	Store(ctx context.Context, currency *entity.Currency) error

	// FindByID retrieves a currency by its identifier
	FindByID(ctx context.Context, id int) (*entity.Currency, error)

	// List returns every stored currency
	List(ctx context.Context) ([]entity.Currency, error)
}

// RateRepository defines the interface for rate storage
type RateRepository interface {
	// Store saves a rate, replacing any rate with the same ID.
	// Resolved currencies are not stored.
	Store(ctx context.Context, rate *entity.Rate) error

	// FindByID retrieves an unresolved rate by its identifier
	FindByID(ctx context.Context, id int) (*entity.Rate, error)

	// List returns every stored rate, unresolved
	List(ctx context.Context) ([]entity.Rate, error)
}
