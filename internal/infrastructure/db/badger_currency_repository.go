package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/damon-houk/rate-enrichment/internal/domain/entity"
	"github.com/damon-houk/rate-enrichment/internal/domain/repository"
	"github.com/dgraph-io/badger/v3"
)

// BadgerCurrencyRepository implements the currency repository interface using BadgerDB
type BadgerCurrencyRepository struct {
	db *badger.DB
}

// NewBadgerCurrencyRepository creates a new BadgerDB currency repository
func NewBadgerCurrencyRepository(db *badger.DB) *BadgerCurrencyRepository {
	return &BadgerCurrencyRepository{db: db}
}

// Store saves a currency
func (r *BadgerCurrencyRepository) Store(ctx context.Context, currency *entity.Currency) error {
	if err := putJSON(r.db, recordKey(currencyPrefix, currency.ID), currency); err != nil {
		return fmt.Errorf("failed to store currency %d: %w", currency.ID, err)
	}
	return nil
}

// FindByID retrieves a currency by its identifier
func (r *BadgerCurrencyRepository) FindByID(ctx context.Context, id int) (*entity.Currency, error) {
	var currency entity.Currency

	err := getJSON(r.db, recordKey(currencyPrefix, id), &currency)
	if err == badger.ErrKeyNotFound {
		return nil, fmt.Errorf("currency %d: %w", id, repository.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to retrieve currency %d: %w", id, err)
	}

	return &currency, nil
}

// List returns all currencies ordered by ID
func (r *BadgerCurrencyRepository) List(ctx context.Context) ([]entity.Currency, error) {
	currencies := []entity.Currency{}

	err := scanPrefix(r.db, currencyPrefix, func(val []byte) error {
		var c entity.Currency
		if err := json.Unmarshal(val, &c); err != nil {
			return err
		}
		currencies = append(currencies, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	return currencies, nil
}
