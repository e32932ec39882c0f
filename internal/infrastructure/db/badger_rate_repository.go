package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/damon-houk/rate-enrichment/internal/domain/entity"
	"github.com/damon-houk/rate-enrichment/internal/domain/repository"
	"github.com/dgraph-io/badger/v3"
)

// rateRecord is the stored form of a rate. Resolved currencies are not kept.
type rateRecord struct {
	ID              int     `json:"id"`
	BaseCurrencyID  int     `json:"base_currency_id"`
	QuoteCurrencyID int     `json:"quote_currency_id"`
	Value           float64 `json:"value"`
}

func (rec rateRecord) toEntity() entity.Rate {
	return entity.NewRate(rec.ID, rec.BaseCurrencyID, rec.QuoteCurrencyID, rec.Value)
}

// BadgerRateRepository implements the rate repository interface using BadgerDB
type BadgerRateRepository struct {
	db *badger.DB
}

// NewBadgerRateRepository creates a new BadgerDB rate repository
func NewBadgerRateRepository(db *badger.DB) *BadgerRateRepository {
	return &BadgerRateRepository{db: db}
}

// Store saves a rate
func (r *BadgerRateRepository) Store(ctx context.Context, rate *entity.Rate) error {
	rec := rateRecord{
		ID:              rate.ID,
		BaseCurrencyID:  rate.BaseCurrencyID,
		QuoteCurrencyID: rate.QuoteCurrencyID,
		Value:           rate.Value,
	}

	if err := putJSON(r.db, recordKey(ratePrefix, rate.ID), rec); err != nil {
		return fmt.Errorf("failed to store rate %d: %w", rate.ID, err)
	}
	return nil
}

// FindByID retrieves a rate by its identifier
func (r *BadgerRateRepository) FindByID(ctx context.Context, id int) (*entity.Rate, error) {
	var rec rateRecord

	err := getJSON(r.db, recordKey(ratePrefix, id), &rec)
	if err == badger.ErrKeyNotFound {
		return nil, fmt.Errorf("rate %d: %w", id, repository.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rate %d: %w", id, err)
	}

	rate := rec.toEntity()
	return &rate, nil
}

// List returns all rates ordered by ID
func (r *BadgerRateRepository) List(ctx context.Context) ([]entity.Rate, error) {
	rates := []entity.Rate{}

	err := scanPrefix(r.db, ratePrefix, func(val []byte) error {
		var rec rateRecord
		if err := json.Unmarshal(val, &rec); err != nil {
			return err
		}
		rates = append(rates, rec.toEntity())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}

	return rates, nil
}
