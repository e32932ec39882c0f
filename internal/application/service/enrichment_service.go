// Package service implements the rate enrichment use cases
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/damon-houk/rate-enrichment/internal/domain/entity"
	"github.com/damon-houk/rate-enrichment/internal/domain/enrich"
	"github.com/damon-houk/rate-enrichment/internal/domain/repository"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/logger"
	"github.com/damon-houk/rate-enrichment/internal/infrastructure/middleware"
)

// ErrUnresolvedRate is returned when a single rate references a missing currency
var ErrUnresolvedRate = errors.New("rate references an unknown currency")

// EnrichmentService resolves stored rates against stored currencies
type EnrichmentService struct {
	currencyRepo repository.CurrencyRepository
	rateRepo     repository.RateRepository
	logger       logger.Logger
}

// NewEnrichmentService creates a new enrichment service. Single-rate lookups
// go through currencyRepo.FindByID, so a caching repository can be passed in.
func NewEnrichmentService(currencyRepo repository.CurrencyRepository, rateRepo repository.RateRepository,
	log logger.Logger) *EnrichmentService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &EnrichmentService{
		currencyRepo: currencyRepo,
		rateRepo:     rateRepo,
		logger:       log,
	}
}

// ListCurrencies returns all stored currencies
func (s *EnrichmentService) ListCurrencies(ctx context.Context) ([]entity.Currency, error) {
	currencies, err := s.currencyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}

// ListEnrichedRates returns every stored rate whose base and quote currencies
// both exist, resolved with the given strategy. Other rates are left out.
func (s *EnrichmentService) ListEnrichedRates(ctx context.Context, strategy enrich.Strategy) ([]entity.Rate, error) {
	requestID := middleware.GetRequestID(ctx)

	rates, err := s.rateRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load rates", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("failed to load rates: %w", err)
	}

	currencies, err := s.currencyRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load currencies", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("failed to load currencies: %w", err)
	}

	enriched := enrich.Enricher(strategy)(rates, currencies)

	fields := map[string]interface{}{
		"request_id": requestID,
		"strategy":   string(strategy),
		"rates":      len(rates),
		"currencies": len(currencies),
		"enriched":   len(enriched),
	}
	if dropped := len(rates) - len(enriched); dropped > 0 {
		fields["dropped"] = dropped
	}
	s.logger.Debug("Rates enriched", fields)

	return enriched, nil
}

// GetEnrichedRate loads a single rate and resolves its currencies
func (s *EnrichmentService) GetEnrichedRate(ctx context.Context, id int) (*entity.Rate, error) {
	requestID := middleware.GetRequestID(ctx)

	rate, err := s.rateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rate: %w", err)
	}

	base, err := s.resolveCurrency(ctx, rate.BaseCurrencyID)
	if err != nil {
		return nil, s.unresolved(requestID, rate, "base", rate.BaseCurrencyID, err)
	}

	quote, err := s.resolveCurrency(ctx, rate.QuoteCurrencyID)
	if err != nil {
		return nil, s.unresolved(requestID, rate, "quote", rate.QuoteCurrencyID, err)
	}

	enriched := rate.Unresolved().WithBaseCurrency(base).WithQuoteCurrency(quote)
	return &enriched, nil
}

func (s *EnrichmentService) resolveCurrency(ctx context.Context, id int) (entity.Currency, error) {
	c, err := s.currencyRepo.FindByID(ctx, id)
	if err != nil {
		return entity.Currency{}, err
	}
	return *c, nil
}

func (s *EnrichmentService) unresolved(requestID string, rate *entity.Rate, side string, currencyID int, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		s.logger.Warn("Rate references unknown currency", map[string]interface{}{
			"request_id":  requestID,
			"rate_id":     rate.ID,
			"side":        side,
			"currency_id": currencyID,
		})
		return fmt.Errorf("%w: rate %d %s currency %d", ErrUnresolvedRate, rate.ID, side, currencyID)
	}

	s.logger.Error("Failed to resolve currency", map[string]interface{}{
		"request_id":  requestID,
		"rate_id":     rate.ID,
		"currency_id": currencyID,
		"error":       err.Error(),
	})
	return fmt.Errorf("failed to resolve %s currency: %w", side, err)
}
