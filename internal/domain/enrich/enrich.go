// Package enrich resolves the currency references carried by rates.
package enrich

import (
	"errors"
	"fmt"
	"strings"

	"github.com/damon-houk/rate-enrichment/internal/domain/entity"
	"github.com/damon-houk/rate-enrichment/internal/domain/join"
)

// ErrUnknownStrategy is returned when a strategy name cannot be parsed
var ErrUnknownStrategy = errors.New("unknown enrichment strategy")

// Strategy selects how the two currency joins are composed
type Strategy string

const (
	// StrategyCombined resolves both currencies in a single pass
	StrategyCombined Strategy = "combined"
	// StrategySequential joins on the base currency, then on the quote currency
	StrategySequential Strategy = "sequential"
)

// Func enriches rates against a currency collection
type Func func(rates []entity.Rate, currencies []entity.Currency) []entity.Rate

// ParseStrategy parses a strategy name. An empty name selects StrategyCombined.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case "", StrategyCombined:
		return StrategyCombined, nil
	case StrategySequential:
		return StrategySequential, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Enricher returns the enrichment function for s
func Enricher(s Strategy) Func {
	if s == StrategySequential {
		return EnrichSequential
	}
	return Enrich
}

func baseID(r entity.Rate) int { return r.BaseCurrencyID }
func quoteID(r entity.Rate) int { return r.QuoteCurrencyID }
func currencyID(c entity.Currency) int { return c.ID }

// Enrich resolves both currencies of every rate using one currency lookup.
// Rates whose base or quote currency is missing are dropped.
func Enrich(rates []entity.Rate, currencies []entity.Currency) []entity.Rate {
	lookup := join.ToLookup(currencies, currencyID)

	type withBase struct {
		rate entity.Rate
		base entity.Currency
	}

	stage := join.InnerLookup(rates, lookup, baseID, func(r entity.Rate, c entity.Currency) withBase {
		return withBase{rate: r, base: c}
	})

	return join.InnerLookup(stage, lookup,
		func(w withBase) int { return w.rate.QuoteCurrencyID },
		func(w withBase, c entity.Currency) entity.Rate {
			return w.rate.Unresolved().WithBaseCurrency(w.base).WithQuoteCurrency(c)
		})
}

// EnrichSequential joins rates to currencies on the base currency, then
// joins that result to currencies on the quote currency. It produces the
// same output as Enrich.
func EnrichSequential(rates []entity.Rate, currencies []entity.Currency) []entity.Rate {
	withBase := join.Inner(rates, currencies, baseID, currencyID,
		func(r entity.Rate, c entity.Currency) entity.Rate {
			return r.Unresolved().WithBaseCurrency(c)
		})

	return join.Inner(withBase, currencies, quoteID, currencyID,
		func(r entity.Rate, c entity.Currency) entity.Rate {
			return r.WithQuoteCurrency(c)
		})
}
