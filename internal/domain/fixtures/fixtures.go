// Package fixtures holds the sample currencies and rates.
package fixtures

import "github.com/damon-houk/rate-enrichment/internal/domain/entity"

// Currencies returns the sample currency list
func Currencies() []entity.Currency {
	return []entity.Currency{
		entity.NewCurrency(1, "Euro", "EUR"),
		entity.NewCurrency(2, "Dollar US", "USD"),
		entity.NewCurrency(3, "Livre Sterling", "GBP"),
		entity.NewCurrency(4, "Franc Suisse", "CHF"),
	}
}

// Rates returns the sample rate list
func Rates() []entity.Rate {
	return []entity.Rate{
		entity.NewRate(1, 1, 2, 1.10),
		entity.NewRate(2, 1, 3, 0.86),
		entity.NewRate(3, 1, 4, 1.10),
	}
}
