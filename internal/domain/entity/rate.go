package entity

import (
	"fmt"
	"strconv"
)

// Rate represents an exchange rate between a base and a quote currency.
// BaseCurrency and QuoteCurrency stay unset until the rate is enriched.
type Rate struct {
	ID              int              `json:"id"`
	BaseCurrencyID  int              `json:"base_currency_id"`
	QuoteCurrencyID int              `json:"quote_currency_id"`
	BaseCurrency    OptionalCurrency `json:"base_currency"`
	QuoteCurrency   OptionalCurrency `json:"quote_currency"`
	Value           float64          `json:"value"`
}

// NewRate creates an unresolved rate
func NewRate(id, baseCurrencyID, quoteCurrencyID int, value float64) Rate {
	return Rate{
		ID:              id,
		BaseCurrencyID:  baseCurrencyID,
		QuoteCurrencyID: quoteCurrencyID,
		Value:           value,
	}
}

// WithBaseCurrency returns a copy of the rate with the base currency resolved
func (r Rate) WithBaseCurrency(c Currency) Rate {
	r.BaseCurrency = Some(c)
	return r
}

// WithQuoteCurrency returns a copy of the rate with the quote currency resolved
func (r Rate) WithQuoteCurrency(c Currency) Rate {
	r.QuoteCurrency = Some(c)
	return r
}

// Unresolved returns a copy of the rate with both currencies cleared
func (r Rate) Unresolved() Rate {
	return NewRate(r.ID, r.BaseCurrencyID, r.QuoteCurrencyID, r.Value)
}

// IsResolved reports whether both currencies are set
func (r Rate) IsResolved() bool {
	return r.BaseCurrency.IsSet() && r.QuoteCurrency.IsSet()
}

func (r Rate) String() string {
	return fmt.Sprintf("%d - [Base Currency : %s] - [Quote Currency : %s] | %s",
		r.ID, r.BaseCurrency, r.QuoteCurrency, strconv.FormatFloat(r.Value, 'f', -1, 64))
}
