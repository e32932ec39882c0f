package handler

import "github.com/damon-houk/rate-enrichment/internal/domain/entity"

// CurrencyResponse represents a currency in API responses
type CurrencyResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// RateResponse represents an enriched rate in API responses
type RateResponse struct {
	ID              int              `json:"id"`
	BaseCurrencyID  int              `json:"base_currency_id"`
	QuoteCurrencyID int              `json:"quote_currency_id"`
	BaseCurrency    CurrencyResponse `json:"base_currency"`
	QuoteCurrency   CurrencyResponse `json:"quote_currency"`
	Value           float64          `json:"value"`
	Display         string           `json:"display"`
}

// RateListResponse represents the response for the rate listing endpoint
type RateListResponse struct {
	Strategy string         `json:"strategy"`
	Count    int            `json:"count"`
	Rates    []RateResponse `json:"rates"`
}

// CurrencyListResponse represents the response for the currency listing endpoint
type CurrencyListResponse struct {
	Count      int                `json:"count"`
	Currencies []CurrencyResponse `json:"currencies"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error       string `json:"error"`
	Status      int    `json:"status"`
	Description string `json:"description,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
}

func toCurrencyResponse(c entity.Currency) CurrencyResponse {
	return CurrencyResponse{ID: c.ID, Name: c.Name, Code: c.Code}
}

// toRateResponse expects a resolved rate
func toRateResponse(r entity.Rate) RateResponse {
	base, _ := r.BaseCurrency.Get()
	quote, _ := r.QuoteCurrency.Get()

	return RateResponse{
		ID:              r.ID,
		BaseCurrencyID:  r.BaseCurrencyID,
		QuoteCurrencyID: r.QuoteCurrencyID,
		BaseCurrency:    toCurrencyResponse(base),
		QuoteCurrency:   toCurrencyResponse(quote),
		Value:           r.Value,
		Display:         r.String(),
	}
}
