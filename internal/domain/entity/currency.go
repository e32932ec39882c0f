package entity

import (
	"encoding/json"
	"fmt"
)

// Currency represents a currency that rates refer to by ID
type Currency struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// NewCurrency creates a currency value
func NewCurrency(id int, name, code string) Currency {
	return Currency{ID: id, Name: name, Code: code}
}

func (c Currency) String() string {
	return fmt.Sprintf("%d - %s : %s", c.ID, c.Name, c.Code)
}

// OptionalCurrency holds a currency that may not have been resolved yet
type OptionalCurrency struct {
	currency Currency
	set      bool
}

// Some wraps a resolved currency
func Some(c Currency) OptionalCurrency {
	return OptionalCurrency{currency: c, set: true}
}

// None returns the unresolved state
func None() OptionalCurrency {
	return OptionalCurrency{}
}

// Get returns the currency and whether it is set
func (o OptionalCurrency) Get() (Currency, bool) {
	return o.currency, o.set
}

// IsSet reports whether the currency has been resolved
func (o OptionalCurrency) IsSet() bool {
	return o.set
}

// String renders the currency, or an empty string when unresolved
func (o OptionalCurrency) String() string {
	if !o.set {
		return ""
	}
	return o.currency.String()
}

// MarshalJSON encodes an unresolved currency as null
func (o OptionalCurrency) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.currency)
}

// UnmarshalJSON decodes null as the unresolved state
func (o *OptionalCurrency) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None()
		return nil
	}

	var c Currency
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	*o = Some(c)
	return nil
}
