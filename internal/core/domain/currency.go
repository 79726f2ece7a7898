package domain

import "github.com/shopspring/decimal"

// Currency represents a supported currency and its snapshot rate against the
// fixed base currency. The base currency itself carries a rate of 1.
type Currency struct {
	CurrencyCode string          `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name         string          `json:"name"`         // e.g., "US Dollar"
	Symbol       string          `json:"symbol"`       // e.g., "$"
	Rate         decimal.Decimal `json:"rate"`         // Relative value vs the base currency
	Precision    int32           `json:"precision"`    // Fractional digits for display
	Enabled      bool            `json:"enabled"`
	AuditFields
}
