package models

import "github.com/shopspring/decimal"

// Currency is the database representation of a supported currency and its
// snapshot rate against the base currency.
type Currency struct {
	CurrencyCode string          `db:"currency_code"`
	Name         string          `db:"name"`
	Symbol       string          `db:"symbol"`
	Rate         decimal.Decimal `db:"rate"`
	Precision    int32           `db:"precision"`
	Enabled      bool            `db:"enabled"`
	AuditFields
}
