package money

import (
	"fmt"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RateTable is a read-only snapshot mapping currency code to its rate against
// the fixed base currency. The caller assembles it before a computation; the
// table itself never performs I/O.
type RateTable map[string]decimal.Decimal

// Rate returns the snapshot rate for a currency code.
func (t RateTable) Rate(code string) (decimal.Decimal, error) {
	rate, ok := t[code]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
	}
	return rate, nil
}

// Has reports whether the table carries a rate for the given code.
func (t RateTable) Has(code string) bool {
	_, ok := t[code]
	return ok
}
