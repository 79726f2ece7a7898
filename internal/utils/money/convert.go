package money

import (
	"fmt"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ConversionScale is the number of fractional digits a converted amount is
// rounded to. Rounding is half-up; intermediate division carries the decimal
// library's default 16-digit precision so totals do not drift.
const ConversionScale int32 = 2

// ConvertBetween converts an amount recorded in one currency into another via
// the fixed base currency: base = amount / fromRate, result = base * toRate.
// Rates are snapshots of relative value against the base, supplied by the
// caller. If the currency codes match, the amount is returned unchanged.
func ConvertBetween(amount decimal.Decimal, fromCode string, fromRate decimal.Decimal, toCode string, toRate decimal.Decimal) (decimal.Decimal, error) {
	if fromCode == toCode {
		return amount, nil
	}
	if fromRate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: rate for %s is %s", apperrors.ErrInvalidRate, fromCode, fromRate.String())
	}
	if toRate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: rate for %s is %s", apperrors.ErrInvalidRate, toCode, toRate.String())
	}

	base := amount.Div(fromRate)
	return base.Mul(toRate).Round(ConversionScale), nil
}
