package utils

import (
	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount rounded to the given number of
// fractional digits.
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
