package money_test

import (
	"testing"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/SscSPs/ledger_balance_app/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestConvertBetween(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		fromCode string
		fromRate string
		toCode   string
		toRate   string
		want     string
		wantErr  error
	}{
		{
			name:   "same currency returns amount unchanged",
			amount: "123.4567", fromCode: "USD", fromRate: "1", toCode: "USD", toRate: "1",
			want: "123.4567",
		},
		{
			name:   "EUR to USD via base",
			amount: "100.00", fromCode: "EUR", fromRate: "1.10", toCode: "USD", toRate: "1.05",
			want: "95.45",
		},
		{
			name:   "rounds half up at two places",
			amount: "10.005", fromCode: "EUR", fromRate: "1", toCode: "USD", toRate: "1",
			want: "10.01",
		},
		{
			name:   "zero from rate",
			amount: "100", fromCode: "EUR", fromRate: "0", toCode: "USD", toRate: "1.05",
			wantErr: apperrors.ErrInvalidRate,
		},
		{
			name:   "negative to rate",
			amount: "100", fromCode: "EUR", fromRate: "1.10", toCode: "USD", toRate: "-1",
			wantErr: apperrors.ErrInvalidRate,
		},
		{
			name:   "same currency skips rate validation",
			amount: "50", fromCode: "USD", fromRate: "0", toCode: "USD", toRate: "0",
			want: "50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ConvertBetween(d(tt.amount), tt.fromCode, d(tt.fromRate), tt.toCode, d(tt.toRate))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got.String())
		})
	}
}

func TestConvertBetween_RoundTrip(t *testing.T) {
	// convert(convert(x, A, rA, B, rB), B, rB, A, rA) == x within rounding tolerance.
	amount := d("250.00")
	rateEUR := d("1.10")
	rateUSD := d("1.05")

	usd, err := money.ConvertBetween(amount, "EUR", rateEUR, "USD", rateUSD)
	require.NoError(t, err)

	back, err := money.ConvertBetween(usd, "USD", rateUSD, "EUR", rateEUR)
	require.NoError(t, err)

	tolerance := d("0.01")
	diff := back.Sub(amount).Abs()
	assert.True(t, diff.LessThanOrEqual(tolerance), "round trip drifted by %s", diff.String())
}

func TestRateTable(t *testing.T) {
	table := money.RateTable{
		"USD": d("1"),
		"EUR": d("1.10"),
	}

	rate, err := table.Rate("EUR")
	require.NoError(t, err)
	assert.True(t, d("1.10").Equal(rate))

	_, err = table.Rate("JPY")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)

	assert.True(t, table.Has("USD"))
	assert.False(t, table.Has("JPY"))
}
