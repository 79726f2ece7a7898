package repositories

import (
	"context"

	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data.
type CurrencyWriter interface {
	// SaveCurrency persists a new currency or updates its snapshot rate.
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepository combines all currency-related repository interfaces.
type CurrencyRepository interface {
	CurrencyReader
	CurrencyWriter
}
