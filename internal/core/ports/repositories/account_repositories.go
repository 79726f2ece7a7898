package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error)

	// FindAccountsByName retrieves accounts matching a name exactly.
	FindAccountsByName(ctx context.Context, companyID, name string) ([]domain.Account, error)

	// FindAccountsByNumber retrieves accounts matching a number exactly.
	FindAccountsByNumber(ctx context.Context, companyID, number string) ([]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts for a company.
	ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DisableAccount marks an account as disabled.
	DisableAccount(ctx context.Context, companyID, accountID string, userID string, now time.Time) error
}

// AccountRepository combines all account-related repository interfaces.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
