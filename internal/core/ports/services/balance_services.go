package services

import (
	"context"

	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
)

// BalanceSvcFacade exposes the derived-balance views of the ledger. All
// operations are reads: balances are recomputed from a snapshot of the
// transaction log on every call, never cached.
type BalanceSvcFacade interface {
	// GetAccountBalance derives the current balance of one account.
	GetAccountBalance(ctx context.Context, companyID, accountID string) (*domain.AccountBalance, error)

	// ListAccountBalances derives balances for every enabled account of a company.
	ListAccountBalances(ctx context.Context, companyID string) ([]domain.AccountBalance, error)

	// GetReconciliationSummary totals an account's transactions by
	// reconciliation state.
	GetReconciliationSummary(ctx context.Context, companyID, accountID string) (*domain.ReconciliationSummary, error)
}
