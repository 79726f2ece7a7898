package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
)

// TransactionFilter narrows a transaction listing. Zero values leave the
// corresponding dimension unfiltered.
type TransactionFilter struct {
	AccountID  string
	CategoryID string
	Types      []domain.TransactionType
	Reconciled *bool
	PaidFrom   time.Time
	PaidTo     time.Time
	Limit      int
	NextToken  string // Cursor from a previous page, paid-at based
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction.
	FindTransactionByID(ctx context.Context, companyID, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByAccountID retrieves the full transaction log of one account.
	FindTransactionsByAccountID(ctx context.Context, companyID, accountID string) ([]domain.Transaction, error)

	// ListTransactions retrieves transactions ordered by paid-at descending.
	// It returns the page and a cursor token for the next page, empty when
	// the listing is exhausted.
	ListTransactions(ctx context.Context, companyID string, filter TransactionFilter) ([]domain.Transaction, string, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// MarkReconciled sets a transaction's reconciliation state.
	MarkReconciled(ctx context.Context, companyID, transactionID string, reconciled bool, userID string, now time.Time) error
}

// TransactionRepository combines all transaction-related repository interfaces.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
