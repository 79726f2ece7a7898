package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_balance_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_balance_app/internal/models"
	"github.com/SscSPs/ledger_balance_app/internal/utils/mapping"
	"github.com/SscSPs/ledger_balance_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, company_id, account_id, type, amount, currency_code, currency_rate, category_id, paid_at, description, payment_method, reference, parent_id, reconciled, created_at, created_by, last_updated_at, last_updated_by`

const defaultTransactionPageSize = 50

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var txn models.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.CompanyID,
		&txn.AccountID,
		&txn.Type,
		&txn.Amount,
		&txn.CurrencyCode,
		&txn.CurrencyRate,
		&txn.CategoryID,
		&txn.PaidAt,
		&txn.Description,
		&txn.PaymentMethod,
		&txn.Reference,
		&txn.ParentID,
		&txn.Reconciled,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	return txn, err
}

// SaveTransaction persists a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.CompanyID,
		modelTxn.AccountID,
		modelTxn.Type,
		modelTxn.Amount,
		modelTxn.CurrencyCode,
		modelTxn.CurrencyRate,
		modelTxn.CategoryID,
		modelTxn.PaidAt,
		modelTxn.Description,
		modelTxn.PaymentMethod,
		modelTxn.Reference,
		modelTxn.ParentID,
		modelTxn.Reconciled,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, modelTxn.TransactionID)
			case "23503": // foreign_key_violation
				return fmt.Errorf("%w: transaction references a missing account or category", apperrors.ErrValidation)
			}
		}
		return fmt.Errorf("failed to save transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its unique identifier.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, companyID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE company_id = $1 AND transaction_id = $2;
	`
	modelTxn, err := scanTransaction(r.Pool.QueryRow(ctx, query, companyID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// FindTransactionsByAccountID retrieves the full transaction log of one account.
func (r *PgxTransactionRepository) FindTransactionsByAccountID(ctx context.Context, companyID, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE company_id = $1 AND account_id = $2
		ORDER BY paid_at, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// ListTransactions retrieves transactions ordered by paid-at descending, using
// a keyset cursor over (paid_at, created_at) for stable pagination.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, companyID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}

	conditions := []string{"company_id = $1"}
	args := []interface{}{companyID}

	addArg := func(value interface{}) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.AccountID != "" {
		conditions = append(conditions, "account_id = "+addArg(filter.AccountID))
	}
	if filter.CategoryID != "" {
		conditions = append(conditions, "category_id = "+addArg(filter.CategoryID))
	}
	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		conditions = append(conditions, "type = ANY("+addArg(types)+")")
	}
	if filter.Reconciled != nil {
		conditions = append(conditions, "reconciled = "+addArg(*filter.Reconciled))
	}
	if !filter.PaidFrom.IsZero() {
		conditions = append(conditions, "paid_at >= "+addArg(filter.PaidFrom))
	}
	if !filter.PaidTo.IsZero() {
		conditions = append(conditions, "paid_at <= "+addArg(filter.PaidTo))
	}
	if filter.NextToken != "" {
		paidAt, createdAt, err := pagination.DecodeToken(filter.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		conditions = append(conditions, fmt.Sprintf("(paid_at, created_at) < (%s, %s)", addArg(paidAt), addArg(createdAt)))
	}

	// Fetch one extra row to learn whether another page exists.
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY paid_at DESC, created_at DESC
		LIMIT ` + addArg(limit+1) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to scan transactions: %w", err)
	}

	nextToken := ""
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		nextToken = pagination.EncodeToken(last.PaidAt, last.CreatedAt)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nextToken, nil
}

// MarkReconciled sets a transaction's reconciliation state.
func (r *PgxTransactionRepository) MarkReconciled(ctx context.Context, companyID, transactionID string, reconciled bool, userID string, now time.Time) error {
	query := `
		UPDATE transactions
		SET reconciled = $1, last_updated_at = $2, last_updated_by = $3
		WHERE company_id = $4 AND transaction_id = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, reconciled, now, userID, companyID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to mark transaction %s reconciled: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
