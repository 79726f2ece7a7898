package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_balance_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_balance_app/internal/models"
	"github.com/SscSPs/ledger_balance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, company_id, name, number, currency_code, opening_balance, bank_name, bank_phone, bank_address, enabled, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var acc models.Account
	err := row.Scan(
		&acc.AccountID,
		&acc.CompanyID,
		&acc.Name,
		&acc.Number,
		&acc.CurrencyCode,
		&acc.OpeningBalance,
		&acc.BankName,
		&acc.BankPhone,
		&acc.BankAddress,
		&acc.Enabled,
		&acc.CreatedAt,
		&acc.CreatedBy,
		&acc.LastUpdatedAt,
		&acc.LastUpdatedBy,
	)
	return acc, err
}

// SaveAccount persists a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.CompanyID,
		modelAcc.Name,
		modelAcc.Number,
		modelAcc.CurrencyCode,
		modelAcc.OpeningBalance,
		modelAcc.BankName,
		modelAcc.BankPhone,
		modelAcc.BankAddress,
		modelAcc.Enabled,
		modelAcc.CreatedAt,
		modelAcc.CreatedBy,
		modelAcc.LastUpdatedAt,
		modelAcc.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, modelAcc.Number)
			}
		}
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its unique identifier.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE company_id = $1 AND account_id = $2;
	`
	modelAcc, err := scanAccount(r.Pool.QueryRow(ctx, query, companyID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// FindAccountsByName retrieves accounts matching a name exactly.
func (r *PgxAccountRepository) FindAccountsByName(ctx context.Context, companyID, name string) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE company_id = $1 AND name = $2
		ORDER BY created_at;
	`
	return r.queryAccounts(ctx, query, companyID, name)
}

// FindAccountsByNumber retrieves accounts matching a number exactly.
func (r *PgxAccountRepository) FindAccountsByNumber(ctx context.Context, companyID, number string) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE company_id = $1 AND number = $2
		ORDER BY created_at;
	`
	return r.queryAccounts(ctx, query, companyID, number)
}

// ListAccounts retrieves a paginated list of accounts for a company.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE company_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3;
	`
	return r.queryAccounts(ctx, query, companyID, limit, offset)
}

func (r *PgxAccountRepository) queryAccounts(ctx context.Context, query string, args ...interface{}) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	modelAccounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Account, error) {
		return scanAccount(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}

	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

// UpdateAccount updates an existing account's details.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $1, number = $2, bank_name = $3, bank_phone = $4, bank_address = $5, enabled = $6, last_updated_at = $7, last_updated_by = $8
		WHERE company_id = $9 AND account_id = $10;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelAcc.Name,
		modelAcc.Number,
		modelAcc.BankName,
		modelAcc.BankPhone,
		modelAcc.BankAddress,
		modelAcc.Enabled,
		modelAcc.LastUpdatedAt,
		modelAcc.LastUpdatedBy,
		modelAcc.CompanyID,
		modelAcc.AccountID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, modelAcc.Number)
		}
		return fmt.Errorf("failed to update account %s: %w", modelAcc.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DisableAccount marks an account as disabled.
func (r *PgxAccountRepository) DisableAccount(ctx context.Context, companyID, accountID string, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET enabled = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE company_id = $3 AND account_id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, now, userID, companyID, accountID)
	if err != nil {
		return fmt.Errorf("failed to disable account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
