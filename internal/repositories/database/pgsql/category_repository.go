package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_balance_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_balance_app/internal/models"
	"github.com/SscSPs/ledger_balance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `category_id, company_id, name, type, color, enabled, created_at, created_by, last_updated_at, last_updated_by`

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func scanCategory(row pgx.Row) (models.Category, error) {
	var cat models.Category
	err := row.Scan(
		&cat.CategoryID,
		&cat.CompanyID,
		&cat.Name,
		&cat.Type,
		&cat.Color,
		&cat.Enabled,
		&cat.CreatedAt,
		&cat.CreatedBy,
		&cat.LastUpdatedAt,
		&cat.LastUpdatedBy,
	)
	return cat, err
}

// SaveCategory persists a new category. A partial unique index on
// (company_id) WHERE type = 'other' AND enabled backs the single transfer
// marker invariant.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCat := mapping.ToModelCategory(category)

	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCat.CategoryID,
		modelCat.CompanyID,
		modelCat.Name,
		modelCat.Type,
		modelCat.Color,
		modelCat.Enabled,
		modelCat.CreatedAt,
		modelCat.CreatedBy,
		modelCat.LastUpdatedAt,
		modelCat.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: category conflicts with an existing one", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save category %s: %w", modelCat.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by its unique identifier.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, companyID, categoryID string) (*domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE company_id = $1 AND category_id = $2;
	`
	modelCat, err := scanCategory(r.Pool.QueryRow(ctx, query, companyID, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}

	domainCat := mapping.ToDomainCategory(modelCat)
	return &domainCat, nil
}

// ListCategories retrieves all categories for a company, optionally narrowed
// to one type.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, companyID string, categoryType *domain.CategoryType) ([]domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE company_id = $1
	`
	args := []interface{}{companyID}
	if categoryType != nil {
		query += ` AND type = $2`
		args = append(args, string(*categoryType))
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	modelCats, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		return scanCategory(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}

	return mapping.ToDomainCategorySlice(modelCats), nil
}

// FindTransferCategory retrieves the company's transfer marker: the single
// enabled category of type 'other'.
func (r *PgxCategoryRepository) FindTransferCategory(ctx context.Context, companyID string) (*domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE company_id = $1 AND type = 'other' AND enabled = TRUE
		ORDER BY created_at
		LIMIT 1;
	`
	modelCat, err := scanCategory(r.Pool.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transfer category for company %s: %w", companyID, err)
	}

	domainCat := mapping.ToDomainCategory(modelCat)
	return &domainCat, nil
}

// UpdateCategory updates an existing category's details.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	modelCat := mapping.ToModelCategory(category)

	query := `
		UPDATE categories
		SET name = $1, color = $2, enabled = $3, last_updated_at = $4, last_updated_by = $5
		WHERE company_id = $6 AND category_id = $7;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelCat.Name,
		modelCat.Color,
		modelCat.Enabled,
		modelCat.LastUpdatedAt,
		modelCat.LastUpdatedBy,
		modelCat.CompanyID,
		modelCat.CategoryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", modelCat.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
