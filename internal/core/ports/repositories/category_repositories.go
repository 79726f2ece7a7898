package repositories

import (
	"context"

	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
)

// CategoryReader defines read operations for category data.
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category.
	FindCategoryByID(ctx context.Context, companyID, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories for a company, optionally
	// narrowed to one type.
	ListCategories(ctx context.Context, companyID string, categoryType *domain.CategoryType) ([]domain.Category, error)

	// FindTransferCategory retrieves the company's transfer marker: the
	// single enabled category of type "other".
	FindTransferCategory(ctx context.Context, companyID string) (*domain.Category, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, category domain.Category) error
}

// CategoryRepository combines all category-related repository interfaces.
type CategoryRepository interface {
	CategoryReader
	CategoryWriter
}
