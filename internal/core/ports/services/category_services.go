package services

import (
	"context"

	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	"github.com/SscSPs/ledger_balance_app/internal/dto"
)

// CategoryReaderSvc defines read operations for category data.
type CategoryReaderSvc interface {
	// GetCategoryByID retrieves a specific category.
	GetCategoryByID(ctx context.Context, companyID, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories for a company.
	ListCategories(ctx context.Context, companyID string, categoryType *domain.CategoryType) ([]domain.Category, error)

	// GetTransferCategory retrieves the company's transfer marker category.
	GetTransferCategory(ctx context.Context, companyID string) (*domain.Category, error)
}

// CategoryWriterSvc defines write operations for category data.
type CategoryWriterSvc interface {
	// CreateCategory persists a new category, enforcing the single transfer
	// marker invariant.
	CreateCategory(ctx context.Context, companyID string, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)
}

// CategorySvcFacade combines all category-related service interfaces.
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
