package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_balance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_balance_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_balance_app/internal/dto"
	"github.com/google/uuid"
)

// categoryService implements the category service facade.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory persists a new category. A company carries exactly one
// enabled category of type "other" (the transfer marker), so a second one is
// rejected as a duplicate.
func (s *categoryService) CreateCategory(ctx context.Context, companyID string, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	if req.Type == domain.CategoryOther {
		existing, err := s.categoryRepo.FindTransferCategory(ctx, companyID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check transfer category: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: transfer category already exists for company %s", apperrors.ErrDuplicate, companyID)
		}
	}

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		CompanyID:  companyID,
		Name:       req.Name,
		Type:       req.Type,
		Color:      req.Color,
		Enabled:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category")
		return nil, fmt.Errorf("failed to create category in service: %w", err)
	}

	return &category, nil
}

// GetCategoryByID retrieves a specific category.
func (s *categoryService) GetCategoryByID(ctx context.Context, companyID, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, companyID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category by ID in service: %w", err)
	}
	return category, nil
}

// ListCategories retrieves all categories for a company.
func (s *categoryService) ListCategories(ctx context.Context, companyID string, categoryType *domain.CategoryType) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, companyID, categoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories in service: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// GetTransferCategory retrieves the company's transfer marker category.
func (s *categoryService) GetTransferCategory(ctx context.Context, companyID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindTransferCategory(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer category in service: %w", err)
	}
	return category, nil
}
