package dto

import (
	"time"

	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name  string              `json:"name" binding:"required"`
	Type  domain.CategoryType `json:"type" binding:"required,categorytype"`
	Color string              `json:"color"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string              `json:"categoryID"`
	CompanyID     string              `json:"companyID"`
	Name          string              `json:"name"`
	Type          domain.CategoryType `json:"type"`
	Color         string              `json:"color,omitempty"`
	Enabled       bool                `json:"enabled"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy string              `json:"lastUpdatedBy"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    cat.CategoryID,
		CompanyID:     cat.CompanyID,
		Name:          cat.Name,
		Type:          cat.Type,
		Color:         cat.Color,
		Enabled:       cat.Enabled,
		CreatedAt:     cat.CreatedAt,
		CreatedBy:     cat.CreatedBy,
		LastUpdatedAt: cat.LastUpdatedAt,
		LastUpdatedBy: cat.LastUpdatedBy,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = ToCategoryResponse(&cat)
	}
	return res
}
