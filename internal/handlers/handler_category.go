package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_balance_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_balance_app/internal/dto"
	"github.com/SscSPs/ledger_balance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// newCategoryHandler creates a new categoryHandler.
func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{
		categoryService: cs,
	}
}

// registerCategoryRoutes registers routes related to categories within a company scope.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/transfer", h.getTransferCategory)
		categories.GET("/:categoryID", h.getCategoryByID)
	}
}

// createCategory godoc
// @Summary Create a new category
// @Description Creates a category; at most one enabled 'other'-type category (the transfer marker) may exist per company
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Transfer category already exists"
// @Failure 500 {object} map[string]string "Failed to create category"
// @Router /companies/{companyID}/categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetActorIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing actor identity"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID))
	logger.Info("Received request to create category", slog.String("category_name", req.Name))

	createdCategory, err := h.categoryService.CreateCategory(c.Request.Context(), companyID, req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create second transfer category")
			c.JSON(http.StatusConflict, gin.H{"error": "Transfer category already exists for this company"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating category", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create category in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		}
		return
	}

	logger.Info("Category created successfully", slog.String("category_id", createdCategory.CategoryID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(createdCategory))
}

// listCategories godoc
// @Summary List categories
// @Description Retrieves all categories for a company, optionally narrowed to one type
// @Tags categories
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   type query string false "Category type" Enums(income, expense, item, other)
// @Success 200 {array} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid category type"
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Router /companies/{companyID}/categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var categoryType *domain.CategoryType
	if raw := c.Query("type"); raw != "" {
		ct := domain.CategoryType(raw)
		switch ct {
		case domain.CategoryIncome, domain.CategoryExpense, domain.CategoryItem, domain.CategoryOther:
			categoryType = &ct
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category type: " + raw})
			return
		}
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), companyID, categoryType)
	if err != nil {
		logger.Error("Failed to list categories from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}

	logger.Info("Categories listed successfully", slog.Int("count", len(categories)))
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// getTransferCategory godoc
// @Summary Get the transfer marker category
// @Description Retrieves the company's single enabled 'other'-type category used to mark transfers
// @Tags categories
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string "No transfer category configured"
// @Failure 500 {object} map[string]string "Failed to retrieve transfer category"
// @Router /companies/{companyID}/categories/transfer [get]
func (h *categoryHandler) getTransferCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	category, err := h.categoryService.GetTransferCategory(c.Request.Context(), companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No transfer category configured", slog.String("company_id", companyID))
			c.JSON(http.StatusNotFound, gin.H{"error": "No transfer category configured"})
		} else {
			logger.Error("Failed to get transfer category from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transfer category"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// getCategoryByID godoc
// @Summary Get a category by ID
// @Description Retrieves details for a specific category
// @Tags categories
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   categoryID path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to retrieve category"
// @Router /companies/{companyID}/categories/{categoryID} [get]
func (h *categoryHandler) getCategoryByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")
	categoryID := c.Param("categoryID")

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), companyID, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Category not found", slog.String("category_id", categoryID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			logger.Error("Failed to get category from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}
