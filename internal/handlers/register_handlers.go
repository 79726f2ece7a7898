package handlers

import (
	"github.com/SscSPs/ledger_balance_app/cmd/docs"
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_balance_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_balance_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Currencies are global; everything else is scoped to a company.
	registerCurrencyRoutes(v1, service.Currency, cfg)

	company := v1.Group("/companies/:companyID")
	registerAccountRoutes(company, service.Account, service.Balance)
	registerTransactionRoutes(company, service.Transaction)
	registerCategoryRoutes(company, service.Category)
	registerReportingRoutes(company, service.Balance)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// registerCustomValidators wires domain enum validation into gin's binding layer.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("txntype", func(fl validator.FieldLevel) bool {
		switch domain.TransactionType(fl.Field().String()) {
		case domain.TypeIncome, domain.TypeRevenue, domain.TypeExpense, domain.TypePayment, domain.TypeTransferIn, domain.TypeTransferOut:
			return true
		}
		return false
	})

	_ = v.RegisterValidation("categorytype", func(fl validator.FieldLevel) bool {
		switch domain.CategoryType(fl.Field().String()) {
		case domain.CategoryIncome, domain.CategoryExpense, domain.CategoryItem, domain.CategoryOther:
			return true
		}
		return false
	})
}
