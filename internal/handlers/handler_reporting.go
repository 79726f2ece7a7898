package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	portssvc "github.com/SscSPs/ledger_balance_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_balance_app/internal/dto"
	"github.com/SscSPs/ledger_balance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for derived-balance reports.
type reportingHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(bs portssvc.BalanceSvcFacade) *reportingHandler {
	return &reportingHandler{
		balanceService: bs,
	}
}

// registerReportingRoutes registers reporting routes within a company scope.
func registerReportingRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newReportingHandler(balanceService)

	reports := rg.Group("/reports")
	{
		reports.GET("/balances", h.listAccountBalances)
	}
}

// listAccountBalances godoc
// @Summary List derived balances for all enabled accounts
// @Description Derives every enabled account's balance from one consistent rate snapshot
// @Tags reports
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Success 200 {array} dto.AccountBalanceResponse
// @Failure 422 {object} map[string]string "Ledger contains malformed data"
// @Failure 500 {object} map[string]string "Failed to derive balances"
// @Router /companies/{companyID}/reports/balances [get]
func (h *reportingHandler) listAccountBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	balances, err := h.balanceService.ListAccountBalances(c.Request.Context(), companyID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMalformedAmount), errors.Is(err, apperrors.ErrInvalidRate), errors.Is(err, apperrors.ErrUnknownCurrency):
			logger.Warn("Ledger data prevented balance derivation", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to derive account balances", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to derive balances"})
		}
		return
	}

	logger.Info("Account balances derived successfully", slog.Int("count", len(balances)))
	c.JSON(http.StatusOK, dto.ToListAccountBalanceResponse(balances))
}
