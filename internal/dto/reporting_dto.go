package dto

import (
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	"github.com/SscSPs/ledger_balance_app/internal/utils"
	"github.com/SscSPs/ledger_balance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// AccountBalanceResponse defines the data returned for a derived balance.
type AccountBalanceResponse struct {
	AccountID        string          `json:"accountID"`
	Name             string          `json:"name"`
	CurrencyCode     string          `json:"currencyCode"`
	IncomeTotal      decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal     decimal.Decimal `json:"expenseTotal"`
	Balance          decimal.Decimal `json:"balance"`
	BalanceFormatted string          `json:"balanceFormatted"`
}

// ToAccountBalanceResponse converts a domain.AccountBalance to its DTO.
func ToAccountBalanceResponse(b *domain.AccountBalance) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountID:        b.AccountID,
		Name:             b.Name,
		CurrencyCode:     b.CurrencyCode,
		IncomeTotal:      b.IncomeTotal,
		ExpenseTotal:     b.ExpenseTotal,
		Balance:          b.Balance,
		BalanceFormatted: utils.FormatWithPrecision(b.Balance, int(money.ConversionScale)),
	}
}

// ToListAccountBalanceResponse converts a slice of domain.AccountBalance.
func ToListAccountBalanceResponse(balances []domain.AccountBalance) []AccountBalanceResponse {
	res := make([]AccountBalanceResponse, len(balances))
	for i, b := range balances {
		res[i] = ToAccountBalanceResponse(&b)
	}
	return res
}

// ReconciliationSummaryResponse reports paid totals by reconciliation state.
type ReconciliationSummaryResponse struct {
	AccountID         string          `json:"accountID"`
	ReconciledTotal   decimal.Decimal `json:"reconciledTotal"`
	UnreconciledTotal decimal.Decimal `json:"unreconciledTotal"`
	Total             decimal.Decimal `json:"total"`
}

// ToReconciliationSummaryResponse converts a domain.ReconciliationSummary.
func ToReconciliationSummaryResponse(s *domain.ReconciliationSummary) ReconciliationSummaryResponse {
	return ReconciliationSummaryResponse{
		AccountID:         s.AccountID,
		ReconciledTotal:   s.ReconciledTotal,
		UnreconciledTotal: s.UnreconciledTotal,
		Total:             s.Total,
	}
}
