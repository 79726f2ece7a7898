package domain

import "github.com/shopspring/decimal"

// AccountBalance is the derived balance view of one account.
type AccountBalance struct {
	AccountID    string          `json:"accountID"`
	Name         string          `json:"name"`
	CurrencyCode string          `json:"currencyCode"`
	IncomeTotal  decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal decimal.Decimal `json:"expenseTotal"`
	Balance      decimal.Decimal `json:"balance"`
}

// ReconciliationSummary reports paid totals for an account split by
// reconciliation state.
type ReconciliationSummary struct {
	AccountID         string          `json:"accountID"`
	ReconciledTotal   decimal.Decimal `json:"reconciledTotal"`
	UnreconciledTotal decimal.Decimal `json:"unreconciledTotal"`
	Total             decimal.Decimal `json:"total"`
}
