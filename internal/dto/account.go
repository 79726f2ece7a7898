package dto

import (
	"time"

	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	Number         string          `json:"number" binding:"required"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,len=3,uppercase"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	BankName       string          `json:"bankName"`
	BankPhone      string          `json:"bankPhone"`
	BankAddress    string          `json:"bankAddress"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Number      *string `json:"number"`
	BankName    *string `json:"bankName"`
	BankPhone   *string `json:"bankPhone"`
	BankAddress *string `json:"bankAddress"`
	Enabled     *bool   `json:"enabled"`
}

// ListAccountsParams defines query parameters for listing accounts.
// Name and Number are exact-match scope filters.
type ListAccountsParams struct {
	Name   string `form:"name"`
	Number string `form:"number"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string          `json:"accountID"`
	CompanyID      string          `json:"companyID"`
	Name           string          `json:"name"`
	Number         string          `json:"number"`
	CurrencyCode   string          `json:"currencyCode"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	BankName       string          `json:"bankName,omitempty"`
	BankPhone      string          `json:"bankPhone,omitempty"`
	BankAddress    string          `json:"bankAddress,omitempty"`
	Enabled        bool            `json:"enabled"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		CompanyID:      acc.CompanyID,
		Name:           acc.Name,
		Number:         acc.Number,
		CurrencyCode:   acc.CurrencyCode,
		OpeningBalance: acc.OpeningBalance,
		BankName:       acc.BankName,
		BankPhone:      acc.BankPhone,
		BankAddress:    acc.BankAddress,
		Enabled:        acc.Enabled,
		CreatedAt:      acc.CreatedAt,
		CreatedBy:      acc.CreatedBy,
		LastUpdatedAt:  acc.LastUpdatedAt,
		LastUpdatedBy:  acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
