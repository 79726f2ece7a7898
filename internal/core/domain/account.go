package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a bank or cash account within the core domain.
// Its current balance is always derived from the transaction log plus the
// opening balance; no running total is stored on the entity.
type Account struct {
	AccountID      string          `json:"accountID"`      // Primary Key (UUID)
	CompanyID      string          `json:"companyID"`      // Tenant scope (NON-NULL)
	Name           string          `json:"name"`           // User-defined name
	Number         string          `json:"number"`         // Account number at the institution
	CurrencyCode   string          `json:"currencyCode"`   // FK -> currencies.code (NON-NULL)
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Exact decimal, set once at creation
	BankName       string          `json:"bankName"`       // Nullable
	BankPhone      string          `json:"bankPhone"`      // Nullable
	BankAddress    string          `json:"bankAddress"`    // Nullable
	Enabled        bool            `json:"enabled"`        // Soft delete or status flag
	AuditFields
}
