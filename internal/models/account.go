package models

import (
	"github.com/shopspring/decimal"
)

// Account is the database representation of a bank or cash account.
// The current balance is never persisted; only the opening balance is stored.
type Account struct {
	AccountID      string          `db:"account_id"`
	CompanyID      string          `db:"company_id"`
	Name           string          `db:"name"`
	Number         string          `db:"number"`
	CurrencyCode   string          `db:"currency_code"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	BankName       string          `db:"bank_name"`
	BankPhone      string          `db:"bank_phone"`
	BankAddress    string          `db:"bank_address"`
	Enabled        bool            `db:"enabled"`
	AuditFields
}
