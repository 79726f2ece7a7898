package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

// Transaction is the database representation of a money movement.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	CompanyID     string          `db:"company_id"`
	AccountID     string          `db:"account_id"`
	Type          TransactionType `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	CurrencyCode  string          `db:"currency_code"`
	CurrencyRate  decimal.Decimal `db:"currency_rate"`
	CategoryID    *string         `db:"category_id"`
	PaidAt        time.Time       `db:"paid_at"`
	Description   string          `db:"description"`
	PaymentMethod string          `db:"payment_method"`
	Reference     string          `db:"reference"`
	ParentID      *string         `db:"parent_id"`
	Reconciled    bool            `db:"reconciled"`
	AuditFields
}
