package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType is the declared kind of a transaction entry.
// The set is closed; balance classification maps each member (or the transfer
// category) onto income, expense, transfer or other.
type TransactionType string

const (
	TypeIncome      TransactionType = "income"
	TypeRevenue     TransactionType = "revenue"
	TypeExpense     TransactionType = "expense"
	TypePayment     TransactionType = "payment"
	TypeTransferIn  TransactionType = "transfer-in"
	TypeTransferOut TransactionType = "transfer-out"
)

// Transaction represents a single money movement against one account.
// Amount is always positive; sign and direction are determined by
// classification, never by the stored value.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	CompanyID     string          `json:"companyID"`     // Tenant scope (NON-NULL)
	AccountID     string          `json:"accountID"`     // FK -> Account.accountID (Not Null)
	Type          TransactionType `json:"type"`          // Member of the closed type set
	Amount        decimal.Decimal `json:"amount"`        // Positive value; precise decimal type
	CurrencyCode  string          `json:"currencyCode"`  // Currency the amount was recorded in
	CurrencyRate  decimal.Decimal `json:"currencyRate"`  // Rate vs the base currency at recording time
	CategoryID    *string         `json:"categoryID"`    // Nullable FK -> Category.categoryID
	PaidAt        time.Time       `json:"paidAt"`        // When the money moved
	Description   string          `json:"description"`   // Nullable
	PaymentMethod string          `json:"paymentMethod"` // Nullable
	Reference     string          `json:"reference"`     // Nullable
	ParentID      *string         `json:"parentID"`      // Nullable; set on recurring-generated instances
	Reconciled    bool            `json:"reconciled"`
	AuditFields
}

// Validate checks the invariants a transaction must hold before it enters the ledger.
func (t Transaction) Validate() error {
	if t.AccountID == "" {
		return fmt.Errorf("transaction %s has no account reference", t.TransactionID)
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: transaction amount must be positive, got %s", apperrors.ErrMalformedAmount, t.Amount.String())
	}
	if t.CurrencyCode == "" {
		return fmt.Errorf("transaction %s has no currency code", t.TransactionID)
	}
	if t.CurrencyRate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: transaction currency rate must be positive, got %s", apperrors.ErrInvalidRate, t.CurrencyRate.String())
	}
	return nil
}

// IsRecurringInstance reports whether this transaction was generated from a
// recurring parent rather than entered directly.
func (t Transaction) IsRecurringInstance() bool {
	return t.ParentID != nil && *t.ParentID != ""
}
