package dto

import (
	"time"

	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
type CreateTransactionRequest struct {
	AccountID     string                 `json:"accountID" binding:"required"`
	Type          domain.TransactionType `json:"type" binding:"required,txntype"`
	Amount        decimal.Decimal        `json:"amount" binding:"required"`
	CurrencyCode  string                 `json:"currencyCode" binding:"required,len=3,uppercase"`
	CurrencyRate  decimal.Decimal        `json:"currencyRate" binding:"required"`
	CategoryID    *string                `json:"categoryID"`
	PaidAt        time.Time              `json:"paidAt" binding:"required"`
	Description   string                 `json:"description"`
	PaymentMethod string                 `json:"paymentMethod"`
	Reference     string                 `json:"reference"`
	ParentID      *string                `json:"parentID"`
}

// ReconcileTransactionRequest sets a transaction's reconciliation state.
type ReconcileTransactionRequest struct {
	Reconciled *bool `json:"reconciled" binding:"required"`
}

// ListTransactionsParams defines query parameters for listing transactions.
// Types accepts repeated values, e.g. ?types=income&types=expense.
type ListTransactionsParams struct {
	AccountID  string                   `form:"accountID"`
	CategoryID string                   `form:"categoryID"`
	Types      []domain.TransactionType `form:"types" binding:"omitempty,dive,txntype"`
	Reconciled *bool                    `form:"reconciled"`
	PaidFrom   *time.Time               `form:"paidFrom" time_format:"2006-01-02"`
	PaidTo     *time.Time               `form:"paidTo" time_format:"2006-01-02"`
	Limit      int                      `form:"limit,default=50"`
	NextToken  string                   `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	CompanyID     string                 `json:"companyID"`
	AccountID     string                 `json:"accountID"`
	Type          domain.TransactionType `json:"type"`
	Amount        decimal.Decimal        `json:"amount"`
	CurrencyCode  string                 `json:"currencyCode"`
	CurrencyRate  decimal.Decimal        `json:"currencyRate"`
	CategoryID    *string                `json:"categoryID,omitempty"`
	PaidAt        time.Time              `json:"paidAt"`
	Description   string                 `json:"description,omitempty"`
	PaymentMethod string                 `json:"paymentMethod,omitempty"`
	Reference     string                 `json:"reference,omitempty"`
	ParentID      *string                `json:"parentID,omitempty"`
	Reconciled    bool                   `json:"reconciled"`
	CreatedAt     time.Time              `json:"createdAt"`
	CreatedBy     string                 `json:"createdBy"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy string                 `json:"lastUpdatedBy"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		CompanyID:     txn.CompanyID,
		AccountID:     txn.AccountID,
		Type:          txn.Type,
		Amount:        txn.Amount,
		CurrencyCode:  txn.CurrencyCode,
		CurrencyRate:  txn.CurrencyRate,
		CategoryID:    txn.CategoryID,
		PaidAt:        txn.PaidAt,
		Description:   txn.Description,
		PaymentMethod: txn.PaymentMethod,
		Reference:     txn.Reference,
		ParentID:      txn.ParentID,
		Reconciled:    txn.Reconciled,
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
		LastUpdatedAt: txn.LastUpdatedAt,
		LastUpdatedBy: txn.LastUpdatedBy,
	}
}

// ListTransactionsResponse wraps a transaction page with its cursor.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts a page of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken string) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return ListTransactionsResponse{Transactions: res, NextToken: nextToken}
}
