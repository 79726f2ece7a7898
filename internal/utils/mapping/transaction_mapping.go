package mapping

import (
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	"github.com/SscSPs/ledger_balance_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		CompanyID:     d.CompanyID,
		AccountID:     d.AccountID,
		Type:          models.TransactionType(d.Type),
		Amount:        d.Amount,
		CurrencyCode:  d.CurrencyCode,
		CurrencyRate:  d.CurrencyRate,
		CategoryID:    d.CategoryID,
		PaidAt:        d.PaidAt,
		Description:   d.Description,
		PaymentMethod: d.PaymentMethod,
		Reference:     d.Reference,
		ParentID:      d.ParentID,
		Reconciled:    d.Reconciled,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		CompanyID:     m.CompanyID,
		AccountID:     m.AccountID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		CurrencyRate:  m.CurrencyRate,
		CategoryID:    m.CategoryID,
		PaidAt:        m.PaidAt,
		Description:   m.Description,
		PaymentMethod: m.PaymentMethod,
		Reference:     m.Reference,
		ParentID:      m.ParentID,
		Reconciled:    m.Reconciled,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
