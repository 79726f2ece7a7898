package mapping

import (
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	"github.com/SscSPs/ledger_balance_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		CompanyID:      d.CompanyID,
		Name:           d.Name,
		Number:         d.Number,
		CurrencyCode:   d.CurrencyCode,
		OpeningBalance: d.OpeningBalance,
		BankName:       d.BankName,
		BankPhone:      d.BankPhone,
		BankAddress:    d.BankAddress,
		Enabled:        d.Enabled,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		CompanyID:      m.CompanyID,
		Name:           m.Name,
		Number:         m.Number,
		CurrencyCode:   m.CurrencyCode,
		OpeningBalance: m.OpeningBalance,
		BankName:       m.BankName,
		BankPhone:      m.BankPhone,
		BankAddress:    m.BankAddress,
		Enabled:        m.Enabled,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to domain Accounts.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
