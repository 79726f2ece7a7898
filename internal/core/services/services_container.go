package services

import (
	portsrepo "github.com/SscSPs/ledger_balance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_balance_app/internal/core/ports/services"
)

// NewServiceContainer wires the service layer from the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	currencySvc := NewCurrencyService(repos.CurrencyRepo)

	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo, repos.CurrencyRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo),
		Category:    NewCategoryService(repos.CategoryRepo),
		Currency:    currencySvc,
		Balance:     NewBalanceService(repos.AccountRepo, repos.TransactionRepo, repos.CategoryRepo, currencySvc),
	}
}
