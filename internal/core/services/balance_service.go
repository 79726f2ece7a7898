package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_balance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_balance_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_balance_app/internal/utils/accounting"
	"github.com/SscSPs/ledger_balance_app/internal/utils/money"
	"golang.org/x/sync/errgroup"
)

// listAccountsPageSize is the page size used when walking all accounts of a
// company for bulk balance derivation.
const listAccountsPageSize = 100

// balanceConcurrency bounds the number of per-account balance computations
// running at once during a bulk derivation.
const balanceConcurrency = 4

// balanceService derives balances from the transaction log. It holds no state
// of its own; every call assembles a fresh snapshot from the repositories.
type balanceService struct {
	BaseService
	accountRepo     portsrepo.AccountReader
	transactionRepo portsrepo.TransactionReader
	categoryRepo    portsrepo.CategoryReader
	currencySvc     portssvc.CurrencyReaderSvc
}

// NewBalanceService creates a new balance service.
func NewBalanceService(accountRepo portsrepo.AccountReader, transactionRepo portsrepo.TransactionReader, categoryRepo portsrepo.CategoryReader, currencySvc portssvc.CurrencyReaderSvc) portssvc.BalanceSvcFacade {
	return &balanceService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		currencySvc:     currencySvc,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// classifierFor builds the company's transaction classifier. A company without
// a transfer marker category classifies nothing as a transfer.
func (s *balanceService) classifierFor(ctx context.Context, companyID string) (accounting.Classifier, error) {
	transferCat, err := s.categoryRepo.FindTransferCategory(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return accounting.NewDefaultClassifier(""), nil
		}
		return accounting.Classifier{}, fmt.Errorf("failed to find transfer category: %w", err)
	}
	return accounting.NewDefaultClassifier(transferCat.CategoryID), nil
}

// balanceOf runs the balance fold for one account against a prepared snapshot.
func (s *balanceService) balanceOf(ctx context.Context, account *domain.Account, rates money.RateTable, clf accounting.Classifier) (*domain.AccountBalance, error) {
	txns, err := s.transactionRepo.FindTransactionsByAccountID(ctx, account.CompanyID, account.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for account %s: %w", account.AccountID, err)
	}

	result, err := accounting.AccountBalance(account.OpeningBalance, txns, account.CurrencyCode, rates, clf)
	if err != nil {
		return nil, fmt.Errorf("failed to derive balance for account %s: %w", account.AccountID, err)
	}

	return &domain.AccountBalance{
		AccountID:    account.AccountID,
		Name:         account.Name,
		CurrencyCode: account.CurrencyCode,
		IncomeTotal:  result.IncomeTotal,
		ExpenseTotal: result.ExpenseTotal,
		Balance:      result.Balance,
	}, nil
}

// GetAccountBalance derives the current balance of one account from its
// opening balance and full transaction log.
func (s *balanceService) GetAccountBalance(ctx context.Context, companyID, accountID string) (*domain.AccountBalance, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	rates, err := s.currencySvc.RateTable(ctx)
	if err != nil {
		return nil, err
	}

	clf, err := s.classifierFor(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return s.balanceOf(ctx, account, rates, clf)
}

// ListAccountBalances derives balances for every enabled account of a company.
// All accounts share one rate snapshot so the balances are mutually consistent.
func (s *balanceService) ListAccountBalances(ctx context.Context, companyID string) ([]domain.AccountBalance, error) {
	rates, err := s.currencySvc.RateTable(ctx)
	if err != nil {
		return nil, err
	}

	clf, err := s.classifierFor(ctx, companyID)
	if err != nil {
		return nil, err
	}

	var accounts []domain.Account
	for offset := 0; ; offset += listAccountsPageSize {
		page, err := s.accountRepo.ListAccounts(ctx, companyID, listAccountsPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		accounts = append(accounts, page...)
		if len(page) < listAccountsPageSize {
			break
		}
	}

	balances := make([]domain.AccountBalance, len(accounts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(balanceConcurrency)
	for i := range accounts {
		account := &accounts[i]
		if !account.Enabled {
			continue
		}
		idx := i
		g.Go(func() error {
			bal, err := s.balanceOf(gctx, account, rates, clf)
			if err != nil {
				return err
			}
			balances[idx] = *bal
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to derive account balances")
		return nil, err
	}

	out := make([]domain.AccountBalance, 0, len(balances))
	for i := range accounts {
		if accounts[i].Enabled {
			out = append(out, balances[i])
		}
	}
	return out, nil
}

// GetReconciliationSummary totals an account's transactions by reconciliation
// state. Amounts are summed as recorded, without currency normalization.
func (s *balanceService) GetReconciliationSummary(ctx context.Context, companyID, accountID string) (*domain.ReconciliationSummary, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID); err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	txns, err := s.transactionRepo.FindTransactionsByAccountID(ctx, companyID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for account %s: %w", accountID, err)
	}

	reconciled := accounting.SumPaid(accounting.Reconciled(txns, true))
	unreconciled := accounting.SumPaid(accounting.Reconciled(txns, false))

	return &domain.ReconciliationSummary{
		AccountID:         accountID,
		ReconciledTotal:   reconciled,
		UnreconciledTotal: unreconciled,
		Total:             reconciled.Add(unreconciled),
	}, nil
}
