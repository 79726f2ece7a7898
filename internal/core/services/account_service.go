package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_balance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_balance_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_balance_app/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the account service facade.
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepository
	currencyRepo portsrepo.CurrencyRepository
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepository, currencyRepo portsrepo.CurrencyRepository) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount validates the currency reference and persists a new account.
func (s *accountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	currencyCode := strings.ToUpper(req.CurrencyCode)

	_, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, currencyCode)
		}
		return nil, fmt.Errorf("failed to validate currency '%s': %w", currencyCode, err)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		CompanyID:      companyID,
		Name:           req.Name,
		Number:         req.Number,
		CurrencyCode:   currencyCode,
		OpeningBalance: req.OpeningBalance,
		BankName:       req.BankName,
		BankPhone:      req.BankPhone,
		BankAddress:    req.BankAddress,
		Enabled:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account")
		return nil, fmt.Errorf("failed to create account in service: %w", err)
	}

	return &account, nil
}

// GetAccountByID retrieves a specific account.
func (s *accountService) GetAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account by ID in service: %w", err)
	}
	return account, nil
}

// ListAccounts retrieves accounts, honoring exact-match name/number scopes.
func (s *accountService) ListAccounts(ctx context.Context, companyID string, params dto.ListAccountsParams) ([]domain.Account, error) {
	var (
		accounts []domain.Account
		err      error
	)

	switch {
	case params.Name != "":
		accounts, err = s.accountRepo.FindAccountsByName(ctx, companyID, params.Name)
	case params.Number != "":
		accounts, err = s.accountRepo.FindAccountsByNumber(ctx, companyID, params.Number)
	default:
		accounts, err = s.accountRepo.ListAccounts(ctx, companyID, params.Limit, params.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts in service: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// UpdateAccount applies the provided field updates to an existing account.
func (s *accountService) UpdateAccount(ctx context.Context, companyID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s for update: %w", accountID, err)
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Number != nil {
		account.Number = *req.Number
	}
	if req.BankName != nil {
		account.BankName = *req.BankName
	}
	if req.BankPhone != nil {
		account.BankPhone = *req.BankPhone
	}
	if req.BankAddress != nil {
		account.BankAddress = *req.BankAddress
	}
	if req.Enabled != nil {
		account.Enabled = *req.Enabled
	}

	now := time.Now().UTC()
	account.LastUpdatedAt = now
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account")
		return nil, fmt.Errorf("failed to update account in service: %w", err)
	}

	return account, nil
}

// DisableAccount marks an account as disabled.
func (s *accountService) DisableAccount(ctx context.Context, companyID, accountID string, userID string) error {
	if err := s.accountRepo.DisableAccount(ctx, companyID, accountID, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to disable account")
		return fmt.Errorf("failed to disable account in service: %w", err)
	}
	return nil
}
