package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_balance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_balance_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_balance_app/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements the transaction service facade.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.AccountReader
	categoryRepo    portsrepo.CategoryReader
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountReader, categoryRepo portsrepo.CategoryReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates and persists a new transaction. The referenced
// account must exist in the company, and the category, when given, must too.
func (s *transactionService) CreateTransaction(ctx context.Context, companyID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, companyID, req.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, req.AccountID)
		}
		return nil, fmt.Errorf("failed to verify account: %w", err)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, companyID, *req.CategoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: category %s not found", apperrors.ErrValidation, *req.CategoryID)
			}
			return nil, fmt.Errorf("failed to verify category: %w", err)
		}
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		CompanyID:     companyID,
		AccountID:     req.AccountID,
		Type:          req.Type,
		Amount:        req.Amount,
		CurrencyCode:  req.CurrencyCode,
		CurrencyRate:  req.CurrencyRate,
		CategoryID:    req.CategoryID,
		PaidAt:        req.PaidAt,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		ParentID:      req.ParentID,
		Reconciled:    false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}

	return &txn, nil
}

// GetTransactionByID retrieves a specific transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, companyID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction by ID in service: %w", err)
	}
	return txn, nil
}

// ListTransactions retrieves a page of transactions ordered latest-first.
func (s *transactionService) ListTransactions(ctx context.Context, companyID string, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	filter := portsrepo.TransactionFilter{
		AccountID:  params.AccountID,
		CategoryID: params.CategoryID,
		Types:      params.Types,
		Reconciled: params.Reconciled,
		Limit:      params.Limit,
		NextToken:  params.NextToken,
	}
	if params.PaidFrom != nil {
		filter.PaidFrom = *params.PaidFrom
	}
	if params.PaidTo != nil {
		filter.PaidTo = *params.PaidTo
	}

	txns, nextToken, err := s.transactionRepo.ListTransactions(ctx, companyID, filter)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list transactions in service: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nextToken, nil
}

// SetReconciled updates a transaction's reconciliation state.
func (s *transactionService) SetReconciled(ctx context.Context, companyID, transactionID string, reconciled bool, userID string) error {
	if err := s.transactionRepo.MarkReconciled(ctx, companyID, transactionID, reconciled, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to update reconciliation state")
		return fmt.Errorf("failed to set reconciled in service: %w", err)
	}
	return nil
}
