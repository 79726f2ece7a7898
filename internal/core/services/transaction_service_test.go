package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_balance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_balance_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_balance_app/internal/core/services"
	"github.com/SscSPs/ledger_balance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByName(ctx context.Context, companyID, name string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByNumber(ctx context.Context, companyID, number string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DisableAccount(ctx context.Context, companyID, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, companyID, accountID, userID, now)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, companyID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByAccountID(ctx context.Context, companyID, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, companyID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, companyID, filter)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkReconciled(ctx context.Context, companyID, transactionID string, reconciled bool, userID string, now time.Time) error {
	args := m.Called(ctx, companyID, transactionID, reconciled, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	mockCatRepo     *MockCategoryRepository
	service         portssvc.TransactionSvcFacade
	companyID       string
	accountID       string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCatRepo = new(MockCategoryRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAccountRepo, suite.mockCatRepo)
	suite.companyID = uuid.NewString()
	suite.accountID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) validRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		AccountID:    suite.accountID,
		Type:         domain.TypeIncome,
		Amount:       decimal.RequireFromString("150.00"),
		CurrencyCode: "USD",
		CurrencyRate: decimal.NewFromInt(1),
		PaidAt:       time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Description:  "Invoice payment",
	}
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := suite.validRequest()
	account := &domain.Account{AccountID: suite.accountID, CompanyID: suite.companyID, CurrencyCode: "USD"}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.companyID, suite.accountID).Return(account, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.CompanyID == suite.companyID && t.AccountID == suite.accountID && t.Amount.Equal(req.Amount) && !t.Reconciled && t.CreatedBy == creatorUserID
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.companyID, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.TypeIncome, txn.Type)
	suite.False(txn.Reconciled)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_WithCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := suite.validRequest()
	req.CategoryID = &categoryID
	account := &domain.Account{AccountID: suite.accountID, CompanyID: suite.companyID}
	category := &domain.Category{CategoryID: categoryID, CompanyID: suite.companyID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.companyID, suite.accountID).Return(account, nil).Once()
	suite.mockCatRepo.On("FindCategoryByID", ctx, suite.companyID, categoryID).Return(category, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.companyID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(txn.CategoryID)
	suite.Equal(categoryID, *txn.CategoryID)
	suite.mockCatRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AccountNotFound() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.companyID, suite.accountID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.companyID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CategoryNotFound() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := suite.validRequest()
	req.CategoryID = &categoryID
	account := &domain.Account{AccountID: suite.accountID, CompanyID: suite.companyID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.companyID, suite.accountID).Return(account, nil).Once()
	suite.mockCatRepo.On("FindCategoryByID", ctx, suite.companyID, categoryID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.companyID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Amount = decimal.Zero
	account := &domain.Account{AccountID: suite.accountID, CompanyID: suite.companyID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.companyID, suite.accountID).Return(account, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.companyID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrMalformedAmount)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveRate() {
	ctx := context.Background()
	req := suite.validRequest()
	req.CurrencyRate = decimal.Zero
	account := &domain.Account{AccountID: suite.accountID, CompanyID: suite.companyID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.companyID, suite.accountID).Return(account, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.companyID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInvalidRate)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_Success() {
	ctx := context.Background()
	expected := &domain.Transaction{TransactionID: uuid.NewString(), CompanyID: suite.companyID}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.companyID, expected.TransactionID).Return(expected, nil).Once()

	txn, err := suite.service.GetTransactionByID(ctx, suite.companyID, expected.TransactionID)

	suite.Require().NoError(err)
	suite.Equal(expected, txn)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.companyID, transactionID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.GetTransactionByID(ctx, suite.companyID, transactionID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_MapsParamsToFilter() {
	ctx := context.Background()
	paidFrom := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	paidTo := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	reconciled := true
	types := []domain.TransactionType{domain.TypeIncome, domain.TypeExpense}
	params := dto.ListTransactionsParams{
		AccountID:  suite.accountID,
		Types:      types,
		Reconciled: &reconciled,
		PaidFrom:   &paidFrom,
		PaidTo:     &paidTo,
		Limit:      25,
		NextToken:  "tok-1",
	}
	expected := []domain.Transaction{{TransactionID: uuid.NewString()}}

	suite.mockTxnRepo.On("ListTransactions", ctx, suite.companyID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.AccountID == suite.accountID && f.Reconciled != nil && *f.Reconciled &&
			len(f.Types) == 2 && f.Types[0] == domain.TypeIncome && f.Types[1] == domain.TypeExpense &&
			f.PaidFrom.Equal(paidFrom) && f.PaidTo.Equal(paidTo) && f.Limit == 25 && f.NextToken == "tok-1"
	})).Return(expected, "tok-2", nil).Once()

	txns, nextToken, err := suite.service.ListTransactions(ctx, suite.companyID, params)

	suite.Require().NoError(err)
	suite.Equal(expected, txns)
	suite.Equal("tok-2", nextToken)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockTxnRepo.On("ListTransactions", ctx, suite.companyID, mock.AnythingOfType("repositories.TransactionFilter")).Return(nil, "", expectedErr).Once()

	txns, nextToken, err := suite.service.ListTransactions(ctx, suite.companyID, dto.ListTransactionsParams{})

	suite.Require().Error(err)
	suite.Nil(txns)
	suite.Empty(nextToken)
	suite.ErrorIs(err, expectedErr)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestSetReconciled_Success() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockTxnRepo.On("MarkReconciled", ctx, suite.companyID, transactionID, true, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.SetReconciled(ctx, suite.companyID, transactionID, true, userID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestSetReconciled_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockTxnRepo.On("MarkReconciled", ctx, suite.companyID, transactionID, false, userID, mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	err := suite.service.SetReconciled(ctx, suite.companyID, transactionID, false, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
