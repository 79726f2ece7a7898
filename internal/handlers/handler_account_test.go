package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_balance_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_balance_app/internal/dto"
	"github.com/SscSPs/ledger_balance_app/internal/handlers"
	"github.com/SscSPs/ledger_balance_app/internal/middleware"
	"github.com/SscSPs/ledger_balance_app/internal/platform/config"
	"github.com/SscSPs/ledger_balance_app/internal/utils/money"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, companyID string, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, companyID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DisableAccount(ctx context.Context, companyID, accountID string, userID string) error {
	args := m.Called(ctx, companyID, accountID, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetAccountBalance(ctx context.Context, companyID, accountID string) (*domain.AccountBalance, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountBalance), args.Error(1)
}

func (m *MockBalanceService) ListAccountBalances(ctx context.Context, companyID string) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

func (m *MockBalanceService) GetReconciliationSummary(ctx context.Context, companyID, accountID string) (*domain.ReconciliationSummary, error) {
	args := m.Called(ctx, companyID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationSummary), args.Error(1)
}

var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) RateTable(ctx context.Context) (money.RateTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(money.RateTable), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	mockBalanceService *MockBalanceService
	companyID          string
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))

	suite.mockAccountService = new(MockAccountService)
	suite.mockBalanceService = new(MockBalanceService)
	suite.companyID = uuid.NewString()

	cfg := &config.Config{IsProduction: true, BaseCurrencyCode: "USD"}
	services := &portssvc.ServiceContainer{
		Account:  suite.mockAccountService,
		Balance:  suite.mockBalanceService,
		Currency: new(MockCurrencyService),
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{
		Name:           "Checking",
		Number:         "ACC-001",
		CurrencyCode:   "USD",
		OpeningBalance: decimal.RequireFromString("1000"),
	}
	created := &domain.Account{
		AccountID:      uuid.NewString(),
		CompanyID:      suite.companyID,
		Name:           req.Name,
		Number:         req.Number,
		CurrencyCode:   req.CurrencyCode,
		OpeningBalance: req.OpeningBalance,
		Enabled:        true,
	}

	suite.mockAccountService.On("CreateAccount",
		mock.AnythingOfType("*context.valueCtx"),
		suite.companyID,
		mock.MatchedBy(func(r dto.CreateAccountRequest) bool {
			return r.Name == req.Name && r.Number == req.Number && r.CurrencyCode == req.CurrencyCode
		}),
		"tester",
	).Return(created, nil).Once()

	body, _ := json.Marshal(req)
	url := fmt.Sprintf("/api/v1/companies/%s/accounts", suite.companyID)
	httpReq, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Actor-ID", "tester")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.AccountID, resp.AccountID)
	suite.Equal(created.Name, resp.Name)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidBody() {
	body := []byte(`{"name": "Checking"}`) // missing number and currency code
	url := fmt.Sprintf("/api/v1/companies/%s/accounts", suite.companyID)
	httpReq, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestGetAccountByID_NotFound() {
	accountID := uuid.NewString()

	suite.mockAccountService.On("GetAccountByID",
		mock.AnythingOfType("*context.valueCtx"),
		suite.companyID,
		accountID,
	).Return(nil, apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/accounts/%s", suite.companyID, accountID)
	httpReq, _ := http.NewRequest(http.MethodGet, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts_Success() {
	expected := []domain.Account{
		{AccountID: uuid.NewString(), CompanyID: suite.companyID, Name: "Checking"},
		{AccountID: uuid.NewString(), CompanyID: suite.companyID, Name: "Savings"},
	}

	suite.mockAccountService.On("ListAccounts",
		mock.AnythingOfType("*context.valueCtx"),
		suite.companyID,
		mock.MatchedBy(func(p dto.ListAccountsParams) bool {
			return p.Limit == 20 && p.Offset == 0
		}),
	).Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/accounts", suite.companyID)
	httpReq, _ := http.NewRequest(http.MethodGet, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListAccountsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Accounts, 2)
	suite.Equal(expected[0].AccountID, resp.Accounts[0].AccountID)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance_Success() {
	accountID := uuid.NewString()
	balance := &domain.AccountBalance{
		AccountID:    accountID,
		Name:         "Checking",
		CurrencyCode: "USD",
		IncomeTotal:  decimal.RequireFromString("500"),
		ExpenseTotal: decimal.RequireFromString("200"),
		Balance:      decimal.RequireFromString("1300"),
	}

	suite.mockBalanceService.On("GetAccountBalance",
		mock.AnythingOfType("*context.valueCtx"),
		suite.companyID,
		accountID,
	).Return(balance, nil).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/accounts/%s/balance", suite.companyID, accountID)
	httpReq, _ := http.NewRequest(http.MethodGet, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AccountBalanceResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(accountID, resp.AccountID)
	suite.True(resp.Balance.Equal(balance.Balance))
	suite.Equal("1300", resp.BalanceFormatted)
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance_MalformedLedger() {
	accountID := uuid.NewString()

	suite.mockBalanceService.On("GetAccountBalance",
		mock.AnythingOfType("*context.valueCtx"),
		suite.companyID,
		accountID,
	).Return(nil, fmt.Errorf("%w: transaction x has amount 0", apperrors.ErrMalformedAmount)).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/accounts/%s/balance", suite.companyID, accountID)
	httpReq, _ := http.NewRequest(http.MethodGet, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetReconciliationSummary_Success() {
	accountID := uuid.NewString()
	summary := &domain.ReconciliationSummary{
		AccountID:         accountID,
		ReconciledTotal:   decimal.RequireFromString("50"),
		UnreconciledTotal: decimal.RequireFromString("30"),
		Total:             decimal.RequireFromString("80"),
	}

	suite.mockBalanceService.On("GetReconciliationSummary",
		mock.AnythingOfType("*context.valueCtx"),
		suite.companyID,
		accountID,
	).Return(summary, nil).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/accounts/%s/reconciliation", suite.companyID, accountID)
	httpReq, _ := http.NewRequest(http.MethodGet, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ReconciliationSummaryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Total.Equal(summary.Total))
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestDisableAccount_Success() {
	accountID := uuid.NewString()

	suite.mockAccountService.On("DisableAccount",
		mock.AnythingOfType("*context.valueCtx"),
		suite.companyID,
		accountID,
		"system", // no X-Actor-ID header on this request
	).Return(nil).Once()

	url := fmt.Sprintf("/api/v1/companies/%s/accounts/%s", suite.companyID, accountID)
	httpReq, _ := http.NewRequest(http.MethodDelete, url, nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httpReq)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
