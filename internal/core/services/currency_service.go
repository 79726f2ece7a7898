package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_balance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_balance_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_balance_app/internal/dto"
	"github.com/SscSPs/ledger_balance_app/internal/utils/money"
)

// currencyService implements the currency service facade.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepository
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// CreateCurrency registers a currency with its snapshot rate against the base
// currency. A non-positive rate is rejected.
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: rate must be positive, got %s", apperrors.ErrInvalidRate, req.Rate)
	}

	precision := req.Precision
	if precision <= 0 {
		precision = money.ConversionScale
	}

	now := time.Now().UTC()
	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Name:         req.Name,
		Symbol:       req.Symbol,
		Rate:         req.Rate,
		Precision:    precision,
		Enabled:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency")
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	return &currency, nil
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all available currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		currencies = []domain.Currency{}
	}
	return currencies, nil
}

// RateTable assembles a rate snapshot from the enabled currencies. Balances
// derived from one snapshot are consistent with each other.
func (s *currencyService) RateTable(ctx context.Context) (money.RateTable, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate table in service: %w", err)
	}

	table := make(money.RateTable, len(currencies))
	for _, cur := range currencies {
		if !cur.Enabled {
			continue
		}
		table[cur.CurrencyCode] = cur.Rate
	}
	return table, nil
}
