package dto

import (
	"time"

	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	"github.com/SscSPs/ledger_balance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the data needed to register a currency.
type CreateCurrencyRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3,uppercase"`
	Name         string          `json:"name" binding:"required"`
	Symbol       string          `json:"symbol" binding:"required"`
	Rate         decimal.Decimal `json:"rate" binding:"required"`
	Precision    int32           `json:"precision"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode  string          `json:"currencyCode"`
	Name          string          `json:"name"`
	Symbol        string          `json:"symbol"`
	Rate          decimal.Decimal `json:"rate"`
	Precision     int32           `json:"precision"`
	Enabled       bool            `json:"enabled"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a domain.Currency to its response DTO.
func ToCurrencyResponse(cur *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:  cur.CurrencyCode,
		Name:          cur.Name,
		Symbol:        cur.Symbol,
		Rate:          cur.Rate,
		Precision:     cur.Precision,
		Enabled:       cur.Enabled,
		CreatedAt:     cur.CreatedAt,
		CreatedBy:     cur.CreatedBy,
		LastUpdatedAt: cur.LastUpdatedAt,
		LastUpdatedBy: cur.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to response DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, cur := range currencies {
		res[i] = ToCurrencyResponse(&cur)
	}
	return res
}

// RateTableResponse is the rate snapshot returned to API consumers.
type RateTableResponse struct {
	BaseCurrencyCode string                     `json:"baseCurrencyCode"`
	Rates            map[string]decimal.Decimal `json:"rates"`
}

// ToRateTableResponse converts a money.RateTable to its response DTO.
func ToRateTableResponse(baseCode string, table money.RateTable) RateTableResponse {
	rates := make(map[string]decimal.Decimal, len(table))
	for code, rate := range table {
		rates[code] = rate
	}
	return RateTableResponse{BaseCurrencyCode: baseCode, Rates: rates}
}
