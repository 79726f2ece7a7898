package domain_test

import (
	"testing"

	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	valid := domain.Transaction{
		TransactionID: "txn_123",
		AccountID:     "acc_123",
		Type:          domain.TypeRevenue,
		Amount:        decimal.NewFromFloat(100.00),
		CurrencyCode:  "USD",
		CurrencyRate:  decimal.NewFromInt(1),
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Transaction)
		wantErr string
	}{
		{
			name:   "valid transaction",
			mutate: func(tx *domain.Transaction) {},
		},
		{
			name:    "missing account",
			mutate:  func(tx *domain.Transaction) { tx.AccountID = "" },
			wantErr: "no account reference",
		},
		{
			name:    "zero amount",
			mutate:  func(tx *domain.Transaction) { tx.Amount = decimal.Zero },
			wantErr: "amount must be positive",
		},
		{
			name:    "negative amount",
			mutate:  func(tx *domain.Transaction) { tx.Amount = decimal.NewFromInt(-5) },
			wantErr: "amount must be positive",
		},
		{
			name:    "missing currency code",
			mutate:  func(tx *domain.Transaction) { tx.CurrencyCode = "" },
			wantErr: "no currency code",
		},
		{
			name:    "non-positive currency rate",
			mutate:  func(tx *domain.Transaction) { tx.CurrencyRate = decimal.Zero },
			wantErr: "rate must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestTransaction_IsRecurringInstance(t *testing.T) {
	parentID := "txn_parent"
	empty := ""

	assert.False(t, domain.Transaction{}.IsRecurringInstance())
	assert.False(t, domain.Transaction{ParentID: &empty}.IsRecurringInstance())
	assert.True(t, domain.Transaction{ParentID: &parentID}.IsRecurringInstance())
}

func TestCategory_IsTransferMarker(t *testing.T) {
	assert.True(t, domain.Category{Type: domain.CategoryOther, Enabled: true}.IsTransferMarker())
	assert.False(t, domain.Category{Type: domain.CategoryOther, Enabled: false}.IsTransferMarker())
	assert.False(t, domain.Category{Type: domain.CategoryExpense, Enabled: true}.IsTransferMarker())
}
