package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_balance_app/internal/apperrors"
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	"github.com/SscSPs/ledger_balance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// AmountForAccount normalizes a transaction's amount into the account's
// currency. A transaction recorded in the account currency passes through
// unchanged; otherwise conversion uses the rate recorded on the transaction
// and the account currency's snapshot rate from the table.
func AmountForAccount(txn domain.Transaction, accountCurrency string, rates money.RateTable) (decimal.Decimal, error) {
	if txn.CurrencyCode == accountCurrency {
		return txn.Amount, nil
	}
	toRate, err := rates.Rate(accountCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	return money.ConvertBetween(txn.Amount, txn.CurrencyCode, txn.CurrencyRate, accountCurrency, toRate)
}

// BalanceResult carries the balance fold's totals alongside the final balance.
type BalanceResult struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Balance      decimal.Decimal
}

// AccountBalance derives an account's current balance from its opening
// balance and transaction log:
//
//	balance = opening + sum(normalized income) - sum(normalized expense)
//
// Transfers and unclassified transactions are excluded from both sums. The
// fold is a pure function of its inputs; recomputing with the same snapshot
// always yields the same result, and an empty transaction set returns exactly
// the opening balance.
func AccountBalance(opening decimal.Decimal, txns []domain.Transaction, accountCurrency string, rates money.RateTable, clf Classifier) (BalanceResult, error) {
	income := decimal.Zero
	expense := decimal.Zero

	for _, txn := range txns {
		if txn.Amount.LessThanOrEqual(decimal.Zero) {
			return BalanceResult{}, fmt.Errorf("%w: transaction %s has amount %s", apperrors.ErrMalformedAmount, txn.TransactionID, txn.Amount.String())
		}

		kind := clf.Classify(txn)
		if kind == domain.KindTransfer || kind == domain.KindOther {
			continue
		}

		amount, err := AmountForAccount(txn, accountCurrency, rates)
		if err != nil {
			return BalanceResult{}, fmt.Errorf("normalizing transaction %s: %w", txn.TransactionID, err)
		}

		switch kind {
		case domain.KindIncome:
			income = income.Add(amount)
		case domain.KindExpense:
			expense = expense.Add(amount)
		}
	}

	return BalanceResult{
		IncomeTotal:  income,
		ExpenseTotal: expense,
		Balance:      opening.Add(income).Sub(expense),
	}, nil
}
