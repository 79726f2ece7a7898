package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Collection scopes over in-memory snapshots, equivalent to the named query
// scopes of the persistence layer. All of them are pure: they return fresh
// slices and never mutate their input.

// AccountsByName filters accounts by exact name match.
func AccountsByName(accounts []domain.Account, name string) []domain.Account {
	out := make([]domain.Account, 0)
	for _, a := range accounts {
		if a.Name == name {
			out = append(out, a)
		}
	}
	return out
}

// AccountsByNumber filters accounts by exact number match.
func AccountsByNumber(accounts []domain.Account, number string) []domain.Account {
	out := make([]domain.Account, 0)
	for _, a := range accounts {
		if a.Number == number {
			out = append(out, a)
		}
	}
	return out
}

// ForAccount returns the transactions belonging to one account.
func ForAccount(txns []domain.Transaction, accountID string) []domain.Transaction {
	out := make([]domain.Transaction, 0)
	for _, t := range txns {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	return out
}

// IncomeOf returns the transactions the classifier tags as income.
func IncomeOf(clf Classifier, txns []domain.Transaction) []domain.Transaction {
	return ofKind(clf, txns, domain.KindIncome)
}

// ExpenseOf returns the transactions the classifier tags as expense.
func ExpenseOf(clf Classifier, txns []domain.Transaction) []domain.Transaction {
	return ofKind(clf, txns, domain.KindExpense)
}

// TransfersOf returns the transactions the classifier tags as transfers.
func TransfersOf(clf Classifier, txns []domain.Transaction) []domain.Transaction {
	return ofKind(clf, txns, domain.KindTransfer)
}

func ofKind(clf Classifier, txns []domain.Transaction, kind domain.TransactionKind) []domain.Transaction {
	out := make([]domain.Transaction, 0)
	for _, t := range txns {
		if clf.Classify(t) == kind {
			out = append(out, t)
		}
	}
	return out
}

// Reconciled filters transactions by reconciliation state.
func Reconciled(txns []domain.Transaction, flag bool) []domain.Transaction {
	out := make([]domain.Transaction, 0)
	for _, t := range txns {
		if t.Reconciled == flag {
			out = append(out, t)
		}
	}
	return out
}

// PaidBetween filters transactions whose paid-at timestamp lies in [from, to].
// A zero bound is open on that side.
func PaidBetween(txns []domain.Transaction, from, to time.Time) []domain.Transaction {
	out := make([]domain.Transaction, 0)
	for _, t := range txns {
		if !from.IsZero() && t.PaidAt.Before(from) {
			continue
		}
		if !to.IsZero() && t.PaidAt.After(to) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Latest returns a copy of the transactions ordered by paid-at descending,
// with creation time as the tie-breaker.
func Latest(txns []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PaidAt.Equal(out[j].PaidAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].PaidAt.After(out[j].PaidAt)
	})
	return out
}

// SumPaid totals the raw amounts of the given transactions, used for
// reconciliation reporting. No currency normalization is applied.
func SumPaid(txns []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		sum = sum.Add(t.Amount)
	}
	return sum
}
