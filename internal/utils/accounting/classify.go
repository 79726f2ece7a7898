package accounting

import (
	"github.com/SscSPs/ledger_balance_app/internal/core/domain"
)

// Classifier tags transactions as income, expense, transfer or other for
// balance aggregation. Membership of the income and expense sets is
// enumerated by the caller; the transfer category always wins over the
// declared type.
type Classifier struct {
	incomeTypes        map[domain.TransactionType]struct{}
	expenseTypes       map[domain.TransactionType]struct{}
	transferCategoryID string
}

// DefaultIncomeTypes is the standard income membership set.
func DefaultIncomeTypes() []domain.TransactionType {
	return []domain.TransactionType{domain.TypeIncome, domain.TypeRevenue}
}

// DefaultExpenseTypes is the standard expense membership set.
func DefaultExpenseTypes() []domain.TransactionType {
	return []domain.TransactionType{domain.TypeExpense, domain.TypePayment}
}

// NewClassifier builds a Classifier from explicit membership sets and the
// company's transfer category ID.
func NewClassifier(incomeTypes, expenseTypes []domain.TransactionType, transferCategoryID string) Classifier {
	c := Classifier{
		incomeTypes:        make(map[domain.TransactionType]struct{}, len(incomeTypes)),
		expenseTypes:       make(map[domain.TransactionType]struct{}, len(expenseTypes)),
		transferCategoryID: transferCategoryID,
	}
	for _, t := range incomeTypes {
		c.incomeTypes[t] = struct{}{}
	}
	for _, t := range expenseTypes {
		c.expenseTypes[t] = struct{}{}
	}
	return c
}

// NewDefaultClassifier builds a Classifier with the standard membership sets.
func NewDefaultClassifier(transferCategoryID string) Classifier {
	return NewClassifier(DefaultIncomeTypes(), DefaultExpenseTypes(), transferCategoryID)
}

// Classify returns the kind of a transaction. A transaction tagged with the
// transfer category is always a transfer regardless of its declared type.
// Unrecognized types classify as Other so new transaction kinds never break
// balance computation.
func (c Classifier) Classify(txn domain.Transaction) domain.TransactionKind {
	if c.transferCategoryID != "" && txn.CategoryID != nil && *txn.CategoryID == c.transferCategoryID {
		return domain.KindTransfer
	}
	if _, ok := c.incomeTypes[txn.Type]; ok {
		return domain.KindIncome
	}
	if _, ok := c.expenseTypes[txn.Type]; ok {
		return domain.KindExpense
	}
	return domain.KindOther
}
