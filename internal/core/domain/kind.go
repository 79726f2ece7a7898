package domain

// TransactionKind is the classification of a transaction for balance
// aggregation. Income adds to an account's balance, Expense subtracts,
// Transfer and Other are excluded from both sums.
type TransactionKind string

const (
	KindIncome   TransactionKind = "INCOME"
	KindExpense  TransactionKind = "EXPENSE"
	KindTransfer TransactionKind = "TRANSFER"
	KindOther    TransactionKind = "OTHER"
)
