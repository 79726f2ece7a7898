package repositories

// RepositoryProvider bundles the repositories the service layer depends on.
type RepositoryProvider struct {
	AccountRepo     AccountRepository
	TransactionRepo TransactionRepository
	CategoryRepo    CategoryRepository
	CurrencyRepo    CurrencyRepository
}
