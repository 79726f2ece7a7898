package domain

// CategoryType groups categories for reporting purposes.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
	CategoryItem    CategoryType = "item"
	CategoryOther   CategoryType = "other"
)

// Category labels transactions for reporting. Exactly one enabled category of
// type "other" exists per company and serves as the transfer marker:
// transactions tagged with it move value between accounts and are excluded
// from income and expense totals.
type Category struct {
	CategoryID string       `json:"categoryID"` // Primary Key (UUID)
	CompanyID  string       `json:"companyID"`  // Tenant scope (NON-NULL)
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	Color      string       `json:"color"` // Nullable, UI hint
	Enabled    bool         `json:"enabled"`
	AuditFields
}

// IsTransferMarker reports whether this category serves as the company's
// transfer marker.
func (c Category) IsTransferMarker() bool {
	return c.Type == CategoryOther && c.Enabled
}
