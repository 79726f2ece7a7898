package models

// CategoryType mirrors domain.CategoryType at the storage layer.
type CategoryType string

// Category is the database representation of a transaction category.
type Category struct {
	CategoryID string       `db:"category_id"`
	CompanyID  string       `db:"company_id"`
	Name       string       `db:"name"`
	Type       CategoryType `db:"type"`
	Color      string       `db:"color"`
	Enabled    bool         `db:"enabled"`
	AuditFields
}
