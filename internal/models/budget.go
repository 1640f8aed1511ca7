package models

import "database/sql"

// Budget is a row of the budgets table.
type Budget struct {
	AuditFields
	Position   int           `db:"position"`
	Amount     int64         `db:"amount"`
	CurrencyID int64         `db:"currency_id"`
	CategoryID sql.NullInt64 `db:"category_id"`
}

// BudgetColumns lists the selectable columns of the budgets table.
var BudgetColumns = columns("position", "amount", "currency_id", "category_id")

// Values returns every column except id.
func (b Budget) Values() map[string]any {
	return merge(b.AuditFields.Values(), map[string]any{
		"position":    b.Position,
		"amount":      b.Amount,
		"currency_id": b.CurrencyID,
		"category_id": b.CategoryID,
	})
}
