package models

import "database/sql"

// Operation is a row of the operations table.
type Operation struct {
	AuditFields
	Type         int           `db:"type"`
	Date         string        `db:"date"`
	Amount       int64         `db:"amount"`
	Comment      string        `db:"comment"`
	CategoryID   int64         `db:"category_id"`
	AccountID    int64         `db:"account_id"`
	CurrencyID   int64         `db:"currency_id"`
	ToAccountID  sql.NullInt64 `db:"to_account_id"`
	ToCurrencyID sql.NullInt64 `db:"to_currency_id"`
	ToAmount     sql.NullInt64 `db:"to_amount"`
}

// OperationColumns lists the selectable columns of the operations table.
var OperationColumns = columns("type", "date", "amount", "comment", "category_id", "account_id",
	"currency_id", "to_account_id", "to_currency_id", "to_amount")

// Values returns every column except id.
func (o Operation) Values() map[string]any {
	return merge(o.AuditFields.Values(), map[string]any{
		"type":           o.Type,
		"date":           o.Date,
		"amount":         o.Amount,
		"comment":        o.Comment,
		"category_id":    o.CategoryID,
		"account_id":     o.AccountID,
		"currency_id":    o.CurrencyID,
		"to_account_id":  o.ToAccountID,
		"to_currency_id": o.ToCurrencyID,
		"to_amount":      o.ToAmount,
	})
}
