package models

import "database/sql"

// Account is a row of the accounts table.
type Account struct {
	AuditFields
	Position                       int           `db:"position"`
	Title                          string        `db:"title"`
	Amount                         int64         `db:"amount"`
	Type                           int           `db:"type"`
	CurrencyID                     int64         `db:"currency_id"`
	Closed                         int           `db:"closed"`
	CreditCardLimit                sql.NullInt64 `db:"credit_card_limit"`
	CreditCardCategoryID           sql.NullInt64 `db:"credit_card_category_id"`
	CreditCardCommissionCategoryID sql.NullInt64 `db:"credit_card_commission_category_id"`
}

// AccountColumns lists the selectable columns of the accounts table.
var AccountColumns = columns("position", "title", "amount", "type", "currency_id", "closed",
	"credit_card_limit", "credit_card_category_id", "credit_card_commission_category_id")

// Values returns every column except id.
func (a Account) Values() map[string]any {
	return merge(a.AuditFields.Values(), map[string]any{
		"position":                           a.Position,
		"title":                              a.Title,
		"amount":                             a.Amount,
		"type":                               a.Type,
		"currency_id":                        a.CurrencyID,
		"closed":                             a.Closed,
		"credit_card_limit":                  a.CreditCardLimit,
		"credit_card_category_id":            a.CreditCardCategoryID,
		"credit_card_commission_category_id": a.CreditCardCommissionCategoryID,
	})
}
