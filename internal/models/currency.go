package models

// Currency is a row of the currencies table.
type Currency struct {
	AuditFields
	Position int    `db:"position"`
	Title    string `db:"title"`
}

// CurrencyColumns lists the selectable columns of the currencies table.
var CurrencyColumns = columns("position", "title")

// Values returns every column except id.
func (c Currency) Values() map[string]any {
	return merge(c.AuditFields.Values(), map[string]any{
		"position": c.Position,
		"title":    c.Title,
	})
}
