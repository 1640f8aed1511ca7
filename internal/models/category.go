package models

import "database/sql"

// Category is a row of the categories table.
type Category struct {
	AuditFields
	Position      int           `db:"position"`
	Title         string        `db:"title"`
	OperationType int           `db:"operation_type"`
	Type          int           `db:"type"`
	ParentID      sql.NullInt64 `db:"parent_id"`
}

// CategoryColumns lists the selectable columns of the categories table.
var CategoryColumns = columns("position", "title", "operation_type", "type", "parent_id")

// Values returns every column except id.
func (c Category) Values() map[string]any {
	return merge(c.AuditFields.Values(), map[string]any{
		"position":       c.Position,
		"title":          c.Title,
		"operation_type": c.OperationType,
		"type":           c.Type,
		"parent_id":      c.ParentID,
	})
}
