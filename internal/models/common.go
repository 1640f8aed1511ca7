package models

import "database/sql"

// AuditFields mirrors the identity and audit columns every table carries.
// Timestamps are canonical text, see timefmt.
type AuditFields struct {
	ID         int64          `db:"id"`
	CreateTime string         `db:"create_time"`
	UpdateTime sql.NullString `db:"update_time"`
	DeleteTime sql.NullString `db:"delete_time"`
	CreatedBy  sql.NullString `db:"created_by"`
	UpdatedBy  sql.NullString `db:"updated_by"`
	DeletedBy  sql.NullString `db:"deleted_by"`
}

// AuditColumns lists the columns of AuditFields in declaration order.
var AuditColumns = []string{"id", "create_time", "update_time", "delete_time", "created_by", "updated_by", "deleted_by"}

// Values returns the column values of AuditFields without the id, keyed by column.
func (a AuditFields) Values() map[string]any {
	return map[string]any{
		"create_time": a.CreateTime,
		"update_time": a.UpdateTime,
		"delete_time": a.DeleteTime,
		"created_by":  a.CreatedBy,
		"updated_by":  a.UpdatedBy,
		"deleted_by":  a.DeletedBy,
	}
}

func columns(specific ...string) []string {
	out := make([]string, 0, len(AuditColumns)+len(specific))
	out = append(out, AuditColumns...)
	return append(out, specific...)
}

func merge(base map[string]any, specific map[string]any) map[string]any {
	for k, v := range specific {
		base[k] = v
	}
	return base
}
