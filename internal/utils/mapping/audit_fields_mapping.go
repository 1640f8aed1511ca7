package mapping

import (
	"database/sql"
	"fmt"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	"github.com/SscSPs/budget_master_backend/internal/models"
	"github.com/SscSPs/budget_master_backend/internal/utils/timefmt"
)

// ToModelAuditFields converts a domain Base to model AuditFields
func ToModelAuditFields(d domain.Base) models.AuditFields {
	return models.AuditFields{
		ID:         d.ID,
		CreateTime: timefmt.Format(d.CreateTime),
		UpdateTime: toNullString(timefmt.FormatPtr(d.UpdateTime)),
		DeleteTime: toNullString(timefmt.FormatPtr(d.DeleteTime)),
		CreatedBy:  toNullString(d.CreatedBy),
		UpdatedBy:  toNullString(d.UpdatedBy),
		DeletedBy:  toNullString(d.DeletedBy),
	}
}

// ToDomainBase converts model AuditFields to a domain Base. It fails on a
// timestamp that is not in canonical form.
func ToDomainBase(m models.AuditFields) (domain.Base, error) {
	created, err := timefmt.Parse(m.CreateTime)
	if err != nil {
		return domain.Base{}, fmt.Errorf("row %d create_time: %w", m.ID, err)
	}
	updated, err := timefmt.ParsePtr(fromNullString(m.UpdateTime))
	if err != nil {
		return domain.Base{}, fmt.Errorf("row %d update_time: %w", m.ID, err)
	}
	deleted, err := timefmt.ParsePtr(fromNullString(m.DeleteTime))
	if err != nil {
		return domain.Base{}, fmt.Errorf("row %d delete_time: %w", m.ID, err)
	}

	b := domain.Base{
		ID:         m.ID,
		UpdateTime: updated,
		DeleteTime: deleted,
		CreatedBy:  fromNullString(m.CreatedBy),
		UpdatedBy:  fromNullString(m.UpdatedBy),
		DeletedBy:  fromNullString(m.DeletedBy),
	}
	if created != nil {
		b.CreateTime = *created
	}
	return b, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	s := n.String
	return &s
}

func toNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func fromNullInt64(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
