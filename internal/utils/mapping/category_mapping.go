package mapping

import (
	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	"github.com/SscSPs/budget_master_backend/internal/models"
)

func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		AuditFields:   ToModelAuditFields(d.Base),
		Position:      d.Position,
		Title:         d.Title,
		OperationType: int(d.OperationType),
		Type:          int(d.Type),
		ParentID:      toNullInt64(d.ParentID),
	}
}

func ToDomainCategory(m models.Category) (domain.Category, error) {
	base, err := ToDomainBase(m.AuditFields)
	if err != nil {
		return domain.Category{}, err
	}
	return domain.Category{
		Base:          base,
		Position:      m.Position,
		Title:         m.Title,
		OperationType: domain.OperationType(m.OperationType),
		Type:          domain.CategoryType(m.Type),
		ParentID:      fromNullInt64(m.ParentID),
	}, nil
}

func ToDomainCategorySlice(ms []models.Category) ([]domain.Category, error) {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		d, err := ToDomainCategory(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
