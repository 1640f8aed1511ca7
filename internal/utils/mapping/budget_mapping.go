package mapping

import (
	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	"github.com/SscSPs/budget_master_backend/internal/models"
)

func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		AuditFields: ToModelAuditFields(d.Base),
		Position:    d.Position,
		Amount:      d.Amount,
		CurrencyID:  d.CurrencyID,
		CategoryID:  toNullInt64(d.CategoryID),
	}
}

func ToDomainBudget(m models.Budget) (domain.Budget, error) {
	base, err := ToDomainBase(m.AuditFields)
	if err != nil {
		return domain.Budget{}, err
	}
	return domain.Budget{
		Base:       base,
		Position:   m.Position,
		Amount:     m.Amount,
		CurrencyID: m.CurrencyID,
		CategoryID: fromNullInt64(m.CategoryID),
	}, nil
}

func ToDomainBudgetSlice(ms []models.Budget) ([]domain.Budget, error) {
	ds := make([]domain.Budget, len(ms))
	for i, m := range ms {
		d, err := ToDomainBudget(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
