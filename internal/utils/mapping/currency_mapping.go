package mapping

import (
	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	"github.com/SscSPs/budget_master_backend/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		AuditFields: ToModelAuditFields(d.Base),
		Position:    d.Position,
		Title:       d.Title,
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) (domain.Currency, error) {
	base, err := ToDomainBase(m.AuditFields)
	if err != nil {
		return domain.Currency{}, err
	}
	return domain.Currency{Base: base, Position: m.Position, Title: m.Title}, nil
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) ([]domain.Currency, error) {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		d, err := ToDomainCurrency(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
