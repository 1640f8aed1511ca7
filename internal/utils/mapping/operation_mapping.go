package mapping

import (
	"fmt"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	"github.com/SscSPs/budget_master_backend/internal/models"
	"github.com/SscSPs/budget_master_backend/internal/utils/timefmt"
)

// ToModelOperation converts a domain Operation to a model Operation
func ToModelOperation(d domain.Operation) models.Operation {
	return models.Operation{
		AuditFields:  ToModelAuditFields(d.Base),
		Type:         int(d.Type),
		Date:         timefmt.Format(d.Date),
		Amount:       d.Amount,
		Comment:      d.Comment,
		CategoryID:   d.CategoryID,
		AccountID:    d.AccountID,
		CurrencyID:   d.CurrencyID,
		ToAccountID:  toNullInt64(d.ToAccountID),
		ToCurrencyID: toNullInt64(d.ToCurrencyID),
		ToAmount:     toNullInt64(d.ToAmount),
	}
}

// ToDomainOperation converts a model Operation to a domain Operation
func ToDomainOperation(m models.Operation) (domain.Operation, error) {
	base, err := ToDomainBase(m.AuditFields)
	if err != nil {
		return domain.Operation{}, err
	}
	date, err := timefmt.Parse(m.Date)
	if err != nil {
		return domain.Operation{}, fmt.Errorf("row %d date: %w", m.ID, err)
	}
	op := domain.Operation{
		Base:         base,
		Type:         domain.OperationType(m.Type),
		Amount:       m.Amount,
		Comment:      m.Comment,
		CategoryID:   m.CategoryID,
		AccountID:    m.AccountID,
		CurrencyID:   m.CurrencyID,
		ToAccountID:  fromNullInt64(m.ToAccountID),
		ToCurrencyID: fromNullInt64(m.ToCurrencyID),
		ToAmount:     fromNullInt64(m.ToAmount),
	}
	if date != nil {
		op.Date = *date
	}
	return op, nil
}

// ToDomainOperationSlice converts a slice of model Operations to domain Operations
func ToDomainOperationSlice(ms []models.Operation) ([]domain.Operation, error) {
	ds := make([]domain.Operation, len(ms))
	for i, m := range ms {
		d, err := ToDomainOperation(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
