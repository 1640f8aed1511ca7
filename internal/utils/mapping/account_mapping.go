package mapping

import (
	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	"github.com/SscSPs/budget_master_backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AuditFields:                    ToModelAuditFields(d.Base),
		Position:                       d.Position,
		Title:                          d.Title,
		Amount:                         d.Amount,
		Type:                           int(d.Type),
		CurrencyID:                     d.CurrencyID,
		Closed:                         d.Closed,
		CreditCardLimit:                toNullInt64(d.CreditCardLimit),
		CreditCardCategoryID:           toNullInt64(d.CreditCardCategoryID),
		CreditCardCommissionCategoryID: toNullInt64(d.CreditCardCommissionCategoryID),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) (domain.Account, error) {
	base, err := ToDomainBase(m.AuditFields)
	if err != nil {
		return domain.Account{}, err
	}
	return domain.Account{
		Base:                           base,
		Position:                       m.Position,
		Title:                          m.Title,
		Amount:                         m.Amount,
		Type:                           domain.AccountType(m.Type),
		CurrencyID:                     m.CurrencyID,
		Closed:                         m.Closed,
		CreditCardLimit:                fromNullInt64(m.CreditCardLimit),
		CreditCardCategoryID:           fromNullInt64(m.CreditCardCategoryID),
		CreditCardCommissionCategoryID: fromNullInt64(m.CreditCardCommissionCategoryID),
	}, nil
}

// ToDomainAccountSlice converts a slice of model Accounts to domain Accounts
func ToDomainAccountSlice(ms []models.Account) ([]domain.Account, error) {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		d, err := ToDomainAccount(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
