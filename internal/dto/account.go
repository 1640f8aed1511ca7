package dto

import "github.com/SscSPs/budget_master_backend/internal/core/domain"

// AccountInput is the validated shape of an account write.
type AccountInput struct {
	Title      string             `json:"title" validate:"required,title"`
	Amount     int64              `json:"amount" validate:"gte=0"`
	Type       domain.AccountType `json:"type" validate:"oneof=1 2 3"`
	CurrencyID int64              `json:"currency_id" validate:"gt=0"`
	Closed     int                `json:"closed" validate:"oneof=0 1"`
	// The credit card fields are only validated when present.
	CreditCardLimit                *int64 `json:"credit_card_limit" validate:"omitempty,gte=0"`
	CreditCardCategoryID           *int64 `json:"credit_card_category_id" validate:"omitempty,gt=0"`
	CreditCardCommissionCategoryID *int64 `json:"credit_card_commission_category_id" validate:"omitempty,gt=0"`
}

// NewAccountInput captures the writable fields of a.
func NewAccountInput(a domain.Account) AccountInput {
	return AccountInput{
		Title:                          a.Title,
		Amount:                         a.Amount,
		Type:                           a.Type,
		CurrencyID:                     a.CurrencyID,
		Closed:                         a.Closed,
		CreditCardLimit:                a.CreditCardLimit,
		CreditCardCategoryID:           a.CreditCardCategoryID,
		CreditCardCommissionCategoryID: a.CreditCardCommissionCategoryID,
	}
}

// AccountParams are the optional defaults of an account get-or-create.
// Absent fields take their defaults on create and are left alone otherwise.
type AccountParams struct {
	Amount     domain.Optional[int64]
	Type       domain.Optional[domain.AccountType]
	CurrencyID domain.Optional[int64]
	Closed     domain.Optional[int]
}

// Patch turns the supplied params into an update.
func (p AccountParams) Patch() AccountPatch {
	return AccountPatch{Amount: p.Amount, Type: p.Type, CurrencyID: p.CurrencyID, Closed: p.Closed}
}

// AccountPatch lists the account fields an update may change.
type AccountPatch struct {
	Title                          domain.Optional[string]
	Amount                         domain.Optional[int64]
	Type                           domain.Optional[domain.AccountType]
	CurrencyID                     domain.Optional[int64]
	Closed                         domain.Optional[int]
	CreditCardLimit                domain.Optional[*int64]
	CreditCardCategoryID           domain.Optional[*int64]
	CreditCardCommissionCategoryID domain.Optional[*int64]
}

// HasChanges reports whether any field was supplied.
func (p AccountPatch) HasChanges() bool {
	return p.Title.IsSet() || p.Amount.IsSet() || p.Type.IsSet() || p.CurrencyID.IsSet() ||
		p.Closed.IsSet() || p.CreditCardLimit.IsSet() || p.CreditCardCategoryID.IsSet() ||
		p.CreditCardCommissionCategoryID.IsSet()
}

// Apply overlays the supplied fields onto a.
func (p AccountPatch) Apply(a *domain.Account) {
	if v, ok := p.Title.Get(); ok {
		a.Title = v
	}
	if v, ok := p.Amount.Get(); ok {
		a.Amount = v
	}
	if v, ok := p.Type.Get(); ok {
		a.Type = v
	}
	if v, ok := p.CurrencyID.Get(); ok {
		a.CurrencyID = v
	}
	if v, ok := p.Closed.Get(); ok {
		a.Closed = v
	}
	if v, ok := p.CreditCardLimit.Get(); ok {
		a.CreditCardLimit = v
	}
	if v, ok := p.CreditCardCategoryID.Get(); ok {
		a.CreditCardCategoryID = v
	}
	if v, ok := p.CreditCardCommissionCategoryID.Get(); ok {
		a.CreditCardCommissionCategoryID = v
	}
}
