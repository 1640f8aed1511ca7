package dto

import (
	"time"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
)

// OperationInput is the validated shape of an operation write.
type OperationInput struct {
	Type         domain.OperationType `json:"type" validate:"oneof=1 2 3"`
	Date         time.Time            `json:"date" validate:"required"`
	Amount       int64                `json:"amount" validate:"gte=0"`
	Comment      string               `json:"comment"`
	CategoryID   int64                `json:"category_id" validate:"gt=0"`
	AccountID    int64                `json:"account_id" validate:"gt=0"`
	CurrencyID   int64                `json:"currency_id" validate:"gt=0"`
	ToAccountID  *int64               `json:"to_account_id" validate:"omitempty,gt=0"`
	ToCurrencyID *int64               `json:"to_currency_id" validate:"omitempty,gt=0"`
	ToAmount     *int64               `json:"to_amount" validate:"omitempty,gte=0"`
}

// NewOperationInput captures the writable fields of o.
func NewOperationInput(o domain.Operation) OperationInput {
	return OperationInput{
		Type:         o.Type,
		Date:         o.Date,
		Amount:       o.Amount,
		Comment:      o.Comment,
		CategoryID:   o.CategoryID,
		AccountID:    o.AccountID,
		CurrencyID:   o.CurrencyID,
		ToAccountID:  o.ToAccountID,
		ToCurrencyID: o.ToCurrencyID,
		ToAmount:     o.ToAmount,
	}
}

// ToDomain builds an unsaved operation.
func (in OperationInput) ToDomain() domain.Operation {
	return domain.Operation{
		Type:         in.Type,
		Date:         in.Date.Truncate(time.Millisecond),
		Amount:       in.Amount,
		Comment:      in.Comment,
		CategoryID:   in.CategoryID,
		AccountID:    in.AccountID,
		CurrencyID:   in.CurrencyID,
		ToAccountID:  in.ToAccountID,
		ToCurrencyID: in.ToCurrencyID,
		ToAmount:     in.ToAmount,
	}
}

// OperationByTitlesInput names the account and currency of a new operation
// instead of their ids. Missing ones are created.
type OperationByTitlesInput struct {
	Type          domain.OperationType
	Date          time.Time
	Amount        int64
	Comment       string
	CategoryID    int64
	AccountTitle  string
	CurrencyTitle string
}

// OperationPatch lists the operation fields an update may change.
type OperationPatch struct {
	Type         domain.Optional[domain.OperationType]
	Date         domain.Optional[time.Time]
	Amount       domain.Optional[int64]
	Comment      domain.Optional[string]
	CategoryID   domain.Optional[int64]
	AccountID    domain.Optional[int64]
	CurrencyID   domain.Optional[int64]
	ToAccountID  domain.Optional[*int64]
	ToCurrencyID domain.Optional[*int64]
	ToAmount     domain.Optional[*int64]
}

// HasChanges reports whether any field was supplied.
func (p OperationPatch) HasChanges() bool {
	return p.Type.IsSet() || p.Date.IsSet() || p.Amount.IsSet() || p.Comment.IsSet() ||
		p.CategoryID.IsSet() || p.AccountID.IsSet() || p.CurrencyID.IsSet() ||
		p.ToAccountID.IsSet() || p.ToCurrencyID.IsSet() || p.ToAmount.IsSet()
}

// Apply overlays the supplied fields onto o.
func (p OperationPatch) Apply(o *domain.Operation) {
	if v, ok := p.Type.Get(); ok {
		o.Type = v
	}
	if v, ok := p.Date.Get(); ok {
		o.Date = v.Truncate(time.Millisecond)
	}
	if v, ok := p.Amount.Get(); ok {
		o.Amount = v
	}
	if v, ok := p.Comment.Get(); ok {
		o.Comment = v
	}
	if v, ok := p.CategoryID.Get(); ok {
		o.CategoryID = v
	}
	if v, ok := p.AccountID.Get(); ok {
		o.AccountID = v
	}
	if v, ok := p.CurrencyID.Get(); ok {
		o.CurrencyID = v
	}
	if v, ok := p.ToAccountID.Get(); ok {
		o.ToAccountID = v
	}
	if v, ok := p.ToCurrencyID.Get(); ok {
		o.ToCurrencyID = v
	}
	if v, ok := p.ToAmount.Get(); ok {
		o.ToAmount = v
	}
}
