package dto

import "github.com/SscSPs/budget_master_backend/internal/core/domain"

// BudgetInput is the validated shape of a budget write.
type BudgetInput struct {
	Amount     int64  `json:"amount" validate:"gte=0"`
	CurrencyID int64  `json:"currency_id" validate:"gt=0"`
	CategoryID *int64 `json:"category_id" validate:"omitempty,gt=0"`
}

// NewBudgetInput captures the writable fields of b.
func NewBudgetInput(b domain.Budget) BudgetInput {
	return BudgetInput{Amount: b.Amount, CurrencyID: b.CurrencyID, CategoryID: b.CategoryID}
}

// BudgetPatch lists the budget fields an update may change.
type BudgetPatch struct {
	Amount     domain.Optional[int64]
	CurrencyID domain.Optional[int64]
	CategoryID domain.Optional[*int64]
}

// HasChanges reports whether any field was supplied.
func (p BudgetPatch) HasChanges() bool {
	return p.Amount.IsSet() || p.CurrencyID.IsSet() || p.CategoryID.IsSet()
}

// Apply overlays the supplied fields onto b.
func (p BudgetPatch) Apply(b *domain.Budget) {
	if v, ok := p.Amount.Get(); ok {
		b.Amount = v
	}
	if v, ok := p.CurrencyID.Get(); ok {
		b.CurrencyID = v
	}
	if v, ok := p.CategoryID.Get(); ok {
		b.CategoryID = v
	}
}
