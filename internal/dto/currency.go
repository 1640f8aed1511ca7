package dto

import "github.com/SscSPs/budget_master_backend/internal/core/domain"

// CurrencyPatch lists the currency fields an update may change.
type CurrencyPatch struct {
	Title domain.Optional[string]
}

// HasChanges reports whether any field was supplied.
func (p CurrencyPatch) HasChanges() bool {
	return p.Title.IsSet()
}
