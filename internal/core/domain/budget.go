package domain

// Budget is keyed by its category. A nil CategoryID is the global budget.
type Budget struct {
	Base
	Position   int    `json:"position"`
	Amount     int64  `json:"amount"`
	CurrencyID int64  `json:"currencyId"`
	CategoryID *int64 `json:"categoryId,omitempty"`
}
