package domain

// Account holds a balance in minor units of its currency. The credit card
// fields are only meaningful for AccountTypeCreditCard.
type Account struct {
	Base
	Position                       int         `json:"position"`
	Title                          string      `json:"title"`
	Amount                         int64       `json:"amount"`
	Type                           AccountType `json:"type"`
	CurrencyID                     int64       `json:"currencyId"`
	Closed                         int         `json:"closed"`
	CreditCardLimit                *int64      `json:"creditCardLimit,omitempty"`
	CreditCardCategoryID           *int64      `json:"creditCardCategoryId,omitempty"`
	CreditCardCommissionCategoryID *int64      `json:"creditCardCommissionCategoryId,omitempty"`
}

// IsClosed reports whether the account is closed.
func (a Account) IsClosed() bool {
	return a.Closed == 1
}
