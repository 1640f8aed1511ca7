package domain

import "time"

// Operation is a single ledger entry. Transfers carry the destination
// account, currency and amount; other types leave them nil.
type Operation struct {
	Base
	Type         OperationType `json:"type"`
	Date         time.Time     `json:"date"`
	Amount       int64         `json:"amount"`
	Comment      string        `json:"comment"`
	CategoryID   int64         `json:"categoryId"`
	AccountID    int64         `json:"accountId"`
	CurrencyID   int64         `json:"currencyId"`
	ToAccountID  *int64        `json:"toAccountId,omitempty"`
	ToCurrencyID *int64        `json:"toCurrencyId,omitempty"`
	ToAmount     *int64        `json:"toAmount,omitempty"`
}

// IsTransfer reports whether the operation moves money between accounts.
func (o Operation) IsTransfer() bool {
	return o.Type == OperationTypeTransfer
}
