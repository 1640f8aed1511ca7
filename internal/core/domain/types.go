package domain

// AccountType is the kind of an account.
type AccountType int

const (
	AccountTypeCurrent    AccountType = 1
	AccountTypeCreditCard AccountType = 2
	AccountTypeDeposit    AccountType = 3
)

// OperationType classifies categories and operations.
type OperationType int

const (
	OperationTypeExpense  OperationType = 1
	OperationTypeIncome   OperationType = 2
	OperationTypeTransfer OperationType = 3
)

// CategoryType places a category in the tree.
type CategoryType int

const (
	CategoryTypeParent CategoryType = 0
	CategoryTypeChild  CategoryType = 1
)

// Outcome tells the caller of a get-or-create which path was taken.
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeCreated
	OutcomeUpdated
	OutcomeRestored
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	case OutcomeRestored:
		return "restored"
	}
	return "found"
}
