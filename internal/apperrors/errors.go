package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrInvalidInput indicates that input data failed validation checks.
var ErrInvalidInput = errors.New("invalid input")

// ErrConflict indicates that a natural key is already held by another live row.
var ErrConflict = errors.New("natural key conflict")

// ErrIllegalPosition indicates a position outside the live range of a collection.
var ErrIllegalPosition = errors.New("illegal position")

// ErrStore indicates a failure of the underlying store.
var ErrStore = errors.New("store error")

// ErrValidation is kept as an alias of ErrInvalidInput for callers matching on it.
var ErrValidation = ErrInvalidInput

// Kind classifies an AppError.
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindConflict
	KindIllegalPosition
	KindNotFound
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindConflict:
		return "Conflict"
	case KindIllegalPosition:
		return "IllegalPosition"
	case KindNotFound:
		return "NotFound"
	case KindStore:
		return "StoreError"
	}
	return "Unknown"
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindConflict:
		return ErrConflict
	case KindIllegalPosition:
		return ErrIllegalPosition
	case KindNotFound:
		return ErrNotFound
	case KindStore:
		return ErrStore
	}
	return nil
}

// AppError is the error type surfaced by the kernel. Field, ID and Statement
// are set where they apply.
type AppError struct {
	Kind      Kind
	Message   string
	Field     string
	ID        int64
	Statement string
	Err       error
}

func (e *AppError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *AppError) Unwrap() error { return e.Err }

// Is matches the sentinel of the error's kind.
func (e *AppError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// NewInvalidInput reports a rejected field value.
func NewInvalidInput(field, msg string) *AppError {
	return &AppError{Kind: KindInvalidInput, Field: field, Message: msg}
}

// NewConflict reports a natural key already held by another live row.
func NewConflict(entity, field string, value any) *AppError {
	return &AppError{
		Kind:    KindConflict,
		Field:   field,
		Message: fmt.Sprintf("%s with %s %v already exists", entity, field, value),
	}
}

// NewIllegalPosition reports a position outside [1, max].
func NewIllegalPosition(pos, max int) *AppError {
	return &AppError{
		Kind:    KindIllegalPosition,
		Field:   "position",
		Message: fmt.Sprintf("position %d is outside [1, %d]", pos, max),
	}
}

// NewNotFound reports a missing row.
func NewNotFound(entity string, id int64) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		ID:      id,
		Message: fmt.Sprintf("%s %d not found", entity, id),
	}
}

// NewNotFoundByKey reports a missing row looked up by a natural key.
func NewNotFoundByKey(entity, field string, value any) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Field:   field,
		Message: fmt.Sprintf("%s with %s %v not found", entity, field, value),
	}
}

// NewStoreError wraps a driver failure together with the statement that caused it.
func NewStoreError(statement string, err error) *AppError {
	return &AppError{
		Kind:      KindStore,
		Statement: statement,
		Message:   "store failure",
		Err:       err,
	}
}

// KindOf returns the kind of the first AppError in err's chain, or zero.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrIllegalPosition):
		return KindIllegalPosition
	case errors.Is(err, ErrStore):
		return KindStore
	}
	return 0
}
