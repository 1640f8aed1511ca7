package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_IsMatchesSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		kind     Kind
	}{
		{"invalid input", NewInvalidInput("title", "title must not be empty"), ErrInvalidInput, KindInvalidInput},
		{"conflict", NewConflict("currency", "title", "USD"), ErrConflict, KindConflict},
		{"position", NewIllegalPosition(9, 3), ErrIllegalPosition, KindIllegalPosition},
		{"not found", NewNotFound("account", 7), ErrNotFound, KindNotFound},
		{"store", NewStoreError("SELECT 1", errors.New("disk I/O error")), ErrStore, KindStore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("failed to do something: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.kind, KindOf(wrapped))
		})
	}
}

func TestAppError_ValidationAlias(t *testing.T) {
	assert.ErrorIs(t, NewInvalidInput("amount", "amount must not be negative"), ErrValidation)
}

func TestStoreError_KeepsStatementAndCause(t *testing.T) {
	cause := errors.New("no such table: nope")
	err := NewStoreError("SELECT * FROM nope", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "SELECT * FROM nope", err.Statement)
	assert.Contains(t, err.Error(), "no such table")
}

func TestKindOf_PlainErrors(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("wrap: %w", ErrNotFound)))
	assert.Equal(t, Kind(0), KindOf(errors.New("other")))
	assert.Equal(t, "IllegalPosition", KindIllegalPosition.String())
}
