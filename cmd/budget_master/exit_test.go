package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/budget_master_backend/internal/apperrors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"invalid input", apperrors.NewInvalidInput("title", "title must not be empty"), 2},
		{"not found", apperrors.NewNotFound("currency", 7), 3},
		{"conflict", apperrors.NewConflict("currency", "title", "USD"), 4},
		{"illegal position", apperrors.NewIllegalPosition(9, 3), 5},
		{"store", apperrors.NewStoreError("SELECT 1", errors.New("disk I/O error")), 6},
		{"wrapped", fmt.Errorf("failed to restore: %w", apperrors.NewIllegalPosition(0, 3)), 5},
		{"plain", errors.New("boom"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
