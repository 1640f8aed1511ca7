package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/budget_master_backend/internal/apperrors"
	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	"github.com/SscSPs/budget_master_backend/internal/core/services"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   *string
		wantErr string
	}{
		{name: "null", title: nil, wantErr: "title must not be null"},
		{name: "empty", title: domain.Ptr(""), wantErr: "title must not be empty"},
		{name: "whitespace", title: domain.Ptr(" \t "), wantErr: "title must not be empty"},
		{name: "braces", title: domain.Ptr("{bad}"), wantErr: "title contains forbidden characters"},
		{name: "punctuation", title: domain.Ptr("Cash!"), wantErr: "title contains forbidden characters"},
		{name: "plain", title: domain.Ptr("Cafes and restaurants")},
		{name: "hyphen and underscore", title: domain.Ptr("Side-job_2")},
		{name: "non latin letters", title: domain.Ptr("Наличные")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.ValidateTitle(tt.title)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
