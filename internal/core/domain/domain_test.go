package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase_Lifecycle(t *testing.T) {
	created := time.Date(2024, 1, 1, 10, 0, 0, 123_456_789, time.UTC)
	deleted := created.Add(time.Minute)
	restored := deleted.Add(time.Minute)

	var b domain.Base
	b.StampCreate("tester", created)
	assert.Equal(t, created.Truncate(time.Millisecond), b.CreateTime)
	assert.Equal(t, "tester", *b.CreatedBy)
	assert.Nil(t, b.UpdateTime)
	assert.False(t, b.IsDeleted())

	b.StampDelete("remover", deleted)
	require.True(t, b.IsDeleted())
	assert.Equal(t, deleted.Truncate(time.Millisecond), *b.DeleteTime)
	assert.Equal(t, "remover", *b.DeletedBy)

	b.Restore("tester", restored)
	assert.False(t, b.IsDeleted())
	assert.Nil(t, b.DeletedBy)
	require.NotNil(t, b.UpdateTime)
	assert.Equal(t, restored.Truncate(time.Millisecond), *b.UpdateTime)
	assert.Equal(t, "tester", *b.UpdatedBy)
}

func TestOptional(t *testing.T) {
	tests := []struct {
		name    string
		opt     domain.Optional[*int64]
		wantSet bool
		wantNil bool
	}{
		{"absent", domain.Optional[*int64]{}, false, true},
		{"explicit null", domain.Null[int64](), true, true},
		{"value", domain.Some(domain.Ptr(int64(5))), true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := tt.opt.Get()
			assert.Equal(t, tt.wantSet, ok)
			assert.Equal(t, tt.wantSet, tt.opt.IsSet())
			assert.Equal(t, tt.wantNil, v == nil)
		})
	}

	assert.Equal(t, 7, domain.Optional[int]{}.OrElse(7))
	assert.Equal(t, 3, domain.Some(3).OrElse(7))
}

func TestOperation_IsTransfer(t *testing.T) {
	assert.True(t, domain.Operation{Type: domain.OperationTypeTransfer}.IsTransfer())
	assert.False(t, domain.Operation{Type: domain.OperationTypeExpense}.IsTransfer())
	assert.True(t, domain.Account{Closed: 1}.IsClosed())
	assert.Equal(t, "restored", domain.OutcomeRestored.String())
}
