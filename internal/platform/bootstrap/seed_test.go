package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
)

func TestLoadDefaults(t *testing.T) {
	d, err := LoadDefaults()
	require.NoError(t, err)

	assert.Equal(t, []string{"RUB", "USD", "EUR"}, d.Currencies)
	assert.Len(t, d.Accounts, 5)
	assert.Equal(t, 17, d.CategoryCount())
}

func TestFlattenCategoriesIsBreadthFirst(t *testing.T) {
	d, err := LoadDefaults()
	require.NoError(t, err)

	flat := flattenCategories(d.Categories)
	titles := make([]string, len(flat))
	seen := make(map[string]bool, len(flat))
	for i, node := range flat {
		titles[i] = node.seed.Title
		assert.False(t, seen[node.seed.Title], "duplicate title %s", node.seed.Title)
		seen[node.seed.Title] = true
		if node.parent >= 0 {
			assert.Less(t, node.parent, i, "parent must come first")
			assert.Equal(t, flat[node.parent].operationType, node.operationType)
		}
	}

	assert.Equal(t, []string{"Income", "Expense", "Work", "Side job", "Gifts", "Necessary", "Additional"}, titles[:7])
	assert.Equal(t, "Cinema", titles[14])
	assert.Equal(t, domain.OperationTypeIncome, flat[0].operationType)
	assert.Equal(t, domain.OperationTypeExpense, flat[1].operationType)
}
