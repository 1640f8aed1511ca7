package sqldb

import (
	"time"

	portsrepo "github.com/SscSPs/budget_master_backend/internal/core/ports/repositories"
	"github.com/SscSPs/budget_master_backend/pkg/database"
)

// Option configures the BaseRepository of every repository in a provider.
type Option func(*BaseRepository)

// WithClock replaces time.Now as the source of soft-delete timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *BaseRepository) {
		r.now = now
	}
}

// NewRepositoryProvider wires every repository onto one store.
func NewRepositoryProvider(store *database.Store, opts ...Option) portsrepo.RepositoryProvider {
	currencies := NewCurrencyRepository(store)
	accounts := NewAccountRepository(store)
	categories := NewCategoryRepository(store)
	budgets := NewBudgetRepository(store)
	operations := NewOperationRepository(store)

	for _, opt := range opts {
		opt(&currencies.BaseRepository)
		opt(&accounts.BaseRepository)
		opt(&categories.BaseRepository)
		opt(&budgets.BaseRepository)
		opt(&operations.BaseRepository)
	}

	return portsrepo.RepositoryProvider{
		TxManager:     store,
		CurrencyRepo:  currencies,
		AccountRepo:   accounts,
		CategoryRepo:  categories,
		BudgetRepo:    budgets,
		OperationRepo: operations,
	}
}
