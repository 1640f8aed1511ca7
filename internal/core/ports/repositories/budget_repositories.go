package repositories

import (
	"context"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
)

// BudgetReader defines read operations for budget data. The natural key is
// the category id, where nil selects the global budget.
type BudgetReader interface {
	FindByID(ctx context.Context, id int64) (*domain.Budget, error)
	FindByCategoryID(ctx context.Context, categoryID *int64) (*domain.Budget, error)
	FindByPosition(ctx context.Context, position int) (*domain.Budget, error)
	FindAll(ctx context.Context) ([]domain.Budget, error)
	FindAllByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	Save(ctx context.Context, budget domain.Budget) (*domain.Budget, error)
	Update(ctx context.Context, budget domain.Budget) (*domain.Budget, error)
	DeleteByID(ctx context.Context, id int64, user string) (bool, error)
	DeleteByCategoryID(ctx context.Context, categoryID *int64, user string) (bool, error)
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
	PositionManager
}
