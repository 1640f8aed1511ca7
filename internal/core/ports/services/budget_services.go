package services

import (
	"context"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	"github.com/SscSPs/budget_master_backend/internal/dto"
)

// BudgetReaderSvc defines read operations for budget data
type BudgetReaderSvc interface {
	GetByID(ctx context.Context, id int64) (*domain.Budget, error)
	// GetByCategoryID returns the budget of a category regardless of its state, or nil.
	GetByCategoryID(ctx context.Context, categoryID *int64) (*domain.Budget, error)
	GetAll(ctx context.Context) ([]domain.Budget, error)
	GetAllLive(ctx context.Context) ([]domain.Budget, error)
	GetAllByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Budget, error)
	IsDeleted(ctx context.Context, id int64) (bool, error)
}

// BudgetWriterSvc defines write operations for budget data
type BudgetWriterSvc interface {
	// Get returns the budget of categoryID with the given amount and currency,
	// creating, restoring or updating it as needed.
	Get(ctx context.Context, categoryID *int64, amount int64, currencyID int64) (*domain.Budget, domain.Outcome, error)

	Update(ctx context.Context, id int64, patch dto.BudgetPatch) (*domain.Budget, error)
	UpdateByCategoryID(ctx context.Context, categoryID *int64, patch dto.BudgetPatch) (*domain.Budget, error)
	DeleteByCategoryID(ctx context.Context, categoryID *int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	Restore(ctx context.Context, id int64) (*domain.Budget, error)
	ChangePosition(ctx context.Context, budget domain.Budget, newPosition int) (*domain.Budget, error)
	ChangePositionAt(ctx context.Context, oldPosition, newPosition int) (*domain.Budget, error)
	ChangePositionByCategoryID(ctx context.Context, categoryID *int64, newPosition int) (*domain.Budget, error)
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
	UserScoped
}
