package repositories

import (
	"context"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	FindByTitle(ctx context.Context, title string) (*domain.Category, error)
	FindByPosition(ctx context.Context, position int) (*domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindAllByOperationType(ctx context.Context, operationType domain.OperationType) ([]domain.Category, error)
	FindAllByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)

	// FindAllByParentID lists the children of parentID; nil lists the roots.
	FindAllByParentID(ctx context.Context, parentID *int64) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	Save(ctx context.Context, category domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category domain.Category) (*domain.Category, error)
	DeleteByID(ctx context.Context, id int64, user string) (bool, error)
	DeleteByTitle(ctx context.Context, title string, user string) (bool, error)
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
	PositionManager
}
