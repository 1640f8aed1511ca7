package services

import (
	"context"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	"github.com/SscSPs/budget_master_backend/internal/dto"
)

// CategoryReaderSvc defines read operations for category data
type CategoryReaderSvc interface {
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetAllLive(ctx context.Context) ([]domain.Category, error)
	GetAllByOperationType(ctx context.Context, operationType domain.OperationType) ([]domain.Category, error)
	GetAllByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)
	GetAllByParentID(ctx context.Context, parentID *int64) ([]domain.Category, error)
	IsDeleted(ctx context.Context, id int64) (bool, error)
}

// CategoryWriterSvc defines write operations for category data
type CategoryWriterSvc interface {
	Get(ctx context.Context, title string, params dto.CategoryParams) (*domain.Category, domain.Outcome, error)
	Update(ctx context.Context, id int64, patch dto.CategoryPatch) (*domain.Category, error)
	UpdateByTitle(ctx context.Context, title string, patch dto.CategoryPatch) (*domain.Category, error)
	Delete(ctx context.Context, title string) (bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	Restore(ctx context.Context, id int64) (*domain.Category, error)
	ChangePosition(ctx context.Context, category domain.Category, newPosition int) (*domain.Category, error)
	ChangePositionAt(ctx context.Context, oldPosition, newPosition int) (*domain.Category, error)
	ChangePositionByTitle(ctx context.Context, title string, newPosition int) (*domain.Category, error)
}

// CategorySvcFacade combines all category-related service interfaces
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
	UserScoped
}
