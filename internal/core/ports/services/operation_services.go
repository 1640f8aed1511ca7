package services

import (
	"context"
	"time"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	"github.com/SscSPs/budget_master_backend/internal/dto"
)

// OperationReaderSvc defines read operations for operation data.
// With activeOnly set, soft-deleted operations are left out.
type OperationReaderSvc interface {
	GetByID(ctx context.Context, id int64) (*domain.Operation, error)
	GetAll(ctx context.Context, activeOnly bool) ([]domain.Operation, error)
	GetByDay(ctx context.Context, day time.Time, activeOnly bool) ([]domain.Operation, error)
	GetByComment(ctx context.Context, comment string, activeOnly bool) ([]domain.Operation, error)
	GetByCategoryID(ctx context.Context, categoryID int64, activeOnly bool) ([]domain.Operation, error)
	GetByAccountID(ctx context.Context, accountID int64, activeOnly bool) ([]domain.Operation, error)
	GetByCurrencyID(ctx context.Context, currencyID int64, activeOnly bool) ([]domain.Operation, error)
	GetByType(ctx context.Context, operationType domain.OperationType, activeOnly bool) ([]domain.Operation, error)
}

// OperationWriterSvc defines write operations for operation data
type OperationWriterSvc interface {
	Save(ctx context.Context, in dto.OperationInput) (*domain.Operation, error)

	// CreateWithTitles saves an operation whose account and currency are
	// resolved, and created if missing, by title.
	CreateWithTitles(ctx context.Context, in dto.OperationByTitlesInput) (*domain.Operation, error)

	Update(ctx context.Context, id int64, patch dto.OperationPatch) (*domain.Operation, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	Restore(ctx context.Context, id int64) (*domain.Operation, error)
}

// OperationSvcFacade combines all operation-related service interfaces
type OperationSvcFacade interface {
	OperationReaderSvc
	OperationWriterSvc
	UserScoped
}
