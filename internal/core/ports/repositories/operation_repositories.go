package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
)

// OperationReader defines read operations for operation data.
// Lists are ordered by date descending.
type OperationReader interface {
	FindByID(ctx context.Context, id int64) (*domain.Operation, error)
	FindAll(ctx context.Context) ([]domain.Operation, error)
	FindAllByAccountID(ctx context.Context, accountID int64) ([]domain.Operation, error)
	FindAllByCategoryID(ctx context.Context, categoryID int64) ([]domain.Operation, error)
	FindAllByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Operation, error)
	FindAllByComment(ctx context.Context, comment string) ([]domain.Operation, error)
	FindAllByType(ctx context.Context, operationType domain.OperationType) ([]domain.Operation, error)

	// FindAllByDate lists the operations on the calendar day of date.
	FindAllByDate(ctx context.Context, date time.Time) ([]domain.Operation, error)
}

// OperationWriter defines write operations for operation data
type OperationWriter interface {
	Save(ctx context.Context, operation domain.Operation) (*domain.Operation, error)
	Update(ctx context.Context, operation domain.Operation) (*domain.Operation, error)
	DeleteByID(ctx context.Context, id int64, user string) (bool, error)
}

// OperationRepositoryFacade combines all operation-related repository interfaces
type OperationRepositoryFacade interface {
	OperationReader
	OperationWriter
}
