package services

import (
	"context"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	"github.com/SscSPs/budget_master_backend/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetAll(ctx context.Context) ([]domain.Account, error)
	GetAllLive(ctx context.Context) ([]domain.Account, error)
	GetAllByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error)
	GetAllByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Account, error)
	GetAllByClosed(ctx context.Context, closed int) ([]domain.Account, error)
	IsDeleted(ctx context.Context, id int64) (bool, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// Get returns the account titled title, creating, restoring or updating it
	// so that it matches the supplied params.
	Get(ctx context.Context, title string, params dto.AccountParams) (*domain.Account, domain.Outcome, error)

	Update(ctx context.Context, id int64, patch dto.AccountPatch) (*domain.Account, error)
	UpdateByTitle(ctx context.Context, title string, patch dto.AccountPatch) (*domain.Account, error)
	Delete(ctx context.Context, title string) (bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	Restore(ctx context.Context, id int64) (*domain.Account, error)
	ChangePosition(ctx context.Context, account domain.Account, newPosition int) (*domain.Account, error)
	ChangePositionAt(ctx context.Context, oldPosition, newPosition int) (*domain.Account, error)
	ChangePositionByTitle(ctx context.Context, title string, newPosition int) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	UserScoped
}
