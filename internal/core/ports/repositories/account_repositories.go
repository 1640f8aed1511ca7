package repositories

import (
	"context"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByTitle(ctx context.Context, title string) (*domain.Account, error)
	FindByPosition(ctx context.Context, position int) (*domain.Account, error)
	FindAll(ctx context.Context) ([]domain.Account, error)
	FindAllByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Account, error)
	FindAllByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error)
	FindAllByClosed(ctx context.Context, closed int) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	Save(ctx context.Context, account domain.Account) (*domain.Account, error)
	Update(ctx context.Context, account domain.Account) (*domain.Account, error)
	DeleteByID(ctx context.Context, id int64, user string) (bool, error)
	DeleteByTitle(ctx context.Context, title string, user string) (bool, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	PositionManager
}
