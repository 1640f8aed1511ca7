package repositories

import (
	"context"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
)

// CurrencyReader defines read operations for currency data.
// Finders return soft-deleted rows too and apperrors.ErrNotFound when nothing matches.
type CurrencyReader interface {
	// FindByID retrieves a currency by id.
	FindByID(ctx context.Context, id int64) (*domain.Currency, error)

	// FindByTitle retrieves a currency by its natural key, preferring the live row.
	FindByTitle(ctx context.Context, title string) (*domain.Currency, error)

	// FindByPosition retrieves the live currency at position.
	FindByPosition(ctx context.Context, position int) (*domain.Currency, error)

	// FindAll retrieves every currency ordered by position.
	FindAll(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data.
type CurrencyWriter interface {
	// Save inserts a new currency and returns it with its id.
	Save(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	// Update rewrites every column of an existing currency.
	Update(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	// DeleteByID soft-deletes a currency.
	DeleteByID(ctx context.Context, id int64, user string) (bool, error)

	// DeleteByTitle soft-deletes the currencies with the given title.
	DeleteByTitle(ctx context.Context, title string, user string) (bool, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
	PositionManager
}
