package services

import (
	"context"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	"github.com/SscSPs/budget_master_backend/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetByID returns the currency regardless of its state, or nil.
	GetByID(ctx context.Context, id int64) (*domain.Currency, error)

	// GetAll returns every currency, soft-deleted ones included.
	GetAll(ctx context.Context) ([]domain.Currency, error)

	// GetAllLive returns the live currencies in position order.
	GetAllLive(ctx context.Context) ([]domain.Currency, error)

	// IsDeleted reports whether the currency is soft-deleted.
	IsDeleted(ctx context.Context, id int64) (bool, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// Get returns the currency titled title, creating or restoring it as needed.
	Get(ctx context.Context, title string) (*domain.Currency, domain.Outcome, error)

	// Update changes the supplied fields. It returns nil when nothing was supplied.
	Update(ctx context.Context, id int64, patch dto.CurrencyPatch) (*domain.Currency, error)
	UpdateByTitle(ctx context.Context, title string, patch dto.CurrencyPatch) (*domain.Currency, error)

	// Delete soft-deletes by title.
	Delete(ctx context.Context, title string) (bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)

	// Restore brings a soft-deleted currency back at the tail of the list.
	Restore(ctx context.Context, id int64) (*domain.Currency, error)

	// ChangePosition moves a live currency, shifting the ones in between.
	ChangePosition(ctx context.Context, currency domain.Currency, newPosition int) (*domain.Currency, error)
	// ChangePositionAt moves the live currency at oldPosition; nil if there is none.
	ChangePositionAt(ctx context.Context, oldPosition, newPosition int) (*domain.Currency, error)
	ChangePositionByTitle(ctx context.Context, title string, newPosition int) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
	UserScoped
}
