package sqldb

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_master_backend/internal/core/ports/repositories"
	"github.com/SscSPs/budget_master_backend/internal/models"
	"github.com/SscSPs/budget_master_backend/internal/utils/mapping"
	"github.com/SscSPs/budget_master_backend/pkg/database"
)

type CurrencyRepository struct {
	BaseRepository
	orderedList
}

// NewCurrencyRepository creates a new repository for currency data.
func NewCurrencyRepository(store *database.Store) *CurrencyRepository {
	return &CurrencyRepository{
		BaseRepository: newBaseRepository(store),
		orderedList:    newOrderedList(store, database.TableCurrencies),
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*CurrencyRepository)(nil)

func (r *CurrencyRepository) selectCurrencies() sq.SelectBuilder {
	return r.Store.Builder().Select(models.CurrencyColumns...).From(database.TableCurrencies)
}

func (r *CurrencyRepository) findOne(ctx context.Context, q sq.SelectBuilder, id int64) (*domain.Currency, error) {
	var row models.Currency
	if err := r.getOne(ctx, &row, q, "currency", id); err != nil {
		return nil, err
	}
	c, err := mapping.ToDomainCurrency(row)
	if err != nil {
		return nil, fmt.Errorf("failed to map currency: %w", err)
	}
	return &c, nil
}

func (r *CurrencyRepository) findMany(ctx context.Context, q sq.SelectBuilder) ([]domain.Currency, error) {
	var rows []models.Currency
	if err := r.Store.SelectQuery(ctx, &rows, q.OrderBy("position", "id")); err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	return mapping.ToDomainCurrencySlice(rows)
}

// Save inserts a new currency.
func (r *CurrencyRepository) Save(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	if err := checkNew("currency", currency.ID); err != nil {
		return nil, err
	}
	id, err := r.insert(ctx, database.TableCurrencies, mapping.ToModelCurrency(currency).Values())
	if err != nil {
		return nil, fmt.Errorf("failed to save currency %s: %w", currency.Title, err)
	}
	currency.ID = id
	return &currency, nil
}

// Update rewrites every column of the currency.
func (r *CurrencyRepository) Update(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	if err := checkExisting("currency", currency.ID); err != nil {
		return nil, err
	}
	if err := r.updateRow(ctx, database.TableCurrencies, "currency", currency.ID, mapping.ToModelCurrency(currency).Values()); err != nil {
		return nil, err
	}
	return &currency, nil
}

func (r *CurrencyRepository) FindByID(ctx context.Context, id int64) (*domain.Currency, error) {
	return r.findOne(ctx, r.selectCurrencies().Where(sq.Eq{"id": id}), id)
}

func (r *CurrencyRepository) FindByTitle(ctx context.Context, title string) (*domain.Currency, error) {
	return r.findOne(ctx, r.selectCurrencies().Where(sq.Eq{"title": title}).OrderBy(liveFirst, "id"), 0)
}

func (r *CurrencyRepository) FindByPosition(ctx context.Context, position int) (*domain.Currency, error) {
	return r.findOne(ctx, r.selectCurrencies().Where(sq.Eq{"position": position}).Where(r.live).OrderBy("id"), 0)
}

func (r *CurrencyRepository) FindAll(ctx context.Context) ([]domain.Currency, error) {
	return r.findMany(ctx, r.selectCurrencies())
}

func (r *CurrencyRepository) DeleteByID(ctx context.Context, id int64, user string) (bool, error) {
	return r.softDelete(ctx, database.TableCurrencies, sq.Eq{"id": id}, user)
}

func (r *CurrencyRepository) DeleteByTitle(ctx context.Context, title string, user string) (bool, error) {
	return r.softDelete(ctx, database.TableCurrencies, sq.Eq{"title": title}, user)
}
