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

type AccountRepository struct {
	BaseRepository
	orderedList
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(store *database.Store) *AccountRepository {
	return &AccountRepository{
		BaseRepository: newBaseRepository(store),
		orderedList:    newOrderedList(store, database.TableAccounts),
	}
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func (r *AccountRepository) selectAccounts() sq.SelectBuilder {
	return r.Store.Builder().Select(models.AccountColumns...).From(database.TableAccounts)
}

func (r *AccountRepository) findOne(ctx context.Context, q sq.SelectBuilder, id int64) (*domain.Account, error) {
	var row models.Account
	if err := r.getOne(ctx, &row, q, "account", id); err != nil {
		return nil, err
	}
	a, err := mapping.ToDomainAccount(row)
	if err != nil {
		return nil, fmt.Errorf("failed to map account: %w", err)
	}
	return &a, nil
}

func (r *AccountRepository) findMany(ctx context.Context, q sq.SelectBuilder) ([]domain.Account, error) {
	var rows []models.Account
	if err := r.Store.SelectQuery(ctx, &rows, q.OrderBy("position", "id")); err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(rows)
}

// Save inserts a new account.
func (r *AccountRepository) Save(ctx context.Context, account domain.Account) (*domain.Account, error) {
	if err := checkNew("account", account.ID); err != nil {
		return nil, err
	}
	id, err := r.insert(ctx, database.TableAccounts, mapping.ToModelAccount(account).Values())
	if err != nil {
		return nil, fmt.Errorf("failed to save account %s: %w", account.Title, err)
	}
	account.ID = id
	return &account, nil
}

// Update rewrites every column of the account.
func (r *AccountRepository) Update(ctx context.Context, account domain.Account) (*domain.Account, error) {
	if err := checkExisting("account", account.ID); err != nil {
		return nil, err
	}
	if err := r.updateRow(ctx, database.TableAccounts, "account", account.ID, mapping.ToModelAccount(account).Values()); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	return r.findOne(ctx, r.selectAccounts().Where(sq.Eq{"id": id}), id)
}

func (r *AccountRepository) FindByTitle(ctx context.Context, title string) (*domain.Account, error) {
	return r.findOne(ctx, r.selectAccounts().Where(sq.Eq{"title": title}).OrderBy(liveFirst, "id"), 0)
}

func (r *AccountRepository) FindByPosition(ctx context.Context, position int) (*domain.Account, error) {
	return r.findOne(ctx, r.selectAccounts().Where(sq.Eq{"position": position}).Where(r.live).OrderBy("id"), 0)
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]domain.Account, error) {
	return r.findMany(ctx, r.selectAccounts())
}

func (r *AccountRepository) FindAllByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Account, error) {
	return r.findMany(ctx, r.selectAccounts().Where(sq.Eq{"currency_id": currencyID}))
}

func (r *AccountRepository) FindAllByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error) {
	return r.findMany(ctx, r.selectAccounts().Where(sq.Eq{"type": int(accountType)}))
}

func (r *AccountRepository) FindAllByClosed(ctx context.Context, closed int) ([]domain.Account, error) {
	return r.findMany(ctx, r.selectAccounts().Where(sq.Eq{"closed": closed}))
}

func (r *AccountRepository) DeleteByID(ctx context.Context, id int64, user string) (bool, error) {
	return r.softDelete(ctx, database.TableAccounts, sq.Eq{"id": id}, user)
}

func (r *AccountRepository) DeleteByTitle(ctx context.Context, title string, user string) (bool, error) {
	return r.softDelete(ctx, database.TableAccounts, sq.Eq{"title": title}, user)
}
