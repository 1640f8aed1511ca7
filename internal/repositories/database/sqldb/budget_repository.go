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

type BudgetRepository struct {
	BaseRepository
	orderedList
}

// NewBudgetRepository creates a new repository for budget data.
func NewBudgetRepository(store *database.Store) *BudgetRepository {
	return &BudgetRepository{
		BaseRepository: newBaseRepository(store),
		orderedList:    newOrderedList(store, database.TableBudgets),
	}
}

var _ portsrepo.BudgetRepositoryFacade = (*BudgetRepository)(nil)

func (r *BudgetRepository) selectBudgets() sq.SelectBuilder {
	return r.Store.Builder().Select(models.BudgetColumns...).From(database.TableBudgets)
}

func (r *BudgetRepository) findOne(ctx context.Context, q sq.SelectBuilder, id int64) (*domain.Budget, error) {
	var row models.Budget
	if err := r.getOne(ctx, &row, q, "budget", id); err != nil {
		return nil, err
	}
	b, err := mapping.ToDomainBudget(row)
	if err != nil {
		return nil, fmt.Errorf("failed to map budget: %w", err)
	}
	return &b, nil
}

func (r *BudgetRepository) findMany(ctx context.Context, q sq.SelectBuilder) ([]domain.Budget, error) {
	var rows []models.Budget
	if err := r.Store.SelectQuery(ctx, &rows, q.OrderBy("position", "id")); err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	return mapping.ToDomainBudgetSlice(rows)
}

// Save inserts a new budget.
func (r *BudgetRepository) Save(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	if err := checkNew("budget", budget.ID); err != nil {
		return nil, err
	}
	id, err := r.insert(ctx, database.TableBudgets, mapping.ToModelBudget(budget).Values())
	if err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}
	budget.ID = id
	return &budget, nil
}

// Update rewrites every column of the budget.
func (r *BudgetRepository) Update(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	if err := checkExisting("budget", budget.ID); err != nil {
		return nil, err
	}
	if err := r.updateRow(ctx, database.TableBudgets, "budget", budget.ID, mapping.ToModelBudget(budget).Values()); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (r *BudgetRepository) FindByID(ctx context.Context, id int64) (*domain.Budget, error) {
	return r.findOne(ctx, r.selectBudgets().Where(sq.Eq{"id": id}), id)
}

func (r *BudgetRepository) FindByCategoryID(ctx context.Context, categoryID *int64) (*domain.Budget, error) {
	return r.findOne(ctx, r.selectBudgets().Where(nullableEq("category_id", categoryID)).OrderBy(liveFirst, "id"), 0)
}

func (r *BudgetRepository) FindByPosition(ctx context.Context, position int) (*domain.Budget, error) {
	return r.findOne(ctx, r.selectBudgets().Where(sq.Eq{"position": position}).Where(r.live).OrderBy("id"), 0)
}

func (r *BudgetRepository) FindAll(ctx context.Context) ([]domain.Budget, error) {
	return r.findMany(ctx, r.selectBudgets())
}

func (r *BudgetRepository) FindAllByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Budget, error) {
	return r.findMany(ctx, r.selectBudgets().Where(sq.Eq{"currency_id": currencyID}))
}

func (r *BudgetRepository) DeleteByID(ctx context.Context, id int64, user string) (bool, error) {
	return r.softDelete(ctx, database.TableBudgets, sq.Eq{"id": id}, user)
}

func (r *BudgetRepository) DeleteByCategoryID(ctx context.Context, categoryID *int64, user string) (bool, error) {
	return r.softDelete(ctx, database.TableBudgets, nullableEq("category_id", categoryID), user)
}
