package sqldb

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_master_backend/internal/core/ports/repositories"
	"github.com/SscSPs/budget_master_backend/internal/models"
	"github.com/SscSPs/budget_master_backend/internal/utils/mapping"
	"github.com/SscSPs/budget_master_backend/internal/utils/timefmt"
	"github.com/SscSPs/budget_master_backend/pkg/database"
)

type OperationRepository struct {
	BaseRepository
}

// NewOperationRepository creates a new repository for operation data.
func NewOperationRepository(store *database.Store) *OperationRepository {
	return &OperationRepository{BaseRepository: newBaseRepository(store)}
}

var _ portsrepo.OperationRepositoryFacade = (*OperationRepository)(nil)

func (r *OperationRepository) selectOperations() sq.SelectBuilder {
	return r.Store.Builder().Select(models.OperationColumns...).From(database.TableOperations)
}

func (r *OperationRepository) findMany(ctx context.Context, q sq.SelectBuilder) ([]domain.Operation, error) {
	var rows []models.Operation
	if err := r.Store.SelectQuery(ctx, &rows, q.OrderBy("date DESC", "id DESC")); err != nil {
		return nil, fmt.Errorf("failed to query operations: %w", err)
	}
	return mapping.ToDomainOperationSlice(rows)
}

// Save inserts a new operation.
func (r *OperationRepository) Save(ctx context.Context, operation domain.Operation) (*domain.Operation, error) {
	if err := checkNew("operation", operation.ID); err != nil {
		return nil, err
	}
	id, err := r.insert(ctx, database.TableOperations, mapping.ToModelOperation(operation).Values())
	if err != nil {
		return nil, fmt.Errorf("failed to save operation: %w", err)
	}
	operation.ID = id
	return &operation, nil
}

// Update rewrites every column of the operation.
func (r *OperationRepository) Update(ctx context.Context, operation domain.Operation) (*domain.Operation, error) {
	if err := checkExisting("operation", operation.ID); err != nil {
		return nil, err
	}
	if err := r.updateRow(ctx, database.TableOperations, "operation", operation.ID, mapping.ToModelOperation(operation).Values()); err != nil {
		return nil, err
	}
	return &operation, nil
}

// FindByID retrieves an operation regardless of its soft-delete state.
func (r *OperationRepository) FindByID(ctx context.Context, id int64) (*domain.Operation, error) {
	var row models.Operation
	if err := r.getOne(ctx, &row, r.selectOperations().Where(sq.Eq{"id": id}), "operation", id); err != nil {
		return nil, err
	}
	op, err := mapping.ToDomainOperation(row)
	if err != nil {
		return nil, fmt.Errorf("failed to map operation: %w", err)
	}
	return &op, nil
}

func (r *OperationRepository) FindAll(ctx context.Context) ([]domain.Operation, error) {
	return r.findMany(ctx, r.selectOperations())
}

func (r *OperationRepository) FindAllByAccountID(ctx context.Context, accountID int64) ([]domain.Operation, error) {
	return r.findMany(ctx, r.selectOperations().Where(sq.Eq{"account_id": accountID}))
}

func (r *OperationRepository) FindAllByCategoryID(ctx context.Context, categoryID int64) ([]domain.Operation, error) {
	return r.findMany(ctx, r.selectOperations().Where(sq.Eq{"category_id": categoryID}))
}

func (r *OperationRepository) FindAllByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Operation, error) {
	return r.findMany(ctx, r.selectOperations().Where(sq.Eq{"currency_id": currencyID}))
}

func (r *OperationRepository) FindAllByComment(ctx context.Context, comment string) ([]domain.Operation, error) {
	return r.findMany(ctx, r.selectOperations().Where(sq.Eq{"comment": comment}))
}

func (r *OperationRepository) FindAllByType(ctx context.Context, operationType domain.OperationType) ([]domain.Operation, error) {
	return r.findMany(ctx, r.selectOperations().Where(sq.Eq{"type": int(operationType)}))
}

// FindAllByDate matches the whole calendar day of date. Canonical timestamps
// sort lexically, so a text range is exact.
func (r *OperationRepository) FindAllByDate(ctx context.Context, date time.Time) ([]domain.Operation, error) {
	start, end := timefmt.DayBounds(date)
	q := r.selectOperations().
		Where(sq.GtOrEq{"date": timefmt.Format(start)}).
		Where(sq.LtOrEq{"date": timefmt.Format(end)})
	return r.findMany(ctx, q)
}

func (r *OperationRepository) DeleteByID(ctx context.Context, id int64, user string) (bool, error) {
	return r.softDelete(ctx, database.TableOperations, sq.Eq{"id": id}, user)
}
