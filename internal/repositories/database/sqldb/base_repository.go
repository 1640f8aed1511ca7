package sqldb

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/SscSPs/budget_master_backend/internal/apperrors"
	"github.com/SscSPs/budget_master_backend/internal/utils/timefmt"
	"github.com/SscSPs/budget_master_backend/pkg/database"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Store *database.Store
	now   func() time.Time
}

func newBaseRepository(store *database.Store) BaseRepository {
	return BaseRepository{Store: store, now: time.Now}
}

// RunInTx delegates to the store so repositories can act as TransactionManager.
func (r *BaseRepository) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.Store.RunInTx(ctx, fn)
}

func (r *BaseRepository) insert(ctx context.Context, table string, values map[string]any) (int64, error) {
	q := r.Store.Builder().Insert(table).SetMap(values).Suffix("RETURNING id")
	id, err := r.Store.InsertQuery(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return id, nil
}

// updateRow rewrites every given column of row id. It reports NotFound when no row matched.
func (r *BaseRepository) updateRow(ctx context.Context, table, entity string, id int64, values map[string]any) error {
	q := r.Store.Builder().Update(table).SetMap(values).Where(sq.Eq{"id": id})
	affected, err := r.Store.ExecQuery(ctx, q)
	if err != nil {
		return fmt.Errorf("failed to update %s %d: %w", entity, id, err)
	}
	if affected == 0 {
		return apperrors.NewNotFound(entity, id)
	}
	return nil
}

// softDelete stamps delete_time and deleted_by on every row matching where.
func (r *BaseRepository) softDelete(ctx context.Context, table string, where sq.Sqlizer, user string) (bool, error) {
	q := r.Store.Builder().Update(table).
		Set("delete_time", timefmt.Format(r.now())).
		Set("deleted_by", user).
		Where(where)
	affected, err := r.Store.ExecQuery(ctx, q)
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return affected > 0, nil
}

// getOne scans the first row of q into dst, mapping "no rows" to a NotFound error.
func (r *BaseRepository) getOne(ctx context.Context, dst any, q sq.SelectBuilder, entity string, id int64) error {
	err := r.Store.GetQuery(ctx, dst, q.Limit(1))
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFound(entity, id)
	}
	return err
}

func checkNew(entity string, id int64) error {
	if id != 0 {
		return apperrors.NewInvalidInput("id", fmt.Sprintf("new %s must not have an id, got %d", entity, id))
	}
	return nil
}

func checkExisting(entity string, id int64) error {
	if id <= 0 {
		return apperrors.NewInvalidInput("id", fmt.Sprintf("%s id must be positive, got %d", entity, id))
	}
	return nil
}

// nullableEq matches column against v, using IS NULL for a nil v.
func nullableEq(column string, v *int64) sq.Eq {
	if v == nil {
		return sq.Eq{column: nil}
	}
	return sq.Eq{column: *v}
}

// liveFirst orders the live row ahead of soft-deleted rows sharing a natural key.
const liveFirst = "CASE WHEN delete_time IS NULL THEN 0 ELSE 1 END"
