package sqldb

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	portsrepo "github.com/SscSPs/budget_master_backend/internal/core/ports/repositories"
	"github.com/SscSPs/budget_master_backend/internal/utils/timefmt"
	"github.com/SscSPs/budget_master_backend/pkg/database"
)

// orderedList keeps the live rows of a table densely numbered 1..K.
type orderedList struct {
	store  *database.Store
	table  string
	column string
	live   sq.Sqlizer
}

func newOrderedList(store *database.Store, table string) orderedList {
	return orderedList{
		store:  store,
		table:  table,
		column: "position",
		live:   sq.Eq{"delete_time": nil},
	}
}

var _ portsrepo.PositionManager = orderedList{}

// GetMaxPosition returns the highest position among live rows, or 0.
func (l orderedList) GetMaxPosition(ctx context.Context) (int, error) {
	q := l.store.Builder().Select("MAX(" + l.column + ")").From(l.table).Where(l.live)
	max, err := l.store.ScalarInt(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("failed to get max position of %s: %w", l.table, err)
	}
	return int(max), nil
}

type positionRow struct {
	ID       int64 `db:"id"`
	Position int   `db:"position"`
}

// CompactPositions closes the gaps left by soft-deleted rows.
func (l orderedList) CompactPositions(ctx context.Context, user string, now time.Time) error {
	return l.store.RunInTx(ctx, func(ctx context.Context) error {
		var rows []positionRow
		q := l.store.Builder().
			Select("id", l.column+" AS position").
			From(l.table).
			Where(l.live).
			OrderBy(l.column, "id")
		if err := l.store.SelectQuery(ctx, &rows, q); err != nil {
			return fmt.Errorf("failed to list positions of %s: %w", l.table, err)
		}

		stamp := timefmt.Format(now)
		for i, row := range rows {
			want := i + 1
			if row.Position == want {
				continue
			}
			upd := l.store.Builder().Update(l.table).
				Set(l.column, want).
				Set("update_time", stamp).
				Set("updated_by", user).
				Where(sq.Eq{"id": row.ID})
			if _, err := l.store.ExecQuery(ctx, upd); err != nil {
				return fmt.Errorf("failed to renumber %s %d: %w", l.table, row.ID, err)
			}
		}
		return nil
	})
}

// MovePosition moves row id from position from to position to. The rows in
// between shift by one towards from.
func (l orderedList) MovePosition(ctx context.Context, id int64, from, to int, user string, now time.Time) error {
	if from == to {
		return nil
	}
	stamp := timefmt.Format(now)

	return l.store.RunInTx(ctx, func(ctx context.Context) error {
		shift := l.store.Builder().Update(l.table).
			Set("update_time", stamp).
			Set("updated_by", user).
			Where(l.live).
			Where(sq.NotEq{"id": id})
		if to > from {
			shift = shift.Set(l.column, sq.Expr(l.column+" - 1")).
				Where(sq.Gt{l.column: from}).
				Where(sq.LtOrEq{l.column: to})
		} else {
			shift = shift.Set(l.column, sq.Expr(l.column+" + 1")).
				Where(sq.GtOrEq{l.column: to}).
				Where(sq.Lt{l.column: from})
		}
		if _, err := l.store.ExecQuery(ctx, shift); err != nil {
			return fmt.Errorf("failed to shift positions of %s: %w", l.table, err)
		}

		target := l.store.Builder().Update(l.table).
			Set(l.column, to).
			Set("update_time", stamp).
			Set("updated_by", user).
			Where(sq.Eq{"id": id})
		if _, err := l.store.ExecQuery(ctx, target); err != nil {
			return fmt.Errorf("failed to move %s %d to %d: %w", l.table, id, to, err)
		}
		return nil
	})
}
