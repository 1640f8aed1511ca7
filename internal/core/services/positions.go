package services

import (
	"context"
	"time"

	"github.com/SscSPs/budget_master_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/budget_master_backend/internal/core/ports/repositories"
)

// tailPosition compacts the live rows and returns the position after the last one.
func tailPosition(ctx context.Context, pm portsrepo.PositionManager, user string, now time.Time) (int, error) {
	if err := pm.CompactPositions(ctx, user, now); err != nil {
		return 0, err
	}
	max, err := pm.GetMaxPosition(ctx)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// movePosition moves the row id from current to target within the live range.
// It reports false when the row already sits at target. Gaps left by deletes
// are kept; the live maximum bounds target.
func movePosition(ctx context.Context, pm portsrepo.PositionManager, id int64, deleted bool, current, target int, user string, now time.Time) (bool, error) {
	max, err := pm.GetMaxPosition(ctx)
	if err != nil {
		return false, err
	}
	if deleted {
		e := apperrors.NewIllegalPosition(target, max)
		e.ID = id
		e.Message = "cannot move a deleted row"
		return false, e
	}
	if target < 1 || target > max {
		return false, apperrors.NewIllegalPosition(target, max)
	}
	if target == current {
		return false, nil
	}
	if err := pm.MovePosition(ctx, id, current, target, user, now); err != nil {
		return false, err
	}
	return true, nil
}

type deletable interface {
	IsDeleted() bool
}

// liveOnly keeps the items that are not soft-deleted.
func liveOnly[T deletable](items []T) []T {
	live := make([]T, 0, len(items))
	for _, item := range items {
		if !item.IsDeleted() {
			live = append(live, item)
		}
	}
	return live
}

// sameID compares two nullable ids by value.
func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
