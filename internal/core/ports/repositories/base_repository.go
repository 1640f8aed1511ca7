package repositories

import (
	"context"
	"time"
)

// TransactionManager runs a function inside a single store transaction.
// Repositories called with the context passed to fn take part in it.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PositionManager maintains the dense 1..K ordering of live rows shared by
// every positioned entity.
type PositionManager interface {
	// GetMaxPosition returns the highest position among live rows, or 0.
	GetMaxPosition(ctx context.Context) (int, error)

	// CompactPositions renumbers live rows to 1..K keeping their relative order.
	// Rows whose position changes are stamped with user and now.
	CompactPositions(ctx context.Context, user string, now time.Time) error

	// MovePosition moves row id from position from to position to, shifting the
	// live rows in between by one. Every touched row is stamped.
	MovePosition(ctx context.Context, id int64, from, to int, user string, now time.Time) error
}
