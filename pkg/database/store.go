package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/SscSPs/budget_master_backend/internal/apperrors"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Store owns one database handle. Repositories borrow it through the execute
// methods; the transaction in the context, if any, is used transparently.
type Store struct {
	db      *sql.DB
	driver  Driver
	builder sq.StatementBuilderType
}

// Open connects to the store described by cfg and verifies the connection.
// For SQLite the data file and its directory are created when missing.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Driver == DriverSQLite {
		if _, err := db.ExecContext(ctx, `PRAGMA encoding = 'UTF-8'`); err != nil {
			_ = db.Close()
			return nil, apperrors.NewStoreError(`PRAGMA encoding = 'UTF-8'`, err)
		}
	}
	return NewStore(db, cfg.Driver), nil
}

// OpenDB opens and pings a raw handle for cfg. SQLite handles are limited to
// a single connection.
func OpenDB(ctx context.Context, cfg Config) (*sql.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.IsFile() {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open(string(cfg.Driver), cfg.DataSourceName())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}
	if cfg.Driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// NewStore wraps an already opened handle.
func NewStore(db *sql.DB, driver Driver) *Store {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == DriverPostgres {
		placeholder = sq.Dollar
	}
	return &Store{
		db:      db,
		driver:  driver,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

// Close releases the handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	slog.Debug("Store closed", slog.String("driver", string(s.driver)))
	return nil
}

// DB exposes the underlying handle.
func (s *Store) DB() *sql.DB { return s.db }

// Driver returns the dialect of the store.
func (s *Store) Driver() Driver { return s.driver }

// Builder returns a squirrel builder using the store's placeholder format.
func (s *Store) Builder() sq.StatementBuilderType { return s.builder }

// rebind rewrites '?' placeholders for dialects that number them.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	out, err := sq.Dollar.ReplacePlaceholders(query)
	if err != nil {
		return query
	}
	return out
}

// ExecuteRead runs a query and returns its rows. The caller closes them.
func (s *Store) ExecuteRead(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	query = s.rebind(query)
	rows, err := s.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStoreError(query, err)
	}
	return rows, nil
}

// ExecuteWrite runs a statement and returns the number of affected rows.
func (s *Store) ExecuteWrite(ctx context.Context, query string, args ...any) (int64, error) {
	query = s.rebind(query)
	res, err := s.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, apperrors.NewStoreError(query, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, apperrors.NewStoreError(query, err)
	}
	return affected, nil
}

// Select scans every row of the query into dst, a pointer to a slice.
func (s *Store) Select(ctx context.Context, dst any, query string, args ...any) error {
	query = s.rebind(query)
	if err := sqlscan.Select(ctx, s.querier(ctx), dst, query, args...); err != nil {
		return apperrors.NewStoreError(query, err)
	}
	return nil
}

// Get scans a single row into dst. It returns apperrors.ErrNotFound when the
// query yields no rows.
func (s *Store) Get(ctx context.Context, dst any, query string, args ...any) error {
	query = s.rebind(query)
	if err := sqlscan.Get(ctx, s.querier(ctx), dst, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewStoreError(query, err)
	}
	return nil
}

// InsertReturningID runs an INSERT ... RETURNING id statement.
func (s *Store) InsertReturningID(ctx context.Context, query string, args ...any) (int64, error) {
	query = s.rebind(query)
	var id int64
	if err := s.querier(ctx).QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, apperrors.NewStoreError(query, err)
	}
	return id, nil
}

// SelectQuery is Select for a built statement.
func (s *Store) SelectQuery(ctx context.Context, dst any, q sq.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	return s.Select(ctx, dst, query, args...)
}

// GetQuery is Get for a built statement.
func (s *Store) GetQuery(ctx context.Context, dst any, q sq.Sqlizer) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	return s.Get(ctx, dst, query, args...)
}

// ExecQuery is ExecuteWrite for a built statement.
func (s *Store) ExecQuery(ctx context.Context, q sq.Sqlizer) (int64, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build statement: %w", err)
	}
	return s.ExecuteWrite(ctx, query, args...)
}

// InsertQuery is InsertReturningID for a built statement.
func (s *Store) InsertQuery(ctx context.Context, q sq.Sqlizer) (int64, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build statement: %w", err)
	}
	return s.InsertReturningID(ctx, query, args...)
}

// ScalarInt reads a single integer column, treating NULL as zero.
func (s *Store) ScalarInt(ctx context.Context, q sq.Sqlizer) (int64, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}
	query = s.rebind(query)
	var v sql.NullInt64
	if err := s.querier(ctx).QueryRowContext(ctx, query, args...).Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, apperrors.NewStoreError(query, err)
	}
	return v.Int64, nil
}
