package database_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/budget_master_backend/internal/apperrors"
	"github.com/SscSPs/budget_master_backend/pkg/database"
)

const testSchema = `
CREATE TABLE currencies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	position INTEGER NOT NULL
);
CREATE TABLE categories (id INTEGER PRIMARY KEY AUTOINCREMENT, title TEXT);
CREATE TABLE accounts (id INTEGER PRIMARY KEY AUTOINCREMENT, title TEXT);
CREATE TABLE budgets (id INTEGER PRIMARY KEY AUTOINCREMENT, amount INTEGER);
CREATE TABLE operations (id INTEGER PRIMARY KEY AUTOINCREMENT, comment TEXT);
`

type currencyRow struct {
	ID       int64  `db:"id"`
	Title    string `db:"title"`
	Position int    `db:"position"`
}

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	path  string
	store *database.Store
}

func (suite *StoreTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.path = filepath.Join(suite.T().TempDir(), "nested", "store.db")

	store, err := database.Open(suite.ctx, database.Config{Driver: database.DriverSQLite, Path: suite.path})
	suite.Require().NoError(err)
	suite.store = store
	suite.T().Cleanup(func() { _ = store.Close() })

	_, err = store.DB().ExecContext(suite.ctx, testSchema)
	suite.Require().NoError(err)
}

func (suite *StoreTestSuite) insert(title string, position int) int64 {
	id, err := suite.store.InsertReturningID(suite.ctx,
		"INSERT INTO currencies (title, position) VALUES (?, ?) RETURNING id", title, position)
	suite.Require().NoError(err)
	return id
}

func (suite *StoreTestSuite) TestOpen_CreatesFileAndDirectory() {
	_, err := os.Stat(suite.path)
	suite.NoError(err)
	suite.Equal(database.DriverSQLite, suite.store.Driver())
}

func (suite *StoreTestSuite) TestOpen_InvalidConfig() {
	_, err := database.Open(suite.ctx, database.Config{Driver: database.DriverSQLite})
	suite.Error(err)

	_, err = database.Open(suite.ctx, database.Config{Driver: "mysql", Path: "x.db"})
	suite.Error(err)
}

func (suite *StoreTestSuite) TestExecuteWriteAndRead() {
	suite.insert("RUB", 1)
	suite.insert("USD", 2)

	affected, err := suite.store.ExecuteWrite(suite.ctx, "UPDATE currencies SET position = position + 10")
	suite.Require().NoError(err)
	suite.EqualValues(2, affected)

	rows, err := suite.store.ExecuteRead(suite.ctx, "SELECT title FROM currencies WHERE position > ? ORDER BY id", 10)
	suite.Require().NoError(err)
	var titles []string
	for rows.Next() {
		var title string
		suite.Require().NoError(rows.Scan(&title))
		titles = append(titles, title)
	}
	suite.Require().NoError(rows.Err())
	suite.Require().NoError(rows.Close())
	suite.Equal([]string{"RUB", "USD"}, titles)
}

func (suite *StoreTestSuite) TestSelectAndGet() {
	id := suite.insert("EUR", 1)

	var row currencyRow
	suite.Require().NoError(suite.store.Get(suite.ctx, &row, "SELECT id, title, position FROM currencies WHERE id = ?", id))
	suite.Equal("EUR", row.Title)

	var rows []currencyRow
	q := suite.store.Builder().Select("id", "title", "position").From("currencies").OrderBy("position")
	suite.Require().NoError(suite.store.SelectQuery(suite.ctx, &rows, q))
	suite.Len(rows, 1)

	err := suite.store.Get(suite.ctx, &row, "SELECT id, title, position FROM currencies WHERE id = ?", id+100)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StoreTestSuite) TestStoreError_CarriesStatement() {
	_, err := suite.store.ExecuteWrite(suite.ctx, "UPDATE nope SET x = 1")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStore)

	var appErr *apperrors.AppError
	suite.Require().True(errors.As(err, &appErr))
	suite.Equal("UPDATE nope SET x = 1", appErr.Statement)
}

func (suite *StoreTestSuite) TestRunInTx_RollsBackOnError() {
	boom := errors.New("boom")
	err := suite.store.RunInTx(suite.ctx, func(ctx context.Context) error {
		suite.True(database.InTx(ctx))
		if _, err := suite.store.ExecuteWrite(ctx, "INSERT INTO currencies (title, position) VALUES (?, ?)", "X", 1); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	count, err := suite.store.GetTableRecordCount(suite.ctx, database.TableCurrencies)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *StoreTestSuite) TestRunInTx_NestedCallsJoin() {
	err := suite.store.RunInTx(suite.ctx, func(ctx context.Context) error {
		return suite.store.RunInTx(ctx, func(inner context.Context) error {
			_, err := suite.store.ExecuteWrite(inner, "INSERT INTO currencies (title, position) VALUES (?, ?)", "Y", 1)
			return err
		})
	})
	suite.Require().NoError(err)

	count, err := suite.store.GetTableRecordCount(suite.ctx, database.TableCurrencies)
	suite.Require().NoError(err)
	suite.EqualValues(1, count)
}

func (suite *StoreTestSuite) TestRunInTx_RollsBackOnPanic() {
	suite.Panics(func() {
		_ = suite.store.RunInTx(suite.ctx, func(ctx context.Context) error {
			_, _ = suite.store.ExecuteWrite(ctx, "INSERT INTO currencies (title, position) VALUES (?, ?)", "Z", 1)
			panic("unexpected")
		})
	})

	count, err := suite.store.GetTableRecordCount(suite.ctx, database.TableCurrencies)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *StoreTestSuite) TestClearTable_ResetsSequence() {
	suite.insert("A", 1)
	suite.insert("B", 2)

	suite.Require().NoError(suite.store.ClearTable(suite.ctx, database.TableCurrencies))
	count, err := suite.store.GetTableRecordCount(suite.ctx, database.TableCurrencies)
	suite.Require().NoError(err)
	suite.Zero(count)

	suite.EqualValues(1, suite.insert("C", 1))
}

func (suite *StoreTestSuite) TestClearAllData() {
	suite.insert("A", 1)
	_, err := suite.store.ExecuteWrite(suite.ctx, "INSERT INTO operations (comment) VALUES (?)", "x")
	suite.Require().NoError(err)

	total, err := suite.store.GetTotalRecordCount(suite.ctx)
	suite.Require().NoError(err)
	suite.EqualValues(2, total)

	suite.Require().NoError(suite.store.ClearAllData(suite.ctx))
	total, err = suite.store.GetTotalRecordCount(suite.ctx)
	suite.Require().NoError(err)
	suite.Zero(total)
	suite.EqualValues(1, suite.insert("B", 1))
}

func (suite *StoreTestSuite) TestUnknownTable() {
	_, err := suite.store.GetTableRecordCount(suite.ctx, "users; DROP TABLE currencies")
	suite.ErrorIs(err, apperrors.ErrInvalidInput)
	suite.ErrorIs(suite.store.ClearTable(suite.ctx, "users"), apperrors.ErrInvalidInput)
}

func TestStore(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestNewStore_PlaceholderFormatPerDriver(t *testing.T) {
	tests := []struct {
		driver database.Driver
		want   string
	}{
		{database.DriverSQLite, "SELECT id FROM currencies WHERE title = ? AND position = ?"},
		{database.DriverPostgres, "SELECT id FROM currencies WHERE title = $1 AND position = $2"},
	}
	for _, tt := range tests {
		t.Run(string(tt.driver), func(t *testing.T) {
			store := database.NewStore(nil, tt.driver)
			query, args, err := store.Builder().
				Select("id").
				From(database.TableCurrencies).
				Where(sq.Eq{"title": "USD"}).
				Where(sq.Eq{"position": 2}).
				ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"USD", 2}, args)
			assert.Equal(t, tt.driver, store.Driver())
		})
	}
}
