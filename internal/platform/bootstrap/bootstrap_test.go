package bootstrap_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/budget_master_backend/internal/apperrors"
	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	"github.com/SscSPs/budget_master_backend/internal/platform/bootstrap"
	"github.com/SscSPs/budget_master_backend/internal/repositories/database/sqldb"
	"github.com/SscSPs/budget_master_backend/pkg/database"
)

type BootstrapTestSuite struct {
	suite.Suite
	ctx context.Context
	cfg database.Config
}

func (suite *BootstrapTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.cfg = database.Config{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(suite.T().TempDir(), "nested", "budget.db"),
	}
}

func (suite *BootstrapTestSuite) open() *database.Store {
	store, err := database.Open(suite.ctx, suite.cfg)
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { _ = store.Close() })
	return store
}

func (suite *BootstrapTestSuite) counts(store *database.Store) map[string]int64 {
	out := make(map[string]int64, len(database.Tables))
	for _, table := range database.Tables {
		n, err := store.GetTableRecordCount(suite.ctx, table)
		suite.Require().NoError(err)
		out[table] = n
	}
	return out
}

func (suite *BootstrapTestSuite) TestCreateIfNotExists_FreshPath() {
	_, err := os.Stat(suite.cfg.Path)
	suite.Require().True(os.IsNotExist(err))

	created, err := bootstrap.CreateIfNotExists(suite.ctx, suite.cfg)
	suite.Require().NoError(err)
	suite.True(created)
	suite.FileExists(suite.cfg.Path)

	store := suite.open()
	suite.Equal(map[string]int64{
		database.TableCurrencies: 3,
		database.TableCategories: 17,
		database.TableAccounts:   5,
		database.TableBudgets:    0,
		database.TableOperations: 0,
	}, suite.counts(store))

	total, err := store.GetTotalRecordCount(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(25), total)
}

func (suite *BootstrapTestSuite) TestCreateIfNotExists_LeavesExistingFileAlone() {
	created, err := bootstrap.CreateIfNotExists(suite.ctx, suite.cfg)
	suite.Require().NoError(err)
	suite.Require().True(created)

	store := suite.open()
	_, err = store.ExecuteWrite(suite.ctx, "DELETE FROM accounts WHERE id = ?", 5)
	suite.Require().NoError(err)

	created, err = bootstrap.CreateIfNotExists(suite.ctx, suite.cfg)
	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal(int64(4), suite.counts(store)[database.TableAccounts])
}

func (suite *BootstrapTestSuite) TestCreateIfNotExists_RejectsMemoryPath() {
	_, err := bootstrap.CreateIfNotExists(suite.ctx, database.Config{Driver: database.DriverSQLite, Path: database.MemoryPath})
	suite.Error(err)
}

func (suite *BootstrapTestSuite) TestSeededRowsAreStampedAndOrdered() {
	_, err := bootstrap.CreateIfNotExists(suite.ctx, suite.cfg)
	suite.Require().NoError(err)
	repos := sqldb.NewRepositoryProvider(suite.open())

	categories, err := repos.CategoryRepo.FindAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(categories, 17)
	for i, c := range categories {
		suite.Equal(i+1, c.Position)
		suite.Equal(int64(i+1), c.ID)
		suite.Require().NotNil(c.CreatedBy)
		suite.Equal(bootstrap.InitializerUser, *c.CreatedBy)
		suite.Nil(c.UpdateTime)
		if c.Type == domain.CategoryTypeParent {
			suite.Nil(c.ParentID, c.Title)
		} else {
			suite.NotNil(c.ParentID, c.Title)
		}
	}

	cinema, err := repos.CategoryRepo.FindByTitle(suite.ctx, "Cinema")
	suite.Require().NoError(err)
	suite.Equal(int64(15), cinema.ID)
	suite.Equal(domain.OperationTypeExpense, cinema.OperationType)

	accounts, err := repos.AccountRepo.FindAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(accounts, 5)
	suite.Equal("Cash", accounts[0].Title)
	suite.Equal(domain.AccountTypeDeposit, accounts[2].Type)
}

func (suite *BootstrapTestSuite) TestRestoreDefaults() {
	_, err := bootstrap.CreateIfNotExists(suite.ctx, suite.cfg)
	suite.Require().NoError(err)
	store := suite.open()

	_, err = store.ExecuteWrite(suite.ctx,
		"INSERT INTO budgets (create_time, position, amount, currency_id) VALUES (?, ?, ?, ?)",
		"2024-01-01 00:00:00.000", 1, 100, 1)
	suite.Require().NoError(err)
	_, err = store.ExecuteWrite(suite.ctx, "UPDATE currencies SET delete_time = ?, deleted_by = ? WHERE id = ?",
		"2024-01-01 00:00:00.000", "tester", 1)
	suite.Require().NoError(err)

	suite.Require().NoError(bootstrap.RestoreDefaults(suite.ctx, store))

	counts := suite.counts(store)
	suite.Equal(int64(0), counts[database.TableBudgets])
	suite.Equal(int64(3), counts[database.TableCurrencies])

	rub, err := sqldb.NewCurrencyRepository(store).FindByID(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Equal("RUB", rub.Title)
	suite.False(rub.IsDeleted())
}

func (suite *BootstrapTestSuite) TestRestoreDefaults_FailedSeedKeepsData() {
	_, err := bootstrap.CreateIfNotExists(suite.ctx, suite.cfg)
	suite.Require().NoError(err)
	store := suite.open()

	_, err = store.ExecuteWrite(suite.ctx,
		"INSERT INTO budgets (create_time, position, amount, currency_id) VALUES (?, ?, ?, ?)",
		"2024-01-01 00:00:00.000", 1, 100, 1)
	suite.Require().NoError(err)
	_, err = store.ExecuteWrite(suite.ctx,
		"CREATE TRIGGER block_accounts BEFORE INSERT ON accounts BEGIN SELECT RAISE(ABORT, 'accounts are read-only'); END")
	suite.Require().NoError(err)
	before := suite.counts(store)

	err = bootstrap.RestoreDefaults(suite.ctx, store)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStore)

	suite.Equal(before, suite.counts(store))
	suite.Equal(int64(1), before[database.TableBudgets])
	suite.Equal(int64(5), before[database.TableAccounts])
}

func (suite *BootstrapTestSuite) TestRestoreDefaultTablesOnlyWhenEmpty() {
	_, err := bootstrap.CreateIfNotExists(suite.ctx, suite.cfg)
	suite.Require().NoError(err)
	store := suite.open()

	seeded, err := bootstrap.RestoreDefaultCurrencies(suite.ctx, store)
	suite.Require().NoError(err)
	suite.False(seeded)

	suite.Require().NoError(store.ClearTable(suite.ctx, database.TableCategories))
	seeded, err = bootstrap.RestoreDefaultCategories(suite.ctx, store)
	suite.Require().NoError(err)
	suite.True(seeded)
	suite.Equal(int64(17), suite.counts(store)[database.TableCategories])

	suite.Require().NoError(store.ClearTable(suite.ctx, database.TableAccounts))
	seeded, err = bootstrap.RestoreDefaultAccounts(suite.ctx, store)
	suite.Require().NoError(err)
	suite.True(seeded)
	suite.Equal(int64(5), suite.counts(store)[database.TableAccounts])
}

func TestBootstrap(t *testing.T) {
	suite.Run(t, new(BootstrapTestSuite))
}
