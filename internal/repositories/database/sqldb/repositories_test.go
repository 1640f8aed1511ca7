package sqldb_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/budget_master_backend/internal/apperrors"
	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_master_backend/internal/core/ports/repositories"
	"github.com/SscSPs/budget_master_backend/internal/platform/bootstrap"
	"github.com/SscSPs/budget_master_backend/internal/repositories/database/sqldb"
	"github.com/SscSPs/budget_master_backend/pkg/database"
)

type RepositoriesTestSuite struct {
	suite.Suite
	ctx   context.Context
	now   time.Time
	store *database.Store
	repos portsrepo.RepositoryProvider
}

func (suite *RepositoriesTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Now().UTC().Truncate(time.Millisecond)
	cfg := database.Config{Driver: database.DriverSQLite, Path: filepath.Join(suite.T().TempDir(), "repo.db")}

	_, err := bootstrap.CreateIfNotExists(suite.ctx, cfg)
	suite.Require().NoError(err)
	suite.store, err = database.Open(suite.ctx, cfg)
	suite.Require().NoError(err)
	suite.repos = sqldb.NewRepositoryProvider(suite.store)
}

func (suite *RepositoriesTestSuite) TearDownTest() {
	if suite.store != nil {
		suite.NoError(suite.store.Close())
	}
}

func (suite *RepositoriesTestSuite) newCurrency(title string, position int) *domain.Currency {
	c := domain.Currency{Title: title, Position: position}
	c.StampCreate("tester", suite.now)
	saved, err := suite.repos.CurrencyRepo.Save(suite.ctx, c)
	suite.Require().NoError(err)
	return saved
}

func (suite *RepositoriesTestSuite) TestSave_RejectsAssignedID() {
	c := domain.Currency{Title: "GBP", Position: 4}
	c.ID = 10

	_, err := suite.repos.CurrencyRepo.Save(suite.ctx, c)
	suite.ErrorIs(err, apperrors.ErrInvalidInput)
}

func (suite *RepositoriesTestSuite) TestAccountRoundTripKeepsNulls() {
	a := domain.Account{
		Title:                "Platinum",
		Position:             6,
		Amount:               12345,
		Type:                 domain.AccountTypeCreditCard,
		CurrencyID:           2,
		CreditCardLimit:      domain.Ptr(int64(500000)),
		CreditCardCategoryID: domain.Ptr(int64(13)),
	}
	a.StampCreate("tester", suite.now)

	saved, err := suite.repos.AccountRepo.Save(suite.ctx, a)
	suite.Require().NoError(err)
	suite.Positive(saved.ID)

	found, err := suite.repos.AccountRepo.FindByID(suite.ctx, saved.ID)
	suite.Require().NoError(err)
	suite.Equal("Platinum", found.Title)
	suite.True(found.CreateTime.Equal(suite.now))
	suite.Nil(found.UpdateTime)
	suite.Nil(found.UpdatedBy)
	suite.Require().NotNil(found.CreditCardLimit)
	suite.Equal(int64(500000), *found.CreditCardLimit)
	suite.Require().NotNil(found.CreditCardCategoryID)
	suite.Nil(found.CreditCardCommissionCategoryID)

	// An explicit nil overwrites the stored value.
	found.CreditCardLimit = nil
	found.StampUpdate("tester", suite.now.Add(time.Second))
	_, err = suite.repos.AccountRepo.Update(suite.ctx, *found)
	suite.Require().NoError(err)

	reloaded, err := suite.repos.AccountRepo.FindByID(suite.ctx, saved.ID)
	suite.Require().NoError(err)
	suite.Nil(reloaded.CreditCardLimit)
	suite.Require().NotNil(reloaded.UpdateTime)
	suite.True(reloaded.UpdateTime.Equal(suite.now.Add(time.Second)))
}

func (suite *RepositoriesTestSuite) TestUpdate_Contract() {
	_, err := suite.repos.CurrencyRepo.Update(suite.ctx, domain.Currency{Title: "X", Position: 1})
	suite.ErrorIs(err, apperrors.ErrInvalidInput)

	missing := domain.Currency{Title: "X", Position: 1}
	missing.ID = 999
	_, err = suite.repos.CurrencyRepo.Update(suite.ctx, missing)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoriesTestSuite) TestSoftDeleteKeepsRowVisible() {
	c := suite.newCurrency("GBP", 4)

	ok, err := suite.repos.CurrencyRepo.DeleteByID(suite.ctx, c.ID, "remover")
	suite.Require().NoError(err)
	suite.True(ok)

	found, err := suite.repos.CurrencyRepo.FindByID(suite.ctx, c.ID)
	suite.Require().NoError(err)
	suite.NotNil(found.DeleteTime)
	suite.Require().NotNil(found.DeletedBy)
	suite.Equal("remover", *found.DeletedBy)

	// Deleting again refreshes the stamps.
	ok, err = suite.repos.CurrencyRepo.DeleteByID(suite.ctx, c.ID, "again")
	suite.Require().NoError(err)
	suite.True(ok)

	ok, err = suite.repos.CurrencyRepo.DeleteByID(suite.ctx, 999, "nobody")
	suite.Require().NoError(err)
	suite.False(ok)

	all, err := suite.repos.CurrencyRepo.FindAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(all, 4)
}

func (suite *RepositoriesTestSuite) TestFindByTitlePrefersLiveRow() {
	old := suite.newCurrency("GBP", 4)
	_, err := suite.repos.CurrencyRepo.DeleteByID(suite.ctx, old.ID, "tester")
	suite.Require().NoError(err)
	live := suite.newCurrency("GBP", 4)

	found, err := suite.repos.CurrencyRepo.FindByTitle(suite.ctx, "GBP")
	suite.Require().NoError(err)
	suite.Equal(live.ID, found.ID)

	_, err = suite.repos.CurrencyRepo.FindByTitle(suite.ctx, "XYZ")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoriesTestSuite) TestPositionsCountOnlyLiveRows() {
	max, err := suite.repos.CurrencyRepo.GetMaxPosition(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(3, max)

	_, err = suite.repos.CurrencyRepo.DeleteByTitle(suite.ctx, "EUR", "tester")
	suite.Require().NoError(err)
	max, err = suite.repos.CurrencyRepo.GetMaxPosition(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(2, max)

	_, err = suite.repos.CurrencyRepo.FindByPosition(suite.ctx, 3)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoriesTestSuite) TestCompactPositions() {
	_, err := suite.repos.CurrencyRepo.DeleteByTitle(suite.ctx, "RUB", "tester")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repos.CurrencyRepo.CompactPositions(suite.ctx, "tester", suite.now))

	usd, err := suite.repos.CurrencyRepo.FindByTitle(suite.ctx, "USD")
	suite.Require().NoError(err)
	suite.Equal(1, usd.Position)
	suite.Require().NotNil(usd.UpdatedBy)
	eur, err := suite.repos.CurrencyRepo.FindByTitle(suite.ctx, "EUR")
	suite.Require().NoError(err)
	suite.Equal(2, eur.Position)

	rub, err := suite.repos.CurrencyRepo.FindByTitle(suite.ctx, "RUB")
	suite.Require().NoError(err)
	suite.Equal(1, rub.Position, "deleted rows keep their position")
}

func (suite *RepositoriesTestSuite) TestMovePosition() {
	// RUB 1, USD 2, EUR 3: move RUB down to 3.
	suite.Require().NoError(suite.repos.CurrencyRepo.MovePosition(suite.ctx, 1, 1, 3, "mover", suite.now))
	suite.positions(map[string]int{"RUB": 3, "USD": 1, "EUR": 2})

	// And EUR (now 2) up to 1.
	suite.Require().NoError(suite.repos.CurrencyRepo.MovePosition(suite.ctx, 3, 2, 1, "mover", suite.now))
	suite.positions(map[string]int{"EUR": 1, "USD": 2, "RUB": 3})

	moved, err := suite.repos.CurrencyRepo.FindByID(suite.ctx, 3)
	suite.Require().NoError(err)
	suite.Require().NotNil(moved.UpdatedBy)
	suite.Equal("mover", *moved.UpdatedBy)
}

func (suite *RepositoriesTestSuite) positions(want map[string]int) {
	for title, pos := range want {
		c, err := suite.repos.CurrencyRepo.FindByTitle(suite.ctx, title)
		suite.Require().NoError(err)
		suite.Equal(pos, c.Position, title)
	}
}

func (suite *RepositoriesTestSuite) TestCategoryFinders() {
	roots, err := suite.repos.CategoryRepo.FindAllByParentID(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Len(roots, 2)

	expenseChildren, err := suite.repos.CategoryRepo.FindAllByParentID(suite.ctx, domain.Ptr(int64(2)))
	suite.Require().NoError(err)
	suite.Require().Len(expenseChildren, 2)
	suite.Equal("Necessary", expenseChildren[0].Title)
	suite.Equal("Additional", expenseChildren[1].Title)

	income, err := suite.repos.CategoryRepo.FindAllByOperationType(suite.ctx, domain.OperationTypeIncome)
	suite.Require().NoError(err)
	suite.Len(income, 4)

	parents, err := suite.repos.CategoryRepo.FindAllByType(suite.ctx, domain.CategoryTypeParent)
	suite.Require().NoError(err)
	suite.Len(parents, 2)

	all, err := suite.repos.CategoryRepo.FindAll(suite.ctx)
	suite.Require().NoError(err)
	for i, c := range all {
		suite.Equal(i+1, c.Position)
	}
}

func (suite *RepositoriesTestSuite) TestAccountFinders() {
	credit, err := suite.repos.AccountRepo.FindAllByType(suite.ctx, domain.AccountTypeCreditCard)
	suite.Require().NoError(err)
	suite.Len(credit, 2)

	rub, err := suite.repos.AccountRepo.FindAllByCurrencyID(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Len(rub, 5)

	closed, err := suite.repos.AccountRepo.FindAllByClosed(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Empty(closed)
}

func (suite *RepositoriesTestSuite) TestBudgetGlobalKey() {
	global := domain.Budget{Position: 1, Amount: 100, CurrencyID: 1}
	global.StampCreate("tester", suite.now)
	saved, err := suite.repos.BudgetRepo.Save(suite.ctx, global)
	suite.Require().NoError(err)

	perCategory := domain.Budget{Position: 2, Amount: 50, CurrencyID: 1, CategoryID: domain.Ptr(int64(8))}
	perCategory.StampCreate("tester", suite.now)
	_, err = suite.repos.BudgetRepo.Save(suite.ctx, perCategory)
	suite.Require().NoError(err)

	found, err := suite.repos.BudgetRepo.FindByCategoryID(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Equal(saved.ID, found.ID)
	suite.Nil(found.CategoryID)

	ok, err := suite.repos.BudgetRepo.DeleteByCategoryID(suite.ctx, domain.Ptr(int64(8)), "tester")
	suite.Require().NoError(err)
	suite.True(ok)

	max, err := suite.repos.BudgetRepo.GetMaxPosition(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(1, max)
}

func (suite *RepositoriesTestSuite) saveOperation(date time.Time, comment string) *domain.Operation {
	o := domain.Operation{
		Type:       domain.OperationTypeExpense,
		Date:       date,
		Amount:     100,
		Comment:    comment,
		CategoryID: 9,
		AccountID:  1,
		CurrencyID: 1,
	}
	o.StampCreate("tester", suite.now)
	saved, err := suite.repos.OperationRepo.Save(suite.ctx, o)
	suite.Require().NoError(err)
	return saved
}

func (suite *RepositoriesTestSuite) TestOperationFinders() {
	morning := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 1, 23, 59, 59, 999_000_000, time.UTC)
	nextDay := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	first := suite.saveOperation(morning, "bread")
	second := suite.saveOperation(evening, "milk")
	suite.saveOperation(nextDay, "bread")

	sameDay, err := suite.repos.OperationRepo.FindAllByDate(suite.ctx, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Require().Len(sameDay, 2)
	suite.Equal(second.ID, sameDay[0].ID, "newest first")
	suite.Equal(first.ID, sameDay[1].ID)
	suite.True(sameDay[0].Date.Equal(evening))

	bread, err := suite.repos.OperationRepo.FindAllByComment(suite.ctx, "bread")
	suite.Require().NoError(err)
	suite.Len(bread, 2)

	all, err := suite.repos.OperationRepo.FindAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.True(all[0].Date.Equal(nextDay))

	ok, err := suite.repos.OperationRepo.DeleteByID(suite.ctx, first.ID, "tester")
	suite.Require().NoError(err)
	suite.True(ok)
	deleted, err := suite.repos.OperationRepo.FindByID(suite.ctx, first.ID)
	suite.Require().NoError(err)
	suite.True(deleted.IsDeleted())
}

func TestRepositories(t *testing.T) {
	suite.Run(t, new(RepositoriesTestSuite))
}
