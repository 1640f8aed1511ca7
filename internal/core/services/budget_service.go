package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/budget_master_backend/internal/apperrors"
	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_master_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_master_backend/internal/core/ports/services"
	"github.com/SscSPs/budget_master_backend/internal/dto"
)

type budgetService struct {
	BaseService
	repo portsrepo.BudgetRepositoryFacade
}

// NewBudgetService creates a budget service writing as user.
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade, tx portsrepo.TransactionManager, user string, opts ...Option) (portssvc.BudgetSvcFacade, error) {
	base, err := newBaseService(user, tx, opts...)
	if err != nil {
		return nil, err
	}
	return &budgetService{BaseService: base, repo: repo}, nil
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func categoryKey(categoryID *int64) any {
	if categoryID == nil {
		return "null"
	}
	return *categoryID
}

func (s *budgetService) findByCategoryID(ctx context.Context, categoryID *int64) (*domain.Budget, error) {
	b, err := s.repo.FindByCategoryID(ctx, categoryID)
	if isNotFound(err) {
		return nil, nil
	}
	return b, err
}

func (s *budgetService) checkCategoryFree(ctx context.Context, categoryID *int64, id int64) error {
	other, err := s.findByCategoryID(ctx, categoryID)
	if err != nil {
		return err
	}
	if other != nil && !other.IsDeleted() && other.ID != id {
		return apperrors.NewConflict("budget", "category_id", categoryKey(categoryID))
	}
	return nil
}

func (s *budgetService) Get(ctx context.Context, categoryID *int64, amount int64, currencyID int64) (*domain.Budget, domain.Outcome, error) {
	in := dto.BudgetInput{Amount: amount, CurrencyID: currencyID, CategoryID: categoryID}
	if err := validateStruct(in); err != nil {
		return nil, domain.OutcomeFound, err
	}

	var result *domain.Budget
	outcome := domain.OutcomeFound
	err := s.inTx(ctx, func(ctx context.Context) error {
		existing, err := s.findByCategoryID(ctx, categoryID)
		if err != nil {
			return err
		}
		now := s.clock()

		switch {
		case existing == nil:
			b := domain.Budget{Amount: amount, CurrencyID: currencyID, CategoryID: categoryID}
			b.Position, err = tailPosition(ctx, s.repo, s.user, now)
			if err != nil {
				return err
			}
			b.StampCreate(s.user, now)
			result, err = s.repo.Save(ctx, b)
			outcome = domain.OutcomeCreated
			return err
		case existing.IsDeleted():
			b := *existing
			b.Amount, b.CurrencyID = amount, currencyID
			b.Position, err = tailPosition(ctx, s.repo, s.user, now)
			if err != nil {
				return err
			}
			b.Restore(s.user, now)
			result, err = s.repo.Update(ctx, b)
			outcome = domain.OutcomeRestored
			return err
		case existing.Amount == amount && existing.CurrencyID == currencyID:
			result = existing
			return nil
		}

		b := *existing
		b.Amount, b.CurrencyID = amount, currencyID
		b.StampUpdate(s.user, now)
		result, err = s.repo.Update(ctx, b)
		outcome = domain.OutcomeUpdated
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to get budget", slog.Any("category_id", categoryKey(categoryID)))
		return nil, domain.OutcomeFound, err
	}

	s.LogDebug(ctx, "Budget resolved", slog.Int64("budget_id", result.ID), slog.String("outcome", outcome.String()))
	return result, outcome, nil
}

func (s *budgetService) Update(ctx context.Context, id int64, patch dto.BudgetPatch) (*domain.Budget, error) {
	if !patch.HasChanges() {
		return nil, nil
	}
	var result *domain.Budget
	err := s.inTx(ctx, func(ctx context.Context) error {
		b, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		result, err = s.applyPatch(ctx, *b, patch)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update budget", slog.Int64("budget_id", id))
		return nil, err
	}
	return result, nil
}

func (s *budgetService) UpdateByCategoryID(ctx context.Context, categoryID *int64, patch dto.BudgetPatch) (*domain.Budget, error) {
	if !patch.HasChanges() {
		return nil, nil
	}
	var result *domain.Budget
	err := s.inTx(ctx, func(ctx context.Context) error {
		b, err := s.findByCategoryID(ctx, categoryID)
		if err != nil {
			return err
		}
		if b == nil {
			return apperrors.NewNotFoundByKey("budget", "category_id", categoryKey(categoryID))
		}
		result, err = s.applyPatch(ctx, *b, patch)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update budget", slog.Any("category_id", categoryKey(categoryID)))
		return nil, err
	}
	return result, nil
}

func (s *budgetService) applyPatch(ctx context.Context, b domain.Budget, patch dto.BudgetPatch) (*domain.Budget, error) {
	oldCategory := b.CategoryID
	patch.Apply(&b)
	if err := validateStruct(dto.NewBudgetInput(b)); err != nil {
		return nil, err
	}
	if !b.IsDeleted() && !sameID(b.CategoryID, oldCategory) {
		if err := s.checkCategoryFree(ctx, b.CategoryID, b.ID); err != nil {
			return nil, err
		}
	}
	b.StampUpdate(s.user, s.clock())
	return s.repo.Update(ctx, b)
}

func (s *budgetService) DeleteByCategoryID(ctx context.Context, categoryID *int64) (bool, error) {
	ok, err := s.repo.DeleteByCategoryID(ctx, categoryID, s.user)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.Any("category_id", categoryKey(categoryID)))
		return false, err
	}
	return ok, nil
}

func (s *budgetService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.DeleteByID(ctx, id, s.user)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.Int64("budget_id", id))
		return false, err
	}
	return ok, nil
}

func (s *budgetService) Restore(ctx context.Context, id int64) (*domain.Budget, error) {
	var result *domain.Budget
	err := s.inTx(ctx, func(ctx context.Context) error {
		b, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !b.IsDeleted() {
			result = b
			return nil
		}
		if err := s.checkCategoryFree(ctx, b.CategoryID, b.ID); err != nil {
			return err
		}
		now := s.clock()
		pos, err := tailPosition(ctx, s.repo, s.user, now)
		if err != nil {
			return err
		}
		b.Restore(s.user, now)
		b.Position = pos
		result, err = s.repo.Update(ctx, *b)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to restore budget", slog.Int64("budget_id", id))
		return nil, err
	}
	return result, nil
}

func (s *budgetService) ChangePosition(ctx context.Context, budget domain.Budget, newPosition int) (*domain.Budget, error) {
	return s.changePosition(ctx, budget.ID, newPosition)
}

func (s *budgetService) ChangePositionAt(ctx context.Context, oldPosition, newPosition int) (*domain.Budget, error) {
	var result *domain.Budget
	err := s.inTx(ctx, func(ctx context.Context) error {
		b, err := s.repo.FindByPosition(ctx, oldPosition)
		if isNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		result, err = s.changePosition(ctx, b.ID, newPosition)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *budgetService) ChangePositionByCategoryID(ctx context.Context, categoryID *int64, newPosition int) (*domain.Budget, error) {
	b, err := s.findByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperrors.NewNotFoundByKey("budget", "category_id", categoryKey(categoryID))
	}
	return s.changePosition(ctx, b.ID, newPosition)
}

func (s *budgetService) changePosition(ctx context.Context, id int64, newPosition int) (*domain.Budget, error) {
	var result *domain.Budget
	err := s.inTx(ctx, func(ctx context.Context) error {
		now := s.clock()
		b, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		moved, err := movePosition(ctx, s.repo, b.ID, b.IsDeleted(), b.Position, newPosition, s.user, now)
		if err != nil || !moved {
			result = b
			return err
		}
		result, err = s.repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to change budget position",
			slog.Int64("budget_id", id), slog.Int("position", newPosition))
		return nil, err
	}
	return result, nil
}

func (s *budgetService) GetByID(ctx context.Context, id int64) (*domain.Budget, error) {
	b, err := s.repo.FindByID(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to find budget", slog.Int64("budget_id", id))
		return nil, err
	}
	return b, nil
}

func (s *budgetService) GetByCategoryID(ctx context.Context, categoryID *int64) (*domain.Budget, error) {
	b, err := s.findByCategoryID(ctx, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find budget", slog.Any("category_id", categoryKey(categoryID)))
		return nil, err
	}
	return b, nil
}

func (s *budgetService) GetAll(ctx context.Context) ([]domain.Budget, error) {
	budgets, err := s.repo.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, err
	}
	return budgets, nil
}

func (s *budgetService) GetAllLive(ctx context.Context) ([]domain.Budget, error) {
	budgets, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return liveOnly(budgets), nil
}

func (s *budgetService) GetAllByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Budget, error) {
	budgets, err := s.repo.FindAllByCurrencyID(ctx, currencyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets by currency", slog.Int64("currency_id", currencyID))
		return nil, err
	}
	return budgets, nil
}

func (s *budgetService) IsDeleted(ctx context.Context, id int64) (bool, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return b.IsDeleted(), nil
}
