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

// Defaults of a new account.
const (
	defaultAccountType       = domain.AccountTypeCurrent
	defaultAccountCurrencyID = int64(1)
)

type accountService struct {
	BaseService
	repo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates an account service writing as user.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, tx portsrepo.TransactionManager, user string, opts ...Option) (portssvc.AccountSvcFacade, error) {
	base, err := newBaseService(user, tx, opts...)
	if err != nil {
		return nil, err
	}
	return &accountService{BaseService: base, repo: repo}, nil
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func validateAccount(a domain.Account) error {
	if err := ValidateTitle(&a.Title); err != nil {
		return err
	}
	return validateStruct(dto.NewAccountInput(a))
}

func accountDiffers(a, b domain.Account) bool {
	return a.Title != b.Title || a.Amount != b.Amount || a.Type != b.Type ||
		a.CurrencyID != b.CurrencyID || a.Closed != b.Closed ||
		!sameID(a.CreditCardLimit, b.CreditCardLimit) ||
		!sameID(a.CreditCardCategoryID, b.CreditCardCategoryID) ||
		!sameID(a.CreditCardCommissionCategoryID, b.CreditCardCommissionCategoryID)
}

func (s *accountService) findByTitle(ctx context.Context, title string) (*domain.Account, error) {
	a, err := s.repo.FindByTitle(ctx, title)
	if isNotFound(err) {
		return nil, nil
	}
	return a, err
}

func (s *accountService) checkTitleFree(ctx context.Context, title string, id int64) error {
	other, err := s.findByTitle(ctx, title)
	if err != nil {
		return err
	}
	if other != nil && !other.IsDeleted() && other.ID != id {
		return apperrors.NewConflict("account", "title", title)
	}
	return nil
}

func (s *accountService) Get(ctx context.Context, title string, params dto.AccountParams) (*domain.Account, domain.Outcome, error) {
	if err := ValidateTitle(&title); err != nil {
		return nil, domain.OutcomeFound, err
	}

	var result *domain.Account
	outcome := domain.OutcomeFound
	err := s.inTx(ctx, func(ctx context.Context) error {
		existing, err := s.findByTitle(ctx, title)
		if err != nil {
			return err
		}
		now := s.clock()

		switch {
		case existing == nil:
			a := domain.Account{
				Title:      title,
				Amount:     params.Amount.OrElse(0),
				Type:       params.Type.OrElse(defaultAccountType),
				CurrencyID: params.CurrencyID.OrElse(defaultAccountCurrencyID),
				Closed:     params.Closed.OrElse(0),
			}
			if err := validateAccount(a); err != nil {
				return err
			}
			a.Position, err = tailPosition(ctx, s.repo, s.user, now)
			if err != nil {
				return err
			}
			a.StampCreate(s.user, now)
			result, err = s.repo.Save(ctx, a)
			outcome = domain.OutcomeCreated
			return err
		case existing.IsDeleted():
			a := *existing
			params.Patch().Apply(&a)
			if err := validateAccount(a); err != nil {
				return err
			}
			a.Position, err = tailPosition(ctx, s.repo, s.user, now)
			if err != nil {
				return err
			}
			a.Restore(s.user, now)
			result, err = s.repo.Update(ctx, a)
			outcome = domain.OutcomeRestored
			return err
		}

		a := *existing
		params.Patch().Apply(&a)
		if !accountDiffers(*existing, a) {
			result = existing
			return nil
		}
		if err := validateAccount(a); err != nil {
			return err
		}
		a.StampUpdate(s.user, now)
		result, err = s.repo.Update(ctx, a)
		outcome = domain.OutcomeUpdated
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to get account", slog.String("title", title))
		return nil, domain.OutcomeFound, err
	}

	s.LogDebug(ctx, "Account resolved", slog.Int64("account_id", result.ID), slog.String("outcome", outcome.String()))
	return result, outcome, nil
}

func (s *accountService) Update(ctx context.Context, id int64, patch dto.AccountPatch) (*domain.Account, error) {
	if !patch.HasChanges() {
		return nil, nil
	}
	var result *domain.Account
	err := s.inTx(ctx, func(ctx context.Context) error {
		a, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		result, err = s.applyPatch(ctx, *a, patch)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update account", slog.Int64("account_id", id))
		return nil, err
	}
	return result, nil
}

func (s *accountService) UpdateByTitle(ctx context.Context, title string, patch dto.AccountPatch) (*domain.Account, error) {
	if !patch.HasChanges() {
		return nil, nil
	}
	var result *domain.Account
	err := s.inTx(ctx, func(ctx context.Context) error {
		a, err := s.findByTitle(ctx, title)
		if err != nil {
			return err
		}
		if a == nil {
			return apperrors.NewNotFoundByKey("account", "title", title)
		}
		result, err = s.applyPatch(ctx, *a, patch)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update account", slog.String("title", title))
		return nil, err
	}
	return result, nil
}

func (s *accountService) applyPatch(ctx context.Context, a domain.Account, patch dto.AccountPatch) (*domain.Account, error) {
	oldTitle := a.Title
	patch.Apply(&a)
	if err := validateAccount(a); err != nil {
		return nil, err
	}
	if !a.IsDeleted() && a.Title != oldTitle {
		if err := s.checkTitleFree(ctx, a.Title, a.ID); err != nil {
			return nil, err
		}
	}
	a.StampUpdate(s.user, s.clock())
	return s.repo.Update(ctx, a)
}

func (s *accountService) Delete(ctx context.Context, title string) (bool, error) {
	ok, err := s.repo.DeleteByTitle(ctx, title, s.user)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("title", title))
		return false, err
	}
	return ok, nil
}

func (s *accountService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.DeleteByID(ctx, id, s.user)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.Int64("account_id", id))
		return false, err
	}
	return ok, nil
}

func (s *accountService) Restore(ctx context.Context, id int64) (*domain.Account, error) {
	var result *domain.Account
	err := s.inTx(ctx, func(ctx context.Context) error {
		a, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !a.IsDeleted() {
			result = a
			return nil
		}
		if err := s.checkTitleFree(ctx, a.Title, a.ID); err != nil {
			return err
		}
		now := s.clock()
		pos, err := tailPosition(ctx, s.repo, s.user, now)
		if err != nil {
			return err
		}
		a.Restore(s.user, now)
		a.Position = pos
		result, err = s.repo.Update(ctx, *a)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to restore account", slog.Int64("account_id", id))
		return nil, err
	}
	return result, nil
}

func (s *accountService) ChangePosition(ctx context.Context, account domain.Account, newPosition int) (*domain.Account, error) {
	return s.changePosition(ctx, account.ID, newPosition)
}

func (s *accountService) ChangePositionAt(ctx context.Context, oldPosition, newPosition int) (*domain.Account, error) {
	var result *domain.Account
	err := s.inTx(ctx, func(ctx context.Context) error {
		a, err := s.repo.FindByPosition(ctx, oldPosition)
		if isNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		result, err = s.changePosition(ctx, a.ID, newPosition)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *accountService) ChangePositionByTitle(ctx context.Context, title string, newPosition int) (*domain.Account, error) {
	a, err := s.findByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperrors.NewNotFoundByKey("account", "title", title)
	}
	return s.changePosition(ctx, a.ID, newPosition)
}

func (s *accountService) changePosition(ctx context.Context, id int64, newPosition int) (*domain.Account, error) {
	var result *domain.Account
	err := s.inTx(ctx, func(ctx context.Context) error {
		now := s.clock()
		a, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		moved, err := movePosition(ctx, s.repo, a.ID, a.IsDeleted(), a.Position, newPosition, s.user, now)
		if err != nil || !moved {
			result = a
			return err
		}
		result, err = s.repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to change account position",
			slog.Int64("account_id", id), slog.Int("position", newPosition))
		return nil, err
	}
	return result, nil
}

func (s *accountService) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	a, err := s.repo.FindByID(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to find account", slog.Int64("account_id", id))
		return nil, err
	}
	return a, nil
}

func (s *accountService) GetAll(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) GetAllLive(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return liveOnly(accounts), nil
}

func (s *accountService) GetAllByType(ctx context.Context, accountType domain.AccountType) ([]domain.Account, error) {
	accounts, err := s.repo.FindAllByType(ctx, accountType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts by type", slog.Int("type", int(accountType)))
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) GetAllByCurrencyID(ctx context.Context, currencyID int64) ([]domain.Account, error) {
	accounts, err := s.repo.FindAllByCurrencyID(ctx, currencyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts by currency", slog.Int64("currency_id", currencyID))
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) GetAllByClosed(ctx context.Context, closed int) ([]domain.Account, error) {
	accounts, err := s.repo.FindAllByClosed(ctx, closed)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts by closed flag", slog.Int("closed", closed))
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) IsDeleted(ctx context.Context, id int64) (bool, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return a.IsDeleted(), nil
}
