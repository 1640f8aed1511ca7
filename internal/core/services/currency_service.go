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

type currencyService struct {
	BaseService
	repo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a currency service writing as user.
func NewCurrencyService(repo portsrepo.CurrencyRepositoryFacade, tx portsrepo.TransactionManager, user string, opts ...Option) (portssvc.CurrencySvcFacade, error) {
	base, err := newBaseService(user, tx, opts...)
	if err != nil {
		return nil, err
	}
	return &currencyService{BaseService: base, repo: repo}, nil
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) findByTitle(ctx context.Context, title string) (*domain.Currency, error) {
	c, err := s.repo.FindByTitle(ctx, title)
	if isNotFound(err) {
		return nil, nil
	}
	return c, err
}

// checkTitleFree fails when a live currency other than id holds title.
func (s *currencyService) checkTitleFree(ctx context.Context, title string, id int64) error {
	other, err := s.findByTitle(ctx, title)
	if err != nil {
		return err
	}
	if other != nil && !other.IsDeleted() && other.ID != id {
		return apperrors.NewConflict("currency", "title", title)
	}
	return nil
}

func (s *currencyService) Get(ctx context.Context, title string) (*domain.Currency, domain.Outcome, error) {
	if err := ValidateTitle(&title); err != nil {
		return nil, domain.OutcomeFound, err
	}

	var result *domain.Currency
	outcome := domain.OutcomeFound
	err := s.inTx(ctx, func(ctx context.Context) error {
		existing, err := s.findByTitle(ctx, title)
		if err != nil {
			return err
		}
		now := s.clock()

		switch {
		case existing == nil:
			pos, err := tailPosition(ctx, s.repo, s.user, now)
			if err != nil {
				return err
			}
			c := domain.Currency{Position: pos, Title: title}
			c.StampCreate(s.user, now)
			result, err = s.repo.Save(ctx, c)
			outcome = domain.OutcomeCreated
			return err
		case existing.IsDeleted():
			pos, err := tailPosition(ctx, s.repo, s.user, now)
			if err != nil {
				return err
			}
			existing.Restore(s.user, now)
			existing.Position = pos
			result, err = s.repo.Update(ctx, *existing)
			outcome = domain.OutcomeRestored
			return err
		}
		result = existing
		return nil
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to get currency", slog.String("title", title))
		return nil, domain.OutcomeFound, err
	}

	s.LogDebug(ctx, "Currency resolved", slog.Int64("currency_id", result.ID), slog.String("outcome", outcome.String()))
	return result, outcome, nil
}

func (s *currencyService) Update(ctx context.Context, id int64, patch dto.CurrencyPatch) (*domain.Currency, error) {
	if !patch.HasChanges() {
		return nil, nil
	}
	var result *domain.Currency
	err := s.inTx(ctx, func(ctx context.Context) error {
		c, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		result, err = s.applyPatch(ctx, *c, patch)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update currency", slog.Int64("currency_id", id))
		return nil, err
	}
	return result, nil
}

func (s *currencyService) UpdateByTitle(ctx context.Context, title string, patch dto.CurrencyPatch) (*domain.Currency, error) {
	if !patch.HasChanges() {
		return nil, nil
	}
	var result *domain.Currency
	err := s.inTx(ctx, func(ctx context.Context) error {
		c, err := s.findByTitle(ctx, title)
		if err != nil {
			return err
		}
		if c == nil {
			return apperrors.NewNotFoundByKey("currency", "title", title)
		}
		result, err = s.applyPatch(ctx, *c, patch)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update currency", slog.String("title", title))
		return nil, err
	}
	return result, nil
}

func (s *currencyService) applyPatch(ctx context.Context, c domain.Currency, patch dto.CurrencyPatch) (*domain.Currency, error) {
	if title, ok := patch.Title.Get(); ok {
		if err := ValidateTitle(&title); err != nil {
			return nil, err
		}
		if !c.IsDeleted() && title != c.Title {
			if err := s.checkTitleFree(ctx, title, c.ID); err != nil {
				return nil, err
			}
		}
		c.Title = title
	}
	c.StampUpdate(s.user, s.clock())
	return s.repo.Update(ctx, c)
}

func (s *currencyService) Delete(ctx context.Context, title string) (bool, error) {
	ok, err := s.repo.DeleteByTitle(ctx, title, s.user)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete currency", slog.String("title", title))
		return false, err
	}
	return ok, nil
}

func (s *currencyService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.DeleteByID(ctx, id, s.user)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete currency", slog.Int64("currency_id", id))
		return false, err
	}
	return ok, nil
}

func (s *currencyService) Restore(ctx context.Context, id int64) (*domain.Currency, error) {
	var result *domain.Currency
	err := s.inTx(ctx, func(ctx context.Context) error {
		c, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !c.IsDeleted() {
			result = c
			return nil
		}
		if err := s.checkTitleFree(ctx, c.Title, c.ID); err != nil {
			return err
		}
		now := s.clock()
		pos, err := tailPosition(ctx, s.repo, s.user, now)
		if err != nil {
			return err
		}
		c.Restore(s.user, now)
		c.Position = pos
		result, err = s.repo.Update(ctx, *c)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to restore currency", slog.Int64("currency_id", id))
		return nil, err
	}
	return result, nil
}

func (s *currencyService) ChangePosition(ctx context.Context, currency domain.Currency, newPosition int) (*domain.Currency, error) {
	return s.changePosition(ctx, currency.ID, newPosition)
}

func (s *currencyService) ChangePositionAt(ctx context.Context, oldPosition, newPosition int) (*domain.Currency, error) {
	var result *domain.Currency
	err := s.inTx(ctx, func(ctx context.Context) error {
		c, err := s.repo.FindByPosition(ctx, oldPosition)
		if isNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		result, err = s.changePosition(ctx, c.ID, newPosition)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *currencyService) ChangePositionByTitle(ctx context.Context, title string, newPosition int) (*domain.Currency, error) {
	c, err := s.findByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NewNotFoundByKey("currency", "title", title)
	}
	return s.changePosition(ctx, c.ID, newPosition)
}

func (s *currencyService) changePosition(ctx context.Context, id int64, newPosition int) (*domain.Currency, error) {
	var result *domain.Currency
	err := s.inTx(ctx, func(ctx context.Context) error {
		now := s.clock()
		c, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		moved, err := movePosition(ctx, s.repo, c.ID, c.IsDeleted(), c.Position, newPosition, s.user, now)
		if err != nil || !moved {
			result = c
			return err
		}
		result, err = s.repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to change currency position",
			slog.Int64("currency_id", id), slog.Int("position", newPosition))
		return nil, err
	}
	return result, nil
}

func (s *currencyService) GetByID(ctx context.Context, id int64) (*domain.Currency, error) {
	c, err := s.repo.FindByID(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to find currency", slog.Int64("currency_id", id))
		return nil, err
	}
	return c, nil
}

func (s *currencyService) GetAll(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.repo.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, err
	}
	return currencies, nil
}

func (s *currencyService) GetAllLive(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return liveOnly(currencies), nil
}

func (s *currencyService) IsDeleted(ctx context.Context, id int64) (bool, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return c.IsDeleted(), nil
}
