package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/budget_master_backend/internal/apperrors"
	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_master_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_master_backend/internal/core/ports/services"
	"github.com/SscSPs/budget_master_backend/internal/dto"
	"github.com/SscSPs/budget_master_backend/internal/utils/timefmt"
)

var errTitleResolution = errors.New("operation service has no account or currency service to resolve titles")

type operationService struct {
	BaseService
	repo        portsrepo.OperationRepositoryFacade
	currencies  portsrepo.CurrencyReader
	accounts    portsrepo.AccountReader
	categories  portsrepo.CategoryReader
	currencySvc portssvc.CurrencyWriterSvc
	accountSvc  portssvc.AccountWriterSvc
}

// OperationOption is a functional option for configuring the operation service
type OperationOption func(*operationService)

// WithBaseOptions applies options shared by every service.
func WithBaseOptions(opts ...Option) OperationOption {
	return func(s *operationService) {
		for _, opt := range opts {
			opt(&s.BaseService)
		}
	}
}

// WithReferenceReaders makes Save and Update check that referenced rows exist and are live.
func WithReferenceReaders(currencies portsrepo.CurrencyReader, accounts portsrepo.AccountReader, categories portsrepo.CategoryReader) OperationOption {
	return func(s *operationService) {
		s.currencies = currencies
		s.accounts = accounts
		s.categories = categories
	}
}

// WithTitleResolvers adds the services CreateWithTitles resolves titles through.
func WithTitleResolvers(currencySvc portssvc.CurrencyWriterSvc, accountSvc portssvc.AccountWriterSvc) OperationOption {
	return func(s *operationService) {
		s.currencySvc = currencySvc
		s.accountSvc = accountSvc
	}
}

// NewOperationService creates an operation service writing as user.
func NewOperationService(repo portsrepo.OperationRepositoryFacade, tx portsrepo.TransactionManager, user string, opts ...OperationOption) (portssvc.OperationSvcFacade, error) {
	base, err := newBaseService(user, tx)
	if err != nil {
		return nil, err
	}
	svc := &operationService{BaseService: base, repo: repo}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

var _ portssvc.OperationSvcFacade = (*operationService)(nil)

// validateTransfer enforces that exactly the transfer operations carry transfer fields.
func validateTransfer(o domain.Operation) error {
	set := 0
	for _, v := range []*int64{o.ToAccountID, o.ToCurrencyID, o.ToAmount} {
		if v != nil {
			set++
		}
	}
	if o.IsTransfer() && set != 3 {
		return apperrors.NewInvalidInput("to_account_id", "transfer operations require to_account_id, to_currency_id and to_amount")
	}
	if !o.IsTransfer() && set != 0 {
		return apperrors.NewInvalidInput("to_account_id", "only transfer operations may set transfer fields")
	}
	return nil
}

func checkLive(ctx context.Context, field string, id int64, isDeleted func(context.Context, int64) (bool, error)) error {
	deleted, err := isDeleted(ctx, id)
	if isNotFound(err) {
		return apperrors.NewInvalidInput(field, fmt.Sprintf("%s %d does not exist", field, id))
	}
	if err != nil {
		return err
	}
	if deleted {
		return apperrors.NewInvalidInput(field, fmt.Sprintf("%s %d is deleted", field, id))
	}
	return nil
}

// checkReferences verifies the rows o points to, for the readers the service was given.
func (s *operationService) checkReferences(ctx context.Context, o domain.Operation) error {
	if s.categories != nil {
		err := checkLive(ctx, "category_id", o.CategoryID, func(ctx context.Context, id int64) (bool, error) {
			c, err := s.categories.FindByID(ctx, id)
			if err != nil {
				return false, err
			}
			return c.IsDeleted(), nil
		})
		if err != nil {
			return err
		}
	}
	if s.accounts != nil {
		accountDeleted := func(ctx context.Context, id int64) (bool, error) {
			a, err := s.accounts.FindByID(ctx, id)
			if err != nil {
				return false, err
			}
			return a.IsDeleted(), nil
		}
		if err := checkLive(ctx, "account_id", o.AccountID, accountDeleted); err != nil {
			return err
		}
		if o.ToAccountID != nil {
			if err := checkLive(ctx, "to_account_id", *o.ToAccountID, accountDeleted); err != nil {
				return err
			}
		}
	}
	if s.currencies != nil {
		currencyDeleted := func(ctx context.Context, id int64) (bool, error) {
			c, err := s.currencies.FindByID(ctx, id)
			if err != nil {
				return false, err
			}
			return c.IsDeleted(), nil
		}
		if err := checkLive(ctx, "currency_id", o.CurrencyID, currencyDeleted); err != nil {
			return err
		}
		if o.ToCurrencyID != nil {
			if err := checkLive(ctx, "to_currency_id", *o.ToCurrencyID, currencyDeleted); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *operationService) validateOperation(ctx context.Context, o domain.Operation) error {
	if err := validateStruct(dto.NewOperationInput(o)); err != nil {
		return err
	}
	if err := validateTransfer(o); err != nil {
		return err
	}
	return s.checkReferences(ctx, o)
}

func (s *operationService) Save(ctx context.Context, in dto.OperationInput) (*domain.Operation, error) {
	o := in.ToDomain()
	var result *domain.Operation
	err := s.inTx(ctx, func(ctx context.Context) error {
		if err := s.validateOperation(ctx, o); err != nil {
			return err
		}
		o.StampCreate(s.user, s.clock())
		var err error
		result, err = s.repo.Save(ctx, o)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to save operation", slog.Int("type", int(in.Type)))
		return nil, err
	}
	s.LogDebug(ctx, "Operation saved", slog.Int64("operation_id", result.ID))
	return result, nil
}

func (s *operationService) CreateWithTitles(ctx context.Context, in dto.OperationByTitlesInput) (*domain.Operation, error) {
	if s.currencySvc == nil || s.accountSvc == nil {
		return nil, errTitleResolution
	}
	var result *domain.Operation
	err := s.inTx(ctx, func(ctx context.Context) error {
		currency, _, err := s.currencySvc.Get(ctx, in.CurrencyTitle)
		if err != nil {
			return err
		}

		// A new account is opened in the operation's currency.
		var params dto.AccountParams
		if s.accounts != nil {
			_, err := s.accounts.FindByTitle(ctx, in.AccountTitle)
			if isNotFound(err) {
				params.CurrencyID = domain.Some(currency.ID)
			} else if err != nil {
				return err
			}
		}
		account, _, err := s.accountSvc.Get(ctx, in.AccountTitle, params)
		if err != nil {
			return err
		}

		result, err = s.Save(ctx, dto.OperationInput{
			Type:       in.Type,
			Date:       in.Date,
			Amount:     in.Amount,
			Comment:    in.Comment,
			CategoryID: in.CategoryID,
			AccountID:  account.ID,
			CurrencyID: currency.ID,
		})
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to create operation by titles",
			slog.String("account", in.AccountTitle), slog.String("currency", in.CurrencyTitle))
		return nil, err
	}
	return result, nil
}

func (s *operationService) Update(ctx context.Context, id int64, patch dto.OperationPatch) (*domain.Operation, error) {
	if !patch.HasChanges() {
		return nil, nil
	}
	var result *domain.Operation
	err := s.inTx(ctx, func(ctx context.Context) error {
		o, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		patch.Apply(o)
		if err := s.validateOperation(ctx, *o); err != nil {
			return err
		}
		o.StampUpdate(s.user, s.clock())
		result, err = s.repo.Update(ctx, *o)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update operation", slog.Int64("operation_id", id))
		return nil, err
	}
	return result, nil
}

func (s *operationService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.DeleteByID(ctx, id, s.user)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete operation", slog.Int64("operation_id", id))
		return false, err
	}
	return ok, nil
}

func (s *operationService) Restore(ctx context.Context, id int64) (*domain.Operation, error) {
	var result *domain.Operation
	err := s.inTx(ctx, func(ctx context.Context) error {
		o, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !o.IsDeleted() {
			result = o
			return nil
		}
		o.Restore(s.user, s.clock())
		result, err = s.repo.Update(ctx, *o)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to restore operation", slog.Int64("operation_id", id))
		return nil, err
	}
	return result, nil
}

func (s *operationService) GetByID(ctx context.Context, id int64) (*domain.Operation, error) {
	o, err := s.repo.FindByID(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to find operation", slog.Int64("operation_id", id))
		return nil, err
	}
	return o, nil
}

func (s *operationService) list(ctx context.Context, activeOnly bool, what string, find func(context.Context) ([]domain.Operation, error)) ([]domain.Operation, error) {
	operations, err := find(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list operations", slog.String("by", what))
		return nil, err
	}
	if activeOnly {
		return liveOnly(operations), nil
	}
	return operations, nil
}

func (s *operationService) GetAll(ctx context.Context, activeOnly bool) ([]domain.Operation, error) {
	return s.list(ctx, activeOnly, "all", s.repo.FindAll)
}

func (s *operationService) GetByDay(ctx context.Context, day time.Time, activeOnly bool) ([]domain.Operation, error) {
	return s.list(ctx, activeOnly, "day "+timefmt.Format(day), func(ctx context.Context) ([]domain.Operation, error) {
		return s.repo.FindAllByDate(ctx, day)
	})
}

func (s *operationService) GetByComment(ctx context.Context, comment string, activeOnly bool) ([]domain.Operation, error) {
	return s.list(ctx, activeOnly, "comment", func(ctx context.Context) ([]domain.Operation, error) {
		return s.repo.FindAllByComment(ctx, comment)
	})
}

func (s *operationService) GetByCategoryID(ctx context.Context, categoryID int64, activeOnly bool) ([]domain.Operation, error) {
	return s.list(ctx, activeOnly, "category", func(ctx context.Context) ([]domain.Operation, error) {
		return s.repo.FindAllByCategoryID(ctx, categoryID)
	})
}

func (s *operationService) GetByAccountID(ctx context.Context, accountID int64, activeOnly bool) ([]domain.Operation, error) {
	return s.list(ctx, activeOnly, "account", func(ctx context.Context) ([]domain.Operation, error) {
		return s.repo.FindAllByAccountID(ctx, accountID)
	})
}

func (s *operationService) GetByCurrencyID(ctx context.Context, currencyID int64, activeOnly bool) ([]domain.Operation, error) {
	return s.list(ctx, activeOnly, "currency", func(ctx context.Context) ([]domain.Operation, error) {
		return s.repo.FindAllByCurrencyID(ctx, currencyID)
	})
}

func (s *operationService) GetByType(ctx context.Context, operationType domain.OperationType, activeOnly bool) ([]domain.Operation, error) {
	return s.list(ctx, activeOnly, "type", func(ctx context.Context) ([]domain.Operation, error) {
		return s.repo.FindAllByType(ctx, operationType)
	})
}
