package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/budget_master_backend/internal/apperrors"
	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_master_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_master_backend/internal/core/ports/services"
	"github.com/SscSPs/budget_master_backend/internal/dto"
)

// Defaults of a new category.
const (
	defaultCategoryOperationType = domain.OperationTypeExpense
	defaultCategoryType          = domain.CategoryTypeChild
)

type categoryService struct {
	BaseService
	repo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a category service writing as user.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, tx portsrepo.TransactionManager, user string, opts ...Option) (portssvc.CategorySvcFacade, error) {
	base, err := newBaseService(user, tx, opts...)
	if err != nil {
		return nil, err
	}
	return &categoryService{BaseService: base, repo: repo}, nil
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func categoryDiffers(a, b domain.Category) bool {
	return a.Title != b.Title || a.OperationType != b.OperationType || a.Type != b.Type ||
		!sameID(a.ParentID, b.ParentID)
}

// validateCategory checks the fields of c and its place in the tree.
func (s *categoryService) validateCategory(ctx context.Context, c domain.Category) error {
	if err := ValidateTitle(&c.Title); err != nil {
		return err
	}
	if err := validateStruct(dto.NewCategoryInput(c)); err != nil {
		return err
	}
	if c.ParentID == nil {
		return nil
	}
	if c.Type == domain.CategoryTypeParent {
		return apperrors.NewInvalidInput("parent_id", "a parent category must not have a parent")
	}
	if c.ID != 0 && *c.ParentID == c.ID {
		return apperrors.NewInvalidInput("parent_id", "a category cannot be its own parent")
	}

	parent, err := s.repo.FindByID(ctx, *c.ParentID)
	if isNotFound(err) {
		return apperrors.NewInvalidInput("parent_id", fmt.Sprintf("parent category %d does not exist", *c.ParentID))
	}
	if err != nil {
		return err
	}
	if parent.IsDeleted() {
		return apperrors.NewInvalidInput("parent_id", fmt.Sprintf("parent category %d is deleted", parent.ID))
	}

	// Walk up from the parent; reaching c again means a cycle.
	visited := map[int64]bool{parent.ID: true}
	for cur := parent; cur.ParentID != nil; {
		next := *cur.ParentID
		if c.ID != 0 && next == c.ID {
			return apperrors.NewInvalidInput("parent_id", "category parents must not form a cycle")
		}
		if visited[next] {
			break
		}
		visited[next] = true
		cur, err = s.repo.FindByID(ctx, next)
		if isNotFound(err) {
			break
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *categoryService) findByTitle(ctx context.Context, title string) (*domain.Category, error) {
	c, err := s.repo.FindByTitle(ctx, title)
	if isNotFound(err) {
		return nil, nil
	}
	return c, err
}

func (s *categoryService) checkTitleFree(ctx context.Context, title string, id int64) error {
	other, err := s.findByTitle(ctx, title)
	if err != nil {
		return err
	}
	if other != nil && !other.IsDeleted() && other.ID != id {
		return apperrors.NewConflict("category", "title", title)
	}
	return nil
}

func (s *categoryService) Get(ctx context.Context, title string, params dto.CategoryParams) (*domain.Category, domain.Outcome, error) {
	if err := ValidateTitle(&title); err != nil {
		return nil, domain.OutcomeFound, err
	}

	var result *domain.Category
	outcome := domain.OutcomeFound
	err := s.inTx(ctx, func(ctx context.Context) error {
		existing, err := s.findByTitle(ctx, title)
		if err != nil {
			return err
		}
		now := s.clock()

		switch {
		case existing == nil:
			c := domain.Category{
				Title:         title,
				OperationType: params.OperationType.OrElse(defaultCategoryOperationType),
				Type:          params.Type.OrElse(defaultCategoryType),
				ParentID:      params.ParentID.OrElse(nil),
			}
			if err := s.validateCategory(ctx, c); err != nil {
				return err
			}
			c.Position, err = tailPosition(ctx, s.repo, s.user, now)
			if err != nil {
				return err
			}
			c.StampCreate(s.user, now)
			result, err = s.repo.Save(ctx, c)
			outcome = domain.OutcomeCreated
			return err
		case existing.IsDeleted():
			c := *existing
			params.Patch().Apply(&c)
			if err := s.validateCategory(ctx, c); err != nil {
				return err
			}
			c.Position, err = tailPosition(ctx, s.repo, s.user, now)
			if err != nil {
				return err
			}
			c.Restore(s.user, now)
			result, err = s.repo.Update(ctx, c)
			outcome = domain.OutcomeRestored
			return err
		}

		c := *existing
		params.Patch().Apply(&c)
		if !categoryDiffers(*existing, c) {
			result = existing
			return nil
		}
		if err := s.validateCategory(ctx, c); err != nil {
			return err
		}
		c.StampUpdate(s.user, now)
		result, err = s.repo.Update(ctx, c)
		outcome = domain.OutcomeUpdated
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to get category", slog.String("title", title))
		return nil, domain.OutcomeFound, err
	}

	s.LogDebug(ctx, "Category resolved", slog.Int64("category_id", result.ID), slog.String("outcome", outcome.String()))
	return result, outcome, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, patch dto.CategoryPatch) (*domain.Category, error) {
	if !patch.HasChanges() {
		return nil, nil
	}
	var result *domain.Category
	err := s.inTx(ctx, func(ctx context.Context) error {
		c, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		result, err = s.applyPatch(ctx, *c, patch)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update category", slog.Int64("category_id", id))
		return nil, err
	}
	return result, nil
}

func (s *categoryService) UpdateByTitle(ctx context.Context, title string, patch dto.CategoryPatch) (*domain.Category, error) {
	if !patch.HasChanges() {
		return nil, nil
	}
	var result *domain.Category
	err := s.inTx(ctx, func(ctx context.Context) error {
		c, err := s.findByTitle(ctx, title)
		if err != nil {
			return err
		}
		if c == nil {
			return apperrors.NewNotFoundByKey("category", "title", title)
		}
		result, err = s.applyPatch(ctx, *c, patch)
		return err
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to update category", slog.String("title", title))
		return nil, err
	}
	return result, nil
}

func (s *categoryService) applyPatch(ctx context.Context, c domain.Category, patch dto.CategoryPatch) (*domain.Category, error) {
	oldTitle := c.Title
	patch.Apply(&c)
	if err := s.validateCategory(ctx, c); err != nil {
		return nil, err
	}
	if !c.IsDeleted() && c.Title != oldTitle {
		if err := s.checkTitleFree(ctx, c.Title, c.ID); err != nil {
			return nil, err
		}
	}
	c.StampUpdate(s.user, s.clock())
	return s.repo.Update(ctx, c)
}

func (s *categoryService) Delete(ctx context.Context, title string) (bool, error) {
	ok, err := s.repo.DeleteByTitle(ctx, title, s.user)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("title", title))
		return false, err
	}
	return ok, nil
}

func (s *categoryService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.DeleteByID(ctx, id, s.user)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.Int64("category_id", id))
		return false, err
	}
	return ok, nil
}

func (s *categoryService) Restore(ctx context.Context, id int64) (*domain.Category, error) {
	var result *domain.Category
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
		s.logFailure(ctx, err, "Failed to restore category", slog.Int64("category_id", id))
		return nil, err
	}
	return result, nil
}

func (s *categoryService) ChangePosition(ctx context.Context, category domain.Category, newPosition int) (*domain.Category, error) {
	return s.changePosition(ctx, category.ID, newPosition)
}

func (s *categoryService) ChangePositionAt(ctx context.Context, oldPosition, newPosition int) (*domain.Category, error) {
	var result *domain.Category
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

func (s *categoryService) ChangePositionByTitle(ctx context.Context, title string, newPosition int) (*domain.Category, error) {
	c, err := s.findByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NewNotFoundByKey("category", "title", title)
	}
	return s.changePosition(ctx, c.ID, newPosition)
}

func (s *categoryService) changePosition(ctx context.Context, id int64, newPosition int) (*domain.Category, error) {
	var result *domain.Category
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
		s.logFailure(ctx, err, "Failed to change category position",
			slog.Int64("category_id", id), slog.Int("position", newPosition))
		return nil, err
	}
	return result, nil
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to find category", slog.Int64("category_id", id))
		return nil, err
	}
	return c, nil
}

func (s *categoryService) GetAll(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) GetAllLive(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return liveOnly(categories), nil
}

func (s *categoryService) GetAllByOperationType(ctx context.Context, operationType domain.OperationType) ([]domain.Category, error) {
	categories, err := s.repo.FindAllByOperationType(ctx, operationType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories by operation type", slog.Int("operation_type", int(operationType)))
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) GetAllByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	categories, err := s.repo.FindAllByType(ctx, categoryType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories by type", slog.Int("type", int(categoryType)))
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) GetAllByParentID(ctx context.Context, parentID *int64) ([]domain.Category, error) {
	categories, err := s.repo.FindAllByParentID(ctx, parentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories by parent")
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) IsDeleted(ctx context.Context, id int64) (bool, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return c.IsDeleted(), nil
}
