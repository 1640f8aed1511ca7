package sqldb

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/SscSPs/budget_master_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_master_backend/internal/core/ports/repositories"
	"github.com/SscSPs/budget_master_backend/internal/models"
	"github.com/SscSPs/budget_master_backend/internal/utils/mapping"
	"github.com/SscSPs/budget_master_backend/pkg/database"
)

type CategoryRepository struct {
	BaseRepository
	orderedList
}

// NewCategoryRepository creates a new repository for category data.
func NewCategoryRepository(store *database.Store) *CategoryRepository {
	return &CategoryRepository{
		BaseRepository: newBaseRepository(store),
		orderedList:    newOrderedList(store, database.TableCategories),
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*CategoryRepository)(nil)

func (r *CategoryRepository) selectCategories() sq.SelectBuilder {
	return r.Store.Builder().Select(models.CategoryColumns...).From(database.TableCategories)
}

func (r *CategoryRepository) findOne(ctx context.Context, q sq.SelectBuilder, id int64) (*domain.Category, error) {
	var row models.Category
	if err := r.getOne(ctx, &row, q, "category", id); err != nil {
		return nil, err
	}
	c, err := mapping.ToDomainCategory(row)
	if err != nil {
		return nil, fmt.Errorf("failed to map category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) findMany(ctx context.Context, q sq.SelectBuilder) ([]domain.Category, error) {
	var rows []models.Category
	if err := r.Store.SelectQuery(ctx, &rows, q.OrderBy("position", "id")); err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	return mapping.ToDomainCategorySlice(rows)
}

// Save inserts a new category.
func (r *CategoryRepository) Save(ctx context.Context, category domain.Category) (*domain.Category, error) {
	if err := checkNew("category", category.ID); err != nil {
		return nil, err
	}
	id, err := r.insert(ctx, database.TableCategories, mapping.ToModelCategory(category).Values())
	if err != nil {
		return nil, fmt.Errorf("failed to save category %s: %w", category.Title, err)
	}
	category.ID = id
	return &category, nil
}

// Update rewrites every column of the category.
func (r *CategoryRepository) Update(ctx context.Context, category domain.Category) (*domain.Category, error) {
	if err := checkExisting("category", category.ID); err != nil {
		return nil, err
	}
	if err := r.updateRow(ctx, database.TableCategories, "category", category.ID, mapping.ToModelCategory(category).Values()); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.findOne(ctx, r.selectCategories().Where(sq.Eq{"id": id}), id)
}

func (r *CategoryRepository) FindByTitle(ctx context.Context, title string) (*domain.Category, error) {
	return r.findOne(ctx, r.selectCategories().Where(sq.Eq{"title": title}).OrderBy(liveFirst, "id"), 0)
}

func (r *CategoryRepository) FindByPosition(ctx context.Context, position int) (*domain.Category, error) {
	return r.findOne(ctx, r.selectCategories().Where(sq.Eq{"position": position}).Where(r.live).OrderBy("id"), 0)
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	return r.findMany(ctx, r.selectCategories())
}

func (r *CategoryRepository) FindAllByOperationType(ctx context.Context, operationType domain.OperationType) ([]domain.Category, error) {
	return r.findMany(ctx, r.selectCategories().Where(sq.Eq{"operation_type": int(operationType)}))
}

func (r *CategoryRepository) FindAllByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	return r.findMany(ctx, r.selectCategories().Where(sq.Eq{"type": int(categoryType)}))
}

func (r *CategoryRepository) FindAllByParentID(ctx context.Context, parentID *int64) ([]domain.Category, error) {
	return r.findMany(ctx, r.selectCategories().Where(nullableEq("parent_id", parentID)))
}

func (r *CategoryRepository) DeleteByID(ctx context.Context, id int64, user string) (bool, error) {
	return r.softDelete(ctx, database.TableCategories, sq.Eq{"id": id}, user)
}

func (r *CategoryRepository) DeleteByTitle(ctx context.Context, title string, user string) (bool, error) {
	return r.softDelete(ctx, database.TableCategories, sq.Eq{"title": title}, user)
}
