package dto

import "github.com/SscSPs/budget_master_backend/internal/core/domain"

// CategoryInput is the validated shape of a category write.
type CategoryInput struct {
	Title         string               `json:"title" validate:"required,title"`
	OperationType domain.OperationType `json:"operation_type" validate:"oneof=1 2 3"`
	Type          domain.CategoryType  `json:"type" validate:"oneof=0 1"`
	ParentID      *int64               `json:"parent_id" validate:"omitempty,gt=0"`
}

// NewCategoryInput captures the writable fields of c.
func NewCategoryInput(c domain.Category) CategoryInput {
	return CategoryInput{
		Title:         c.Title,
		OperationType: c.OperationType,
		Type:          c.Type,
		ParentID:      c.ParentID,
	}
}

// CategoryParams are the optional defaults of a category get-or-create.
type CategoryParams struct {
	OperationType domain.Optional[domain.OperationType]
	Type          domain.Optional[domain.CategoryType]
	ParentID      domain.Optional[*int64]
}

// Patch turns the supplied params into an update.
func (p CategoryParams) Patch() CategoryPatch {
	return CategoryPatch{OperationType: p.OperationType, Type: p.Type, ParentID: p.ParentID}
}

// CategoryPatch lists the category fields an update may change.
type CategoryPatch struct {
	Title         domain.Optional[string]
	OperationType domain.Optional[domain.OperationType]
	Type          domain.Optional[domain.CategoryType]
	ParentID      domain.Optional[*int64]
}

// HasChanges reports whether any field was supplied.
func (p CategoryPatch) HasChanges() bool {
	return p.Title.IsSet() || p.OperationType.IsSet() || p.Type.IsSet() || p.ParentID.IsSet()
}

// Apply overlays the supplied fields onto c.
func (p CategoryPatch) Apply(c *domain.Category) {
	if v, ok := p.Title.Get(); ok {
		c.Title = v
	}
	if v, ok := p.OperationType.Get(); ok {
		c.OperationType = v
	}
	if v, ok := p.Type.Get(); ok {
		c.Type = v
	}
	if v, ok := p.ParentID.Get(); ok {
		c.ParentID = v
	}
}
