package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
// ReplacementName is the category transactions are reassigned to.
type DeleteCategoryInput struct {
	ID              uuid.UUID
	ReplacementName string
}

// DeleteCategoryUseCase handles category deletion.
type DeleteCategoryUseCase struct {
	store adapter.RecordStore
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(store adapter.RecordStore) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{store: store}
}

// Execute deletes a category and its subcategories, reassigning every
// transaction and recurring template that referenced any of their names.
// System categories are protected.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	replacement := strings.TrimSpace(input.ReplacementName)
	if replacement == "" {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeMissingReplacementCategory,
			"replacement category is required",
			domainerror.ErrMissingReplacementCategory,
		)
	}

	categories, err := uc.store.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	category := findCategory(categories, input.ID)
	if category == nil {
		return categoryNotFound()
	}
	if category.IsSystem {
		return systemCategory()
	}
	if !replacementExists(categories, category.ID, replacement) {
		return categoryNotFound()
	}

	orphaned := category.AllNames()
	kept := make([]*entity.Category, 0, len(categories)-1)
	for _, candidate := range categories {
		if candidate.ID != input.ID {
			kept = append(kept, candidate)
		}
	}
	if err := uc.store.PutCategories(ctx, kept); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	return reassign(ctx, uc.store, orphaned, replacement)
}

// replacementExists checks the replacement name against the tree, excluding
// the category being deleted.
func replacementExists(categories []*entity.Category, deletedID uuid.UUID, replacement string) bool {
	for _, category := range categories {
		if category.ID == deletedID {
			continue
		}
		for _, name := range category.AllNames() {
			if strings.EqualFold(name, replacement) {
				return true
			}
		}
	}
	return false
}
