package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/adapter"
)

// ReorderCategoriesInput represents the input for category reordering.
// OrderedIDs lists top-level category ids in the desired display order;
// Subcategories optionally reorders one parent's children.
type ReorderCategoriesInput struct {
	OrderedIDs []uuid.UUID

	SubcategoryParent *uuid.UUID
	SubcategoryIDs    []uuid.UUID
}

// ReorderCategoriesUseCase handles category reordering.
type ReorderCategoriesUseCase struct {
	store adapter.RecordStore
}

// NewReorderCategoriesUseCase creates a new ReorderCategoriesUseCase instance.
func NewReorderCategoriesUseCase(store adapter.RecordStore) *ReorderCategoriesUseCase {
	return &ReorderCategoriesUseCase{store: store}
}

// Execute rewrites sort orders. Ids missing from the request keep their
// position relative to the reordered ones pushed to the front.
func (uc *ReorderCategoriesUseCase) Execute(ctx context.Context, input ReorderCategoriesInput) error {
	categories, err := uc.store.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	if len(input.OrderedIDs) > 0 {
		position := make(map[uuid.UUID]int, len(input.OrderedIDs))
		for i, id := range input.OrderedIDs {
			position[id] = i
		}
		for _, category := range categories {
			if order, ok := position[category.ID]; ok {
				category.SortOrder = order
			}
		}
	}

	if input.SubcategoryParent != nil {
		parent := findCategory(categories, *input.SubcategoryParent)
		if parent == nil {
			return categoryNotFound()
		}
		position := make(map[uuid.UUID]int, len(input.SubcategoryIDs))
		for i, id := range input.SubcategoryIDs {
			position[id] = i
		}
		for i := range parent.Subcategories {
			if order, ok := position[parent.Subcategories[i].ID]; ok {
				parent.Subcategories[i].SortOrder = order
			}
		}
	}

	if err := uc.store.PutCategories(ctx, categories); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	return nil
}
