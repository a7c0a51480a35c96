package category

import (
	"context"
	"fmt"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
)

// ResetCategoriesOutput represents the output of a category reset.
type ResetCategoriesOutput struct {
	Categories []*entity.Category
}

// ResetCategoriesUseCase replaces the category tree with the built-in
// defaults.
type ResetCategoriesUseCase struct {
	store adapter.RecordStore
}

// NewResetCategoriesUseCase creates a new ResetCategoriesUseCase instance.
func NewResetCategoriesUseCase(store adapter.RecordStore) *ResetCategoriesUseCase {
	return &ResetCategoriesUseCase{store: store}
}

// Execute overwrites the tree with the default categories. Transactions
// keep their category names; names that no longer resolve simply render
// uncategorized in aggregation.
func (uc *ResetCategoriesUseCase) Execute(ctx context.Context) (*ResetCategoriesOutput, error) {
	defaults := entity.DefaultCategories()
	if err := uc.store.PutCategories(ctx, defaults); err != nil {
		return nil, fmt.Errorf("failed to save categories: %w", err)
	}
	return &ResetCategoriesOutput{Categories: defaults}, nil
}
