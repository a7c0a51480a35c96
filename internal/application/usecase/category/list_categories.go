package category

import (
	"context"
	"fmt"
	"sort"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
)

// ListCategoriesOutput represents the output of category listing.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles category listing.
type ListCategoriesUseCase struct {
	store adapter.RecordStore
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(store adapter.RecordStore) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{store: store}
}

// Execute returns the category tree in display order, subcategories sorted
// within each parent.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	categories, err := uc.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})
	for _, category := range categories {
		subs := category.Subcategories
		sort.SliceStable(subs, func(i, j int) bool {
			return subs[i].SortOrder < subs[j].SortOrder
		})
	}
	return &ListCategoriesOutput{Categories: categories}, nil
}
