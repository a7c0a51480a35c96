package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name          string
	Emoji         string
	Subcategories []string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation.
type CreateCategoryUseCase struct {
	store adapter.RecordStore
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(store adapter.RecordStore) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{store: store}
}

// Execute creates a category at the end of the user-defined display order.
// Category and subcategory names share one namespace, so the new names must
// not collide with anything already in the tree.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryName,
			"category name is required",
			domainerror.ErrMissingCategoryName,
		)
	}

	categories, err := uc.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	taken := nameSet(categories)
	newNames := append([]string{name}, input.Subcategories...)
	for _, candidate := range newNames {
		if _, exists := taken[strings.ToLower(candidate)]; exists {
			return nil, nameExists(candidate)
		}
	}

	subs := make([]entity.Subcategory, 0, len(input.Subcategories))
	for i, subName := range input.Subcategories {
		subs = append(subs, entity.NewSubcategory(subName, i))
	}

	// New categories slot in before the system pair, which sits at the top
	// of the sort range.
	sortOrder := 0
	for _, existing := range categories {
		if !existing.IsSystem && existing.SortOrder >= sortOrder {
			sortOrder = existing.SortOrder + 1
		}
	}

	category := entity.NewCategory(name, input.Emoji, sortOrder, subs)
	categories = append(categories, category)
	if err := uc.store.PutCategories(ctx, categories); err != nil {
		return nil, fmt.Errorf("failed to save categories: %w", err)
	}
	return &CreateCategoryOutput{Category: category}, nil
}

func nameSet(categories []*entity.Category) map[string]struct{} {
	taken := make(map[string]struct{})
	for _, category := range categories {
		for _, name := range category.AllNames() {
			taken[strings.ToLower(name)] = struct{}{}
		}
	}
	return taken
}

func nameExists(name string) error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNameExists,
		fmt.Sprintf("name %q is already in use", name),
		domainerror.ErrCategoryNameExists,
	)
}

func categoryNotFound() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}
