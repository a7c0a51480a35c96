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

// AddSubcategoryInput represents the input for subcategory creation.
type AddSubcategoryInput struct {
	CategoryID uuid.UUID
	Name       string
}

// AddSubcategoryOutput represents the output of subcategory creation.
type AddSubcategoryOutput struct {
	Category *entity.Category
}

// AddSubcategoryUseCase handles subcategory creation.
type AddSubcategoryUseCase struct {
	store adapter.RecordStore
}

// NewAddSubcategoryUseCase creates a new AddSubcategoryUseCase instance.
func NewAddSubcategoryUseCase(store adapter.RecordStore) *AddSubcategoryUseCase {
	return &AddSubcategoryUseCase{store: store}
}

// Execute appends a subcategory to the parent category.
func (uc *AddSubcategoryUseCase) Execute(ctx context.Context, input AddSubcategoryInput) (*AddSubcategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryName,
			"subcategory name is required",
			domainerror.ErrMissingCategoryName,
		)
	}

	categories, err := uc.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	category := findCategory(categories, input.CategoryID)
	if category == nil {
		return nil, categoryNotFound()
	}
	if _, exists := nameSet(categories)[strings.ToLower(name)]; exists {
		return nil, nameExists(name)
	}

	sortOrder := 0
	for _, sub := range category.Subcategories {
		if sub.SortOrder >= sortOrder {
			sortOrder = sub.SortOrder + 1
		}
	}
	category.Subcategories = append(category.Subcategories, entity.NewSubcategory(name, sortOrder))

	if err := uc.store.PutCategories(ctx, categories); err != nil {
		return nil, fmt.Errorf("failed to save categories: %w", err)
	}
	return &AddSubcategoryOutput{Category: category}, nil
}

// UpdateSubcategoryInput represents the input for subcategory renaming.
type UpdateSubcategoryInput struct {
	CategoryID    uuid.UUID
	SubcategoryID uuid.UUID
	Name          string
}

// UpdateSubcategoryOutput represents the output of subcategory renaming.
type UpdateSubcategoryOutput struct {
	Category *entity.Category
}

// UpdateSubcategoryUseCase handles subcategory renaming.
type UpdateSubcategoryUseCase struct {
	store adapter.RecordStore
}

// NewUpdateSubcategoryUseCase creates a new UpdateSubcategoryUseCase instance.
func NewUpdateSubcategoryUseCase(store adapter.RecordStore) *UpdateSubcategoryUseCase {
	return &UpdateSubcategoryUseCase{store: store}
}

// Execute renames a subcategory, cascading to every transaction and
// recurring template carrying the old name.
func (uc *UpdateSubcategoryUseCase) Execute(ctx context.Context, input UpdateSubcategoryInput) (*UpdateSubcategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryName,
			"subcategory name is required",
			domainerror.ErrMissingCategoryName,
		)
	}

	categories, err := uc.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	category := findCategory(categories, input.CategoryID)
	if category == nil {
		return nil, categoryNotFound()
	}
	index := findSubcategory(category, input.SubcategoryID)
	if index == -1 {
		return nil, subcategoryNotFound()
	}

	oldName := category.Subcategories[index].Name
	if name == oldName {
		return &UpdateSubcategoryOutput{Category: category}, nil
	}
	if _, exists := nameSet(categories)[strings.ToLower(name)]; exists {
		return nil, nameExists(name)
	}
	category.Subcategories[index].Name = name

	if err := uc.store.PutCategories(ctx, categories); err != nil {
		return nil, fmt.Errorf("failed to save categories: %w", err)
	}
	if err := reassign(ctx, uc.store, []string{oldName}, name); err != nil {
		return nil, err
	}
	return &UpdateSubcategoryOutput{Category: category}, nil
}

// DeleteSubcategoryInput represents the input for subcategory deletion.
type DeleteSubcategoryInput struct {
	CategoryID      uuid.UUID
	SubcategoryID   uuid.UUID
	ReplacementName string
}

// DeleteSubcategoryUseCase handles subcategory deletion.
type DeleteSubcategoryUseCase struct {
	store adapter.RecordStore
}

// NewDeleteSubcategoryUseCase creates a new DeleteSubcategoryUseCase instance.
func NewDeleteSubcategoryUseCase(store adapter.RecordStore) *DeleteSubcategoryUseCase {
	return &DeleteSubcategoryUseCase{store: store}
}

// Execute removes a subcategory, reassigning its transactions. The
// replacement defaults to the parent category when not given.
func (uc *DeleteSubcategoryUseCase) Execute(ctx context.Context, input DeleteSubcategoryInput) error {
	categories, err := uc.store.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	category := findCategory(categories, input.CategoryID)
	if category == nil {
		return categoryNotFound()
	}
	index := findSubcategory(category, input.SubcategoryID)
	if index == -1 {
		return subcategoryNotFound()
	}

	replacement := strings.TrimSpace(input.ReplacementName)
	if replacement == "" {
		replacement = category.Name
	}

	oldName := category.Subcategories[index].Name
	category.Subcategories = append(category.Subcategories[:index], category.Subcategories[index+1:]...)

	if err := uc.store.PutCategories(ctx, categories); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	return reassign(ctx, uc.store, []string{oldName}, replacement)
}

func findSubcategory(category *entity.Category, id uuid.UUID) int {
	for i, sub := range category.Subcategories {
		if sub.ID == id {
			return i
		}
	}
	return -1
}

func subcategoryNotFound() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeSubcategoryNotFound,
		"subcategory not found",
		domainerror.ErrSubcategoryNotFound,
	)
}
