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

// UpdateCategoryInput represents the input for category updates. Nil pointer
// fields are left unchanged.
type UpdateCategoryInput struct {
	ID    uuid.UUID
	Name  *string
	Emoji *string
}

// UpdateCategoryOutput represents the output of category updates.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category updates.
type UpdateCategoryUseCase struct {
	store adapter.RecordStore
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(store adapter.RecordStore) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{store: store}
}

// Execute updates a category. Renames cascade to every transaction and
// recurring template carrying the old name; system categories cannot be
// renamed.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	categories, err := uc.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	category := findCategory(categories, input.ID)
	if category == nil {
		return nil, categoryNotFound()
	}

	oldName := category.Name
	if input.Name != nil {
		newName := strings.TrimSpace(*input.Name)
		if newName == "" {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeMissingCategoryName,
				"category name is required",
				domainerror.ErrMissingCategoryName,
			)
		}
		if newName != oldName {
			if category.IsSystem {
				return nil, systemCategory()
			}
			if _, exists := nameSet(categories)[strings.ToLower(newName)]; exists {
				return nil, nameExists(newName)
			}
			category.Name = newName
		}
	}
	if input.Emoji != nil {
		category.Emoji = *input.Emoji
	}

	if err := uc.store.PutCategories(ctx, categories); err != nil {
		return nil, fmt.Errorf("failed to save categories: %w", err)
	}
	if category.Name != oldName {
		if err := reassign(ctx, uc.store, []string{oldName}, category.Name); err != nil {
			return nil, err
		}
	}
	return &UpdateCategoryOutput{Category: category}, nil
}

func findCategory(categories []*entity.Category, id uuid.UUID) *entity.Category {
	for _, category := range categories {
		if category.ID == id {
			return category
		}
	}
	return nil
}

func systemCategory() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeSystemCategory,
		"system categories cannot be renamed or deleted",
		domainerror.ErrSystemCategory,
	)
}
