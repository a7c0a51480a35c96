package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/adapter"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// DeleteRecurringInput represents the input for recurring template deletion.
type DeleteRecurringInput struct {
	ID uuid.UUID
}

// DeleteRecurringUseCase handles recurring template deletion.
type DeleteRecurringUseCase struct {
	store adapter.RecordStore
}

// NewDeleteRecurringUseCase creates a new DeleteRecurringUseCase instance.
func NewDeleteRecurringUseCase(store adapter.RecordStore) *DeleteRecurringUseCase {
	return &DeleteRecurringUseCase{store: store}
}

// Execute soft-deletes a recurring template. Transactions already approved
// from it are untouched.
func (uc *DeleteRecurringUseCase) Execute(ctx context.Context, input DeleteRecurringInput) error {
	templates, err := uc.store.Recurring(ctx)
	if err != nil {
		return fmt.Errorf("failed to load recurring templates: %w", err)
	}

	tpl := findTemplate(templates, input.ID)
	if tpl == nil {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringNotFound,
			"recurring template not found",
			domainerror.ErrRecurringNotFound,
		)
	}
	tpl.Active = false

	if err := uc.store.PutRecurring(ctx, templates); err != nil {
		return fmt.Errorf("failed to save recurring templates: %w", err)
	}
	return nil
}
