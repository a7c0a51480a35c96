package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// SkipRecurringInput represents the input for skipping an occurrence.
type SkipRecurringInput struct {
	ID uuid.UUID
}

// SkipRecurringOutput represents the output of skipping an occurrence.
type SkipRecurringOutput struct {
	Template *entity.RecurringTemplate
}

// SkipRecurringUseCase advances a template past its next due occurrence
// without writing anything to a ledger. Whether a skip counts against an
// after_occurrences limit is configurable; by default it does not, so an
// "end after 12" template still yields 12 approved payments.
type SkipRecurringUseCase struct {
	store        adapter.RecordStore
	countSkipped bool
}

// NewSkipRecurringUseCase creates a new SkipRecurringUseCase instance.
func NewSkipRecurringUseCase(store adapter.RecordStore, countSkipped bool) *SkipRecurringUseCase {
	return &SkipRecurringUseCase{store: store, countSkipped: countSkipped}
}

// Execute moves the template's NextDueDate one period forward.
func (uc *SkipRecurringUseCase) Execute(ctx context.Context, input SkipRecurringInput) (*SkipRecurringOutput, error) {
	templates, err := uc.store.Recurring(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring templates: %w", err)
	}
	tpl := findTemplate(templates, input.ID)
	if tpl == nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringNotFound,
			"recurring template not found",
			domainerror.ErrRecurringNotFound,
		)
	}

	tpl.NextDueDate = Advance(tpl.NextDueDate, tpl.Frequency)
	if uc.countSkipped {
		tpl.OccurrencesCompleted++
	}

	if err := uc.store.PutRecurring(ctx, templates); err != nil {
		return nil, fmt.Errorf("failed to save recurring templates: %w", err)
	}
	return &SkipRecurringOutput{Template: tpl}, nil
}
