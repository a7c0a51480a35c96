package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// UpdateRecurringInput represents the input for recurring template updates.
// Nil pointer fields are left unchanged.
type UpdateRecurringInput struct {
	ID           uuid.UUID
	Payee        *string
	Amount       *decimal.Decimal
	Category     *string
	Description  *string
	Notes        *string
	Frequency    *entity.Frequency
	NextDueDate  *entity.Date
	EndCondition *entity.EndCondition
}

// UpdateRecurringOutput represents the output of recurring template updates.
type UpdateRecurringOutput struct {
	Template *entity.RecurringTemplate
}

// UpdateRecurringUseCase handles recurring template updates.
type UpdateRecurringUseCase struct {
	store adapter.RecordStore
}

// NewUpdateRecurringUseCase creates a new UpdateRecurringUseCase instance.
func NewUpdateRecurringUseCase(store adapter.RecordStore) *UpdateRecurringUseCase {
	return &UpdateRecurringUseCase{store: store}
}

// Execute applies the given changes to a recurring template. The template's
// type and accounts are fixed at creation; changing where money flows means
// creating a new template.
func (uc *UpdateRecurringUseCase) Execute(ctx context.Context, input UpdateRecurringInput) (*UpdateRecurringOutput, error) {
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

	if input.Frequency != nil && !input.Frequency.Valid() {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency requires a known type and an interval of at least 1",
			domainerror.ErrInvalidFrequency,
		)
	}
	if input.EndCondition != nil && !input.EndCondition.Valid() {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidEndCondition,
			"end condition is malformed",
			domainerror.ErrInvalidEndCondition,
		)
	}

	if input.Payee != nil {
		tpl.Payee = *input.Payee
	}
	if input.Amount != nil {
		tpl.Amount = *input.Amount
	}
	if input.Category != nil {
		tpl.Category = *input.Category
	}
	if input.Description != nil {
		tpl.Description = *input.Description
	}
	if input.Notes != nil {
		tpl.Notes = *input.Notes
	}
	if input.Frequency != nil {
		tpl.Frequency = *input.Frequency
	}
	if input.NextDueDate != nil {
		tpl.NextDueDate = *input.NextDueDate
	}
	if input.EndCondition != nil {
		tpl.EndCondition = *input.EndCondition
	}

	if err := uc.store.PutRecurring(ctx, templates); err != nil {
		return nil, fmt.Errorf("failed to save recurring templates: %w", err)
	}
	return &UpdateRecurringOutput{Template: tpl}, nil
}

func findTemplate(templates []*entity.RecurringTemplate, id uuid.UUID) *entity.RecurringTemplate {
	for _, tpl := range templates {
		if tpl.ID == id && tpl.Active {
			return tpl
		}
	}
	return nil
}
