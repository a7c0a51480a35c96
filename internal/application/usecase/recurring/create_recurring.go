package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// CreateRecurringInput represents the input for recurring template creation.
type CreateRecurringInput struct {
	Type          entity.RecurringType
	AccountID     *uuid.UUID
	FromAccountID *uuid.UUID
	ToAccountID   *uuid.UUID
	Payee         string
	Amount        decimal.Decimal
	Category      string
	Description   string
	Notes         string
	Frequency     entity.Frequency
	StartDate     entity.Date
	EndCondition  entity.EndCondition
}

// CreateRecurringOutput represents the output of recurring template creation.
type CreateRecurringOutput struct {
	Template *entity.RecurringTemplate
}

// CreateRecurringUseCase handles recurring template creation.
type CreateRecurringUseCase struct {
	store adapter.RecordStore
	clock adapter.Clock
}

// NewCreateRecurringUseCase creates a new CreateRecurringUseCase instance.
func NewCreateRecurringUseCase(store adapter.RecordStore, clock adapter.Clock) *CreateRecurringUseCase {
	return &CreateRecurringUseCase{store: store, clock: clock}
}

// Execute validates and persists a new recurring template. Malformed
// frequencies are rejected here so Advance never sees one.
func (uc *CreateRecurringUseCase) Execute(ctx context.Context, input CreateRecurringInput) (*CreateRecurringOutput, error) {
	if input.Type == "" {
		input.Type = entity.RecurringTypeTransaction
	}
	if input.Type != entity.RecurringTypeTransaction && input.Type != entity.RecurringTypeTransfer {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringType,
			"recurring type must be 'transaction' or 'transfer'",
			domainerror.ErrInvalidRecurringType,
		)
	}

	switch input.Type {
	case entity.RecurringTypeTransaction:
		if input.AccountID == nil {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeMissingRecurringAccount,
				"transaction templates require an account",
				domainerror.ErrMissingRecurringAccount,
			)
		}
	case entity.RecurringTypeTransfer:
		if input.FromAccountID == nil || input.ToAccountID == nil {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeMissingRecurringAccount,
				"transfer templates require from and to accounts",
				domainerror.ErrMissingRecurringAccount,
			)
		}
	}

	freq := input.Frequency
	if freq == (entity.Frequency{}) {
		freq = entity.Frequency{Type: entity.FrequencyMonths, Interval: 1}
	}
	if !freq.Valid() {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency requires a known type and an interval of at least 1",
			domainerror.ErrInvalidFrequency,
		)
	}

	end := input.EndCondition
	if end.Type == "" {
		end = entity.EndCondition{Type: entity.EndNever}
	}
	if !end.Valid() {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidEndCondition,
			"end condition is malformed",
			domainerror.ErrInvalidEndCondition,
		)
	}

	category := input.Category
	if category == "" {
		category = entity.CategoryUncategorized
	}
	start := input.StartDate
	if start.IsZero() {
		start = entity.DateOf(uc.clock.Now())
	}

	template := &entity.RecurringTemplate{
		ID:            uuid.New(),
		Type:          input.Type,
		AccountID:     input.AccountID,
		FromAccountID: input.FromAccountID,
		ToAccountID:   input.ToAccountID,
		Payee:         input.Payee,
		Amount:        input.Amount,
		Category:      category,
		Description:   input.Description,
		Notes:         input.Notes,
		Frequency:     freq,
		StartDate:     start,
		NextDueDate:   start,
		EndCondition:  end,
		Active:        true,
		CreatedAt:     time.Now().UTC(),
	}

	templates, err := uc.store.Recurring(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring templates: %w", err)
	}
	templates = append(templates, template)
	if err := uc.store.PutRecurring(ctx, templates); err != nil {
		return nil, fmt.Errorf("failed to save recurring templates: %w", err)
	}

	return &CreateRecurringOutput{Template: template}, nil
}
