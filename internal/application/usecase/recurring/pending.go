package recurring

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
)

// PendingInput represents the input for the pending-approval view.
type PendingInput struct {
	AccountID uuid.UUID
}

// PendingOutput represents the output of the pending-approval view.
type PendingOutput struct {
	Occurrences []*entity.PendingOccurrence
}

// PendingUseCase builds the pending-approval view for one account: every
// overdue occurrence plus occurrences due within the upcoming window.
type PendingUseCase struct {
	store      adapter.RecordStore
	clock      adapter.Clock
	windowDays int
}

// NewPendingUseCase creates a new PendingUseCase instance.
func NewPendingUseCase(store adapter.RecordStore, clock adapter.Clock, windowDays int) *PendingUseCase {
	if windowDays <= 0 {
		windowDays = DefaultPendingWindowDays
	}
	return &PendingUseCase{store: store, clock: clock, windowDays: windowDays}
}

// Execute returns the account's pending occurrences sorted by due date.
func (uc *PendingUseCase) Execute(ctx context.Context, input PendingInput) (*PendingOutput, error) {
	templates, err := uc.store.Recurring(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring templates: %w", err)
	}
	accounts, err := uc.store.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	names := make(map[uuid.UUID]string, len(accounts))
	for _, account := range accounts {
		names[account.ID] = account.Name
	}

	today := entity.DateOf(uc.clock.Now())
	horizon := today.AddDays(uc.windowDays)

	var occurrences []*entity.PendingOccurrence
	for _, tpl := range templates {
		occurrences = append(occurrences, GeneratePending(tpl, input.AccountID, names, today, horizon)...)
	}
	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].DueDate.Before(occurrences[j].DueDate)
	})

	return &PendingOutput{Occurrences: occurrences}, nil
}
