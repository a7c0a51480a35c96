package recurring

import (
	"context"
	"fmt"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
)

// ListRecurringOutput represents the output of recurring template listing.
type ListRecurringOutput struct {
	Templates []*entity.RecurringTemplate
}

// ListRecurringUseCase handles listing recurring templates.
type ListRecurringUseCase struct {
	store adapter.RecordStore
}

// NewListRecurringUseCase creates a new ListRecurringUseCase instance.
func NewListRecurringUseCase(store adapter.RecordStore) *ListRecurringUseCase {
	return &ListRecurringUseCase{store: store}
}

// Execute returns the active recurring templates in creation order.
func (uc *ListRecurringUseCase) Execute(ctx context.Context) (*ListRecurringOutput, error) {
	templates, err := uc.store.Recurring(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring templates: %w", err)
	}

	active := make([]*entity.RecurringTemplate, 0, len(templates))
	for _, tpl := range templates {
		if tpl.Active {
			active = append(active, tpl)
		}
	}
	return &ListRecurringOutput{Templates: active}, nil
}
