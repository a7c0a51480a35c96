package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/adapter"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// ReorderAccountsInput represents the input for account reordering.
// OrderedIDs lists every active account id in the desired display order.
type ReorderAccountsInput struct {
	OrderedIDs []uuid.UUID
}

// ReorderAccountsUseCase handles account reordering.
type ReorderAccountsUseCase struct {
	store adapter.RecordStore
}

// NewReorderAccountsUseCase creates a new ReorderAccountsUseCase instance.
func NewReorderAccountsUseCase(store adapter.RecordStore) *ReorderAccountsUseCase {
	return &ReorderAccountsUseCase{store: store}
}

// Execute rewrites the active accounts' sort order. The request must name
// every active account exactly once.
func (uc *ReorderAccountsUseCase) Execute(ctx context.Context, input ReorderAccountsInput) error {
	accounts, err := uc.store.Accounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	position := make(map[uuid.UUID]int, len(input.OrderedIDs))
	for i, id := range input.OrderedIDs {
		if _, dup := position[id]; dup {
			return invalidOrder("duplicate account id in order")
		}
		position[id] = i
	}

	activeCount := 0
	for _, account := range accounts {
		if !account.Active {
			continue
		}
		activeCount++
		order, ok := position[account.ID]
		if !ok {
			return invalidOrder("order does not cover every active account")
		}
		account.SortOrder = order
	}
	if activeCount != len(input.OrderedIDs) {
		return invalidOrder("order names an unknown or inactive account")
	}

	if err := uc.store.PutAccounts(ctx, accounts); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

func invalidOrder(message string) error {
	return domainerror.NewAccountError(
		domainerror.ErrCodeInvalidAccountOrder,
		message,
		domainerror.ErrInvalidAccountOrder,
	)
}
