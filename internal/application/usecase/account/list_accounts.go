package account

import (
	"context"
	"fmt"
	"sort"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
)

// ListAccountsInput represents the input for account listing.
type ListAccountsInput struct {
	IncludeInactive bool
}

// ListAccountsOutput represents the output of account listing.
type ListAccountsOutput struct {
	Accounts []*entity.Account
}

// ListAccountsUseCase handles account listing.
type ListAccountsUseCase struct {
	store adapter.RecordStore
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(store adapter.RecordStore) *ListAccountsUseCase {
	return &ListAccountsUseCase{store: store}
}

// Execute returns accounts in display order, active only unless
// IncludeInactive is set.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.store.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	listed := make([]*entity.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.Active || input.IncludeInactive {
			listed = append(listed, account)
		}
	}
	sort.SliceStable(listed, func(i, j int) bool {
		return listed[i].SortOrder < listed[j].SortOrder
	})
	return &ListAccountsOutput{Accounts: listed}, nil
}
