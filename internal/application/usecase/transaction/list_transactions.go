// Package transaction implements ledger operations on a single account's
// transactions: listing, creation, edits, deletion and bulk import.
package transaction

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for transaction listing.
type ListTransactionsInput struct {
	AccountID uuid.UUID
}

// ListTransactionsOutput represents the output of transaction listing.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles transaction listing.
type ListTransactionsUseCase struct {
	store adapter.RecordStore
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(store adapter.RecordStore) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{store: store}
}

// Execute returns the account's ledger newest first: date descending, then
// creation time descending for same-day entries.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.store.AccountTransactions(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		if !transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].Date.After(transactions[j].Date)
		}
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})
	return &ListTransactionsOutput{Transactions: transactions}, nil
}
