package payee

import (
	"context"
	"fmt"
	"strings"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
)

// LastCategoryInput represents the input for the last-used-category lookup.
type LastCategoryInput struct {
	PayeeName string
}

// LastCategoryOutput represents the output of the lookup. Category is empty
// when the payee has no usable history.
type LastCategoryOutput struct {
	Category string
}

// LastCategoryUseCase finds the category most recently used with a payee,
// for pre-filling new transactions.
type LastCategoryUseCase struct {
	store adapter.RecordStore
}

// NewLastCategoryUseCase creates a new LastCategoryUseCase instance.
func NewLastCategoryUseCase(store adapter.RecordStore) *LastCategoryUseCase {
	return &LastCategoryUseCase{store: store}
}

// Execute scans every ledger for the payee's most recent transaction,
// matching names case-insensitively. Transfer and Uncategorized entries
// carry no signal and are skipped.
func (uc *LastCategoryUseCase) Execute(ctx context.Context, input LastCategoryInput) (*LastCategoryOutput, error) {
	accounts, err := uc.store.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	var best *entity.Transaction
	for _, account := range accounts {
		ledger, err := uc.store.AccountTransactions(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}
		for _, tx := range ledger {
			if !strings.EqualFold(tx.Payee, input.PayeeName) {
				continue
			}
			if tx.Category == entity.CategoryTransfer || tx.Category == entity.CategoryUncategorized {
				continue
			}
			if best == nil || tx.Date.After(best.Date) ||
				(tx.Date.Equal(best.Date) && tx.CreatedAt.After(best.CreatedAt)) {
				best = tx
			}
		}
	}

	output := &LastCategoryOutput{}
	if best != nil {
		output.Category = best.Category
	}
	return output, nil
}
