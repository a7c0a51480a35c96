package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
)

// ImportRow is one candidate transaction in a bulk import.
type ImportRow struct {
	Payee       string
	Amount      decimal.Decimal
	HasAmount   bool
	Date        entity.Date
	Category    string
	Description string
	Notes       string
}

// ImportRowError reports why a single row was rejected.
type ImportRowError struct {
	Index   int
	Message string
}

// ImportTransactionsInput represents the input for bulk import.
type ImportTransactionsInput struct {
	AccountID uuid.UUID
	Rows      []ImportRow
}

// ImportTransactionsOutput represents the output of bulk import.
type ImportTransactionsOutput struct {
	Imported int
	Errors   []ImportRowError
}

// ImportTransactionsUseCase handles bulk transaction import.
type ImportTransactionsUseCase struct {
	store adapter.RecordStore
}

// NewImportTransactionsUseCase creates a new ImportTransactionsUseCase instance.
func NewImportTransactionsUseCase(store adapter.RecordStore) *ImportTransactionsUseCase {
	return &ImportTransactionsUseCase{store: store}
}

// Execute appends the importable rows in one ledger write. A bad row is
// reported and skipped, never aborting the rest of the batch. Rows without a
// payee import as "Unknown"; rows without a category import uncategorized.
func (uc *ImportTransactionsUseCase) Execute(ctx context.Context, input ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	ledger, err := uc.store.AccountTransactions(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	output := &ImportTransactionsOutput{}
	var payeeNames []string
	for i, row := range input.Rows {
		if row.Date.IsZero() {
			output.Errors = append(output.Errors, ImportRowError{Index: i, Message: "missing or invalid date"})
			continue
		}
		if !row.HasAmount {
			output.Errors = append(output.Errors, ImportRowError{Index: i, Message: "missing or invalid amount"})
			continue
		}

		payee := strings.TrimSpace(row.Payee)
		if payee == "" {
			payee = "Unknown"
		}
		category := row.Category
		if category == "" {
			category = entity.CategoryUncategorized
		}

		ledger = append(ledger, entity.NewTransaction(payee, row.Amount, row.Date, category, row.Description, row.Notes))
		payeeNames = append(payeeNames, payee)
		output.Imported++
	}

	if output.Imported > 0 {
		if err := uc.store.PutAccountTransactions(ctx, input.AccountID, ledger); err != nil {
			return nil, fmt.Errorf("failed to save transactions: %w", err)
		}
		for _, name := range payeeNames {
			if err := registerPayee(ctx, uc.store, name); err != nil {
				return nil, err
			}
		}
	}
	return output, nil
}
