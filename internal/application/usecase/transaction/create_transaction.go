package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	AccountID   uuid.UUID
	Payee       string
	Amount      decimal.Decimal
	Date        entity.Date
	Category    string
	Description string
	Notes       string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation.
type CreateTransactionUseCase struct {
	store adapter.RecordStore
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(store adapter.RecordStore) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{store: store}
}

// Execute appends a transaction to the account's ledger. A payee name not
// yet in the registry is added to it.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	payee := strings.TrimSpace(input.Payee)
	if payee == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionPayee,
			"payee is required",
			domainerror.ErrMissingTransactionPayee,
		)
	}
	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionDate,
			"date is required",
			domainerror.ErrMissingTransactionDate,
		)
	}
	category := input.Category
	if category == "" {
		category = entity.CategoryUncategorized
	}

	tx := entity.NewTransaction(payee, input.Amount, input.Date, category, input.Description, input.Notes)

	ledger, err := uc.store.AccountTransactions(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	ledger = append(ledger, tx)
	if err := uc.store.PutAccountTransactions(ctx, input.AccountID, ledger); err != nil {
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}

	if err := registerPayee(ctx, uc.store, payee); err != nil {
		return nil, err
	}
	return &CreateTransactionOutput{Transaction: tx}, nil
}

// registerPayee adds name to the payee registry when it is not already
// present, matching case-insensitively.
func registerPayee(ctx context.Context, store adapter.RecordStore, name string) error {
	payees, err := store.Payees(ctx)
	if err != nil {
		return fmt.Errorf("failed to load payees: %w", err)
	}
	for _, payee := range payees {
		if strings.EqualFold(payee.Name, name) {
			return nil
		}
	}
	payees = append(payees, entity.NewPayee(name))
	if err := store.PutPayees(ctx, payees); err != nil {
		return fmt.Errorf("failed to save payees: %w", err)
	}
	return nil
}
