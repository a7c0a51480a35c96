package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction updates. Nil
// pointer fields are left unchanged.
type UpdateTransactionInput struct {
	AccountID     uuid.UUID
	TransactionID uuid.UUID
	Payee         *string
	Amount        *decimal.Decimal
	Date          *entity.Date
	Category      *string
	Description   *string
	Notes         *string
}

// UpdateTransactionOutput represents the output of transaction updates.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction updates.
type UpdateTransactionUseCase struct {
	store adapter.RecordStore
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(store adapter.RecordStore) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{store: store}
}

// Execute applies the given changes. Amount and date edits on a transfer
// half are mirrored onto the linked half (amount inverted) so the pair stays
// consistent; the other fields only touch the edited half.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	ledger, err := uc.store.AccountTransactions(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	tx := findByID(ledger, input.TransactionID)
	if tx == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if input.Payee != nil {
		tx.Payee = *input.Payee
	}
	if input.Amount != nil {
		tx.Amount = *input.Amount
	}
	if input.Date != nil {
		tx.Date = *input.Date
	}
	if input.Category != nil {
		tx.Category = *input.Category
	}
	if input.Description != nil {
		tx.Description = *input.Description
	}
	if input.Notes != nil {
		tx.Notes = *input.Notes
	}
	if err := uc.store.PutAccountTransactions(ctx, input.AccountID, ledger); err != nil {
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}

	if tx.IsTransfer() && (input.Amount != nil || input.Date != nil) {
		if err := uc.mirrorOntoPair(ctx, tx, input.Amount, input.Date); err != nil {
			return nil, err
		}
	}
	return &UpdateTransactionOutput{Transaction: tx}, nil
}

func (uc *UpdateTransactionUseCase) mirrorOntoPair(ctx context.Context, tx *entity.Transaction, amount *decimal.Decimal, date *entity.Date) error {
	otherLedger, err := uc.store.AccountTransactions(ctx, *tx.TransferAccountID)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	other := findByID(otherLedger, *tx.TransferID)
	if other == nil {
		// Pair already broken; nothing to mirror onto.
		return nil
	}
	if amount != nil {
		other.Amount = amount.Neg()
	}
	if date != nil {
		other.Date = *date
	}
	if err := uc.store.PutAccountTransactions(ctx, *tx.TransferAccountID, otherLedger); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}

func findByID(ledger []*entity.Transaction, id uuid.UUID) *entity.Transaction {
	for _, tx := range ledger {
		if tx.ID == id {
			return tx
		}
	}
	return nil
}
