package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	AccountID     uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion.
type DeleteTransactionUseCase struct {
	store adapter.RecordStore
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(store adapter.RecordStore) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{store: store}
}

// Execute removes the transaction from its ledger. Deleting a transfer half
// deletes the linked half too, so no unpaired transfer is left behind.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	ledger, err := uc.store.AccountTransactions(ctx, input.AccountID)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	tx := findByID(ledger, input.TransactionID)
	if tx == nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if err := uc.store.PutAccountTransactions(ctx, input.AccountID, remove(ledger, input.TransactionID)); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	if tx.IsTransfer() {
		otherLedger, err := uc.store.AccountTransactions(ctx, *tx.TransferAccountID)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		if err := uc.store.PutAccountTransactions(ctx, *tx.TransferAccountID, remove(otherLedger, *tx.TransferID)); err != nil {
			return fmt.Errorf("failed to save transactions: %w", err)
		}
	}
	return nil
}

func remove(ledger []*entity.Transaction, id uuid.UUID) []*entity.Transaction {
	kept := make([]*entity.Transaction, 0, len(ledger))
	for _, tx := range ledger {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	return kept
}
