package transfer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// ConvertToTransactionInput represents the input for converting a transfer
// half back into a plain transaction.
type ConvertToTransactionInput struct {
	AccountID     uuid.UUID
	TransactionID uuid.UUID
}

// ConvertToTransactionOutput represents the output of the conversion.
type ConvertToTransactionOutput struct {
	Transaction *entity.Transaction
}

// ConvertToTransactionUseCase detaches one half of a transfer pair: the
// linked half is deleted from its account and the kept half becomes a plain
// uncategorized transaction.
type ConvertToTransactionUseCase struct {
	store adapter.RecordStore
}

// NewConvertToTransactionUseCase creates a new ConvertToTransactionUseCase instance.
func NewConvertToTransactionUseCase(store adapter.RecordStore) *ConvertToTransactionUseCase {
	return &ConvertToTransactionUseCase{store: store}
}

// Execute deletes the counterparty half first, then rewrites the kept half
// with the "Transfer to/from" payee prefix stripped and the category reset
// to Uncategorized.
func (uc *ConvertToTransactionUseCase) Execute(ctx context.Context, input ConvertToTransactionInput) (*ConvertToTransactionOutput, error) {
	ledger, err := uc.store.AccountTransactions(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	var tx *entity.Transaction
	for _, candidate := range ledger {
		if candidate.ID == input.TransactionID {
			tx = candidate
			break
		}
	}
	if tx == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	if !tx.IsTransfer() {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeNotATransfer,
			"transaction is not part of a transfer",
			domainerror.ErrNotATransfer,
		)
	}

	otherAccountID := *tx.TransferAccountID
	otherID := *tx.TransferID
	otherLedger, err := uc.store.AccountTransactions(ctx, otherAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	kept := otherLedger[:0]
	for _, candidate := range otherLedger {
		if candidate.ID != otherID {
			kept = append(kept, candidate)
		}
	}
	if err := uc.store.PutAccountTransactions(ctx, otherAccountID, kept); err != nil {
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}

	tx.Payee = stripTransferPrefix(tx.Payee)
	tx.Category = entity.CategoryUncategorized
	tx.TransferID = nil
	tx.TransferAccountID = nil
	if err := uc.store.PutAccountTransactions(ctx, input.AccountID, ledger); err != nil {
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}

	return &ConvertToTransactionOutput{Transaction: tx}, nil
}

func stripTransferPrefix(payee string) string {
	if rest, ok := strings.CutPrefix(payee, "Transfer to "); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(payee, "Transfer from "); ok {
		return rest
	}
	return payee
}
