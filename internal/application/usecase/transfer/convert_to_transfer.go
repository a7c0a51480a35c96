package transfer

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// ConvertToTransferInput represents the input for converting a plain
// transaction into a transfer. TargetAccountID is the counterparty account.
type ConvertToTransferInput struct {
	AccountID       uuid.UUID
	TransactionID   uuid.UUID
	TargetAccountID uuid.UUID
}

// ConvertToTransferOutput represents the output of the conversion.
type ConvertToTransferOutput struct {
	Outgoing *entity.Transaction
	Incoming *entity.Transaction
}

// ConvertToTransferUseCase rewrites an existing plain transaction as one
// half of a transfer pair. The transaction's sign decides the direction: a
// negative amount makes its account the source, a positive amount the
// target.
type ConvertToTransferUseCase struct {
	store adapter.RecordStore
}

// NewConvertToTransferUseCase creates a new ConvertToTransferUseCase instance.
func NewConvertToTransferUseCase(store adapter.RecordStore) *ConvertToTransferUseCase {
	return &ConvertToTransferUseCase{store: store}
}

// Execute replaces the transaction with a fresh pair carrying its date,
// magnitude, description and notes. Both halves get new ids.
func (uc *ConvertToTransferUseCase) Execute(ctx context.Context, input ConvertToTransferInput) (*ConvertToTransferOutput, error) {
	if input.TargetAccountID == input.AccountID {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeSameAccountTransfer,
			"source and target accounts must differ",
			domainerror.ErrSameAccountTransfer,
		)
	}

	ledger, err := uc.store.AccountTransactions(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	index := -1
	for i, tx := range ledger {
		if tx.ID == input.TransactionID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	tx := ledger[index]
	if tx.IsTransfer() {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeAlreadyTransfer,
			"transaction is already part of a transfer",
			domainerror.ErrAlreadyTransfer,
		)
	}

	accounts, err := uc.store.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	names := make(map[uuid.UUID]string, len(accounts))
	for _, account := range accounts {
		names[account.ID] = account.Name
	}
	if _, ok := names[input.TargetAccountID]; !ok {
		return nil, accountNotFound()
	}

	outgoing := tx.Amount.IsNegative()
	fromID, toID := input.AccountID, input.TargetAccountID
	if !outgoing {
		fromID, toID = input.TargetAccountID, input.AccountID
	}
	out, in := NewPair(fromID, toID, names[fromID], names[toID], tx.Amount, tx.Date, tx.Description, tx.Notes)

	// The original transaction and its replacement half live in the same
	// file, so that swap is a single write; only the counterparty half can
	// be left dangling.
	own, other := in, out
	if outgoing {
		own, other = out, in
	}
	ledger[index] = own
	if err := uc.store.PutAccountTransactions(ctx, input.AccountID, ledger); err != nil {
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}

	otherLedger, err := uc.store.AccountTransactions(ctx, input.TargetAccountID)
	if err != nil {
		return nil, danglingTransfer(err)
	}
	otherLedger = append(otherLedger, other)
	if err := uc.store.PutAccountTransactions(ctx, input.TargetAccountID, otherLedger); err != nil {
		return nil, danglingTransfer(err)
	}

	return &ConvertToTransferOutput{Outgoing: out, Incoming: in}, nil
}
