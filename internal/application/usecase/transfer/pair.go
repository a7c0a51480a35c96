// Package transfer implements the paired-transaction transfer model: every
// transfer is two cross-referenced ledger entries, one per account, whose
// amounts are additive inverses.
package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// NewPair builds the two halves of a transfer of amount (taken as a
// magnitude) from one account to another, dated date. The outgoing half
// carries the negative amount and names the target account in its payee, the
// incoming half mirrors it. Each half's TransferID is the other's ID.
func NewPair(fromAccountID, toAccountID uuid.UUID, fromName, toName string, amount decimal.Decimal, date entity.Date, description, notes string) (out, in *entity.Transaction) {
	magnitude := amount.Abs()
	now := time.Now().UTC()

	out = &entity.Transaction{
		ID:                uuid.New(),
		Payee:             "Transfer to " + toName,
		Amount:            magnitude.Neg(),
		Date:              date,
		Category:          entity.CategoryTransfer,
		Description:       description,
		Notes:             notes,
		CreatedAt:         now,
		TransferAccountID: &toAccountID,
	}
	in = &entity.Transaction{
		ID:                uuid.New(),
		Payee:             "Transfer from " + fromName,
		Amount:            magnitude,
		Date:              date,
		Category:          entity.CategoryTransfer,
		Description:       description,
		Notes:             notes,
		CreatedAt:         now,
		TransferAccountID: &fromAccountID,
	}
	out.TransferID = &in.ID
	in.TransferID = &out.ID
	return out, in
}

// WritePair appends the two halves of a transfer to their ledgers, source
// first. A failure after the source write landed is reported as a dangling
// transfer; the source half is not rolled back.
func WritePair(ctx context.Context, store adapter.RecordStore, fromAccountID, toAccountID uuid.UUID, out, in *entity.Transaction) error {
	fromLedger, err := store.AccountTransactions(ctx, fromAccountID)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	fromLedger = append(fromLedger, out)
	if err := store.PutAccountTransactions(ctx, fromAccountID, fromLedger); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	toLedger, err := store.AccountTransactions(ctx, toAccountID)
	if err != nil {
		return danglingTransfer(err)
	}
	toLedger = append(toLedger, in)
	if err := store.PutAccountTransactions(ctx, toAccountID, toLedger); err != nil {
		return danglingTransfer(err)
	}
	return nil
}

// danglingTransfer marks failures after the first half of a transfer pair
// already landed on disk.
func danglingTransfer(err error) error {
	return domainerror.NewStorageError(
		domainerror.ErrCodeDanglingTransfer,
		"transfer target write failed after source write",
		fmt.Errorf("%w: %w", domainerror.ErrDanglingTransfer, err),
	)
}
