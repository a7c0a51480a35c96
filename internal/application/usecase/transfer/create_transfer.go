package transfer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// CreateTransferInput represents the input for transfer creation. Amount is
// a magnitude; the use case signs each half.
type CreateTransferInput struct {
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Date          entity.Date
	Description   string
	Notes         string
}

// CreateTransferOutput represents the output of transfer creation.
type CreateTransferOutput struct {
	Outgoing *entity.Transaction
	Incoming *entity.Transaction
}

// CreateTransferUseCase handles transfer creation.
type CreateTransferUseCase struct {
	store adapter.RecordStore
	clock adapter.Clock
}

// NewCreateTransferUseCase creates a new CreateTransferUseCase instance.
func NewCreateTransferUseCase(store adapter.RecordStore, clock adapter.Clock) *CreateTransferUseCase {
	return &CreateTransferUseCase{store: store, clock: clock}
}

// Execute writes a transfer pair between two accounts.
func (uc *CreateTransferUseCase) Execute(ctx context.Context, input CreateTransferInput) (*CreateTransferOutput, error) {
	if input.FromAccountID == input.ToAccountID {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeSameAccountTransfer,
			"source and target accounts must differ",
			domainerror.ErrSameAccountTransfer,
		)
	}
	if input.Amount.Sign() <= 0 {
		return nil, domainerror.NewTransferError(
			domainerror.ErrCodeInvalidTransferAmount,
			"transfer amount must be positive",
			domainerror.ErrInvalidTransferAmount,
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
	fromName, ok := names[input.FromAccountID]
	if !ok {
		return nil, accountNotFound()
	}
	toName, ok := names[input.ToAccountID]
	if !ok {
		return nil, accountNotFound()
	}

	date := input.Date
	if date.IsZero() {
		date = entity.DateOf(uc.clock.Now())
	}

	out, in := NewPair(input.FromAccountID, input.ToAccountID, fromName, toName, input.Amount, date, input.Description, input.Notes)
	if err := WritePair(ctx, uc.store, input.FromAccountID, input.ToAccountID, out, in); err != nil {
		return nil, err
	}
	return &CreateTransferOutput{Outgoing: out, Incoming: in}, nil
}

func accountNotFound() error {
	return domainerror.NewAccountError(
		domainerror.ErrCodeAccountNotFound,
		"account not found",
		domainerror.ErrAccountNotFound,
	)
}
