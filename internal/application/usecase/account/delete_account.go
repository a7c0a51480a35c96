package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/adapter"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	ID uuid.UUID
}

// DeleteAccountUseCase handles account deletion.
type DeleteAccountUseCase struct {
	store adapter.RecordStore
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(store adapter.RecordStore) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{store: store}
}

// Execute soft-deletes an account. The ledger file stays on disk so the
// account can be restored by hand and its transfer halves keep resolving.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	accounts, err := uc.store.Accounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	account := findAccount(accounts, input.ID)
	if account == nil {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}
	account.Active = false

	if err := uc.store.PutAccounts(ctx, accounts); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}
