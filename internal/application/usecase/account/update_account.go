package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for account updates. Nil pointer
// fields are left unchanged. ClearAssetValue removes the asset value, which
// a nil AssetValue alone cannot express.
type UpdateAccountInput struct {
	ID              uuid.UUID
	Name            *string
	Type            *entity.AccountType
	StartingBalance *decimal.Decimal
	AssetValue      *decimal.Decimal
	ClearAssetValue bool
	Icon            *string
}

// UpdateAccountOutput represents the output of account updates.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account updates.
type UpdateAccountUseCase struct {
	store adapter.RecordStore
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(store adapter.RecordStore) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{store: store}
}

// Execute applies the given changes to an account.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	if input.Type != nil && !entity.ValidAccountType(*input.Type) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			fmt.Sprintf("unknown account type %q", *input.Type),
			domainerror.ErrInvalidAccountType,
		)
	}

	accounts, err := uc.store.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	account := findAccount(accounts, input.ID)
	if account == nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	if input.Name != nil && *input.Name != "" {
		account.Name = *input.Name
	}
	if input.Type != nil {
		account.Type = *input.Type
	}
	if input.StartingBalance != nil {
		account.StartingBalance = *input.StartingBalance
	}
	if input.ClearAssetValue {
		account.AssetValue = nil
	} else if input.AssetValue != nil {
		account.AssetValue = input.AssetValue
	}
	if input.Icon != nil {
		account.Icon = *input.Icon
	}

	if err := uc.store.PutAccounts(ctx, accounts); err != nil {
		return nil, fmt.Errorf("failed to save accounts: %w", err)
	}
	return &UpdateAccountOutput{Account: account}, nil
}

func findAccount(accounts []*entity.Account, id uuid.UUID) *entity.Account {
	for _, account := range accounts {
		if account.ID == id && account.Active {
			return account
		}
	}
	return nil
}
