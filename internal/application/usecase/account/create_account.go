// Package account implements the account registry: creation, listing,
// edits, soft deletion and display ordering.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	Name            string
	Type            entity.AccountType
	StartingBalance decimal.Decimal
	AssetValue      *decimal.Decimal
	Icon            string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation.
type CreateAccountUseCase struct {
	store adapter.RecordStore
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(store adapter.RecordStore) *CreateAccountUseCase {
	return &CreateAccountUseCase{store: store}
}

// Execute creates an account at the end of the display order and provisions
// its empty ledger file.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeMissingAccountName,
			"account name is required",
			domainerror.ErrMissingAccountName,
		)
	}
	if !entity.ValidAccountType(input.Type) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			fmt.Sprintf("unknown account type %q", input.Type),
			domainerror.ErrInvalidAccountType,
		)
	}

	accounts, err := uc.store.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	sortOrder := 0
	for _, existing := range accounts {
		if existing.SortOrder >= sortOrder {
			sortOrder = existing.SortOrder + 1
		}
	}

	account := entity.NewAccount(name, input.Type, input.StartingBalance, input.AssetValue, input.Icon, sortOrder)
	accounts = append(accounts, account)
	if err := uc.store.PutAccounts(ctx, accounts); err != nil {
		return nil, fmt.Errorf("failed to save accounts: %w", err)
	}
	if err := uc.store.EnsureAccountFile(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("failed to provision account ledger: %w", err)
	}
	return &CreateAccountOutput{Account: account}, nil
}
