package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/application/usecase/balance"
	"github.com/brisk-budget/backend/internal/domain/entity"
)

// GetSummaryOutput holds the dashboard's headline cards.
type GetSummaryOutput struct {
	Cash     decimal.Decimal
	Savings  decimal.Decimal
	Debt     decimal.Decimal
	NetWorth decimal.Decimal
}

// GetSummaryUseCase computes the dashboard cards across the active accounts:
// cash on hand, long-term savings, total debt (shown as the amount owed) and
// net worth with asset-value adjustment.
type GetSummaryUseCase struct {
	store adapter.RecordStore
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(store adapter.RecordStore) *GetSummaryUseCase {
	return &GetSummaryUseCase{store: store}
}

// Execute computes the cards from current balances.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	accounts, err := uc.store.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	output := &GetSummaryOutput{}
	for _, account := range accounts {
		if !account.Active {
			continue
		}
		ledger, err := uc.store.AccountTransactions(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}
		raw := balance.Compute(account, ledger)

		switch account.Type {
		case entity.AccountTypeBank, entity.AccountTypeCash, entity.AccountTypeAsset:
			output.Cash = output.Cash.Add(raw)
		case entity.AccountTypeSavings, entity.AccountTypeInvestment:
			output.Savings = output.Savings.Add(raw)
		case entity.AccountTypeCredit, entity.AccountTypeLoan:
			output.Debt = output.Debt.Add(raw.Abs())
		}
		output.NetWorth = output.NetWorth.Add(balance.NetWorthContribution(account, raw))
	}
	return output, nil
}
