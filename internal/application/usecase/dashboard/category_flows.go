package dashboard

import (
	"context"
	"fmt"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/application/usecase/recurring"
	"github.com/brisk-budget/backend/internal/domain/entity"
)

// CategoryFlowsInput represents the input for the cash-flow aggregation.
// ForecastRange empty or "0" means history only.
type CategoryFlowsInput struct {
	Range         string
	ForecastRange string
}

// CategoryFlowsOutput represents the output of the cash-flow aggregation.
type CategoryFlowsOutput struct {
	Flows    Flows
	Forecast *Flows
}

// CategoryFlowsUseCase aggregates historical and projected cash flow by
// category.
type CategoryFlowsUseCase struct {
	store adapter.RecordStore
	clock adapter.Clock
}

// NewCategoryFlowsUseCase creates a new CategoryFlowsUseCase instance.
func NewCategoryFlowsUseCase(store adapter.RecordStore, clock adapter.Clock) *CategoryFlowsUseCase {
	return &CategoryFlowsUseCase{store: store, clock: clock}
}

// Execute aggregates every active account's ledger over the range, plus
// forecast occurrences when a forecast range is given.
func (uc *CategoryFlowsUseCase) Execute(ctx context.Context, input CategoryFlowsInput) (*CategoryFlowsOutput, error) {
	chartRange, err := ParseRange(input.Range)
	if err != nil {
		return nil, err
	}

	categories, err := uc.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	accounts, err := uc.store.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	var transactions []*entity.Transaction
	for _, account := range accounts {
		if !account.Active {
			continue
		}
		ledger, err := uc.store.AccountTransactions(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}
		transactions = append(transactions, ledger...)
	}

	today := entity.DateOf(uc.clock.Now())
	output := &CategoryFlowsOutput{
		Flows: CategoryFlows(transactions, categories, chartRange.Start(today), today),
	}

	if input.ForecastRange != "" && input.ForecastRange != "0" {
		forecastRange, err := ParseRange(input.ForecastRange)
		if err != nil {
			return nil, err
		}
		templates, err := uc.store.Recurring(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load recurring templates: %w", err)
		}
		horizon := forecastRange.End(today)
		var occurrences []*entity.ForecastOccurrence
		for _, tpl := range templates {
			occurrences = append(occurrences, recurring.GenerateForecast(tpl, today, horizon)...)
		}
		forecast := ForecastCategoryFlows(occurrences, categories)
		output.Forecast = &forecast
	}
	return output, nil
}
