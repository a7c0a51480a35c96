package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/application/usecase/balance"
	"github.com/brisk-budget/backend/internal/application/usecase/recurring"
	"github.com/brisk-budget/backend/internal/domain/entity"
)

// NetWorthSeriesInput represents the input for the net-worth chart.
// AccountIDs narrows the chart to a subset; empty means every active
// account. ForecastRange empty means history only.
type NetWorthSeriesInput struct {
	Range         string
	ForecastRange string
	AccountIDs    []uuid.UUID
}

// NetWorthSeriesOutput represents the output of the net-worth chart. When a
// forecast was requested its points continue the historical ones in the
// same slice.
type NetWorthSeriesOutput struct {
	Points []SeriesPoint
}

// NetWorthSeriesUseCase builds the net-worth chart series.
type NetWorthSeriesUseCase struct {
	store adapter.RecordStore
	clock adapter.Clock
}

// NewNetWorthSeriesUseCase creates a new NetWorthSeriesUseCase instance.
func NewNetWorthSeriesUseCase(store adapter.RecordStore, clock adapter.Clock) *NetWorthSeriesUseCase {
	return &NetWorthSeriesUseCase{store: store, clock: clock}
}

// Execute replays history across the selected accounts and, when a forecast
// range is given, extends the line with recurring-template projections. The
// forecast's boundary point duplicates the last historical one and is
// dropped from the merge.
func (uc *NetWorthSeriesUseCase) Execute(ctx context.Context, input NetWorthSeriesInput) (*NetWorthSeriesOutput, error) {
	chartRange, err := ParseRange(input.Range)
	if err != nil {
		return nil, err
	}

	accounts, err := uc.selectAccounts(ctx, input.AccountIDs)
	if err != nil {
		return nil, err
	}
	ledgers := make(map[uuid.UUID][]*entity.Transaction, len(accounts))
	for _, account := range accounts {
		ledger, err := uc.store.AccountTransactions(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}
		ledgers[account.ID] = ledger
	}

	today := entity.DateOf(uc.clock.Now())
	points := NetWorthSeries(accounts, ledgers, chartRange.Start(today), today, chartRange.Points())

	if input.ForecastRange != "" && input.ForecastRange != "0" {
		forecastRange, err := ParseRange(input.ForecastRange)
		if err != nil {
			return nil, err
		}
		horizon := forecastRange.End(today)

		templates, err := uc.store.Recurring(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load recurring templates: %w", err)
		}
		var occurrences []*entity.ForecastOccurrence
		for _, tpl := range templates {
			occurrences = append(occurrences, recurring.GenerateForecast(tpl, today, horizon)...)
		}

		current := make(map[uuid.UUID]decimal.Decimal, len(accounts))
		for _, account := range accounts {
			current[account.ID] = balance.Compute(account, ledgers[account.ID])
		}
		forecast := ForecastNetWorthSeries(accounts, current, occurrences, today, horizon, forecastRange.Points())
		if len(forecast) > 0 {
			points = append(points, forecast[1:]...)
		}
	}
	return &NetWorthSeriesOutput{Points: points}, nil
}

func (uc *NetWorthSeriesUseCase) selectAccounts(ctx context.Context, ids []uuid.UUID) ([]*entity.Account, error) {
	accounts, err := uc.store.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	selected := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}

	chosen := make([]*entity.Account, 0, len(accounts))
	for _, account := range accounts {
		if !account.Active {
			continue
		}
		if len(selected) > 0 {
			if _, ok := selected[account.ID]; !ok {
				continue
			}
		}
		chosen = append(chosen, account)
	}
	return chosen, nil
}
