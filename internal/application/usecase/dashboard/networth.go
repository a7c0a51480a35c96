package dashboard

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/application/usecase/balance"
	"github.com/brisk-budget/backend/internal/domain/entity"
)

// SeriesPoint is one sample of the net-worth chart.
type SeriesPoint struct {
	Date       time.Time
	Value      decimal.Decimal
	IsForecast bool
}

// NetWorthSeries samples aggregate net worth at numPoints+1 evenly spaced
// instants across [start, end]. Each account is seeded with its balance as
// of the range start (starting balance plus everything dated strictly
// before), then the in-range transactions are replayed in date order as the
// sampling point sweeps forward.
func NetWorthSeries(accounts []*entity.Account, ledgers map[uuid.UUID][]*entity.Transaction, start, end entity.Date, numPoints int) []SeriesPoint {
	if numPoints < 1 {
		numPoints = 1
	}

	balances := make(map[uuid.UUID]decimal.Decimal, len(accounts))
	var inRange []*replayEntry
	for _, account := range accounts {
		opening := account.StartingBalance
		for _, tx := range ledgers[account.ID] {
			switch {
			case tx.Date.Before(start):
				opening = opening.Add(tx.Amount)
			case !tx.Date.After(end):
				inRange = append(inRange, &replayEntry{accountID: account.ID, date: tx.Date, amount: tx.Amount})
			}
		}
		balances[account.ID] = opening
	}
	sort.SliceStable(inRange, func(i, j int) bool {
		return inRange[i].date.Before(inRange[j].date)
	})

	return sample(accounts, balances, inRange, start.Time(), end.Time(), numPoints, false)
}

// ForecastNetWorthSeries is the same replay seeded from the accounts'
// current balances and fed by forecast occurrences, sampling from today out
// to end. Its first point equals the historical series' last, so the two
// join into one continuous line.
func ForecastNetWorthSeries(accounts []*entity.Account, current map[uuid.UUID]decimal.Decimal, occurrences []*entity.ForecastOccurrence, today, end entity.Date, numPoints int) []SeriesPoint {
	if numPoints < 1 {
		numPoints = 1
	}

	balances := make(map[uuid.UUID]decimal.Decimal, len(accounts))
	for _, account := range accounts {
		balances[account.ID] = current[account.ID]
	}
	entries := make([]*replayEntry, 0, len(occurrences))
	for _, occ := range occurrences {
		if _, tracked := balances[occ.AccountID]; !tracked {
			continue
		}
		entries = append(entries, &replayEntry{accountID: occ.AccountID, date: occ.Date, amount: occ.Amount})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].date.Before(entries[j].date)
	})

	return sample(accounts, balances, entries, today.Time(), end.Time(), numPoints, true)
}

type replayEntry struct {
	accountID uuid.UUID
	date      entity.Date
	amount    decimal.Decimal
}

func sample(accounts []*entity.Account, balances map[uuid.UUID]decimal.Decimal, entries []*replayEntry, start, end time.Time, numPoints int, forecast bool) []SeriesPoint {
	interval := end.Sub(start) / time.Duration(numPoints)
	points := make([]SeriesPoint, 0, numPoints+1)
	next := 0

	for i := 0; i <= numPoints; i++ {
		at := start.Add(interval * time.Duration(i))
		for next < len(entries) && !entries[next].date.Time().After(at) {
			entry := entries[next]
			balances[entry.accountID] = balances[entry.accountID].Add(entry.amount)
			next++
		}

		total := decimal.Zero
		for _, account := range accounts {
			total = total.Add(balance.NetWorthContribution(account, balances[account.ID]))
		}
		points = append(points, SeriesPoint{Date: at, Value: total, IsForecast: forecast})
	}
	return points
}
