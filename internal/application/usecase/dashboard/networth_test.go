package dashboard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/domain/entity"
)

func bankAccount(name, startingBalance string) *entity.Account {
	return &entity.Account{
		ID:              uuid.New(),
		Name:            name,
		Type:            entity.AccountTypeBank,
		StartingBalance: dec(startingBalance),
		Active:          true,
	}
}

func TestNetWorthSeries(t *testing.T) {
	start, end := date(2024, 6, 1), date(2024, 6, 11)

	t.Run("point count is numPoints plus one", func(t *testing.T) {
		account := bankAccount("Current", "1000")
		points := NetWorthSeries([]*entity.Account{account}, nil, start, end, 10)
		if len(points) != 11 {
			t.Fatalf("got %d points, want 11", len(points))
		}
	})

	t.Run("flat series without transactions", func(t *testing.T) {
		account := bankAccount("Current", "1000")
		points := NetWorthSeries([]*entity.Account{account}, nil, start, end, 5)
		for i, point := range points {
			if !point.Value.Equal(dec("1000")) {
				t.Errorf("point %d = %s, want 1000", i, point.Value)
			}
			if point.IsForecast {
				t.Errorf("historical point %d flagged as forecast", i)
			}
		}
	})

	t.Run("pre-range transactions roll into the opening balance", func(t *testing.T) {
		account := bankAccount("Current", "1000")
		ledgers := map[uuid.UUID][]*entity.Transaction{
			account.ID: {tx("-200", "Groceries", date(2024, 5, 15))},
		}
		points := NetWorthSeries([]*entity.Account{account}, ledgers, start, end, 5)
		if !points[0].Value.Equal(dec("800")) {
			t.Errorf("opening point = %s, want 800", points[0].Value)
		}
	})

	t.Run("in-range transactions step the series", func(t *testing.T) {
		account := bankAccount("Current", "1000")
		ledgers := map[uuid.UUID][]*entity.Transaction{
			account.ID: {tx("-100", "Groceries", date(2024, 6, 6))},
		}
		points := NetWorthSeries([]*entity.Account{account}, ledgers, start, end, 10)
		if !points[0].Value.Equal(dec("1000")) {
			t.Errorf("opening point = %s, want 1000", points[0].Value)
		}
		if !points[10].Value.Equal(dec("900")) {
			t.Errorf("closing point = %s, want 900", points[10].Value)
		}
	})

	t.Run("asset value adjusts the aggregate", func(t *testing.T) {
		assetValue := dec("250000")
		house := &entity.Account{
			ID:         uuid.New(),
			Name:       "House",
			Type:       entity.AccountTypeAsset,
			AssetValue: &assetValue,
			Active:     true,
		}
		points := NetWorthSeries([]*entity.Account{house}, nil, start, end, 2)
		if !points[0].Value.Equal(dec("250000")) {
			t.Errorf("asset net worth = %s, want 250000", points[0].Value)
		}
	})
}

func TestForecastNetWorthSeries(t *testing.T) {
	today, horizon := date(2024, 6, 15), date(2024, 6, 25)
	account := bankAccount("Current", "1000")
	current := map[uuid.UUID]decimal.Decimal{account.ID: dec("800")}

	t.Run("seeded from current balances", func(t *testing.T) {
		points := ForecastNetWorthSeries([]*entity.Account{account}, current, nil, today, horizon, 5)
		if !points[0].Value.Equal(dec("800")) {
			t.Errorf("boundary point = %s, want 800", points[0].Value)
		}
		for i, point := range points {
			if !point.IsForecast {
				t.Errorf("point %d not flagged as forecast", i)
			}
		}
	})

	t.Run("occurrences step the projection", func(t *testing.T) {
		occurrences := []*entity.ForecastOccurrence{
			{AccountID: account.ID, Date: date(2024, 6, 20), Amount: dec("-300"), Category: "Rent"},
		}
		points := ForecastNetWorthSeries([]*entity.Account{account}, current, occurrences, today, horizon, 10)
		if !points[0].Value.Equal(dec("800")) {
			t.Errorf("boundary point = %s, want 800", points[0].Value)
		}
		if !points[10].Value.Equal(dec("500")) {
			t.Errorf("final point = %s, want 500", points[10].Value)
		}
	})

	t.Run("occurrences for untracked accounts ignored", func(t *testing.T) {
		occurrences := []*entity.ForecastOccurrence{
			{AccountID: uuid.New(), Date: date(2024, 6, 20), Amount: dec("-999"), Category: "Rent"},
		}
		points := ForecastNetWorthSeries([]*entity.Account{account}, current, occurrences, today, horizon, 4)
		if !points[4].Value.Equal(dec("800")) {
			t.Errorf("final point = %s, want 800", points[4].Value)
		}
	})
}
