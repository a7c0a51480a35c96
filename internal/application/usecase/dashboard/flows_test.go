package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/domain/entity"
)

func date(year int, month int, day int) entity.Date {
	return entity.NewDate(year, time.Month(month), day)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tx(amount, category string, d entity.Date) *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		Payee:    "test",
		Amount:   dec(amount),
		Date:     d,
		Category: category,
	}
}

func testCategories() []*entity.Category {
	return []*entity.Category{
		{
			ID:   uuid.New(),
			Name: "Food & Drink",
			Subcategories: []entity.Subcategory{
				{ID: uuid.New(), Name: "Groceries"},
				{ID: uuid.New(), Name: "Restaurants"},
			},
		},
		{
			ID:   uuid.New(),
			Name: entity.CategoryIncome,
			Subcategories: []entity.Subcategory{
				{ID: uuid.New(), Name: "Salary"},
			},
		},
		{ID: uuid.New(), Name: entity.CategoryTransfer, IsSystem: true},
	}
}

func TestCategoryFlows(t *testing.T) {
	start, end := date(2024, 6, 1), date(2024, 6, 30)
	categories := testCategories()

	t.Run("expenses grouped under parent", func(t *testing.T) {
		flows := CategoryFlows([]*entity.Transaction{
			tx("-40", "Groceries", date(2024, 6, 5)),
			tx("-60", "Restaurants", date(2024, 6, 10)),
		}, categories, start, end)

		if got := flows.Expenses["Food & Drink"]; !got.Equal(dec("100")) {
			t.Errorf("Food & Drink expense = %s, want 100", got)
		}
		if len(flows.Income) != 0 {
			t.Errorf("unexpected income buckets: %v", flows.Income)
		}
	})

	t.Run("refund nets against expense, never counts as income", func(t *testing.T) {
		flows := CategoryFlows([]*entity.Transaction{
			tx("-100", "Food & Drink", date(2024, 6, 5)),
			tx("30", "Food & Drink", date(2024, 6, 12)),
		}, categories, start, end)

		if got := flows.Expenses["Food & Drink"]; !got.Equal(dec("70")) {
			t.Errorf("Food & Drink expense = %s, want 70", got)
		}
		if len(flows.Income) != 0 {
			t.Errorf("refund attributed as income: %v", flows.Income)
		}
	})

	t.Run("refund floors at zero and bucket is dropped", func(t *testing.T) {
		flows := CategoryFlows([]*entity.Transaction{
			tx("-20", "Food & Drink", date(2024, 6, 5)),
			tx("50", "Food & Drink", date(2024, 6, 12)),
		}, categories, start, end)

		if _, ok := flows.Expenses["Food & Drink"]; ok {
			t.Errorf("over-refunded bucket survived: %v", flows.Expenses)
		}
	})

	t.Run("income buckets by known subcategory", func(t *testing.T) {
		flows := CategoryFlows([]*entity.Transaction{
			tx("2500", "Salary", date(2024, 6, 1)),
			tx("90", entity.CategoryIncome, date(2024, 6, 15)),
		}, categories, start, end)

		if got := flows.Income["Salary"]; !got.Equal(dec("2500")) {
			t.Errorf("Salary income = %s, want 2500", got)
		}
		if got := flows.Income[entity.OtherIncomeBucket]; !got.Equal(dec("90")) {
			t.Errorf("Other Income = %s, want 90", got)
		}
	})

	t.Run("transfers and out-of-range entries excluded", func(t *testing.T) {
		flows := CategoryFlows([]*entity.Transaction{
			tx("-500", entity.CategoryTransfer, date(2024, 6, 5)),
			tx("-40", "Groceries", date(2024, 5, 30)),
			tx("-40", "Groceries", date(2024, 7, 1)),
		}, categories, start, end)

		if len(flows.Expenses) != 0 || len(flows.Income) != 0 {
			t.Errorf("flows not empty: %v / %v", flows.Income, flows.Expenses)
		}
	})

	t.Run("orphaned category charts as itself", func(t *testing.T) {
		flows := CategoryFlows([]*entity.Transaction{
			tx("-15", "Vintage Stamps", date(2024, 6, 5)),
		}, categories, start, end)

		if got := flows.Expenses["Vintage Stamps"]; !got.Equal(dec("15")) {
			t.Errorf("orphaned expense = %s, want 15", got)
		}
	})
}

func TestForecastCategoryFlows(t *testing.T) {
	categories := testCategories()
	accountID := uuid.New()

	occ := func(amount, category string) *entity.ForecastOccurrence {
		return &entity.ForecastOccurrence{
			AccountID: accountID,
			Date:      date(2024, 7, 1),
			Amount:    dec(amount),
			Category:  category,
		}
	}

	flows := ForecastCategoryFlows([]*entity.ForecastOccurrence{
		occ("2500", "Salary"),
		occ("-120", "Groceries"),
		occ("30", "Food & Drink"), // projected refund, ignored
		occ("-200", entity.CategoryTransfer),
	}, categories)

	if got := flows.Income["Salary"]; !got.Equal(dec("2500")) {
		t.Errorf("Salary income = %s, want 2500", got)
	}
	if got := flows.Expenses["Food & Drink"]; !got.Equal(dec("120")) {
		t.Errorf("Food & Drink expense = %s, want 120", got)
	}
	if len(flows.Income) != 1 || len(flows.Expenses) != 1 {
		t.Errorf("unexpected buckets: %v / %v", flows.Income, flows.Expenses)
	}
}
