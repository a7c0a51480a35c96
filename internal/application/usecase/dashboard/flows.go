package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/domain/entity"
)

// Flows is the cash-flow aggregation for one window: income keyed by Income
// subcategory (or the Other Income bucket), expenses keyed by parent
// category.
type Flows struct {
	Income   map[string]decimal.Decimal
	Expenses map[string]decimal.Decimal
}

// categoryIndex resolves a transaction's category name to its parent and
// knows which names are Income subcategories.
type categoryIndex struct {
	parent       map[string]string
	incomeSubcat map[string]struct{}
}

func indexCategories(categories []*entity.Category) categoryIndex {
	idx := categoryIndex{
		parent:       make(map[string]string),
		incomeSubcat: make(map[string]struct{}),
	}
	for _, category := range categories {
		idx.parent[category.Name] = category.Name
		for _, sub := range category.Subcategories {
			idx.parent[sub.Name] = category.Name
			if category.Name == entity.CategoryIncome {
				idx.incomeSubcat[sub.Name] = struct{}{}
			}
		}
	}
	return idx
}

// parentOf falls back to the name itself for categories no longer in the
// tree, so orphaned names still chart as their own bucket.
func (idx categoryIndex) parentOf(name string) string {
	if parent, ok := idx.parent[name]; ok {
		return parent
	}
	return name
}

func (idx categoryIndex) incomeBucket(name string) string {
	if _, ok := idx.incomeSubcat[name]; ok {
		return name
	}
	return entity.OtherIncomeBucket
}

// CategoryFlows aggregates the transactions dated within [start, end].
// Transfers are excluded. Positive amounts under the Income parent bucket
// by subcategory; positive amounts anywhere else are refunds, netted
// against that parent's expense total and floored at zero. Expense buckets
// that net to zero are dropped.
func CategoryFlows(transactions []*entity.Transaction, categories []*entity.Category, start, end entity.Date) Flows {
	idx := indexCategories(categories)
	flows := Flows{
		Income:   make(map[string]decimal.Decimal),
		Expenses: make(map[string]decimal.Decimal),
	}
	refunds := make(map[string]decimal.Decimal)

	for _, tx := range transactions {
		if tx.Category == entity.CategoryTransfer {
			continue
		}
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		parent := idx.parentOf(tx.Category)
		switch {
		case tx.Amount.IsPositive() && parent == entity.CategoryIncome:
			bucket := idx.incomeBucket(tx.Category)
			flows.Income[bucket] = flows.Income[bucket].Add(tx.Amount)
		case tx.Amount.IsPositive():
			refunds[parent] = refunds[parent].Add(tx.Amount)
		case tx.Amount.IsNegative():
			flows.Expenses[parent] = flows.Expenses[parent].Add(tx.Amount.Abs())
		}
	}

	for parent, refund := range refunds {
		if expense, ok := flows.Expenses[parent]; ok {
			netted := expense.Sub(refund)
			if netted.Sign() < 0 {
				netted = decimal.Zero
			}
			flows.Expenses[parent] = netted
		}
	}
	for parent, expense := range flows.Expenses {
		if expense.Sign() <= 0 {
			delete(flows.Expenses, parent)
		}
	}
	return flows
}

// ForecastCategoryFlows aggregates forecast occurrences the same way, except
// that positive non-income amounts are ignored rather than netted: a
// projected refund has nothing concrete to offset.
func ForecastCategoryFlows(occurrences []*entity.ForecastOccurrence, categories []*entity.Category) Flows {
	idx := indexCategories(categories)
	flows := Flows{
		Income:   make(map[string]decimal.Decimal),
		Expenses: make(map[string]decimal.Decimal),
	}

	for _, occ := range occurrences {
		if occ.Category == entity.CategoryTransfer {
			continue
		}
		parent := idx.parentOf(occ.Category)
		switch {
		case occ.Amount.IsPositive() && parent == entity.CategoryIncome:
			bucket := idx.incomeBucket(occ.Category)
			flows.Income[bucket] = flows.Income[bucket].Add(occ.Amount)
		case occ.Amount.IsNegative():
			flows.Expenses[parent] = flows.Expenses[parent].Add(occ.Amount.Abs())
		}
	}
	return flows
}
