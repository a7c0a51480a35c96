package persistence

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/domain/entity"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return store
}

func TestNewSeedsDefaults(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	accounts, err := store.Accounts(ctx)
	if err != nil {
		t.Fatalf("Accounts: %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("seeded %d accounts, want 0", len(accounts))
	}

	categories, err := store.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(categories) == 0 {
		t.Fatal("no default categories seeded")
	}
	var haveTransfer, haveUncategorized bool
	for _, category := range categories {
		switch category.Name {
		case entity.CategoryTransfer:
			haveTransfer = category.IsSystem
		case entity.CategoryUncategorized:
			haveUncategorized = category.IsSystem
		}
	}
	if !haveTransfer || !haveUncategorized {
		t.Error("system categories missing from seed")
	}

	settings, err := store.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if settings.CurrencySymbol != entity.DefaultCurrencySymbol {
		t.Errorf("currency symbol = %q, want %q", settings.CurrencySymbol, entity.DefaultCurrencySymbol)
	}
}

func TestAccountRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	assetValue := decimal.RequireFromString("12500.50")
	account := entity.NewAccount("Car", entity.AccountTypeAsset, decimal.Zero, &assetValue, "🚗", 3)
	if err := store.PutAccounts(ctx, []*entity.Account{account}); err != nil {
		t.Fatalf("PutAccounts: %v", err)
	}

	accounts, err := store.Accounts(ctx)
	if err != nil {
		t.Fatalf("Accounts: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("got %d accounts, want 1", len(accounts))
	}
	got := accounts[0]
	if got.ID != account.ID || got.Name != "Car" || got.Type != entity.AccountTypeAsset {
		t.Errorf("account mangled: %+v", got)
	}
	if got.AssetValue == nil || !got.AssetValue.Equal(assetValue) {
		t.Errorf("asset value = %v, want %s", got.AssetValue, assetValue)
	}
	if got.SortOrder != 3 || !got.Active {
		t.Errorf("sortOrder/active mangled: %+v", got)
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	accountID := uuid.New()

	t.Run("missing ledger reads empty", func(t *testing.T) {
		ledger, err := store.AccountTransactions(ctx, accountID)
		if err != nil {
			t.Fatalf("AccountTransactions: %v", err)
		}
		if len(ledger) != 0 {
			t.Errorf("got %d transactions, want 0", len(ledger))
		}
	})

	t.Run("transfer halves survive the trip", func(t *testing.T) {
		otherAccount := uuid.New()
		otherID := uuid.New()
		tx := &entity.Transaction{
			ID:                uuid.New(),
			Payee:             "Transfer to Savings",
			Amount:            decimal.RequireFromString("-200.25"),
			Date:              entity.NewDate(2024, time.January, 15),
			Category:          entity.CategoryTransfer,
			CreatedAt:         time.Now().UTC(),
			TransferID:        &otherID,
			TransferAccountID: &otherAccount,
		}
		if err := store.PutAccountTransactions(ctx, accountID, []*entity.Transaction{tx}); err != nil {
			t.Fatalf("PutAccountTransactions: %v", err)
		}

		ledger, err := store.AccountTransactions(ctx, accountID)
		if err != nil {
			t.Fatalf("AccountTransactions: %v", err)
		}
		if len(ledger) != 1 {
			t.Fatalf("got %d transactions, want 1", len(ledger))
		}
		got := ledger[0]
		if !got.Amount.Equal(tx.Amount) {
			t.Errorf("amount = %s, want %s", got.Amount, tx.Amount)
		}
		if !got.Date.Equal(tx.Date) {
			t.Errorf("date = %s, want %s", got.Date, tx.Date)
		}
		if got.TransferID == nil || *got.TransferID != otherID {
			t.Error("transfer link lost")
		}
		if got.TransferAccountID == nil || *got.TransferAccountID != otherAccount {
			t.Error("transfer account link lost")
		}
	})
}

func TestRecurringRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	accountID := uuid.New()

	tpl := &entity.RecurringTemplate{
		ID:        uuid.New(),
		Type:      entity.RecurringTypeTransaction,
		AccountID: &accountID,
		Payee:     "Netflix",
		Amount:    decimal.RequireFromString("-15.99"),
		Category:  "Entertainment",
		Frequency: entity.Frequency{Type: entity.FrequencyMonths, Interval: 1},
		StartDate:            entity.NewDate(2024, time.January, 31),
		NextDueDate:          entity.NewDate(2024, time.February, 29),
		EndCondition:         entity.EndCondition{Type: entity.EndAfterOccurrences, Count: 12},
		OccurrencesCompleted: 1,
		Active:               true,
		CreatedAt:            time.Now().UTC(),
	}
	if err := store.PutRecurring(ctx, []*entity.RecurringTemplate{tpl}); err != nil {
		t.Fatalf("PutRecurring: %v", err)
	}

	templates, err := store.Recurring(ctx)
	if err != nil {
		t.Fatalf("Recurring: %v", err)
	}
	if len(templates) != 1 {
		t.Fatalf("got %d templates, want 1", len(templates))
	}
	got := templates[0]
	if got.Frequency != tpl.Frequency {
		t.Errorf("frequency = %+v, want %+v", got.Frequency, tpl.Frequency)
	}
	if got.EndCondition.Type != entity.EndAfterOccurrences || got.EndCondition.Count != 12 {
		t.Errorf("end condition = %+v", got.EndCondition)
	}
	if !got.NextDueDate.Equal(tpl.NextDueDate) {
		t.Errorf("next due = %s, want %s", got.NextDueDate, tpl.NextDueDate)
	}
	if got.OccurrencesCompleted != 1 {
		t.Errorf("occurrencesCompleted = %d, want 1", got.OccurrencesCompleted)
	}
}

func TestRecurringEndConditionSerialization(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	t.Run("omits date unless on_date", func(t *testing.T) {
		tpl := &entity.RecurringTemplate{
			ID:           uuid.New(),
			Type:         entity.RecurringTypeTransaction,
			Payee:        "Gym",
			Amount:       decimal.RequireFromString("-30"),
			Category:     "Health",
			Frequency:    entity.Frequency{Type: entity.FrequencyMonths, Interval: 1},
			StartDate:    entity.NewDate(2024, time.March, 1),
			NextDueDate:  entity.NewDate(2024, time.April, 1),
			EndCondition: entity.EndCondition{Type: entity.EndAfterOccurrences, Count: 6},
			Active:       true,
		}
		if err := store.PutRecurring(ctx, []*entity.RecurringTemplate{tpl}); err != nil {
			t.Fatalf("PutRecurring: %v", err)
		}
		raw, err := os.ReadFile(filepath.Join(dir, "recurring.json"))
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if strings.Contains(string(raw), `"date"`) {
			t.Errorf("after_occurrences end condition serialized a date field: %s", raw)
		}
	})

	t.Run("on_date round-trips", func(t *testing.T) {
		end := entity.NewDate(2025, time.June, 30)
		tpl := &entity.RecurringTemplate{
			ID:           uuid.New(),
			Type:         entity.RecurringTypeTransaction,
			Payee:        "Lease",
			Amount:       decimal.RequireFromString("-900"),
			Category:     "Housing",
			Frequency:    entity.Frequency{Type: entity.FrequencyMonths, Interval: 1},
			StartDate:    entity.NewDate(2024, time.July, 1),
			NextDueDate:  entity.NewDate(2024, time.August, 1),
			EndCondition: entity.EndCondition{Type: entity.EndOnDate, Date: end},
			Active:       true,
		}
		if err := store.PutRecurring(ctx, []*entity.RecurringTemplate{tpl}); err != nil {
			t.Fatalf("PutRecurring: %v", err)
		}
		templates, err := store.Recurring(ctx)
		if err != nil {
			t.Fatalf("Recurring: %v", err)
		}
		if len(templates) != 1 {
			t.Fatalf("got %d templates, want 1", len(templates))
		}
		got := templates[0].EndCondition
		if got.Type != entity.EndOnDate || !got.Date.Equal(end) {
			t.Errorf("end condition = %+v, want on_date %s", got, end)
		}
	})
}

func TestEnsureAccountFile(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	accountID := uuid.New()

	if err := store.EnsureAccountFile(ctx, accountID); err != nil {
		t.Fatalf("EnsureAccountFile: %v", err)
	}

	// A second call must not truncate an existing ledger.
	tx := entity.NewTransaction("Rent", decimal.RequireFromString("-900"), entity.NewDate(2024, time.March, 1), "Housing", "", "")
	if err := store.PutAccountTransactions(ctx, accountID, []*entity.Transaction{tx}); err != nil {
		t.Fatalf("PutAccountTransactions: %v", err)
	}
	if err := store.EnsureAccountFile(ctx, accountID); err != nil {
		t.Fatalf("EnsureAccountFile: %v", err)
	}
	ledger, err := store.AccountTransactions(ctx, accountID)
	if err != nil {
		t.Fatalf("AccountTransactions: %v", err)
	}
	if len(ledger) != 1 {
		t.Errorf("ledger truncated: %d transactions, want 1", len(ledger))
	}
}

func TestLastModified(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	before, err := store.LastModified()
	if err != nil {
		t.Fatalf("LastModified: %v", err)
	}
	if before.IsZero() {
		t.Fatal("no modification time after seeding")
	}

	time.Sleep(10 * time.Millisecond)
	if err := store.PutPayees(ctx, []*entity.Payee{entity.NewPayee("Tesco")}); err != nil {
		t.Fatalf("PutPayees: %v", err)
	}
	after, err := store.LastModified()
	if err != nil {
		t.Fatalf("LastModified: %v", err)
	}
	if !after.After(before) {
		t.Errorf("mtime did not advance: before=%v after=%v", before, after)
	}
}
