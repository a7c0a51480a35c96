package recurring

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
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name string
		from entity.Date
		freq entity.Frequency
		want entity.Date
	}{
		{"daily", date(2024, 3, 10), entity.Frequency{Type: entity.FrequencyDays, Interval: 1}, date(2024, 3, 11)},
		{"every 10 days crosses month", date(2024, 3, 25), entity.Frequency{Type: entity.FrequencyDays, Interval: 10}, date(2024, 4, 4)},
		{"weekly", date(2024, 3, 10), entity.Frequency{Type: entity.FrequencyWeeks, Interval: 1}, date(2024, 3, 17)},
		{"fortnightly", date(2024, 3, 10), entity.Frequency{Type: entity.FrequencyWeeks, Interval: 2}, date(2024, 3, 24)},
		{"monthly plain", date(2024, 3, 10), entity.Frequency{Type: entity.FrequencyMonths, Interval: 1}, date(2024, 4, 10)},
		{"monthly clamps to leap february", date(2024, 1, 31), entity.Frequency{Type: entity.FrequencyMonths, Interval: 1}, date(2024, 2, 29)},
		{"monthly clamps to short february", date(2023, 1, 31), entity.Frequency{Type: entity.FrequencyMonths, Interval: 1}, date(2023, 2, 28)},
		{"monthly clamps day 31 to 30", date(2024, 3, 31), entity.Frequency{Type: entity.FrequencyMonths, Interval: 1}, date(2024, 4, 30)},
		{"quarterly", date(2024, 1, 15), entity.Frequency{Type: entity.FrequencyMonths, Interval: 3}, date(2024, 4, 15)},
		{"yearly", date(2024, 6, 1), entity.Frequency{Type: entity.FrequencyYears, Interval: 1}, date(2025, 6, 1)},
		{"yearly clamps leap day", date(2024, 2, 29), entity.Frequency{Type: entity.FrequencyYears, Interval: 1}, date(2025, 2, 28)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(tt.from, tt.freq)
			if !got.Equal(tt.want) {
				t.Errorf("Advance(%s) = %s, want %s", tt.from, got, tt.want)
			}
		})
	}
}

func TestAdvanceIsDeterministic(t *testing.T) {
	freq := entity.Frequency{Type: entity.FrequencyMonths, Interval: 1}
	from := date(2024, 1, 31)
	first := Advance(from, freq)
	second := Advance(from, freq)
	if !first.Equal(second) {
		t.Fatalf("same input advanced to %s and %s", first, second)
	}
}

func TestHasEnded(t *testing.T) {
	today := date(2024, 6, 15)

	t.Run("never", func(t *testing.T) {
		tpl := &entity.RecurringTemplate{EndCondition: entity.EndCondition{Type: entity.EndNever}, OccurrencesCompleted: 9999}
		if HasEnded(tpl, today, 0) {
			t.Error("never-ending template reported ended")
		}
	})

	t.Run("after occurrences counts pending generations", func(t *testing.T) {
		tpl := &entity.RecurringTemplate{
			EndCondition:         entity.EndCondition{Type: entity.EndAfterOccurrences, Count: 5},
			OccurrencesCompleted: 3,
		}
		if HasEnded(tpl, today, 1) {
			t.Error("ended with one occurrence still remaining")
		}
		if !HasEnded(tpl, today, 2) {
			t.Error("not ended once the limit is reached")
		}
	})

	t.Run("on date compares today", func(t *testing.T) {
		tpl := &entity.RecurringTemplate{
			EndCondition: entity.EndCondition{Type: entity.EndOnDate, Date: date(2024, 6, 15)},
		}
		if HasEnded(tpl, today, 0) {
			t.Error("ended on the end date itself")
		}
		if !HasEnded(tpl, date(2024, 6, 16), 0) {
			t.Error("not ended the day after the end date")
		}
	})
}

func monthlyTemplate(accountID uuid.UUID, due entity.Date) *entity.RecurringTemplate {
	return &entity.RecurringTemplate{
		ID:           uuid.New(),
		Type:         entity.RecurringTypeTransaction,
		AccountID:    &accountID,
		Payee:        "Gym",
		Amount:       dec("-30"),
		Category:     "Health & Fitness",
		Frequency:    entity.Frequency{Type: entity.FrequencyMonths, Interval: 1},
		NextDueDate:  due,
		EndCondition: entity.EndCondition{Type: entity.EndNever},
		Active:       true,
	}
}

func TestGeneratePending(t *testing.T) {
	accountID := uuid.New()
	today := date(2024, 6, 15)
	horizon := today.AddDays(3)

	t.Run("overdue and upcoming within window", func(t *testing.T) {
		tpl := monthlyTemplate(accountID, date(2024, 4, 20))
		tpl.Frequency = entity.Frequency{Type: entity.FrequencyWeeks, Interval: 4}

		got := GeneratePending(tpl, accountID, nil, today, horizon)
		// Due dates walk 2024-04-20, 05-18, 06-15, 07-13; the last is past
		// the window.
		if len(got) != 3 {
			t.Fatalf("got %d occurrences, want 3", len(got))
		}
		for i, occ := range got {
			if occ.OccurrenceOffset != i {
				t.Errorf("occurrence %d has offset %d", i, occ.OccurrenceOffset)
			}
			if occ.IsUpcoming {
				t.Errorf("occurrence due %s marked upcoming", occ.DueDate)
			}
		}
	})

	t.Run("upcoming flag set inside window", func(t *testing.T) {
		tpl := monthlyTemplate(accountID, today.AddDays(2))
		got := GeneratePending(tpl, accountID, nil, today, horizon)
		if len(got) != 1 {
			t.Fatalf("got %d occurrences, want 1", len(got))
		}
		if !got[0].IsUpcoming {
			t.Error("occurrence due after today not marked upcoming")
		}
	})

	t.Run("nothing past the window", func(t *testing.T) {
		tpl := monthlyTemplate(accountID, today.AddDays(4))
		if got := GeneratePending(tpl, accountID, nil, today, horizon); len(got) != 0 {
			t.Fatalf("got %d occurrences, want 0", len(got))
		}
	})

	t.Run("inactive template is silent", func(t *testing.T) {
		tpl := monthlyTemplate(accountID, today)
		tpl.Active = false
		if got := GeneratePending(tpl, accountID, nil, today, horizon); got != nil {
			t.Fatalf("inactive template produced %d occurrences", len(got))
		}
	})

	t.Run("other accounts see nothing", func(t *testing.T) {
		tpl := monthlyTemplate(accountID, today)
		if got := GeneratePending(tpl, uuid.New(), nil, today, horizon); got != nil {
			t.Fatalf("unrelated account saw %d occurrences", len(got))
		}
	})

	t.Run("after occurrences limit caps emission", func(t *testing.T) {
		tpl := monthlyTemplate(accountID, date(2024, 1, 1))
		tpl.Frequency = entity.Frequency{Type: entity.FrequencyDays, Interval: 30}
		tpl.EndCondition = entity.EndCondition{Type: entity.EndAfterOccurrences, Count: 4}
		tpl.OccurrencesCompleted = 2

		got := GeneratePending(tpl, accountID, nil, today, horizon)
		if len(got) != 2 {
			t.Fatalf("got %d occurrences, want the 2 remaining", len(got))
		}
	})

	t.Run("on date end stops past occurrences too", func(t *testing.T) {
		tpl := monthlyTemplate(accountID, date(2024, 6, 1))
		tpl.Frequency = entity.Frequency{Type: entity.FrequencyDays, Interval: 5}
		tpl.EndCondition = entity.EndCondition{Type: entity.EndOnDate, Date: date(2024, 6, 11)}

		got := GeneratePending(tpl, accountID, nil, date(2024, 6, 10), date(2024, 6, 13))
		// 06-01, 06-06, 06-11 are in range; 06-16 is past the end date.
		if len(got) != 3 {
			t.Fatalf("got %d occurrences, want 3", len(got))
		}
	})

	t.Run("generation is capped", func(t *testing.T) {
		tpl := monthlyTemplate(accountID, date(2024, 1, 1))
		tpl.Frequency = entity.Frequency{Type: entity.FrequencyDays, Interval: 1}

		got := GeneratePending(tpl, accountID, nil, date(2029, 1, 1), date(2029, 1, 4))
		if len(got) != maxOccurrences {
			t.Fatalf("got %d occurrences, want cap of %d", len(got), maxOccurrences)
		}
	})
}

func TestGeneratePendingTransferSides(t *testing.T) {
	fromID, toID := uuid.New(), uuid.New()
	names := map[uuid.UUID]string{fromID: "Current", toID: "Savings"}
	today := date(2024, 6, 15)
	horizon := today.AddDays(3)

	tpl := &entity.RecurringTemplate{
		ID:            uuid.New(),
		Type:          entity.RecurringTypeTransfer,
		FromAccountID: &fromID,
		ToAccountID:   &toID,
		Amount:        dec("-200"),
		Frequency:     entity.Frequency{Type: entity.FrequencyMonths, Interval: 1},
		NextDueDate:   today,
		EndCondition:  entity.EndCondition{Type: entity.EndNever},
		Active:        true,
	}

	t.Run("source side", func(t *testing.T) {
		got := GeneratePending(tpl, fromID, names, today, horizon)
		if len(got) != 1 {
			t.Fatalf("got %d occurrences, want 1", len(got))
		}
		if !got[0].Amount.Equal(dec("-200")) {
			t.Errorf("amount = %s, want -200", got[0].Amount)
		}
		if got[0].Payee != "Transfer to Savings" {
			t.Errorf("payee = %q", got[0].Payee)
		}
		if got[0].Category != entity.CategoryTransfer {
			t.Errorf("category = %q", got[0].Category)
		}
		if !got[0].IsTransfer {
			t.Error("occurrence not flagged as transfer")
		}
	})

	t.Run("target side", func(t *testing.T) {
		got := GeneratePending(tpl, toID, names, today, horizon)
		if len(got) != 1 {
			t.Fatalf("got %d occurrences, want 1", len(got))
		}
		if !got[0].Amount.Equal(dec("200")) {
			t.Errorf("amount = %s, want 200", got[0].Amount)
		}
		if got[0].Payee != "Transfer from Current" {
			t.Errorf("payee = %q", got[0].Payee)
		}
	})

	t.Run("unknown counterparty name", func(t *testing.T) {
		got := GeneratePending(tpl, fromID, nil, today, horizon)
		if got[0].Payee != "Transfer to Unknown" {
			t.Errorf("payee = %q", got[0].Payee)
		}
	})
}

func TestGenerateForecast(t *testing.T) {
	accountID := uuid.New()
	today := date(2024, 6, 15)

	t.Run("emits from today through horizon", func(t *testing.T) {
		tpl := monthlyTemplate(accountID, date(2024, 6, 20))
		got := GenerateForecast(tpl, today, date(2024, 9, 1))
		if len(got) != 3 {
			t.Fatalf("got %d occurrences, want 3", len(got))
		}
		want := []entity.Date{date(2024, 6, 20), date(2024, 7, 20), date(2024, 8, 20)}
		for i, occ := range got {
			if !occ.Date.Equal(want[i]) {
				t.Errorf("occurrence %d on %s, want %s", i, occ.Date, want[i])
			}
			if occ.AccountID != accountID {
				t.Errorf("occurrence %d bound to account %s", i, occ.AccountID)
			}
		}
	})

	t.Run("overdue occurrences advance without emitting but still count", func(t *testing.T) {
		tpl := monthlyTemplate(accountID, date(2024, 4, 15))
		tpl.EndCondition = entity.EndCondition{Type: entity.EndAfterOccurrences, Count: 3}

		got := GenerateForecast(tpl, today, date(2025, 6, 15))
		// Occurrences 2024-04-15 and 05-15 burn two of the three slots
		// silently; only 06-15 is emitted.
		if len(got) != 1 {
			t.Fatalf("got %d occurrences, want 1", len(got))
		}
		if !got[0].Date.Equal(date(2024, 6, 15)) {
			t.Errorf("occurrence on %s, want 2024-06-15", got[0].Date)
		}
	})

	t.Run("transfer emits both sides", func(t *testing.T) {
		fromID, toID := uuid.New(), uuid.New()
		tpl := &entity.RecurringTemplate{
			ID:            uuid.New(),
			Type:          entity.RecurringTypeTransfer,
			FromAccountID: &fromID,
			ToAccountID:   &toID,
			Amount:        dec("150"),
			Frequency:     entity.Frequency{Type: entity.FrequencyMonths, Interval: 1},
			NextDueDate:   today,
			EndCondition:  entity.EndCondition{Type: entity.EndNever},
			Active:        true,
		}

		got := GenerateForecast(tpl, today, today.AddDays(1))
		if len(got) != 2 {
			t.Fatalf("got %d occurrences, want 2", len(got))
		}
		if got[0].AccountID != fromID || !got[0].Amount.Equal(dec("-150")) {
			t.Errorf("source side = account %s amount %s", got[0].AccountID, got[0].Amount)
		}
		if got[1].AccountID != toID || !got[1].Amount.Equal(dec("150")) {
			t.Errorf("target side = account %s amount %s", got[1].AccountID, got[1].Amount)
		}
		if got[0].Category != entity.CategoryTransfer || got[1].Category != entity.CategoryTransfer {
			t.Error("forecast transfer sides not categorized as Transfer")
		}
	})
}
