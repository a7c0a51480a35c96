package recurring

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
	"github.com/brisk-budget/backend/internal/integration/persistence"
)

func seedTemplate(t *testing.T, tpl *entity.RecurringTemplate) *persistence.Store {
	t.Helper()
	store, err := persistence.New(t.TempDir())
	if err != nil {
		t.Fatalf("persistence.New: %v", err)
	}
	if err := store.PutRecurring(context.Background(), []*entity.RecurringTemplate{tpl}); err != nil {
		t.Fatalf("PutRecurring: %v", err)
	}
	return store
}

func TestSkipRecurringAdvancesWithoutCounting(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	tpl := monthlyTemplate(accountID, date(2024, 1, 31))
	tpl.EndCondition = entity.EndCondition{Type: entity.EndAfterOccurrences, Count: 2}
	store := seedTemplate(t, tpl)

	uc := NewSkipRecurringUseCase(store, false)

	out, err := uc.Execute(ctx, SkipRecurringInput{ID: tpl.ID})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got, want := out.Template.NextDueDate, date(2024, 2, 29); !got.Equal(want) {
		t.Errorf("next due = %s, want %s", got, want)
	}
	if out.Template.OccurrencesCompleted != 0 {
		t.Errorf("occurrencesCompleted = %d, want 0", out.Template.OccurrencesCompleted)
	}

	// A skip yields no payment, so the occurrence limit never depletes:
	// skipping more times than the limit must keep the template live.
	for i := 0; i < 5; i++ {
		if _, err := uc.Execute(ctx, SkipRecurringInput{ID: tpl.ID}); err != nil {
			t.Fatalf("Execute skip %d: %v", i, err)
		}
	}
	templates, err := store.Recurring(ctx)
	if err != nil {
		t.Fatalf("Recurring: %v", err)
	}
	got := templates[0]
	if got.OccurrencesCompleted != 0 {
		t.Errorf("occurrencesCompleted = %d after repeated skips, want 0", got.OccurrencesCompleted)
	}
	if HasEnded(got, date(2024, 12, 1), 0) {
		t.Error("template ended even though no occurrence was ever approved")
	}
	if got, want := got.NextDueDate, date(2024, 7, 29); !got.Equal(want) {
		t.Errorf("next due after six skips = %s, want %s", got, want)
	}
}

func TestSkipRecurringCountsWhenConfigured(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	tpl := monthlyTemplate(accountID, date(2024, 3, 15))
	tpl.EndCondition = entity.EndCondition{Type: entity.EndAfterOccurrences, Count: 2}
	store := seedTemplate(t, tpl)

	uc := NewSkipRecurringUseCase(store, true)

	out, err := uc.Execute(ctx, SkipRecurringInput{ID: tpl.ID})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Template.OccurrencesCompleted != 1 {
		t.Errorf("occurrencesCompleted = %d, want 1", out.Template.OccurrencesCompleted)
	}
	if HasEnded(out.Template, date(2024, 4, 1), 0) {
		t.Error("template ended with one occurrence still remaining")
	}

	if _, err := uc.Execute(ctx, SkipRecurringInput{ID: tpl.ID}); err != nil {
		t.Fatalf("Execute second skip: %v", err)
	}
	templates, err := store.Recurring(ctx)
	if err != nil {
		t.Fatalf("Recurring: %v", err)
	}
	got := templates[0]
	if got.OccurrencesCompleted != 2 {
		t.Errorf("occurrencesCompleted = %d, want 2", got.OccurrencesCompleted)
	}
	if !HasEnded(got, date(2024, 5, 1), 0) {
		t.Error("template not ended once skips exhausted the occurrence limit")
	}
}

func TestSkipRecurringUnknownTemplate(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	store := seedTemplate(t, monthlyTemplate(accountID, date(2024, 3, 15)))

	uc := NewSkipRecurringUseCase(store, false)

	_, err := uc.Execute(ctx, SkipRecurringInput{ID: uuid.New()})
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
	var recErr *domainerror.RecurringError
	if !errors.As(err, &recErr) || recErr.Code != domainerror.ErrCodeRecurringNotFound {
		t.Errorf("error = %v, want code %s", err, domainerror.ErrCodeRecurringNotFound)
	}
}
