// Package recurring contains the recurring payment engine: the frequency
// arithmetic, the pending-approval view and the forecast generator, plus the
// use cases that persist approvals and skips. Every path that moves a due
// date goes through Advance so projection and persistence can never drift
// apart.
package recurring

import (
	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/domain/entity"
)

// maxOccurrences caps occurrence generation per template, guarding against
// misconfigured frequencies producing unbounded loops.
const maxOccurrences = 100

// DefaultPendingWindowDays is how far past today the pending-approval view
// looks for upcoming occurrences.
const DefaultPendingWindowDays = 3

// Advance computes the due date one period after date. Days advance by
// calendar days, weeks by interval*7 days, months and years by calendar
// arithmetic with the day-of-month clamped to the target month's last day
// (2024-01-31 plus one month is 2024-02-29).
func Advance(date entity.Date, freq entity.Frequency) entity.Date {
	switch freq.Type {
	case entity.FrequencyDays:
		return date.AddDays(freq.Interval)
	case entity.FrequencyWeeks:
		return date.AddDays(freq.Interval * 7)
	case entity.FrequencyMonths:
		return date.AddMonths(freq.Interval)
	case entity.FrequencyYears:
		return date.AddYears(freq.Interval)
	}
	// Unknown types are rejected at template creation; advancing is total
	// for anything that made it into the store.
	return date
}

// HasEnded reports whether the template has terminated, counting
// extraOccurrences not-yet-approved occurrences against an
// after_occurrences limit. An on_date condition compares against today, not
// the template's due date; generators additionally stop materializing once
// a due date passes the end date.
func HasEnded(tpl *entity.RecurringTemplate, today entity.Date, extraOccurrences int) bool {
	switch tpl.EndCondition.Type {
	case entity.EndNever:
		return false
	case entity.EndAfterOccurrences:
		return tpl.OccurrencesCompleted+extraOccurrences >= tpl.EndCondition.Count
	case entity.EndOnDate:
		return today.After(tpl.EndCondition.Date)
	}
	return false
}

// pastEndDate reports whether due falls beyond an on_date end condition.
func pastEndDate(tpl *entity.RecurringTemplate, due entity.Date) bool {
	return tpl.EndCondition.Type == entity.EndOnDate && due.After(tpl.EndCondition.Date)
}

// GeneratePending returns the template's occurrences visible in the given
// account's pending-approval view: everything overdue or due today plus
// occurrences falling inside the upcoming window ending at horizon.
// Occurrences due after today carry IsUpcoming. For transfer templates the
// amount is signed for the account being viewed and the payee label is
// synthesized from the counterparty account name.
func GeneratePending(tpl *entity.RecurringTemplate, accountID uuid.UUID, accountNames map[uuid.UUID]string, today, horizon entity.Date) []*entity.PendingOccurrence {
	if !tpl.Active || !tpl.AppliesTo(accountID) {
		return nil
	}

	var pending []*entity.PendingOccurrence
	due := tpl.NextDueDate
	for offset := 0; offset < maxOccurrences; offset++ {
		if due.After(horizon) || HasEnded(tpl, today, offset) || pastEndDate(tpl, due) {
			break
		}

		occ := &entity.PendingOccurrence{
			RecurringID:      tpl.ID,
			OccurrenceOffset: offset,
			DueDate:          due,
			Payee:            tpl.Payee,
			Amount:           tpl.Amount,
			Category:         tpl.Category,
			Description:      tpl.Description,
			IsUpcoming:       due.After(today),
			Frequency:        tpl.Frequency,
		}
		if tpl.Type == entity.RecurringTypeTransfer {
			occ.IsTransfer = true
			occ.Category = entity.CategoryTransfer
			if tpl.FromAccountID != nil && *tpl.FromAccountID == accountID {
				occ.Amount = tpl.Amount.Abs().Neg()
				occ.Payee = "Transfer to " + accountName(accountNames, tpl.ToAccountID)
			} else {
				occ.Amount = tpl.Amount.Abs()
				occ.Payee = "Transfer from " + accountName(accountNames, tpl.FromAccountID)
			}
		}
		pending = append(pending, occ)

		due = Advance(due, tpl.Frequency)
	}
	return pending
}

// GenerateForecast returns the template's synthetic occurrences from today
// through horizon, for projecting balances and cash flow. Occurrences before
// today are advanced past without being emitted, but still count against an
// after_occurrences limit. A transfer template emits two occurrences per due
// date, one per side.
func GenerateForecast(tpl *entity.RecurringTemplate, today, horizon entity.Date) []*entity.ForecastOccurrence {
	if !tpl.Active {
		return nil
	}

	var forecast []*entity.ForecastOccurrence
	due := tpl.NextDueDate
	for offset := 0; offset < maxOccurrences; offset++ {
		if due.After(horizon) || HasEnded(tpl, today, offset) || pastEndDate(tpl, due) {
			break
		}

		if !due.Before(today) {
			if tpl.Type == entity.RecurringTypeTransfer {
				if tpl.FromAccountID != nil {
					forecast = append(forecast, &entity.ForecastOccurrence{
						AccountID: *tpl.FromAccountID,
						Date:      due,
						Amount:    tpl.Amount.Abs().Neg(),
						Category:  entity.CategoryTransfer,
					})
				}
				if tpl.ToAccountID != nil {
					forecast = append(forecast, &entity.ForecastOccurrence{
						AccountID: *tpl.ToAccountID,
						Date:      due,
						Amount:    tpl.Amount.Abs(),
						Category:  entity.CategoryTransfer,
					})
				}
			} else if tpl.AccountID != nil {
				forecast = append(forecast, &entity.ForecastOccurrence{
					AccountID: *tpl.AccountID,
					Date:      due,
					Amount:    tpl.Amount,
					Category:  tpl.Category,
				})
			}
		}

		due = Advance(due, tpl.Frequency)
	}
	return forecast
}

func accountName(names map[uuid.UUID]string, id *uuid.UUID) string {
	if id != nil {
		if name, ok := names[*id]; ok {
			return name
		}
	}
	return "Unknown"
}
