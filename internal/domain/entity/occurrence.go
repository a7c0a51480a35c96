// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PendingOccurrence is a near-term occurrence of a recurring template shown
// to the user for approval or skipping. It is transaction-shaped but never
// persisted; approving it is what writes a real transaction.
type PendingOccurrence struct {
	RecurringID      uuid.UUID
	OccurrenceOffset int // 0 = the template's current NextDueDate
	DueDate          Date
	Payee            string
	Amount           decimal.Decimal
	Category         string
	Description      string
	IsTransfer       bool
	IsUpcoming       bool // due after today, inside the near-future window
	Frequency        Frequency
}

// ForecastOccurrence is a synthetic transaction used only to project future
// balances and cash flow. Never persisted. A transfer template produces two
// of these per due date, one per account.
type ForecastOccurrence struct {
	AccountID uuid.UUID
	Date      Date
	Amount    decimal.Decimal
	Category  string
}
