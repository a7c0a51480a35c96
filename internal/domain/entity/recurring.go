// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringType represents what a recurring template materializes into.
type RecurringType string

const (
	RecurringTypeTransaction RecurringType = "transaction"
	RecurringTypeTransfer    RecurringType = "transfer"
)

// FrequencyType is the calendar unit a recurring template advances by.
type FrequencyType string

const (
	FrequencyDays   FrequencyType = "days"
	FrequencyWeeks  FrequencyType = "weeks"
	FrequencyMonths FrequencyType = "months"
	FrequencyYears  FrequencyType = "years"
)

// Frequency describes how often a recurring template fires.
type Frequency struct {
	Type     FrequencyType
	Interval int
}

// Valid reports whether the frequency has a known type and a positive
// interval. Malformed frequencies are rejected at template creation, never
// tolerated at advance time.
func (f Frequency) Valid() bool {
	if f.Interval < 1 {
		return false
	}
	switch f.Type {
	case FrequencyDays, FrequencyWeeks, FrequencyMonths, FrequencyYears:
		return true
	}
	return false
}

// EndConditionType describes how a recurring template terminates.
type EndConditionType string

const (
	EndNever            EndConditionType = "never"
	EndAfterOccurrences EndConditionType = "after_occurrences"
	EndOnDate           EndConditionType = "on_date"
)

// EndCondition is a recurring template's termination rule. Count is used for
// after_occurrences, Date for on_date.
type EndCondition struct {
	Type  EndConditionType
	Count int
	Date  Date
}

// Valid reports whether the end condition is well-formed.
func (e EndCondition) Valid() bool {
	switch e.Type {
	case EndNever:
		return true
	case EndAfterOccurrences:
		return e.Count > 0
	case EndOnDate:
		return !e.Date.IsZero()
	}
	return false
}

// RecurringTemplate describes a transaction or transfer that repeats on a
// schedule. NextDueDate always holds the earliest not-yet-materialized
// occurrence; OccurrencesCompleted increments only when an occurrence is
// approved. Active=false is a soft delete.
type RecurringTemplate struct {
	ID                   uuid.UUID
	Type                 RecurringType
	AccountID            *uuid.UUID // transaction templates
	FromAccountID        *uuid.UUID // transfer templates
	ToAccountID          *uuid.UUID
	Payee                string
	Amount               decimal.Decimal
	Category             string
	Description          string
	Notes                string
	Frequency            Frequency
	StartDate            Date
	NextDueDate          Date
	EndCondition         EndCondition
	OccurrencesCompleted int
	Active               bool
	CreatedAt            time.Time
}

// AppliesTo reports whether the template produces occurrences in the given
// account's ledger.
func (r *RecurringTemplate) AppliesTo(accountID uuid.UUID) bool {
	switch r.Type {
	case RecurringTypeTransaction:
		return r.AccountID != nil && *r.AccountID == accountID
	case RecurringTypeTransfer:
		return (r.FromAccountID != nil && *r.FromAccountID == accountID) ||
			(r.ToAccountID != nil && *r.ToAccountID == accountID)
	}
	return false
}
