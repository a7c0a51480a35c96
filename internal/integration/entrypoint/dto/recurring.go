// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/domain/entity"
)

// FrequencyDTO mirrors entity.Frequency on the wire.
type FrequencyDTO struct {
	Type     string `json:"type"`
	Interval int    `json:"interval"`
}

// EndConditionDTO mirrors entity.EndCondition on the wire. Value carries the
// occurrence count for after_occurrences; Date is set for on_date.
type EndConditionDTO struct {
	Type  string       `json:"type"`
	Value int          `json:"value,omitempty"`
	Date  *entity.Date `json:"date,omitempty"`
}

// ToEndCondition converts the DTO to its entity form.
func (e EndConditionDTO) ToEndCondition() entity.EndCondition {
	cond := entity.EndCondition{
		Type:  entity.EndConditionType(e.Type),
		Count: e.Value,
	}
	if e.Date != nil {
		cond.Date = *e.Date
	}
	return cond
}

// CreateRecurringRequest represents the request body for creating a
// recurring template. AccountID is used by transaction templates,
// FromAccountID/ToAccountID by transfer templates.
type CreateRecurringRequest struct {
	Type          string           `json:"type,omitempty"`
	AccountID     *string          `json:"accountId,omitempty"`
	FromAccountID *string          `json:"fromAccountId,omitempty"`
	ToAccountID   *string          `json:"toAccountId,omitempty"`
	Payee         string           `json:"payee,omitempty"`
	Amount        decimal.Decimal  `json:"amount"`
	Category      string           `json:"category,omitempty"`
	Description   string           `json:"description,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	Frequency     *FrequencyDTO    `json:"frequency,omitempty"`
	StartDate     *entity.Date     `json:"startDate,omitempty"`
	EndCondition  *EndConditionDTO `json:"endCondition,omitempty"`
}

// UpdateRecurringRequest represents the request body for updating a
// recurring template.
type UpdateRecurringRequest struct {
	Payee        *string          `json:"payee,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
	Frequency    *FrequencyDTO    `json:"frequency,omitempty"`
	NextDueDate  *entity.Date     `json:"nextDueDate,omitempty"`
	EndCondition *EndConditionDTO `json:"endCondition,omitempty"`
}

// ApproveRecurringRequest represents the optional overrides when approving
// a pending occurrence.
type ApproveRecurringRequest struct {
	Date   *entity.Date     `json:"date,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

// RecurringResponse represents a recurring template in API responses.
type RecurringResponse struct {
	ID                   string          `json:"id"`
	Type                 string          `json:"type"`
	AccountID            *string         `json:"accountId,omitempty"`
	FromAccountID        *string         `json:"fromAccountId,omitempty"`
	ToAccountID          *string         `json:"toAccountId,omitempty"`
	Payee                string          `json:"payee"`
	Amount               decimal.Decimal `json:"amount"`
	Category             string          `json:"category"`
	Description          string          `json:"description,omitempty"`
	Notes                string          `json:"notes,omitempty"`
	Frequency            FrequencyDTO    `json:"frequency"`
	StartDate            entity.Date     `json:"startDate"`
	NextDueDate          entity.Date     `json:"nextDueDate"`
	EndCondition         EndConditionDTO `json:"endCondition"`
	OccurrencesCompleted int             `json:"occurrencesCompleted"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// RecurringListResponse represents the response for listing recurring templates.
type RecurringListResponse struct {
	Recurring []RecurringResponse `json:"recurring"`
}

// PendingOccurrenceResponse represents one pending occurrence awaiting
// approval or skip.
type PendingOccurrenceResponse struct {
	RecurringID      string          `json:"recurringId"`
	OccurrenceOffset int             `json:"occurrenceOffset"`
	DueDate          entity.Date     `json:"dueDate"`
	Payee            string          `json:"payee"`
	Amount           decimal.Decimal `json:"amount"`
	Category         string          `json:"category"`
	Description      string          `json:"description,omitempty"`
	IsTransfer       bool            `json:"isTransfer"`
	IsUpcoming       bool            `json:"isUpcoming"`
	Frequency        FrequencyDTO    `json:"frequency"`
}

// PendingListResponse represents the response for listing pending occurrences.
type PendingListResponse struct {
	Pending []PendingOccurrenceResponse `json:"pending"`
}

// ApproveRecurringResponse represents the transactions written by an
// approval plus the advanced template.
type ApproveRecurringResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Recurring    RecurringResponse     `json:"recurring"`
}

// ToRecurringResponse converts a domain RecurringTemplate to a RecurringResponse DTO.
func ToRecurringResponse(tpl *entity.RecurringTemplate) RecurringResponse {
	response := RecurringResponse{
		ID:          tpl.ID.String(),
		Type:        string(tpl.Type),
		Payee:       tpl.Payee,
		Amount:      tpl.Amount,
		Category:    tpl.Category,
		Description: tpl.Description,
		Notes:       tpl.Notes,
		Frequency: FrequencyDTO{
			Type:     string(tpl.Frequency.Type),
			Interval: tpl.Frequency.Interval,
		},
		StartDate:   tpl.StartDate,
		NextDueDate: tpl.NextDueDate,
		EndCondition: EndConditionDTO{
			Type:  string(tpl.EndCondition.Type),
			Value: tpl.EndCondition.Count,
		},
		OccurrencesCompleted: tpl.OccurrencesCompleted,
		CreatedAt:            tpl.CreatedAt,
	}
	if tpl.EndCondition.Type == entity.EndOnDate {
		date := tpl.EndCondition.Date
		response.EndCondition.Date = &date
	}
	if tpl.AccountID != nil {
		id := tpl.AccountID.String()
		response.AccountID = &id
	}
	if tpl.FromAccountID != nil {
		id := tpl.FromAccountID.String()
		response.FromAccountID = &id
	}
	if tpl.ToAccountID != nil {
		id := tpl.ToAccountID.String()
		response.ToAccountID = &id
	}
	return response
}

// ToRecurringListResponse converts a slice of templates to a list response.
func ToRecurringListResponse(templates []*entity.RecurringTemplate) RecurringListResponse {
	responses := make([]RecurringResponse, 0, len(templates))
	for _, tpl := range templates {
		responses = append(responses, ToRecurringResponse(tpl))
	}
	return RecurringListResponse{Recurring: responses}
}

// ToPendingListResponse converts pending occurrences to a list response.
func ToPendingListResponse(occurrences []*entity.PendingOccurrence) PendingListResponse {
	responses := make([]PendingOccurrenceResponse, 0, len(occurrences))
	for _, occ := range occurrences {
		responses = append(responses, PendingOccurrenceResponse{
			RecurringID:      occ.RecurringID.String(),
			OccurrenceOffset: occ.OccurrenceOffset,
			DueDate:          occ.DueDate,
			Payee:            occ.Payee,
			Amount:           occ.Amount,
			Category:         occ.Category,
			Description:      occ.Description,
			IsTransfer:       occ.IsTransfer,
			IsUpcoming:       occ.IsUpcoming,
			Frequency: FrequencyDTO{
				Type:     string(occ.Frequency.Type),
				Interval: occ.Frequency.Interval,
			},
		})
	}
	return PendingListResponse{Pending: responses}
}
