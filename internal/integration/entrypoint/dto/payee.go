// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/brisk-budget/backend/internal/domain/entity"

// CreatePayeeRequest represents the request body for payee creation.
type CreatePayeeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdatePayeeRequest represents the request body for renaming a payee.
type UpdatePayeeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// DeletePayeeRequest carries the optional replacement name for transactions
// that referenced the deleted payee.
type DeletePayeeRequest struct {
	ReplacementName string `json:"replacementName,omitempty"`
}

// PayeeResponse represents a single payee in API responses.
type PayeeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PayeeListResponse represents the response for listing payees.
type PayeeListResponse struct {
	Payees []PayeeResponse `json:"payees"`
}

// LastCategoryResponse represents the most recent category used with a
// payee. Category is empty when the payee has no usable history.
type LastCategoryResponse struct {
	Category string `json:"category"`
}

// ToPayeeResponse converts a domain Payee entity to a PayeeResponse DTO.
func ToPayeeResponse(payee *entity.Payee) PayeeResponse {
	return PayeeResponse{
		ID:   payee.ID.String(),
		Name: payee.Name,
	}
}

// ToPayeeListResponse converts a slice of Payee entities to a list response.
func ToPayeeListResponse(payees []*entity.Payee) PayeeListResponse {
	responses := make([]PayeeResponse, 0, len(payees))
	for _, payee := range payees {
		responses = append(responses, ToPayeeResponse(payee))
	}
	return PayeeListResponse{Payees: responses}
}
