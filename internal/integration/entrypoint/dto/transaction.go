// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Payee       string          `json:"payee" binding:"required,min=1,max=100"`
	Amount      decimal.Decimal `json:"amount"`
	Date        entity.Date     `json:"date"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Payee       *string          `json:"payee,omitempty" binding:"omitempty,min=1,max=100"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *entity.Date     `json:"date,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

// ImportTransactionRow is one row of a bulk import payload. Amount uses
// json.Number so "present but zero" and "absent" stay distinguishable.
type ImportTransactionRow struct {
	Payee       string      `json:"payee,omitempty"`
	Amount      json.Number `json:"amount,omitempty"`
	Date        string      `json:"date,omitempty"`
	Category    string      `json:"category,omitempty"`
	Description string      `json:"description,omitempty"`
	Notes       string      `json:"notes,omitempty"`
}

// ImportTransactionsRequest represents the request body for bulk import.
type ImportTransactionsRequest struct {
	Transactions []ImportTransactionRow `json:"transactions" binding:"required"`
}

// ImportRowErrorResponse describes one rejected import row.
type ImportRowErrorResponse struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// ImportTransactionsResponse represents the response for bulk import.
type ImportTransactionsResponse struct {
	Imported int                      `json:"imported"`
	Errors   []ImportRowErrorResponse `json:"errors"`
}

// ConvertToTransferRequest represents the request body for converting a
// transaction into one half of a transfer pair.
type ConvertToTransferRequest struct {
	TargetAccountID string `json:"targetAccountId" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                string          `json:"id"`
	Payee             string          `json:"payee"`
	Amount            decimal.Decimal `json:"amount"`
	Date              entity.Date     `json:"date"`
	Category          string          `json:"category"`
	Description       string          `json:"description,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	TransferID        *string         `json:"transferId,omitempty"`
	TransferAccountID *string         `json:"transferAccountId,omitempty"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(tx *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          tx.ID.String(),
		Payee:       tx.Payee,
		Amount:      tx.Amount,
		Date:        tx.Date,
		Category:    tx.Category,
		Description: tx.Description,
		Notes:       tx.Notes,
		CreatedAt:   tx.CreatedAt,
	}
	if tx.TransferID != nil {
		id := tx.TransferID.String()
		response.TransferID = &id
	}
	if tx.TransferAccountID != nil {
		id := tx.TransferAccountID.String()
		response.TransferAccountID = &id
	}
	return response
}

// ToTransactionListResponse converts a slice of Transaction entities to a list response.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, ToTransactionResponse(tx))
	}
	return TransactionListResponse{Transactions: responses}
}
