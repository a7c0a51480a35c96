// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/domain/entity"
)

// CreateTransferRequest represents the request body for transfer creation.
type CreateTransferRequest struct {
	FromAccountID string          `json:"fromAccountId" binding:"required"`
	ToAccountID   string          `json:"toAccountId" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Date          *entity.Date    `json:"date,omitempty"`
	Description   string          `json:"description,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// TransferResponse represents both halves of a transfer pair.
type TransferResponse struct {
	Outgoing TransactionResponse `json:"outgoing"`
	Incoming TransactionResponse `json:"incoming"`
}

// ToTransferResponse converts a transfer pair to a TransferResponse DTO.
func ToTransferResponse(outgoing, incoming *entity.Transaction) TransferResponse {
	return TransferResponse{
		Outgoing: ToTransactionResponse(outgoing),
		Incoming: ToTransactionResponse(incoming),
	}
}
