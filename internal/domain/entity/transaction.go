// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a single entry in an account's ledger. The owning
// account is implicit in where the transaction is stored; Category and Payee
// reference names, not ids.
//
// When TransferID is set the transaction is one half of a transfer pair:
// exactly one transaction with ID equal to TransferID exists in account
// TransferAccountID, it points back here, and its amount is the additive
// inverse of this one.
type Transaction struct {
	ID                uuid.UUID
	Payee             string
	Amount            decimal.Decimal // Negative for money out, positive for money in
	Date              Date
	Category          string
	Description       string
	Notes             string
	CreatedAt         time.Time
	TransferID        *uuid.UUID
	TransferAccountID *uuid.UUID
}

// NewTransaction creates a new plain (non-transfer) Transaction entity.
func NewTransaction(payee string, amount decimal.Decimal, date Date, category, description, notes string) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		Payee:       payee,
		Amount:      amount,
		Date:        date,
		Category:    category,
		Description: description,
		Notes:       notes,
		CreatedAt:   time.Now().UTC(),
	}
}

// IsTransfer reports whether the transaction is half of a transfer pair.
func (t *Transaction) IsTransfer() bool {
	return t.TransferID != nil && t.TransferAccountID != nil
}
