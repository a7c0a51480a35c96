// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// Payee represents a known payee. Transactions reference payees by name, not
// id; the registry exists for autocomplete and last-used-category lookup
// rather than referential integrity.
type Payee struct {
	ID   uuid.UUID
	Name string
}

// NewPayee creates a new Payee entity.
func NewPayee(name string) *Payee {
	return &Payee{
		ID:   uuid.New(),
		Name: name,
	}
}
