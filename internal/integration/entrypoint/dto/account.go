// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name            string           `json:"name" binding:"required,min=1,max=100"`
	Type            string           `json:"type" binding:"required"`
	StartingBalance decimal.Decimal  `json:"startingBalance"`
	AssetValue      *decimal.Decimal `json:"assetValue,omitempty"`
	Icon            string           `json:"icon,omitempty"`
}

// UpdateAccountRequest represents the request body for account update.
// ClearAssetValue distinguishes "remove the asset value" from "leave it
// alone", which a nullable field alone cannot express.
type UpdateAccountRequest struct {
	Name            *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Type            *string          `json:"type,omitempty"`
	StartingBalance *decimal.Decimal `json:"startingBalance,omitempty"`
	AssetValue      *decimal.Decimal `json:"assetValue,omitempty"`
	ClearAssetValue bool             `json:"clearAssetValue,omitempty"`
	Icon            *string          `json:"icon,omitempty"`
}

// ReorderAccountsRequest represents the request body for account reordering.
type ReorderAccountsRequest struct {
	OrderedIDs []string `json:"orderedIds" binding:"required,min=1"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Type            string           `json:"type"`
	StartingBalance decimal.Decimal  `json:"startingBalance"`
	AssetValue      *decimal.Decimal `json:"assetValue,omitempty"`
	Icon            string           `json:"icon,omitempty"`
	Active          bool             `json:"active"`
	SortOrder       int              `json:"sortOrder"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:              account.ID.String(),
		Name:            account.Name,
		Type:            string(account.Type),
		StartingBalance: account.StartingBalance,
		AssetValue:      account.AssetValue,
		Icon:            account.Icon,
		Active:          account.Active,
		SortOrder:       account.SortOrder,
		CreatedAt:       account.CreatedAt,
	}
}

// ToAccountListResponse converts a slice of Account entities to a list response.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, ToAccountResponse(account))
	}
	return AccountListResponse{Accounts: responses}
}
