// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of account.
type AccountType string

const (
	AccountTypeBank       AccountType = "bank"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeAsset      AccountType = "asset"
	AccountTypeCash       AccountType = "cash"
)

// Account represents a single ledger in the Brisk Budget system. Each account
// owns exactly one transaction list; Active=false is a soft delete that hides
// the account but keeps its history.
type Account struct {
	ID              uuid.UUID
	Name            string
	Type            AccountType
	StartingBalance decimal.Decimal
	AssetValue      *decimal.Decimal // Only meaningful for loan/investment/asset accounts
	Icon            string
	Active          bool
	SortOrder       int
	CreatedAt       time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(name string, accountType AccountType, startingBalance decimal.Decimal, assetValue *decimal.Decimal, icon string, sortOrder int) *Account {
	return &Account{
		ID:              uuid.New(),
		Name:            name,
		Type:            accountType,
		StartingBalance: startingBalance,
		AssetValue:      assetValue,
		Icon:            icon,
		Active:          true,
		SortOrder:       sortOrder,
		CreatedAt:       time.Now().UTC(),
	}
}

// IsDebt reports whether the account's balance is displayed with an
// inverted sign (money owed shown as a positive figure).
func (a *Account) IsDebt() bool {
	return a.Type == AccountTypeCredit || a.Type == AccountTypeLoan
}

// HasAssetValue reports whether the account participates in net worth via
// its asset value rather than its raw balance alone.
func (a *Account) HasAssetValue() bool {
	switch a.Type {
	case AccountTypeLoan, AccountTypeInvestment, AccountTypeAsset:
		return a.AssetValue != nil
	}
	return false
}

// ValidAccountType reports whether t is a known account type.
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeBank, AccountTypeSavings, AccountTypeCredit, AccountTypeLoan,
		AccountTypeInvestment, AccountTypeAsset, AccountTypeCash:
		return true
	}
	return false
}
