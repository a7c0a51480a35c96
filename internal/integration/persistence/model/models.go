// Package model defines the JSON shapes persisted in the data directory and
// their mapping to domain entities. Monetary fields serialize as bare JSON
// numbers, not strings.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/domain/entity"
)

func init() {
	// Amounts are plain numbers in the data files.
	decimal.MarshalJSONWithoutQuotes = true
}

// Account is the persisted shape of an account.
type Account struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Type            string           `json:"type"`
	StartingBalance decimal.Decimal  `json:"startingBalance"`
	AssetValue      *decimal.Decimal `json:"assetValue,omitempty"`
	Icon            string           `json:"icon,omitempty"`
	Active          bool             `json:"active"`
	SortOrder       int              `json:"sortOrder"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// FromAccount maps an entity to its persisted shape.
func FromAccount(account *entity.Account) Account {
	return Account{
		ID:              account.ID,
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

// ToEntity maps the persisted shape back to an entity.
func (m Account) ToEntity() *entity.Account {
	return &entity.Account{
		ID:              m.ID,
		Name:            m.Name,
		Type:            entity.AccountType(m.Type),
		StartingBalance: m.StartingBalance,
		AssetValue:      m.AssetValue,
		Icon:            m.Icon,
		Active:          m.Active,
		SortOrder:       m.SortOrder,
		CreatedAt:       m.CreatedAt,
	}
}

// Transaction is the persisted shape of a ledger entry.
type Transaction struct {
	ID                uuid.UUID       `json:"id"`
	Payee             string          `json:"payee"`
	Amount            decimal.Decimal `json:"amount"`
	Date              entity.Date     `json:"date"`
	Category          string          `json:"category"`
	Description       string          `json:"description,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	TransferID        *uuid.UUID      `json:"transferId,omitempty"`
	TransferAccountID *uuid.UUID      `json:"transferAccountId,omitempty"`
}

// FromTransaction maps an entity to its persisted shape.
func FromTransaction(tx *entity.Transaction) Transaction {
	return Transaction{
		ID:                tx.ID,
		Payee:             tx.Payee,
		Amount:            tx.Amount,
		Date:              tx.Date,
		Category:          tx.Category,
		Description:       tx.Description,
		Notes:             tx.Notes,
		CreatedAt:         tx.CreatedAt,
		TransferID:        tx.TransferID,
		TransferAccountID: tx.TransferAccountID,
	}
}

// ToEntity maps the persisted shape back to an entity.
func (m Transaction) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:                m.ID,
		Payee:             m.Payee,
		Amount:            m.Amount,
		Date:              m.Date,
		Category:          m.Category,
		Description:       m.Description,
		Notes:             m.Notes,
		CreatedAt:         m.CreatedAt,
		TransferID:        m.TransferID,
		TransferAccountID: m.TransferAccountID,
	}
}

// Subcategory is the persisted shape of a subcategory.
type Subcategory struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sortOrder"`
}

// Category is the persisted shape of a category.
type Category struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Emoji         string        `json:"emoji,omitempty"`
	IsDefault     bool          `json:"isDefault,omitempty"`
	IsSystem      bool          `json:"isSystem,omitempty"`
	SortOrder     int           `json:"sortOrder"`
	Subcategories []Subcategory `json:"subcategories"`
}

// FromCategory maps an entity to its persisted shape.
func FromCategory(category *entity.Category) Category {
	subs := make([]Subcategory, 0, len(category.Subcategories))
	for _, sub := range category.Subcategories {
		subs = append(subs, Subcategory{ID: sub.ID, Name: sub.Name, SortOrder: sub.SortOrder})
	}
	return Category{
		ID:            category.ID,
		Name:          category.Name,
		Emoji:         category.Emoji,
		IsDefault:     category.IsDefault,
		IsSystem:      category.IsSystem,
		SortOrder:     category.SortOrder,
		Subcategories: subs,
	}
}

// ToEntity maps the persisted shape back to an entity.
func (m Category) ToEntity() *entity.Category {
	subs := make([]entity.Subcategory, 0, len(m.Subcategories))
	for _, sub := range m.Subcategories {
		subs = append(subs, entity.Subcategory{ID: sub.ID, Name: sub.Name, SortOrder: sub.SortOrder})
	}
	return &entity.Category{
		ID:            m.ID,
		Name:          m.Name,
		Emoji:         m.Emoji,
		IsDefault:     m.IsDefault,
		IsSystem:      m.IsSystem,
		SortOrder:     m.SortOrder,
		Subcategories: subs,
	}
}

// Payee is the persisted shape of a payee.
type Payee struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// FromPayee maps an entity to its persisted shape.
func FromPayee(payee *entity.Payee) Payee {
	return Payee{ID: payee.ID, Name: payee.Name}
}

// ToEntity maps the persisted shape back to an entity.
func (m Payee) ToEntity() *entity.Payee {
	return &entity.Payee{ID: m.ID, Name: m.Name}
}

// Frequency is the persisted shape of a recurring frequency.
type Frequency struct {
	Type     string `json:"type"`
	Interval int    `json:"interval"`
}

// EndCondition is the persisted shape of an end condition. Value carries the
// occurrence count for after_occurrences; Date is present only for on_date.
type EndCondition struct {
	Type  string       `json:"type"`
	Value int          `json:"value,omitempty"`
	Date  *entity.Date `json:"date,omitempty"`
}

// RecurringTemplate is the persisted shape of a recurring template.
type RecurringTemplate struct {
	ID                   uuid.UUID       `json:"id"`
	Type                 string          `json:"type"`
	AccountID            *uuid.UUID      `json:"accountId,omitempty"`
	FromAccountID        *uuid.UUID      `json:"fromAccountId,omitempty"`
	ToAccountID          *uuid.UUID      `json:"toAccountId,omitempty"`
	Payee                string          `json:"payee"`
	Amount               decimal.Decimal `json:"amount"`
	Category             string          `json:"category"`
	Description          string          `json:"description,omitempty"`
	Notes                string          `json:"notes,omitempty"`
	Frequency            Frequency       `json:"frequency"`
	StartDate            entity.Date     `json:"startDate"`
	NextDueDate          entity.Date     `json:"nextDueDate"`
	EndCondition         EndCondition    `json:"endCondition"`
	OccurrencesCompleted int             `json:"occurrencesCompleted"`
	Active               bool            `json:"active"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// FromRecurring maps an entity to its persisted shape.
func FromRecurring(tpl *entity.RecurringTemplate) RecurringTemplate {
	return RecurringTemplate{
		ID:            tpl.ID,
		Type:          string(tpl.Type),
		AccountID:     tpl.AccountID,
		FromAccountID: tpl.FromAccountID,
		ToAccountID:   tpl.ToAccountID,
		Payee:         tpl.Payee,
		Amount:        tpl.Amount,
		Category:      tpl.Category,
		Description:   tpl.Description,
		Notes:         tpl.Notes,
		Frequency: Frequency{
			Type:     string(tpl.Frequency.Type),
			Interval: tpl.Frequency.Interval,
		},
		StartDate:   tpl.StartDate,
		NextDueDate: tpl.NextDueDate,
		EndCondition: EndCondition{
			Type:  string(tpl.EndCondition.Type),
			Value: tpl.EndCondition.Count,
			Date:  endDate(tpl.EndCondition),
		},
		OccurrencesCompleted: tpl.OccurrencesCompleted,
		Active:               tpl.Active,
		CreatedAt:            tpl.CreatedAt,
	}
}

// endDate extracts the persisted end date, present only for on_date
// conditions so never/after_occurrences templates don't serialize a zero
// date.
func endDate(cond entity.EndCondition) *entity.Date {
	if cond.Type != entity.EndOnDate || cond.Date.IsZero() {
		return nil
	}
	date := cond.Date
	return &date
}

func derefDate(date *entity.Date) entity.Date {
	if date == nil {
		return entity.Date{}
	}
	return *date
}

// ToEntity maps the persisted shape back to an entity.
func (m RecurringTemplate) ToEntity() *entity.RecurringTemplate {
	return &entity.RecurringTemplate{
		ID:            m.ID,
		Type:          entity.RecurringType(m.Type),
		AccountID:     m.AccountID,
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		Payee:         m.Payee,
		Amount:        m.Amount,
		Category:      m.Category,
		Description:   m.Description,
		Notes:         m.Notes,
		Frequency: entity.Frequency{
			Type:     entity.FrequencyType(m.Frequency.Type),
			Interval: m.Frequency.Interval,
		},
		StartDate:   m.StartDate,
		NextDueDate: m.NextDueDate,
		EndCondition: entity.EndCondition{
			Type:  entity.EndConditionType(m.EndCondition.Type),
			Count: m.EndCondition.Value,
			Date:  derefDate(m.EndCondition.Date),
		},
		OccurrencesCompleted: m.OccurrencesCompleted,
		Active:               m.Active,
		CreatedAt:            m.CreatedAt,
	}
}

// Settings is the persisted shape of the settings singleton.
type Settings struct {
	Name           string `json:"name,omitempty"`
	CurrencySymbol string `json:"currencySymbol"`
}

// FromSettings maps an entity to its persisted shape.
func FromSettings(settings *entity.Settings) Settings {
	return Settings{Name: settings.Name, CurrencySymbol: settings.CurrencySymbol}
}

// ToEntity maps the persisted shape back to an entity.
func (m Settings) ToEntity() *entity.Settings {
	return &entity.Settings{Name: m.Name, CurrencySymbol: m.CurrencySymbol}
}
