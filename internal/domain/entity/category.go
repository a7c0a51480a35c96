// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// Names of the system categories. Transactions reference categories and
// subcategories by name; these two exist in every installation and can
// never be deleted.
const (
	CategoryTransfer      = "Transfer"
	CategoryUncategorized = "Uncategorized"
)

// CategoryIncome is the parent category whose positive amounts count as
// income in cash-flow aggregation.
const CategoryIncome = "Income"

// OtherIncomeBucket is the fallback bucket for income that does not match a
// known Income subcategory.
const OtherIncomeBucket = "Other Income"

// DefaultCategoryEmoji is used when a category is created without an emoji.
const DefaultCategoryEmoji = "📝"

// Category represents a transaction category. Category and subcategory names
// form a single flat namespace used as the join key from transactions, so
// names must be unique across the whole tree.
type Category struct {
	ID            uuid.UUID
	Name          string
	Emoji         string
	IsDefault     bool
	IsSystem      bool
	SortOrder     int
	Subcategories []Subcategory
}

// Subcategory represents a nested category under a parent Category.
type Subcategory struct {
	ID        uuid.UUID
	Name      string
	SortOrder int
}

// NewCategory creates a new user-defined Category entity.
func NewCategory(name, emoji string, sortOrder int, subcategories []Subcategory) *Category {
	if emoji == "" {
		emoji = DefaultCategoryEmoji
	}
	if subcategories == nil {
		subcategories = []Subcategory{}
	}
	return &Category{
		ID:            uuid.New(),
		Name:          name,
		Emoji:         emoji,
		SortOrder:     sortOrder,
		Subcategories: subcategories,
	}
}

// NewSubcategory creates a new Subcategory entity.
func NewSubcategory(name string, sortOrder int) Subcategory {
	return Subcategory{
		ID:        uuid.New(),
		Name:      name,
		SortOrder: sortOrder,
	}
}

// AllNames returns the category's own name plus every subcategory name.
func (c *Category) AllNames() []string {
	names := make([]string, 0, len(c.Subcategories)+1)
	names = append(names, c.Name)
	for _, sub := range c.Subcategories {
		names = append(names, sub.Name)
	}
	return names
}
