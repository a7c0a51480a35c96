// Package entity defines the core business entities for the domain layer.
package entity

// DefaultCurrencySymbol is used until the user picks one.
const DefaultCurrencySymbol = "£"

// Settings is the process-wide singleton of user preferences.
type Settings struct {
	Name           string
	CurrencySymbol string
}

// DefaultSettings returns the settings a fresh installation starts with.
func DefaultSettings() *Settings {
	return &Settings{CurrencySymbol: DefaultCurrencySymbol}
}
