// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/brisk-budget/backend/internal/domain/entity"

// UpdateSettingsRequest represents the request body for updating settings.
type UpdateSettingsRequest struct {
	Name           *string `json:"name,omitempty"`
	CurrencySymbol *string `json:"currencySymbol,omitempty"`
}

// SettingsResponse represents the user settings in API responses.
type SettingsResponse struct {
	Name           string `json:"name"`
	CurrencySymbol string `json:"currencySymbol"`
}

// ToSettingsResponse converts a domain Settings entity to a SettingsResponse DTO.
func ToSettingsResponse(settings *entity.Settings) SettingsResponse {
	return SettingsResponse{
		Name:           settings.Name,
		CurrencySymbol: settings.CurrencySymbol,
	}
}
