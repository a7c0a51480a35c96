// Package settings implements the settings singleton: display name and
// currency symbol.
package settings

import (
	"context"
	"fmt"

	"github.com/brisk-budget/backend/internal/application/adapter"
	"github.com/brisk-budget/backend/internal/domain/entity"
)

// GetSettingsOutput represents the output of the settings read.
type GetSettingsOutput struct {
	Settings *entity.Settings
}

// GetSettingsUseCase handles reading settings.
type GetSettingsUseCase struct {
	store adapter.RecordStore
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(store adapter.RecordStore) *GetSettingsUseCase {
	return &GetSettingsUseCase{store: store}
}

// Execute returns the stored settings, falling back to defaults for unset
// fields.
func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*GetSettingsOutput, error) {
	stored, err := uc.store.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if stored == nil {
		stored = entity.DefaultSettings()
	}
	if stored.CurrencySymbol == "" {
		stored.CurrencySymbol = entity.DefaultCurrencySymbol
	}
	return &GetSettingsOutput{Settings: stored}, nil
}

// UpdateSettingsInput represents the input for settings updates. Nil pointer
// fields are left unchanged.
type UpdateSettingsInput struct {
	Name           *string
	CurrencySymbol *string
}

// UpdateSettingsOutput represents the output of settings updates.
type UpdateSettingsOutput struct {
	Settings *entity.Settings
}

// UpdateSettingsUseCase handles settings updates with merge semantics.
type UpdateSettingsUseCase struct {
	store adapter.RecordStore
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(store adapter.RecordStore) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{store: store}
}

// Execute merges the given fields over the stored settings.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	stored, err := uc.store.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if stored == nil {
		stored = entity.DefaultSettings()
	}

	if input.Name != nil {
		stored.Name = *input.Name
	}
	if input.CurrencySymbol != nil && *input.CurrencySymbol != "" {
		stored.CurrencySymbol = *input.CurrencySymbol
	}

	if err := uc.store.PutSettings(ctx, stored); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return &UpdateSettingsOutput{Settings: stored}, nil
}
