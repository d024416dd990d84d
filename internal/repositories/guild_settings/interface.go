package guild_settings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pearl/internal/repositories/guild_settings Repository

import "context"

// Repository stores per-guild settings
type Repository interface {
	// GetSettings returns the guild's settings or ErrSettingsNotFound
	GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error)

	// SaveSettings inserts or updates the guild's settings
	SaveSettings(ctx context.Context, input *SaveSettingsInput) error

	// DeleteSettings removes the guild's settings, a missing row is not an error
	DeleteSettings(ctx context.Context, input *DeleteSettingsInput) error
}
