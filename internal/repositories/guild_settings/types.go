package guild_settings

import "github.com/KirkDiggler/pearl/internal/models"

type GetSettingsInput struct {
	GuildID string
}

type GetSettingsOutput struct {
	Settings *models.GuildSettings
}

type SaveSettingsInput struct {
	Settings *models.GuildSettings
}

type DeleteSettingsInput struct {
	GuildID string
}
