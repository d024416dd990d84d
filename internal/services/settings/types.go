package settings

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/pearl/internal/common/clock"
	guildSettingsRepo "github.com/KirkDiggler/pearl/internal/repositories/guild_settings"
)

const (
	DefaultPrefix          = "?"
	DefaultPrefixMaxLength = 6
	DefaultCacheTTL        = 10 * time.Minute
	DefaultCacheSize       = 10000
)

// Config holds configuration for the settings service
type Config struct {
	DefaultPrefix   string
	PrefixMaxLength int

	// CacheTTL is how long a looked up prefix is kept in memory
	CacheTTL time.Duration

	Repository guildSettingsRepo.Repository
	Clock      clock.Clock
	Logger     *slog.Logger
}

type GetPrefixInput struct {
	GuildID string
}

type GetPrefixOutput struct {
	Prefix string
}

type SetPrefixInput struct {
	GuildID string
	Prefix  string

	// CanManageGuild is true when the invoker has the Manage Server permission
	CanManageGuild bool
}

type SetPrefixOutput struct {
	Prefix   string
	Previous string
}

type EnsureGuildInput struct {
	GuildID string
}

type RemoveGuildInput struct {
	GuildID string
}
