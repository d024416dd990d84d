package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/pearl/internal/services/settings Service

import "context"

// Service manages per-guild settings
type Service interface {
	// GetPrefix returns the text command prefix of a guild
	GetPrefix(ctx context.Context, input *GetPrefixInput) (*GetPrefixOutput, error)

	// SetPrefix changes the text command prefix of a guild
	SetPrefix(ctx context.Context, input *SetPrefixInput) (*SetPrefixOutput, error)

	// EnsureGuild creates default settings for a guild the bot joined
	EnsureGuild(ctx context.Context, input *EnsureGuildInput) error

	// RemoveGuild drops the settings of a guild the bot left
	RemoveGuild(ctx context.Context, input *RemoveGuildInput) error
}
