package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ReneKroon/ttlcache/v2"

	"github.com/KirkDiggler/pearl/internal/common/clock"
	"github.com/KirkDiggler/pearl/internal/models"
	guildSettingsRepo "github.com/KirkDiggler/pearl/internal/repositories/guild_settings"
)

// service implements the Service interface
type service struct {
	defaultPrefix   string
	prefixMaxLength int

	repo   guildSettingsRepo.Repository
	clock  clock.Clock
	logger *slog.Logger

	// prefixes caches guild id -> prefix, text commands look it up on every message
	prefixes *ttlcache.Cache
}

// New creates a new settings service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	s := &service{
		defaultPrefix:   cfg.DefaultPrefix,
		prefixMaxLength: cfg.PrefixMaxLength,
		repo:            cfg.Repository,
		clock:           cfg.Clock,
		logger:          cfg.Logger,
		prefixes:        ttlcache.NewCache(),
	}

	if s.defaultPrefix == "" {
		s.defaultPrefix = DefaultPrefix
	}
	if s.prefixMaxLength <= 0 {
		s.prefixMaxLength = DefaultPrefixMaxLength
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	s.prefixes.SetTTL(ttl)
	s.prefixes.SetCacheSizeLimit(DefaultCacheSize)

	return s, nil
}

// Close stops the prefix cache janitor
func (s *service) Close() error {
	return s.prefixes.Close()
}

// GetPrefix returns the guild prefix, or the default prefix for unknown guilds
func (s *service) GetPrefix(ctx context.Context, input *GetPrefixInput) (*GetPrefixOutput, error) {
	if v, err := s.prefixes.Get(input.GuildID); err == nil {
		if prefix, ok := v.(string); ok {
			return &GetPrefixOutput{Prefix: prefix}, nil
		}
	}

	prefix := s.defaultPrefix

	out, err := s.repo.GetSettings(ctx, &guildSettingsRepo.GetSettingsInput{
		GuildID: input.GuildID,
	})
	switch {
	case err == nil:
		prefix = out.Settings.Prefix
	case errors.Is(err, guildSettingsRepo.ErrSettingsNotFound):
	default:
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}

	s.prefixes.Set(input.GuildID, prefix)

	return &GetPrefixOutput{
		Prefix: prefix,
	}, nil
}

// SetPrefix validates and stores a new prefix
func (s *service) SetPrefix(ctx context.Context, input *SetPrefixInput) (*SetPrefixOutput, error) {
	if !input.CanManageGuild {
		return nil, ErrMissingPermission
	}

	prefix := strings.TrimSpace(input.Prefix)
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}

	if utf8.RuneCountInString(prefix) > s.prefixMaxLength {
		return nil, ErrPrefixTooLong
	}

	current, err := s.GetPrefix(ctx, &GetPrefixInput{GuildID: input.GuildID})
	if err != nil {
		return nil, err
	}

	if current.Prefix == prefix {
		return nil, ErrSamePrefix
	}

	now := s.clock.Now()
	err = s.repo.SaveSettings(ctx, &guildSettingsRepo.SaveSettingsInput{
		Settings: &models.GuildSettings{
			GuildID:   input.GuildID,
			Prefix:    prefix,
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save guild settings: %w", err)
	}

	s.prefixes.Set(input.GuildID, prefix)

	s.logger.InfoContext(ctx, "prefix changed",
		"guild_id", input.GuildID,
		"prefix", prefix,
		"previous", current.Prefix,
	)

	return &SetPrefixOutput{
		Prefix:   prefix,
		Previous: current.Prefix,
	}, nil
}

// EnsureGuild creates the default settings row when it does not exist yet
func (s *service) EnsureGuild(ctx context.Context, input *EnsureGuildInput) error {
	_, err := s.repo.GetSettings(ctx, &guildSettingsRepo.GetSettingsInput{
		GuildID: input.GuildID,
	})
	if err == nil {
		return nil
	}

	if !errors.Is(err, guildSettingsRepo.ErrSettingsNotFound) {
		return fmt.Errorf("failed to get guild settings: %w", err)
	}

	now := s.clock.Now()
	err = s.repo.SaveSettings(ctx, &guildSettingsRepo.SaveSettingsInput{
		Settings: &models.GuildSettings{
			GuildID:   input.GuildID,
			Prefix:    s.defaultPrefix,
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create guild settings: %w", err)
	}

	s.logger.InfoContext(ctx, "guild settings created", "guild_id", input.GuildID)
	return nil
}

// RemoveGuild deletes the guild's settings
func (s *service) RemoveGuild(ctx context.Context, input *RemoveGuildInput) error {
	s.prefixes.Remove(input.GuildID)

	err := s.repo.DeleteSettings(ctx, &guildSettingsRepo.DeleteSettingsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete guild settings: %w", err)
	}

	s.logger.InfoContext(ctx, "guild settings removed", "guild_id", input.GuildID)
	return nil
}
