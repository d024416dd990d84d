package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/pearl/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix = "music_session:"
	activeGuildsKey  = "music_sessions"

	// Snapshots outlive a crashed process only this long
	defaultSessionTTL = 24 * time.Hour
)

// ErrSessionNotFound is returned when a guild has no stored session
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL bounds how long a snapshot survives without being saved again
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    ttl,
	}, nil
}

func sessionKey(guildID string) string {
	return sessionKeyPrefix + guildID
}

// SaveSession persists a session snapshot to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.GuildID == "" {
		return errors.New("session guild ID cannot be empty")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKey(input.Session.GuildID), sessionJSON, r.ttl)
	pipe.SAdd(ctx, activeGuildsKey, input.Session.GuildID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session snapshot by guild ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.MusicSession, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKey(input.GuildID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.MusicSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// DeleteSession removes a session snapshot from Redis
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKey(input.GuildID))
	pipe.SRem(ctx, activeGuildsKey, input.GuildID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// ListSessions retrieves every stored session snapshot, ordered by guild ID
func (r *redisRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	guildIDs, err := r.client.SMembers(ctx, activeGuildsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	sort.Strings(guildIDs)

	sessions := make([]*models.MusicSession, 0, len(guildIDs))
	for _, guildID := range guildIDs {
		session, err := r.GetSession(ctx, &GetSessionInput{GuildID: guildID})
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				// The snapshot expired, drop the dangling index entry
				r.client.SRem(ctx, activeGuildsKey, guildID)
				continue
			}
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}

// PurgeSessions removes every snapshot, used at startup since voice connections do not survive a restart
func (r *redisRepository) PurgeSessions(ctx context.Context, input *PurgeSessionsInput) (*PurgeSessionsOutput, error) {
	guildIDs, err := r.client.SMembers(ctx, activeGuildsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(guildIDs) == 0 {
		return &PurgeSessionsOutput{}, nil
	}

	keys := make([]string, 0, len(guildIDs)+1)
	for _, guildID := range guildIDs {
		keys = append(keys, sessionKey(guildID))
	}
	keys = append(keys, activeGuildsKey)

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return nil, fmt.Errorf("failed to purge sessions: %w", err)
	}

	return &PurgeSessionsOutput{
		Removed: len(guildIDs),
	}, nil
}
