package cooldown

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const cooldownKeyPrefix = "cooldown:"

// Config holds configuration for the Redis cooldown repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis key expiry
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed cooldown repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func cooldownKey(bucket, key string) string {
	return fmt.Sprintf("%s%s:%s", cooldownKeyPrefix, bucket, key)
}

// Acquire sets the cooldown key if it does not exist yet
func (r *redisRepository) Acquire(ctx context.Context, input *AcquireInput) (*AcquireOutput, error) {
	if input == nil || input.Bucket == "" || input.Key == "" {
		return nil, errors.New("input, bucket and key cannot be empty")
	}

	if input.Duration <= 0 {
		return nil, errors.New("duration must be positive")
	}

	key := cooldownKey(input.Bucket, input.Key)

	acquired, err := r.client.SetNX(ctx, key, 1, input.Duration).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire cooldown: %w", err)
	}

	if acquired {
		return &AcquireOutput{Acquired: true}, nil
	}

	remaining, err := r.client.PTTL(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read cooldown: %w", err)
	}

	// A negative TTL means the key vanished or lost its expiry between the two calls
	if remaining < 0 {
		remaining = 0
	}

	return &AcquireOutput{
		Acquired:   false,
		RetryAfter: remaining,
	}, nil
}

// Release deletes the cooldown key
func (r *redisRepository) Release(ctx context.Context, input *ReleaseInput) error {
	if input == nil || input.Bucket == "" || input.Key == "" {
		return errors.New("input, bucket and key cannot be empty")
	}

	if err := r.client.Del(ctx, cooldownKey(input.Bucket, input.Key)).Err(); err != nil {
		return fmt.Errorf("failed to release cooldown: %w", err)
	}

	return nil
}
