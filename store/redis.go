// Package store provides Redis-backed prompt storage
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisPromptStore implements PromptStore on top of a Redis key.
// The key is namespaced as "{prefix}:prompt".
type RedisPromptStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// RedisConfig configures the Redis prompt store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string        // key prefix, default "quest"
	TTL      time.Duration // 0 = no expiry
}

// NewRedisPromptStore connects to Redis and verifies the connection.
func NewRedisPromptStore(ctx context.Context, cfg RedisConfig) (*RedisPromptStore, error) {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "quest"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisPromptStore{
		client: client,
		key:    prefix + ":prompt",
		ttl:    cfg.TTL,
	}, nil
}

// Read returns the stored prompt, or an empty string when the key is missing.
func (s *RedisPromptStore) Read(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return val, nil
}

// Write replaces the stored prompt.
func (s *RedisPromptStore) Write(ctx context.Context, prompt string) error {
	if err := s.client.Set(ctx, s.key, prompt, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisPromptStore) Close() error {
	return s.client.Close()
}

var _ PromptStore = (*RedisPromptStore)(nil)
