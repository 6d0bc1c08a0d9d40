package store

import (
	"context"
	"fmt"

	"github.com/gofiber/storage/redis/v3"
)

// RedisKV adapts the Fiber redis storage module to the KV contract.
// Documents are stored without expiration.
type RedisKV struct {
	storage *redis.Storage
}

// NewRedisKV connects to redis using a redis:// URL.
func NewRedisKV(redisURL string) (*RedisKV, error) {
	storage := redis.New(redis.Config{
		URL:   redisURL,
		Reset: false,
	})
	// redis.New panics on bad config but connection errors surface on first
	// use; probe once so startup fails fast.
	if err := storage.Set("campuslinks:ping", []byte("ok"), 0); err != nil {
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	return &RedisKV{storage: storage}, nil
}

// Get returns the stored value, or (nil, nil) if the key is absent.
func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	return r.storage.GetWithContext(ctx, key)
}

// Set stores the value without expiration.
func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return r.storage.SetWithContext(ctx, key, value, 0)
}

// Delete removes the key.
func (r *RedisKV) Delete(ctx context.Context, key string) error {
	return r.storage.DeleteWithContext(ctx, key)
}

// Close closes the underlying redis client.
func (r *RedisKV) Close() error {
	return r.storage.Close()
}
