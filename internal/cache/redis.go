package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rpgo/savings-projector/internal/domain"
)

const redisKeyPrefix = "savingsproj:result:"

// RedisCache is a ResultCache shared between server instances.
// Results are stored as JSON with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects lazily to addr; call Ping to verify the connection.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ttl:    ttl,
	}
}

// Ping checks that the server is reachable.
func (r *RedisCache) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (r *RedisCache) Get(ctx context.Context, key string) (*domain.ProjectionResult, bool) {
	val, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	var result domain.ProjectionResult
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (r *RedisCache) Set(ctx context.Context, key string, result *domain.ProjectionResult) error {
	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return r.client.Set(ctx, redisKeyPrefix+key, b, r.ttl).Err()
}

// Close releases the client's connections.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
