package cache

import (
	"context"
	"errors"
	"time"

	"logistics_backoffice/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
}

var _ interfaces.ICache = (*RedisCache)(nil)

func NewRedisCache(addr string) *RedisCache {
	return NewRedisCacheWithClient(redis.NewClient(&redis.Options{Addr: addr}))
}

func NewRedisCacheWithClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (r *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Get returns "" and no error on a miss.
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

// NoopCache never stores anything. Used when REDIS_ADDR is not set.
type NoopCache struct{}

var _ interfaces.ICache = NoopCache{}

func (NoopCache) Get(context.Context, string) (string, error) { return "", nil }

func (NoopCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }
