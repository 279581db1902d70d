package session

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "parlour:session:"

// RedisStore backs sessions with redis; keys are namespaced and expire via
// the TTL the manager passes on every save.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+key, value, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoSession
		}
		return "", err
	}
	return val, nil
}

func (s *RedisStore) Del(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = keyPrefix + k
	}
	return s.client.Del(ctx, prefixed...).Err()
}
