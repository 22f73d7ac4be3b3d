package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/vibe-gaming/cadastro/internal/domain"
)

// kvStore holds encoded values under string keys with an expiration.
type kvStore interface {
	get(ctx context.Context, key string) ([]byte, error)
	set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type redisStore struct {
	client redis.UniversalClient
}

func newRedisStore(client redis.UniversalClient) *redisStore {
	return &redisStore{client: client}
}

func (s *redisStore) get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

func (s *redisStore) set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

type memoryStore struct {
	cache *cache.Cache
}

func newMemoryStore(c *cache.Cache) *memoryStore {
	return &memoryStore{cache: c}
}

func (s *memoryStore) get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, domain.ErrNotFound
	}
	data, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("memory get %s: unexpected type %T", key, v)
	}
	return data, nil
}

func (s *memoryStore) set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.cache.Set(key, value, ttl)
	return nil
}
