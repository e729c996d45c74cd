package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "strajk:session:"

// RedisManager stores each session as a hash. Every write pushes the
// expiry of the whole hash forward by ttl.
type RedisManager struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisManager(client *redis.Client, ttl time.Duration) *RedisManager {
	return &RedisManager{client: client, ttl: ttl}
}

func (m *RedisManager) Open(sessionID string) Store {
	return &redisStore{client: m.client, ttl: m.ttl, sessionID: sessionID}
}

type redisStore struct {
	client    *redis.Client
	ttl       time.Duration
	sessionID string
}

func (s *redisStore) key() string {
	return redisKeyPrefix + s.sessionID
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	if len(s.sessionID) == 0 {
		return "", false, ErrEmptySessionID
	}

	value, err := s.client.HGet(ctx, s.key(), key).Result()

	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to fetch session value '%v': %w", key, err)
	}

	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if len(s.sessionID) == 0 {
		return ErrEmptySessionID
	}

	if err := s.client.HSet(ctx, s.key(), key, value).Err(); err != nil {
		return fmt.Errorf("failed to store session value '%v': %w", key, err)
	}

	if err := s.client.Expire(ctx, s.key(), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to refresh session expiry: %w", err)
	}

	return nil
}

func (s *redisStore) Clear(ctx context.Context) error {
	if len(s.sessionID) == 0 {
		return ErrEmptySessionID
	}

	if err := s.client.Del(ctx, s.key()).Err(); err != nil {
		return fmt.Errorf("failed to clear session '%v': %w", s.sessionID, err)
	}

	return nil
}
