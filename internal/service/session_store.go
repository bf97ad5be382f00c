package service

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// SessionStore tracks issued session tokens so they can be revoked before expiry.
type SessionStore interface {
	Save(ctx context.Context, role, subjectID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, role, subjectID, tokenID string) (bool, error)
	Delete(ctx context.Context, role, subjectID, tokenID string) error
}

func sessionKey(role, subjectID, tokenID string) string {
	return fmt.Sprintf("session:%s:%s:%s", role, subjectID, tokenID)
}

type redisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Save(ctx context.Context, role, subjectID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(role, subjectID, tokenID), "1", ttl).Err()
}

func (s *redisSessionStore) Exists(ctx context.Context, role, subjectID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(role, subjectID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, role, subjectID, tokenID string) error {
	return s.client.Del(ctx, sessionKey(role, subjectID, tokenID)).Err()
}

// memorySessionStore keeps sessions in process memory. Sessions do not
// survive a restart.
type memorySessionStore struct {
	cache *gocache.Cache
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{cache: gocache.New(gocache.NoExpiration, 10*time.Minute)}
}

func (s *memorySessionStore) Save(_ context.Context, role, subjectID, tokenID string, ttl time.Duration) error {
	s.cache.Set(sessionKey(role, subjectID, tokenID), struct{}{}, ttl)
	return nil
}

func (s *memorySessionStore) Exists(_ context.Context, role, subjectID, tokenID string) (bool, error) {
	_, ok := s.cache.Get(sessionKey(role, subjectID, tokenID))
	return ok, nil
}

func (s *memorySessionStore) Delete(_ context.Context, role, subjectID, tokenID string) error {
	s.cache.Delete(sessionKey(role, subjectID, tokenID))
	return nil
}
