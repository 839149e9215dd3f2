package auth

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionStore tracks live sessions server-side so tokens can be revoked and
// expired independently of the client.
type SessionStore interface {
	Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore builds a Redis-backed store. Session records expire
// with the token TTL.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKeyPrefix+sessionID, userID, ttl).Err()
}

func (s *redisSessionStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	count, err := s.client.Exists(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
}

// NewMemorySessionStore builds an in-process store, used in tests and when
// Redis is not configured.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]time.Time)}
}

func (s *memorySessionStore) Save(_ context.Context, sessionID, _ string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = time.Now().Add(ttl)
	return nil
}

func (s *memorySessionStore) Exists(_ context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.sessions[sessionID]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(s.sessions, sessionID)
		return false, nil
	}
	return true, nil
}

func (s *memorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
