// file: repository/session_repository.go

package repository

import (
	"bank-admin-api/logger"
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ISessionRepository defines the contract for admin session token storage.
// Tokens are opaque strings with a TTL; a token exists until it expires or is
// deleted by logout.
type ISessionRepository interface {
	Save(ctx context.Context, token string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

const sessionKeyPrefix = "admin_session:"

// RedisSessionRepository stores session tokens in Redis so sessions survive
// restarts and are shared across server processes.
type RedisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func (r *RedisSessionRepository) Save(ctx context.Context, token string, ttl time.Duration) error {
	err := r.client.Set(ctx, sessionKeyPrefix+token, "1", ttl).Err()
	if err != nil {
		logger.Log.WithError(err).Error("Failed to save session token in Redis")
	}
	return err
}

func (r *RedisSessionRepository) Exists(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		logger.Log.WithError(err).Error("Failed to check session token in Redis")
		return false, err
	}
	return n > 0, nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, token string) error {
	err := r.client.Del(ctx, sessionKeyPrefix+token).Err()
	if err != nil {
		logger.Log.WithError(err).Error("Failed to delete session token in Redis")
	}
	return err
}

// MemorySessionRepository is the in-process fallback used when Redis is not
// configured. Sessions are lost on restart and not shared across processes;
// acceptable for the demo deployment.
type MemorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]time.Time)}
}

func (r *MemorySessionRepository) Save(_ context.Context, token string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = time.Now().Add(ttl)
	return nil
}

func (r *MemorySessionRepository) Exists(_ context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiry, ok := r.sessions[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(r.sessions, token)
		return false, nil
	}
	return true, nil
}

func (r *MemorySessionRepository) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}
