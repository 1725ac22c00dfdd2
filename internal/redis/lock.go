package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireCabLock attempts to acquire a lock for the given cab.
// Returns true if the lock was acquired, false if already held.
func (s *LockStore) AcquireCabLock(ctx context.Context, cabID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:cab:%s", cabID)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseCabLock releases the lock for the given cab.
func (s *LockStore) ReleaseCabLock(ctx context.Context, cabID string) error {
	key := fmt.Sprintf("lock:cab:%s", cabID)

	return s.client.Del(ctx, key).Err()
}
