package redis

import (
	"context"
	"time"
)

// LockStoreInterface defines the interface for distributed cab locking.
type LockStoreInterface interface {
	AcquireCabLock(ctx context.Context, cabID string, ttl time.Duration) (bool, error)
	ReleaseCabLock(ctx context.Context, cabID string) error
}

// Ensure concrete types implement interfaces.
var _ LockStoreInterface = (*LockStore)(nil)
