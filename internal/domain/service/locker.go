package service

import (
	"context"
	"errors"
)

// ErrLockNotAcquired is returned when a lock is still held by someone else after the wait budget.
var ErrLockNotAcquired = errors.New("lock not acquired")

// Locker provides short-lived mutual exclusion across processes.
type Locker interface {
	// Acquire blocks until key is held or the wait budget runs out.
	// The returned release func is safe to call once the caller is done.
	Acquire(ctx context.Context, key string) (release func(context.Context) error, err error)
}
