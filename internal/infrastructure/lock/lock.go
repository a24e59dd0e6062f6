package lock

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const acquireTimeout = 5 * time.Second

// UserLockManager serializes money-moving operations per user so that a
// balance pre-check and the debit it guards cannot interleave with another
// request for the same user.
//
// Each uid owns a one-slot token channel. A caller that gives up waiting
// leaves nothing behind: the token stays with its current holder and the
// next Unlock makes it available again.
type UserLockManager struct {
	locks sync.Map // map[string]chan struct{}, keyed by uid
}

// NewUserLockManager creates a new lock manager
func NewUserLockManager() *UserLockManager {
	return &UserLockManager{}
}

// Lock acquires the lock for the given uid, honoring context cancellation
// and a 5 second ceiling.
func (m *UserLockManager) Lock(ctx context.Context, uid string) error {
	sem := m.getOrCreateSemaphore(uid)

	timer := time.NewTimer(acquireTimeout)
	defer timer.Stop()

	select {
	case sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to acquire lock for user %s: %w", uid, ctx.Err())
	case <-timer.C:
		return fmt.Errorf("failed to acquire lock for user %s: timeout", uid)
	}
}

// Unlock releases the lock for the given uid
func (m *UserLockManager) Unlock(uid string) {
	semInterface, ok := m.locks.Load(uid)
	if !ok {
		return
	}
	select {
	case <-semInterface.(chan struct{}):
	default:
	}
}

// TryLock attempts to acquire the lock without blocking
func (m *UserLockManager) TryLock(uid string) bool {
	select {
	case m.getOrCreateSemaphore(uid) <- struct{}{}:
		return true
	default:
		return false
	}
}

func (m *UserLockManager) getOrCreateSemaphore(uid string) chan struct{} {
	sem, _ := m.locks.LoadOrStore(uid, make(chan struct{}, 1))
	return sem.(chan struct{})
}
