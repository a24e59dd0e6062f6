package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockSerializesPerUser(t *testing.T) {
	m := NewUserLockManager()
	ctx := context.Background()

	assert.NoError(t, m.Lock(ctx, "pi_user_abc"))

	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	err := m.Lock(waitCtx, "pi_user_abc")
	assert.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	m.Unlock("pi_user_abc")
	assert.NoError(t, m.Lock(ctx, "pi_user_abc"))
	m.Unlock("pi_user_abc")
}

func TestAbandonedWaiterDoesNotWedgeLock(t *testing.T) {
	m := NewUserLockManager()
	ctx := context.Background()

	assert.NoError(t, m.Lock(ctx, "pi_user_abc"))

	// A waiter that gives up must not end up holding the lock once the
	// current holder releases it.
	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.Error(t, m.Lock(waitCtx, "pi_user_abc"))

	m.Unlock("pi_user_abc")

	acquired := make(chan error, 1)
	go func() {
		acquireCtx, acquireCancel := context.WithTimeout(ctx, time.Second)
		defer acquireCancel()
		acquired <- m.Lock(acquireCtx, "pi_user_abc")
	}()

	select {
	case err := <-acquired:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("lock stayed held after the abandoned waiter")
	}
	m.Unlock("pi_user_abc")
}

func TestTryLock(t *testing.T) {
	m := NewUserLockManager()

	assert.True(t, m.TryLock("pi_user_abc"))
	assert.False(t, m.TryLock("pi_user_abc"))

	m.Unlock("pi_user_abc")
	assert.True(t, m.TryLock("pi_user_abc"))
	m.Unlock("pi_user_abc")
}

func TestIndependentUsersDoNotContend(t *testing.T) {
	m := NewUserLockManager()
	ctx := context.Background()

	assert.NoError(t, m.Lock(ctx, "pi_user_abc"))
	assert.NoError(t, m.Lock(ctx, "pi_user_xyz"))
	m.Unlock("pi_user_abc")
	m.Unlock("pi_user_xyz")
}

func TestUnlockWithoutLockIsNoOp(t *testing.T) {
	m := NewUserLockManager()
	m.Unlock("pi_user_abc")
	assert.True(t, m.TryLock("pi_user_abc"))
	m.Unlock("pi_user_abc")
}
