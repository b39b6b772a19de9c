package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"claims_settlement/internal/usecase/interfaces"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLocker(t *testing.T, wait time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLocker(client, time.Second, wait), mr
}

func TestRedisLocker_LockAndRelease(t *testing.T) {
	l, mr := newRedisLocker(t, 0)

	unlock, err := l.Lock(context.Background(), "offer:OFF-1")
	require.NoError(t, err)
	assert.True(t, mr.Exists(keyPrefix+"offer:OFF-1"))
	assert.Equal(t, time.Second, mr.TTL(keyPrefix+"offer:OFF-1"))

	_, err = l.Lock(context.Background(), "offer:OFF-1")
	assert.ErrorIs(t, err, interfaces.ErrLockHeld)

	unlock()
	assert.False(t, mr.Exists(keyPrefix+"offer:OFF-1"))

	unlock2, err := l.Lock(context.Background(), "offer:OFF-1")
	require.NoError(t, err)
	unlock2()
}

func TestRedisLocker_ReleaseKeepsForeignToken(t *testing.T) {
	l, mr := newRedisLocker(t, 0)

	unlock, err := l.Lock(context.Background(), "offer:OFF-2")
	require.NoError(t, err)

	// lock expired and another writer took it over
	require.NoError(t, mr.Set(keyPrefix+"offer:OFF-2", "other-writer"))
	unlock()

	got, err := mr.Get(keyPrefix + "offer:OFF-2")
	require.NoError(t, err)
	assert.Equal(t, "other-writer", got)
}

func TestRedisLocker_WaitsForRelease(t *testing.T) {
	l, _ := newRedisLocker(t, time.Second)

	unlock, err := l.Lock(context.Background(), "offer:OFF-3")
	require.NoError(t, err)
	go func() {
		time.Sleep(50 * time.Millisecond)
		unlock()
	}()

	unlock2, err := l.Lock(context.Background(), "offer:OFF-3")
	require.NoError(t, err)
	unlock2()
}

func TestRedisLocker_ContextCancelled(t *testing.T) {
	l, _ := newRedisLocker(t, time.Second)

	unlock, err := l.Lock(context.Background(), "offer:OFF-4")
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "offer:OFF-4")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestKeyedMutex(t *testing.T) {
	t.Run("second writer fails fast without wait", func(t *testing.T) {
		m := NewKeyedMutex(0)
		unlock, err := m.Lock(context.Background(), "offer:OFF-1")
		require.NoError(t, err)

		_, err = m.Lock(context.Background(), "offer:OFF-1")
		assert.ErrorIs(t, err, interfaces.ErrLockHeld)

		other, err := m.Lock(context.Background(), "offer:OFF-2")
		require.NoError(t, err)
		other()

		unlock()
		unlock()
		assert.Empty(t, m.slots)
	})

	t.Run("serializes concurrent writers", func(t *testing.T) {
		m := NewKeyedMutex(5 * time.Second)
		var (
			wg      sync.WaitGroup
			inside  int
			maxSeen int
			guard   sync.Mutex
		)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := m.Lock(context.Background(), "offer:OFF-9")
				if err != nil {
					t.Errorf("lock: %v", err)
					return
				}
				guard.Lock()
				inside++
				if inside > maxSeen {
					maxSeen = inside
				}
				guard.Unlock()

				time.Sleep(time.Millisecond)

				guard.Lock()
				inside--
				guard.Unlock()
				unlock()
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, maxSeen)
		assert.Empty(t, m.slots)
	})

	t.Run("times out while held", func(t *testing.T) {
		m := NewKeyedMutex(20 * time.Millisecond)
		unlock, err := m.Lock(context.Background(), "claim:CLM-1")
		require.NoError(t, err)
		defer unlock()

		_, err = m.Lock(context.Background(), "claim:CLM-1")
		assert.ErrorIs(t, err, interfaces.ErrLockHeld)
	})
}
