package lock

import (
	"context"
	"sync"
	"time"

	"claims_settlement/internal/usecase/interfaces"
)

// KeyedMutex serializes writers per key inside one process.
type KeyedMutex struct {
	mu    sync.Mutex
	slots map[string]*slot
	wait  time.Duration
}

type slot struct {
	ch   chan struct{}
	refs int
}

var _ interfaces.ILocker = (*KeyedMutex)(nil)

func NewKeyedMutex(wait time.Duration) *KeyedMutex {
	if wait < 0 {
		wait = defaultWait
	}
	return &KeyedMutex{slots: make(map[string]*slot), wait: wait}
}

func (m *KeyedMutex) Lock(ctx context.Context, key string) (func(), error) {
	s := m.acquireSlot(key)

	var timeout <-chan time.Time
	if m.wait > 0 {
		timer := time.NewTimer(m.wait)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case s.ch <- struct{}{}:
	default:
		if m.wait == 0 {
			m.releaseSlot(key)
			return nil, interfaces.ErrLockHeld
		}
		select {
		case s.ch <- struct{}{}:
		case <-timeout:
			m.releaseSlot(key)
			return nil, interfaces.ErrLockHeld
		case <-ctx.Done():
			m.releaseSlot(key)
			return nil, ctx.Err()
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			m.releaseSlot(key)
		})
	}, nil
}

func (m *KeyedMutex) acquireSlot(key string) *slot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		m.slots[key] = s
	}
	s.refs++
	return s
}

func (m *KeyedMutex) releaseSlot(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.slots[key]
	s.refs--
	if s.refs == 0 {
		delete(m.slots, key)
	}
}
