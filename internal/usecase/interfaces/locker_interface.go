package interfaces

import (
	"context"
	"errors"
)

// ErrLockHeld is returned when another writer holds the lock past the wait budget.
var ErrLockHeld = errors.New("lock held by another writer")

// ILocker serializes writers on a key. The returned func releases the lock.
type ILocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
