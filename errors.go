package purefunc

import (
	"errors"
	"fmt"
)

var (
	// ErrPoisoned is returned by a Sync instance whose guard was held by an
	// invocation that panicked. The guard stays poisoned until ClearPoison.
	ErrPoisoned = errors.New("purefunc: guard poisoned by a panicking invocation")
	// ErrReentrant is returned by a Local instance invoked while it is
	// already running on the current call stack.
	ErrReentrant = errors.New("purefunc: reentrant invocation of a local instance")
	// ErrConsumed is returned by a Once instance that was already invoked
	// or composed.
	ErrConsumed = errors.New("purefunc: once instance already consumed")
	// ErrZeroHandle is returned by a Sync or Local handle that was declared
	// but never built with its constructor or a conversion.
	ErrZeroHandle = errors.New("purefunc: zero-value handle")
)

func guardError(sentinel error, id uint64) error {
	return fmt.Errorf("%w (guard %d)", sentinel, id)
}

// must turns a guarded invocation failure into a panic for the contract
// methods, which have no error return.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
