package purefunc

import (
	"sync"
	"sync/atomic"
)

// guardSeq hands out guard ids. Guards are always acquired in ascending id
// order, which makes construction order the global lock order.
var guardSeq atomic.Uint64

func nextGuardID() uint64 {
	return guardSeq.Add(1)
}

// mergeByID merges two id-sorted guard sets, dropping duplicates.
func mergeByID[G any](a, b []G, id func(G) uint64) []G {
	out := make([]G, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ai, bj := id(a[i]), id(b[j])
		switch {
		case ai < bj:
			out = append(out, a[i])
			i++
		case ai > bj:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

// ============================================================================
// Sync guards
// ============================================================================

type syncGuard struct {
	id       uint64
	mu       sync.Mutex
	poisoned bool
}

// syncGuards is sorted by id and holds no duplicates.
type syncGuards []*syncGuard

func newSyncGuards() syncGuards {
	return syncGuards{{id: nextGuardID()}}
}

// merge panics if either side belongs to a zero-value handle, so a broken
// operand is rejected before it can poison a healthy one.
func (gs syncGuards) merge(other syncGuards) syncGuards {
	if len(gs) == 0 || len(other) == 0 {
		panic(ErrZeroHandle)
	}
	return mergeByID(gs, other, func(g *syncGuard) uint64 { return g.id })
}

// run locks every guard, runs fn and unlocks. If fn panics all guards are
// poisoned before they are released and the panic continues.
func (gs syncGuards) run(fn func()) error {
	if len(gs) == 0 {
		return ErrZeroHandle
	}
	for _, g := range gs {
		g.mu.Lock()
	}
	defer func() {
		for i := len(gs) - 1; i >= 0; i-- {
			gs[i].mu.Unlock()
		}
	}()

	for _, g := range gs {
		if g.poisoned {
			return guardError(ErrPoisoned, g.id)
		}
	}

	completed := false
	defer func() {
		if !completed {
			for _, g := range gs {
				g.poisoned = true
			}
		}
	}()
	fn()
	completed = true
	return nil
}

func (gs syncGuards) poisoned() bool {
	for _, g := range gs {
		g.mu.Lock()
		p := g.poisoned
		g.mu.Unlock()
		if p {
			return true
		}
	}
	return false
}

func (gs syncGuards) clearPoison() {
	for _, g := range gs {
		g.mu.Lock()
		g.poisoned = false
		g.mu.Unlock()
	}
}

// syncGuarded is implemented by Sync variants of mutable categories so that
// a composite can take over the operand's guards and call its raw closure.
type syncGuarded[F any] interface {
	syncParts() (syncGuards, F)
}

// ============================================================================
// Local guards
// ============================================================================

type localGuard struct {
	id     uint64
	active bool
}

// localGuards is sorted by id and holds no duplicates.
type localGuards []*localGuard

func newLocalGuards() localGuards {
	return localGuards{{id: nextGuardID()}}
}

func (gs localGuards) merge(other localGuards) localGuards {
	if len(gs) == 0 || len(other) == 0 {
		panic(ErrZeroHandle)
	}
	return mergeByID(gs, other, func(g *localGuard) uint64 { return g.id })
}

// run marks every guard active for the duration of fn. A guard that is
// already active means fn's owner is on the stack, so it fails fast.
func (gs localGuards) run(fn func()) error {
	if len(gs) == 0 {
		return ErrZeroHandle
	}
	for _, g := range gs {
		if g.active {
			return guardError(ErrReentrant, g.id)
		}
	}
	for _, g := range gs {
		g.active = true
	}
	defer func() {
		for _, g := range gs {
			g.active = false
		}
	}()
	fn()
	return nil
}

func (gs localGuards) active() bool {
	for _, g := range gs {
		if g.active {
			return true
		}
	}
	return false
}

type localGuarded[F any] interface {
	localParts() (localGuards, F)
}

// ============================================================================
// Once flag
// ============================================================================

// onceFlag marks a Once instance as spent. The first take wins.
type onceFlag struct {
	spent atomic.Bool
}

func (o *onceFlag) take() error {
	if !o.spent.CompareAndSwap(false, true) {
		return ErrConsumed
	}
	return nil
}

func (o *onceFlag) Spent() bool {
	return o.spent.Load()
}

// onceTaker is implemented by the Once types.
type onceTaker[F any] interface {
	take() (F, error)
}

// takeOperand spends op at composition time when it is a Once type, so a
// spent operand fails before any step of the composite has run. Other
// operands are called through fallback.
func takeOperand[F any](op any, fallback F) F {
	t, ok := op.(onceTaker[F])
	if !ok {
		return fallback
	}
	fn, err := t.take()
	must(err)
	return fn
}
