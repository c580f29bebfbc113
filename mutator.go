package purefunc

// Mutator changes a value in place through a pointer and may accumulate
// state of its own.
type Mutator[T any] interface {
	Mutate(v *T)
}

// MutatorFunc adapts a func(*T) to Mutator. It is the exclusive variant.
//
// Example:
//
//	normalize := MutatorFunc[string](func(s *string) { *s = strings.TrimSpace(*s) }).
//	    AndThen(MutatorFunc[string](func(s *string) { *s = strings.ToLower(*s) }))
//
//	clamp := MutatorFunc[int](func(n *int) { *n = 100 }).
//	    When(PredicateFunc[int](func(n int) bool { return n > 100 })).
//	    OrElse(MutatorFunc[int](func(*int) {}))
type MutatorFunc[T any] func(v *T)

// Mutate implements Mutator.
func (f MutatorFunc[T]) Mutate(v *T) {
	f(v)
}

// MutateOnce implements MutatorOnce.
func (f MutatorFunc[T]) MutateOnce(v *T) {
	f(v)
}

// AndThen applies f, then next, to the same value. next sees f's changes.
func (f MutatorFunc[T]) AndThen(next Mutator[T]) MutatorFunc[T] {
	return func(v *T) {
		f(v)
		next.Mutate(v)
	}
}

// When starts a conditional mutator that applies f to values matching p.
// The result has no Mutate method until OrElse supplies the other arm.
func (f MutatorFunc[T]) When(p Predicate[T]) MutatorBranch[T] {
	return MutatorBranch[T]{then: f, when: p}
}

// ToFunc returns f.
func (f MutatorFunc[T]) ToFunc() MutatorFunc[T] {
	return f
}

// ToSync moves f behind a lock.
func (f MutatorFunc[T]) ToSync() SyncMutator[T] {
	return NewSyncMutator[T](f)
}

// ToLocal moves f behind a reentrancy check.
func (f MutatorFunc[T]) ToLocal() LocalMutator[T] {
	return NewLocalMutator[T](f)
}

// IntoOnce wraps f so it can be applied a single time.
func (f MutatorFunc[T]) IntoOnce() *OnceMutator[T] {
	return NewMutatorOnce[T](f)
}

// Noop returns a mutator that leaves the value alone, for the unused arm of
// a branch.
func Noop[T any]() MutatorFunc[T] {
	return func(*T) {}
}

// MutatorBranch is a conditional mutator missing its else arm.
type MutatorBranch[T any] struct {
	then MutatorFunc[T]
	when Predicate[T]
}

// OrElse completes the branch. The predicate sees a copy of the value, then
// exactly one arm runs.
func (b MutatorBranch[T]) OrElse(other Mutator[T]) MutatorFunc[T] {
	then, when := b.then, b.when
	return func(v *T) {
		if when.Test(*v) {
			then(v)
			return
		}
		other.Mutate(v)
	}
}

// ============================================================================
// SyncMutator
// ============================================================================

// SyncMutator is a Mutator handle usable from any number of goroutines.
// A call holds every lock the mutator was composed from, taken in
// construction order, so composites never observe a half-applied chain
// and never deadlock against each other.
type SyncMutator[T any] struct {
	guards syncGuards
	fn     func(*T)
}

// NewSyncMutator wraps fn behind a new lock.
func NewSyncMutator[T any](fn func(*T)) SyncMutator[T] {
	return SyncMutator[T]{guards: newSyncGuards(), fn: fn}
}

func (m SyncMutator[T]) syncParts() (syncGuards, func(*T)) {
	return m.guards, m.fn
}

// Mutate implements Mutator. It panics with ErrPoisoned if an earlier call
// panicked while holding one of m's locks.
func (m SyncMutator[T]) Mutate(v *T) {
	must(m.TryMutate(v))
}

// TryMutate is Mutate reporting a poisoned lock as an error. v is left
// untouched in that case.
func (m SyncMutator[T]) TryMutate(v *T) error {
	return m.guards.run(func() {
		m.fn(v)
	})
}

// AndThen applies m, then next, to the same value. If next is a
// SyncMutator both sets of locks are held for the whole call. m and next
// stay usable.
func (m SyncMutator[T]) AndThen(next Mutator[T]) SyncMutator[T] {
	guards, call := m.guards, next.Mutate
	if s, ok := next.(syncGuarded[func(*T)]); ok {
		var g syncGuards
		g, call = s.syncParts()
		guards = guards.merge(g)
	}
	fn := m.fn
	return SyncMutator[T]{guards: guards, fn: func(v *T) {
		fn(v)
		call(v)
	}}
}

// When starts a conditional mutator applying m to values matching p.
func (m SyncMutator[T]) When(p Predicate[T]) SyncMutatorBranch[T] {
	return SyncMutatorBranch[T]{then: m, when: p}
}

// Clone returns a second handle sharing m's closure and locks.
func (m SyncMutator[T]) Clone() SyncMutator[T] {
	return m
}

// Poisoned reports whether a panicking call left one of m's locks poisoned.
func (m SyncMutator[T]) Poisoned() bool {
	return m.guards.poisoned()
}

// ClearPoison makes m callable again after a panic. The caller is
// responsible for repairing whatever state the panic left behind.
func (m SyncMutator[T]) ClearPoison() {
	m.guards.clearPoison()
}

// ToFunc returns a MutatorFunc that calls through m's locks.
func (m SyncMutator[T]) ToFunc() MutatorFunc[T] {
	return m.Mutate
}

// ToSync returns m.
func (m SyncMutator[T]) ToSync() SyncMutator[T] {
	return m
}

// ToLocal returns a local handle that calls through m's locks.
func (m SyncMutator[T]) ToLocal() LocalMutator[T] {
	return NewLocalMutator(m.Mutate)
}

// IntoOnce wraps m so it can be applied a single time.
func (m SyncMutator[T]) IntoOnce() *OnceMutator[T] {
	return NewMutatorOnce(m.Mutate)
}

// SyncMutatorBranch is a conditional SyncMutator missing its else arm.
type SyncMutatorBranch[T any] struct {
	then SyncMutator[T]
	when Predicate[T]
}

// OrElse completes the branch. Test and the chosen arm run under the
// combined locks of both arms.
func (b SyncMutatorBranch[T]) OrElse(other Mutator[T]) SyncMutator[T] {
	guards, call := b.then.guards, other.Mutate
	if s, ok := other.(syncGuarded[func(*T)]); ok {
		var g syncGuards
		g, call = s.syncParts()
		guards = guards.merge(g)
	}
	then, when := b.then.fn, b.when
	return SyncMutator[T]{guards: guards, fn: func(v *T) {
		if when.Test(*v) {
			then(v)
			return
		}
		call(v)
	}}
}

// ============================================================================
// LocalMutator
// ============================================================================

// LocalMutator is a Mutator handle shared within one goroutine. Re-entering
// a mutator that is already running panics with ErrReentrant instead of
// corrupting its state.
// Going through ToFunc().ToSync() drops the single-goroutine guarantee;
// only do so for a closure that is safe for concurrent use.
type LocalMutator[T any] struct {
	guards localGuards
	fn     func(*T)
}

// NewLocalMutator wraps fn behind a new reentrancy check.
func NewLocalMutator[T any](fn func(*T)) LocalMutator[T] {
	return LocalMutator[T]{guards: newLocalGuards(), fn: fn}
}

func (m LocalMutator[T]) localParts() (localGuards, func(*T)) {
	return m.guards, m.fn
}

// Mutate implements Mutator.
func (m LocalMutator[T]) Mutate(v *T) {
	must(m.TryMutate(v))
}

// TryMutate is Mutate reporting reentry as an error.
func (m LocalMutator[T]) TryMutate(v *T) error {
	return m.guards.run(func() {
		m.fn(v)
	})
}

// AndThen applies m, then next, to the same value; m and next stay usable.
func (m LocalMutator[T]) AndThen(next Mutator[T]) LocalMutator[T] {
	guards, call := m.guards, next.Mutate
	if l, ok := next.(localGuarded[func(*T)]); ok {
		var g localGuards
		g, call = l.localParts()
		guards = guards.merge(g)
	}
	fn := m.fn
	return LocalMutator[T]{guards: guards, fn: func(v *T) {
		fn(v)
		call(v)
	}}
}

// When starts a conditional mutator applying m to values matching p.
func (m LocalMutator[T]) When(p Predicate[T]) LocalMutatorBranch[T] {
	return LocalMutatorBranch[T]{then: m, when: p}
}

// Clone returns a second handle sharing m's closure and check.
func (m LocalMutator[T]) Clone() LocalMutator[T] {
	return m
}

// Active reports whether m is currently running.
func (m LocalMutator[T]) Active() bool {
	return m.guards.active()
}

// ToFunc returns a MutatorFunc that calls through m's check.
func (m LocalMutator[T]) ToFunc() MutatorFunc[T] {
	return m.Mutate
}

// ToLocal returns m.
func (m LocalMutator[T]) ToLocal() LocalMutator[T] {
	return m
}

// IntoOnce wraps m so it can be applied a single time.
func (m LocalMutator[T]) IntoOnce() *OnceMutator[T] {
	return NewMutatorOnce(m.Mutate)
}

// LocalMutatorBranch is a conditional LocalMutator missing its else arm.
type LocalMutatorBranch[T any] struct {
	then LocalMutator[T]
	when Predicate[T]
}

// OrElse completes the branch.
func (b LocalMutatorBranch[T]) OrElse(other Mutator[T]) LocalMutator[T] {
	guards, call := b.then.guards, other.Mutate
	if l, ok := other.(localGuarded[func(*T)]); ok {
		var g localGuards
		g, call = l.localParts()
		guards = guards.merge(g)
	}
	then, when := b.then.fn, b.when
	return LocalMutator[T]{guards: guards, fn: func(v *T) {
		if when.Test(*v) {
			then(v)
			return
		}
		call(v)
	}}
}

// ============================================================================
// Once variant
// ============================================================================

// MutatorOnce changes a value in place at most once.
type MutatorOnce[T any] interface {
	MutateOnce(v *T)
}

// OnceMutator is the exclusive MutatorOnce.
type OnceMutator[T any] struct {
	onceFlag
	fn func(*T)
}

// NewMutatorOnce wraps fn.
func NewMutatorOnce[T any](fn func(*T)) *OnceMutator[T] {
	return &OnceMutator[T]{fn: fn}
}

func (o *OnceMutator[T]) take() (func(*T), error) {
	if err := o.onceFlag.take(); err != nil {
		return nil, err
	}
	fn := o.fn
	o.fn = nil
	return fn, nil
}

// MutateOnce implements MutatorOnce. A second call panics with ErrConsumed.
func (o *OnceMutator[T]) MutateOnce(v *T) {
	fn, err := o.take()
	must(err)
	fn(v)
}

// TryMutateOnce is MutateOnce reporting reuse as ErrConsumed.
func (o *OnceMutator[T]) TryMutateOnce(v *T) error {
	fn, err := o.take()
	if err != nil {
		return err
	}
	fn(v)
	return nil
}

// AndThen spends o and returns a single-use mutator applying o, then next.
// If next is itself a OnceMutator it is spent too.
func (o *OnceMutator[T]) AndThen(next MutatorOnce[T]) *OnceMutator[T] {
	fn, err := o.take()
	must(err)
	call := takeOperand[func(*T)](next, next.MutateOnce)
	return NewMutatorOnce(func(v *T) {
		fn(v)
		call(v)
	})
}
