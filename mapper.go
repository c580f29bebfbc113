package purefunc

// Mapper is a transformation that may advance its own state between calls,
// such as a numbering or deduplicating step.
type Mapper[T, R any] interface {
	Map(v T) R
}

// MapperFunc adapts a func(T) R to Mapper. It is the exclusive variant and
// must not be shared; use ToSync or ToLocal for that.
type MapperFunc[T, R any] func(v T) R

// Map implements Mapper.
func (f MapperFunc[T, R]) Map(v T) R {
	return f(v)
}

// AndThen feeds the result of f into next.
func (f MapperFunc[T, R]) AndThen(next Mapper[R, R]) MapperFunc[T, R] {
	return func(v T) R {
		return next.Map(f(v))
	}
}

// When starts a conditional mapper that runs f for inputs matching p. The
// branch is completed by OrElse.
func (f MapperFunc[T, R]) When(p Predicate[T]) MapperBranch[T, R] {
	return MapperBranch[T, R]{then: f, when: p}
}

// ToFunc returns f.
func (f MapperFunc[T, R]) ToFunc() MapperFunc[T, R] {
	return f
}

// ToSync moves f behind a lock.
func (f MapperFunc[T, R]) ToSync() SyncMapper[T, R] {
	return NewSyncMapper[T, R](f)
}

// ToLocal moves f behind a reentrancy check.
func (f MapperFunc[T, R]) ToLocal() LocalMapper[T, R] {
	return NewLocalMapper[T, R](f)
}

// IntoOnce wraps f so it can be applied a single time.
func (f MapperFunc[T, R]) IntoOnce() *OnceTransformer[T, R] {
	return NewTransformerOnce[T, R](f)
}

// ThenMapper chains two mappers whose types differ.
func ThenMapper[T, R, U any](first Mapper[T, R], second Mapper[R, U]) MapperFunc[T, U] {
	return func(v T) U {
		return second.Map(first.Map(v))
	}
}

// MapperBranch is a conditional mapper missing its else arm. It cannot be
// invoked; OrElse turns it into a MapperFunc.
type MapperBranch[T, R any] struct {
	then MapperFunc[T, R]
	when Predicate[T]
}

// OrElse completes the branch: inputs failing the predicate go to other.
func (b MapperBranch[T, R]) OrElse(other Mapper[T, R]) MapperFunc[T, R] {
	then, when := b.then, b.when
	return func(v T) R {
		if when.Test(v) {
			return then(v)
		}
		return other.Map(v)
	}
}

// ============================================================================
// SyncMapper
// ============================================================================

// SyncMapper is a Mapper handle usable from any number of goroutines. Each
// call holds the mapper's lock, so the closure's state sees one caller at a
// time.
type SyncMapper[T, R any] struct {
	guards syncGuards
	fn     func(T) R
}

// NewSyncMapper wraps fn behind a new lock.
func NewSyncMapper[T, R any](fn func(T) R) SyncMapper[T, R] {
	return SyncMapper[T, R]{guards: newSyncGuards(), fn: fn}
}

func (m SyncMapper[T, R]) syncParts() (syncGuards, func(T) R) {
	return m.guards, m.fn
}

// Map implements Mapper. It panics with ErrPoisoned if an earlier call
// panicked while holding the lock.
func (m SyncMapper[T, R]) Map(v T) R {
	r, err := m.TryMap(v)
	must(err)
	return r
}

// TryMap is Map reporting a poisoned lock as an error.
func (m SyncMapper[T, R]) TryMap(v T) (R, error) {
	var r R
	err := m.guards.run(func() {
		r = m.fn(v)
	})
	return r, err
}

// AndThen feeds the result of m into next. If next is a SyncMapper its lock
// joins m's and both are held for the whole call; m and next stay usable.
func (m SyncMapper[T, R]) AndThen(next Mapper[R, R]) SyncMapper[T, R] {
	guards, call := m.guards, next.Map
	if s, ok := next.(syncGuarded[func(R) R]); ok {
		var g syncGuards
		g, call = s.syncParts()
		guards = guards.merge(g)
	}
	fn := m.fn
	return SyncMapper[T, R]{guards: guards, fn: func(v T) R {
		return call(fn(v))
	}}
}

// When starts a conditional mapper running m for inputs matching p.
func (m SyncMapper[T, R]) When(p Predicate[T]) SyncMapperBranch[T, R] {
	return SyncMapperBranch[T, R]{then: m, when: p}
}

// Clone returns a second handle sharing m's closure and lock.
func (m SyncMapper[T, R]) Clone() SyncMapper[T, R] {
	return m
}

// Poisoned reports whether a panicking call left m's lock poisoned.
func (m SyncMapper[T, R]) Poisoned() bool {
	return m.guards.poisoned()
}

// ClearPoison makes m callable again after a panic.
func (m SyncMapper[T, R]) ClearPoison() {
	m.guards.clearPoison()
}

// ToFunc returns a MapperFunc that calls through m's lock.
func (m SyncMapper[T, R]) ToFunc() MapperFunc[T, R] {
	return m.Map
}

// ToSync returns m.
func (m SyncMapper[T, R]) ToSync() SyncMapper[T, R] {
	return m
}

// ToLocal returns a local handle that calls through m's lock.
func (m SyncMapper[T, R]) ToLocal() LocalMapper[T, R] {
	return NewLocalMapper(m.Map)
}

// IntoOnce wraps m so it can be applied a single time.
func (m SyncMapper[T, R]) IntoOnce() *OnceTransformer[T, R] {
	return NewTransformerOnce(m.Map)
}

// SyncMapperBranch is a conditional SyncMapper missing its else arm.
type SyncMapperBranch[T, R any] struct {
	then SyncMapper[T, R]
	when Predicate[T]
}

// OrElse completes the branch. The predicate runs under the combined lock
// of both arms.
func (b SyncMapperBranch[T, R]) OrElse(other Mapper[T, R]) SyncMapper[T, R] {
	guards, call := b.then.guards, other.Map
	if s, ok := other.(syncGuarded[func(T) R]); ok {
		var g syncGuards
		g, call = s.syncParts()
		guards = guards.merge(g)
	}
	then, when := b.then.fn, b.when
	return SyncMapper[T, R]{guards: guards, fn: func(v T) R {
		if when.Test(v) {
			return then(v)
		}
		return call(v)
	}}
}

// ============================================================================
// LocalMapper
// ============================================================================

// LocalMapper is a Mapper handle shared within one goroutine. A call that
// re-enters a mapper already running on the stack panics with ErrReentrant.
// Going through ToFunc().ToSync() drops the single-goroutine guarantee;
// only do so for a closure that is safe for concurrent use.
type LocalMapper[T, R any] struct {
	guards localGuards
	fn     func(T) R
}

// NewLocalMapper wraps fn behind a new reentrancy check.
func NewLocalMapper[T, R any](fn func(T) R) LocalMapper[T, R] {
	return LocalMapper[T, R]{guards: newLocalGuards(), fn: fn}
}

func (m LocalMapper[T, R]) localParts() (localGuards, func(T) R) {
	return m.guards, m.fn
}

// Map implements Mapper.
func (m LocalMapper[T, R]) Map(v T) R {
	r, err := m.TryMap(v)
	must(err)
	return r
}

// TryMap is Map reporting reentry as ErrReentrant.
func (m LocalMapper[T, R]) TryMap(v T) (R, error) {
	var r R
	err := m.guards.run(func() {
		r = m.fn(v)
	})
	return r, err
}

// AndThen feeds the result of m into next; m and next stay usable.
func (m LocalMapper[T, R]) AndThen(next Mapper[R, R]) LocalMapper[T, R] {
	guards, call := m.guards, next.Map
	if l, ok := next.(localGuarded[func(R) R]); ok {
		var g localGuards
		g, call = l.localParts()
		guards = guards.merge(g)
	}
	fn := m.fn
	return LocalMapper[T, R]{guards: guards, fn: func(v T) R {
		return call(fn(v))
	}}
}

// When starts a conditional mapper running m for inputs matching p.
func (m LocalMapper[T, R]) When(p Predicate[T]) LocalMapperBranch[T, R] {
	return LocalMapperBranch[T, R]{then: m, when: p}
}

// Clone returns a second handle sharing m's closure and reentrancy check.
func (m LocalMapper[T, R]) Clone() LocalMapper[T, R] {
	return m
}

// Active reports whether m is currently running.
func (m LocalMapper[T, R]) Active() bool {
	return m.guards.active()
}

// ToFunc returns a MapperFunc that calls through m's check.
func (m LocalMapper[T, R]) ToFunc() MapperFunc[T, R] {
	return m.Map
}

// ToLocal returns m.
func (m LocalMapper[T, R]) ToLocal() LocalMapper[T, R] {
	return m
}

// IntoOnce wraps m so it can be applied a single time.
func (m LocalMapper[T, R]) IntoOnce() *OnceTransformer[T, R] {
	return NewTransformerOnce(m.Map)
}

// LocalMapperBranch is a conditional LocalMapper missing its else arm.
type LocalMapperBranch[T, R any] struct {
	then LocalMapper[T, R]
	when Predicate[T]
}

// OrElse completes the branch.
func (b LocalMapperBranch[T, R]) OrElse(other Mapper[T, R]) LocalMapper[T, R] {
	guards, call := b.then.guards, other.Map
	if l, ok := other.(localGuarded[func(T) R]); ok {
		var g localGuards
		g, call = l.localParts()
		guards = guards.merge(g)
	}
	then, when := b.then.fn, b.when
	return LocalMapper[T, R]{guards: guards, fn: func(v T) R {
		if when.Test(v) {
			return then(v)
		}
		return call(v)
	}}
}
