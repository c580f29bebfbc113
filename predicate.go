package purefunc

// Predicate is a pure test of a value. Test must not change v or any state
// observable by the caller.
type Predicate[T any] interface {
	Test(v T) bool
}

// PredicateFunc adapts a func(T) bool to Predicate. It is the exclusive
// variant.
//
// Example:
//
//	positive := PredicateFunc[int](func(n int) bool { return n > 0 })
//	even := PredicateFunc[int](func(n int) bool { return n%2 == 0 })
//	positive.And(even).Test(4) // true
type PredicateFunc[T any] func(v T) bool

// Test implements Predicate.
func (f PredicateFunc[T]) Test(v T) bool {
	return f(v)
}

// And holds when both hold. other is not called if f reports false.
func (f PredicateFunc[T]) And(other Predicate[T]) PredicateFunc[T] {
	return func(v T) bool {
		return f(v) && other.Test(v)
	}
}

// Or holds when either holds. other is not called if f reports true.
func (f PredicateFunc[T]) Or(other Predicate[T]) PredicateFunc[T] {
	return func(v T) bool {
		return f(v) || other.Test(v)
	}
}

// Not negates the predicate.
func (f PredicateFunc[T]) Not() PredicateFunc[T] {
	return func(v T) bool {
		return !f(v)
	}
}

// Xor holds when exactly one of the two holds. Both are always called.
func (f PredicateFunc[T]) Xor(other Predicate[T]) PredicateFunc[T] {
	return func(v T) bool {
		return f(v) != other.Test(v)
	}
}

// Bind fixes the argument and yields a Tester.
func (f PredicateFunc[T]) Bind(v T) TesterFunc {
	return func() bool {
		return f(v)
	}
}

// ToFunc returns f.
func (f PredicateFunc[T]) ToFunc() PredicateFunc[T] {
	return f
}

// ToSync shares f across goroutines.
func (f PredicateFunc[T]) ToSync() SyncPredicate[T] {
	return NewSyncPredicate[T](f)
}

// ToLocal shares f within one goroutine.
func (f PredicateFunc[T]) ToLocal() LocalPredicate[T] {
	return NewLocalPredicate[T](f)
}

// Always returns a predicate that holds for every value.
func Always[T any]() PredicateFunc[T] {
	return func(T) bool { return true }
}

// Never returns a predicate that holds for no value.
func Never[T any]() PredicateFunc[T] {
	return func(T) bool { return false }
}

// ============================================================================
// Shared variants
// ============================================================================

// SyncPredicate is a Predicate handle usable from any number of goroutines.
// Predicates are read-only, so invocation takes no lock.
type SyncPredicate[T any] struct {
	fn func(T) bool
}

// NewSyncPredicate wraps fn. fn must be safe for concurrent use.
func NewSyncPredicate[T any](fn func(T) bool) SyncPredicate[T] {
	return SyncPredicate[T]{fn: fn}
}

// Test implements Predicate.
func (p SyncPredicate[T]) Test(v T) bool {
	return p.fn(v)
}

// And is the short-circuit conjunction; p and other stay usable.
func (p SyncPredicate[T]) And(other Predicate[T]) SyncPredicate[T] {
	return SyncPredicate[T]{fn: PredicateFunc[T](p.fn).And(other)}
}

// Or is the short-circuit disjunction; p and other stay usable.
func (p SyncPredicate[T]) Or(other Predicate[T]) SyncPredicate[T] {
	return SyncPredicate[T]{fn: PredicateFunc[T](p.fn).Or(other)}
}

// Not negates p.
func (p SyncPredicate[T]) Not() SyncPredicate[T] {
	return SyncPredicate[T]{fn: PredicateFunc[T](p.fn).Not()}
}

// Xor holds when exactly one of p and other holds.
func (p SyncPredicate[T]) Xor(other Predicate[T]) SyncPredicate[T] {
	return SyncPredicate[T]{fn: PredicateFunc[T](p.fn).Xor(other)}
}

// Clone returns a second handle to the same closure.
func (p SyncPredicate[T]) Clone() SyncPredicate[T] {
	return p
}

// ToFunc unwraps the handle.
func (p SyncPredicate[T]) ToFunc() PredicateFunc[T] {
	return p.fn
}

// ToSync returns p.
func (p SyncPredicate[T]) ToSync() SyncPredicate[T] {
	return p
}

// ToLocal returns a goroutine-local handle to the same closure.
func (p SyncPredicate[T]) ToLocal() LocalPredicate[T] {
	return LocalPredicate[T]{fn: p.fn}
}

// LocalPredicate is a Predicate handle shared within a single goroutine.
// Going through ToFunc().ToSync() drops the single-goroutine guarantee;
// only do so for a closure that is safe for concurrent use.
type LocalPredicate[T any] struct {
	fn func(T) bool
}

// NewLocalPredicate wraps fn.
func NewLocalPredicate[T any](fn func(T) bool) LocalPredicate[T] {
	return LocalPredicate[T]{fn: fn}
}

// Test implements Predicate.
func (p LocalPredicate[T]) Test(v T) bool {
	return p.fn(v)
}

// And is the short-circuit conjunction; p and other stay usable.
func (p LocalPredicate[T]) And(other Predicate[T]) LocalPredicate[T] {
	return LocalPredicate[T]{fn: PredicateFunc[T](p.fn).And(other)}
}

// Or is the short-circuit disjunction; p and other stay usable.
func (p LocalPredicate[T]) Or(other Predicate[T]) LocalPredicate[T] {
	return LocalPredicate[T]{fn: PredicateFunc[T](p.fn).Or(other)}
}

// Not negates p.
func (p LocalPredicate[T]) Not() LocalPredicate[T] {
	return LocalPredicate[T]{fn: PredicateFunc[T](p.fn).Not()}
}

// Xor holds when exactly one of p and other holds.
func (p LocalPredicate[T]) Xor(other Predicate[T]) LocalPredicate[T] {
	return LocalPredicate[T]{fn: PredicateFunc[T](p.fn).Xor(other)}
}

// Clone returns a second handle to the same closure.
func (p LocalPredicate[T]) Clone() LocalPredicate[T] {
	return p
}

// ToFunc unwraps the handle.
func (p LocalPredicate[T]) ToFunc() PredicateFunc[T] {
	return p.fn
}

// ToLocal returns p.
func (p LocalPredicate[T]) ToLocal() LocalPredicate[T] {
	return p
}
