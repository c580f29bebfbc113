/*
Package purefunc provides small functional abstractions that compose through
instance methods while keeping their side-effect contract and their sharing
model intact.

# Overview

Each category is a single-method interface whose signature says what the
call may touch:

	Tester              Test() bool           pure, no input
	Predicate[T]        Test(v T) bool        pure
	Transformer[T, R]   Apply(v T) R          pure
	Mapper[T, R]        Map(v T) R            may advance its own state
	Consumer[T]         Accept(v T)           may advance its own state
	ReadonlyConsumer[T] Observe(v T)          changes nothing
	Mutator[T]          Mutate(v *T)          changes v in place, may advance its own state
	Supplier[T]         Get() T               may advance its own state
	ReadonlySupplier[T] Value() T             changes nothing

A Consumer never changes the value it is given; a Mutator does, and takes a
pointer to say so. Reading c.Accept(v) or m.Mutate(&v) is enough to know
whether v can change.

# Closure Adapter

Every category has a func type that implements it, the same way
http.HandlerFunc implements http.Handler:

	double := TransformerFunc[int, int](func(n int) int { return n * 2 })

Converting a func literal costs nothing. The func type is also the
exclusive variant: it has one owner and its combinators return new values.

# Sharing Variants

Every category also comes as a Sync handle, usable from any goroutine, and
a Local handle, confined to one goroutine. Copying a handle, or calling
Clone, yields a second handle to the same closure.

For the stateful categories (Mapper, Consumer, Mutator, Supplier) the
handles guard the closure:

  - SyncXxx holds a mutex. A call that panics poisons it; later calls fail
    with ErrPoisoned until ClearPoison.
  - LocalXxx holds a busy flag. A call that re-enters a running instance
    fails fast with ErrReentrant.

The contract method panics with these errors; the TryXxx method returns
them. Read-only categories have no guard at all.

Conversions go through ToFunc, ToSync and ToLocal. Local handles have no
ToSync: a closure written for one goroutine is not promised to be safe on
many. ToFunc().ToSync() still compiles and drops that promise.

A handle declared but never built has no guard. Invoking it returns
ErrZeroHandle, and composing it with a healthy handle panics with
ErrZeroHandle before anything runs.

# Composition

	a.AndThen(b)             sequential chain (Transformer, Mapper, Consumer, ReadonlyConsumer, Mutator, Once variants)
	p.And(q), p.Or(q), p.Not()  short-circuit logic (Tester, Predicate)
	s.Map(t)                 functional mapping (Supplier, ReadonlySupplier)
	m.When(p).OrElse(n)      conditional branch (Mutator, Mapper)

Sync and Local combinators leave their operands usable. When two guarded
Sync instances are composed, the result holds both locks for the whole
call, always taken in construction order, so a chain is never observed
half-applied and two composites cannot deadlock each other. Local
composites combine busy flags the same way. Operands of any other type are
called through their contract method while the locks are held, so a
closure must not call back into a Sync instance it is composed with: the
mutex is not reentrant.

When(p) returns a branch that has no invocation method; only OrElse turns
it into something callable.

Go methods cannot add type parameters, so type-changing composition lives
in functions: Then, ThenMapper, ThenOnce, MapSupplier, MapSyncSupplier,
MapLocalSupplier, MapReadonlySupplier and MapSupplierOnce.

# Once Variants

OnceTransformer, OnceConsumer, OnceMutator and OnceSupplier wrap closures
that must run at most once. Invoking or composing one spends it, whether it
is the receiver or the argument; any later use panics with ErrConsumed, or
returns it from the TryXxx method. There
are no shared Once variants: a handle many callers hold cannot promise
that only one of them will call it.

# Example

	gtZero := NewSyncPredicate(func(n int) bool { return n > 0 })
	isEven := NewSyncPredicate(func(n int) bool { return n%2 == 0 })
	both := gtZero.And(isEven)

	both.Test(4)   // true
	both.Test(-4)  // false
	both.Test(3)   // false
	gtZero.Test(3) // true, still usable
*/
package purefunc
