package purefunc

// Supplier produces values and may advance its own state between calls
// (counters, generators, iterators).
type Supplier[T any] interface {
	Get() T
}

// SupplierFunc adapts a func() T to Supplier. It is the exclusive variant.
//
// Example:
//
//	n := 0
//	next := SupplierFunc[int](func() int { n++; return n })
//	labels := MapSupplier[int, string](next, TransformerFunc[int, string](strconv.Itoa))
type SupplierFunc[T any] func() T

// Get implements Supplier.
func (f SupplierFunc[T]) Get() T {
	return f()
}

// GetOnce implements SupplierOnce.
func (f SupplierFunc[T]) GetOnce() T {
	return f()
}

// Map passes every produced value through transform.
func (f SupplierFunc[T]) Map(transform Transformer[T, T]) SupplierFunc[T] {
	return func() T {
		return transform.Apply(f())
	}
}

// ToFunc returns f.
func (f SupplierFunc[T]) ToFunc() SupplierFunc[T] {
	return f
}

// ToSync moves f behind a lock.
func (f SupplierFunc[T]) ToSync() SyncSupplier[T] {
	return NewSyncSupplier[T](f)
}

// ToLocal moves f behind a reentrancy check.
func (f SupplierFunc[T]) ToLocal() LocalSupplier[T] {
	return NewLocalSupplier[T](f)
}

// IntoOnce wraps f so it can produce a single value.
func (f SupplierFunc[T]) IntoOnce() *OnceSupplier[T] {
	return NewSupplierOnce[T](f)
}

// MapSupplier passes every value of s through a transform of another type.
func MapSupplier[T, U any](s Supplier[T], transform Transformer[T, U]) SupplierFunc[U] {
	return func() U {
		return transform.Apply(s.Get())
	}
}

// ============================================================================
// SyncSupplier
// ============================================================================

// SyncSupplier is a Supplier handle usable from any number of goroutines;
// each Get holds the supplier's lock.
type SyncSupplier[T any] struct {
	guards syncGuards
	fn     func() T
}

// NewSyncSupplier wraps fn behind a new lock.
func NewSyncSupplier[T any](fn func() T) SyncSupplier[T] {
	return SyncSupplier[T]{guards: newSyncGuards(), fn: fn}
}

func (s SyncSupplier[T]) syncParts() (syncGuards, func() T) {
	return s.guards, s.fn
}

// Get implements Supplier. It panics with ErrPoisoned if an earlier call
// panicked while holding the lock.
func (s SyncSupplier[T]) Get() T {
	v, err := s.TryGet()
	must(err)
	return v
}

// TryGet is Get reporting a poisoned lock as an error.
func (s SyncSupplier[T]) TryGet() (T, error) {
	var v T
	err := s.guards.run(func() {
		v = s.fn()
	})
	return v, err
}

// Map passes every produced value through transform. The result shares s's
// lock; s stays usable.
func (s SyncSupplier[T]) Map(transform Transformer[T, T]) SyncSupplier[T] {
	return MapSyncSupplier(s, transform)
}

// Clone returns a second handle sharing s's closure and lock.
func (s SyncSupplier[T]) Clone() SyncSupplier[T] {
	return s
}

// Poisoned reports whether a panicking call left s's lock poisoned.
func (s SyncSupplier[T]) Poisoned() bool {
	return s.guards.poisoned()
}

// ClearPoison makes s callable again after a panic.
func (s SyncSupplier[T]) ClearPoison() {
	s.guards.clearPoison()
}

// ToFunc returns a SupplierFunc that calls through s's lock.
func (s SyncSupplier[T]) ToFunc() SupplierFunc[T] {
	return s.Get
}

// ToSync returns s.
func (s SyncSupplier[T]) ToSync() SyncSupplier[T] {
	return s
}

// ToLocal returns a local handle that calls through s's lock.
func (s SyncSupplier[T]) ToLocal() LocalSupplier[T] {
	return NewLocalSupplier(s.Get)
}

// IntoOnce wraps s so it can produce a single value.
func (s SyncSupplier[T]) IntoOnce() *OnceSupplier[T] {
	return NewSupplierOnce(s.Get)
}

// MapSyncSupplier is SyncSupplier.Map for a transform of another type.
func MapSyncSupplier[T, U any](s SyncSupplier[T], transform Transformer[T, U]) SyncSupplier[U] {
	fn := s.fn
	return SyncSupplier[U]{guards: s.guards, fn: func() U {
		return transform.Apply(fn())
	}}
}

// ============================================================================
// LocalSupplier
// ============================================================================

// LocalSupplier is a Supplier handle shared within one goroutine.
// Going through ToFunc().ToSync() drops the single-goroutine guarantee;
// only do so for a closure that is safe for concurrent use.
type LocalSupplier[T any] struct {
	guards localGuards
	fn     func() T
}

// NewLocalSupplier wraps fn behind a new reentrancy check.
func NewLocalSupplier[T any](fn func() T) LocalSupplier[T] {
	return LocalSupplier[T]{guards: newLocalGuards(), fn: fn}
}

func (s LocalSupplier[T]) localParts() (localGuards, func() T) {
	return s.guards, s.fn
}

// Get implements Supplier. It panics with ErrReentrant if s is already
// running.
func (s LocalSupplier[T]) Get() T {
	v, err := s.TryGet()
	must(err)
	return v
}

// TryGet is Get reporting reentry as an error.
func (s LocalSupplier[T]) TryGet() (T, error) {
	var v T
	err := s.guards.run(func() {
		v = s.fn()
	})
	return v, err
}

// Map passes every produced value through transform; s stays usable.
func (s LocalSupplier[T]) Map(transform Transformer[T, T]) LocalSupplier[T] {
	return MapLocalSupplier(s, transform)
}

// Clone returns a second handle sharing s's closure and check.
func (s LocalSupplier[T]) Clone() LocalSupplier[T] {
	return s
}

// Active reports whether s is currently running.
func (s LocalSupplier[T]) Active() bool {
	return s.guards.active()
}

// ToFunc returns a SupplierFunc that calls through s's check.
func (s LocalSupplier[T]) ToFunc() SupplierFunc[T] {
	return s.Get
}

// ToLocal returns s.
func (s LocalSupplier[T]) ToLocal() LocalSupplier[T] {
	return s
}

// IntoOnce wraps s so it can produce a single value.
func (s LocalSupplier[T]) IntoOnce() *OnceSupplier[T] {
	return NewSupplierOnce(s.Get)
}

// MapLocalSupplier is LocalSupplier.Map for a transform of another type.
func MapLocalSupplier[T, U any](s LocalSupplier[T], transform Transformer[T, U]) LocalSupplier[U] {
	fn := s.fn
	return LocalSupplier[U]{guards: s.guards, fn: func() U {
		return transform.Apply(fn())
	}}
}

// ============================================================================
// Once variant
// ============================================================================

// SupplierOnce produces at most one value.
type SupplierOnce[T any] interface {
	GetOnce() T
}

// OnceSupplier is the exclusive SupplierOnce, typically holding a resource
// that is handed out exactly once.
type OnceSupplier[T any] struct {
	onceFlag
	fn func() T
}

// NewSupplierOnce wraps fn.
func NewSupplierOnce[T any](fn func() T) *OnceSupplier[T] {
	return &OnceSupplier[T]{fn: fn}
}

func (o *OnceSupplier[T]) take() (func() T, error) {
	if err := o.onceFlag.take(); err != nil {
		return nil, err
	}
	fn := o.fn
	o.fn = nil
	return fn, nil
}

// GetOnce implements SupplierOnce. A second call panics with ErrConsumed.
func (o *OnceSupplier[T]) GetOnce() T {
	fn, err := o.take()
	must(err)
	return fn()
}

// TryGetOnce is GetOnce reporting reuse as ErrConsumed.
func (o *OnceSupplier[T]) TryGetOnce() (T, error) {
	fn, err := o.take()
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(), nil
}

// Map spends o and returns a single-use supplier whose value is passed
// through transform.
func (o *OnceSupplier[T]) Map(transform TransformerOnce[T, T]) *OnceSupplier[T] {
	return MapSupplierOnce(o, transform)
}

// MapSupplierOnce is OnceSupplier.Map for a transform of another type.
func MapSupplierOnce[T, U any](o *OnceSupplier[T], transform TransformerOnce[T, U]) *OnceSupplier[U] {
	fn, err := o.take()
	must(err)
	call := takeOperand[func(T) U](transform, transform.ApplyOnce)
	return NewSupplierOnce(func() U {
		return call(fn())
	})
}
