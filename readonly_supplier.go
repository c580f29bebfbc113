package purefunc

// ReadonlySupplier produces values without changing any state. Its shared
// variants take no lock, which makes them the cheap choice under
// contention.
type ReadonlySupplier[T any] interface {
	Value() T
}

// ReadonlySupplierFunc adapts a func() T to ReadonlySupplier.
type ReadonlySupplierFunc[T any] func() T

// Value implements ReadonlySupplier.
func (f ReadonlySupplierFunc[T]) Value() T {
	return f()
}

// Get implements Supplier.
func (f ReadonlySupplierFunc[T]) Get() T {
	return f()
}

// Map passes every produced value through transform.
func (f ReadonlySupplierFunc[T]) Map(transform Transformer[T, T]) ReadonlySupplierFunc[T] {
	return func() T {
		return transform.Apply(f())
	}
}

// ToFunc returns f.
func (f ReadonlySupplierFunc[T]) ToFunc() ReadonlySupplierFunc[T] {
	return f
}

// ToSync shares f across goroutines.
func (f ReadonlySupplierFunc[T]) ToSync() SyncReadonlySupplier[T] {
	return NewSyncReadonlySupplier[T](f)
}

// ToLocal shares f within one goroutine.
func (f ReadonlySupplierFunc[T]) ToLocal() LocalReadonlySupplier[T] {
	return NewLocalReadonlySupplier[T](f)
}

// IntoOnce wraps f so it can produce a single value.
func (f ReadonlySupplierFunc[T]) IntoOnce() *OnceSupplier[T] {
	return NewSupplierOnce[T](f)
}

// Constant returns a supplier that always yields v.
func Constant[T any](v T) ReadonlySupplierFunc[T] {
	return func() T { return v }
}

// MapReadonlySupplier passes every value of s through a transform of
// another type.
func MapReadonlySupplier[T, U any](s ReadonlySupplier[T], transform Transformer[T, U]) ReadonlySupplierFunc[U] {
	return func() U {
		return transform.Apply(s.Value())
	}
}

// SyncReadonlySupplier is a ReadonlySupplier handle usable from any number
// of goroutines without locking.
type SyncReadonlySupplier[T any] struct {
	fn func() T
}

// NewSyncReadonlySupplier wraps fn. fn must be safe for concurrent use.
func NewSyncReadonlySupplier[T any](fn func() T) SyncReadonlySupplier[T] {
	return SyncReadonlySupplier[T]{fn: fn}
}

// Value implements ReadonlySupplier.
func (s SyncReadonlySupplier[T]) Value() T {
	return s.fn()
}

// Get implements Supplier.
func (s SyncReadonlySupplier[T]) Get() T {
	return s.fn()
}

// Map passes every produced value through transform; s stays usable.
func (s SyncReadonlySupplier[T]) Map(transform Transformer[T, T]) SyncReadonlySupplier[T] {
	return SyncReadonlySupplier[T]{fn: ReadonlySupplierFunc[T](s.fn).Map(transform)}
}

// Clone returns a second handle to the same closure.
func (s SyncReadonlySupplier[T]) Clone() SyncReadonlySupplier[T] {
	return s
}

// ToFunc unwraps the handle.
func (s SyncReadonlySupplier[T]) ToFunc() ReadonlySupplierFunc[T] {
	return s.fn
}

// ToSync returns s.
func (s SyncReadonlySupplier[T]) ToSync() SyncReadonlySupplier[T] {
	return s
}

// ToLocal returns a goroutine-local handle to the same closure.
func (s SyncReadonlySupplier[T]) ToLocal() LocalReadonlySupplier[T] {
	return LocalReadonlySupplier[T]{fn: s.fn}
}

// IntoOnce wraps s so it can produce a single value.
func (s SyncReadonlySupplier[T]) IntoOnce() *OnceSupplier[T] {
	return NewSupplierOnce(s.fn)
}

// LocalReadonlySupplier is a ReadonlySupplier handle shared within one
// goroutine.
// Going through ToFunc().ToSync() drops the single-goroutine guarantee;
// only do so for a closure that is safe for concurrent use.
type LocalReadonlySupplier[T any] struct {
	fn func() T
}

// NewLocalReadonlySupplier wraps fn.
func NewLocalReadonlySupplier[T any](fn func() T) LocalReadonlySupplier[T] {
	return LocalReadonlySupplier[T]{fn: fn}
}

// Value implements ReadonlySupplier.
func (s LocalReadonlySupplier[T]) Value() T {
	return s.fn()
}

// Get implements Supplier.
func (s LocalReadonlySupplier[T]) Get() T {
	return s.fn()
}

// Map passes every produced value through transform; s stays usable.
func (s LocalReadonlySupplier[T]) Map(transform Transformer[T, T]) LocalReadonlySupplier[T] {
	return LocalReadonlySupplier[T]{fn: ReadonlySupplierFunc[T](s.fn).Map(transform)}
}

// Clone returns a second handle to the same closure.
func (s LocalReadonlySupplier[T]) Clone() LocalReadonlySupplier[T] {
	return s
}

// ToFunc unwraps the handle.
func (s LocalReadonlySupplier[T]) ToFunc() ReadonlySupplierFunc[T] {
	return s.fn
}

// ToLocal returns s.
func (s LocalReadonlySupplier[T]) ToLocal() LocalReadonlySupplier[T] {
	return s
}

// IntoOnce wraps s so it can produce a single value.
func (s LocalReadonlySupplier[T]) IntoOnce() *OnceSupplier[T] {
	return NewSupplierOnce(s.fn)
}
