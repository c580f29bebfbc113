package purefunc

// ReadonlyConsumer observes a value and changes nothing, not even its own
// state. Its shared variants take no lock.
type ReadonlyConsumer[T any] interface {
	Observe(v T)
}

// ReadonlyConsumerFunc adapts a func(T) to ReadonlyConsumer.
type ReadonlyConsumerFunc[T any] func(v T)

// Observe implements ReadonlyConsumer.
func (f ReadonlyConsumerFunc[T]) Observe(v T) {
	f(v)
}

// Accept implements Consumer.
func (f ReadonlyConsumerFunc[T]) Accept(v T) {
	f(v)
}

// AndThen passes each value to f, then to next.
func (f ReadonlyConsumerFunc[T]) AndThen(next ReadonlyConsumer[T]) ReadonlyConsumerFunc[T] {
	return func(v T) {
		f(v)
		next.Observe(v)
	}
}

// ToFunc returns f.
func (f ReadonlyConsumerFunc[T]) ToFunc() ReadonlyConsumerFunc[T] {
	return f
}

// ToSync shares f across goroutines.
func (f ReadonlyConsumerFunc[T]) ToSync() SyncReadonlyConsumer[T] {
	return NewSyncReadonlyConsumer[T](f)
}

// ToLocal shares f within one goroutine.
func (f ReadonlyConsumerFunc[T]) ToLocal() LocalReadonlyConsumer[T] {
	return NewLocalReadonlyConsumer[T](f)
}

// IntoOnce wraps f so it can observe a single value.
func (f ReadonlyConsumerFunc[T]) IntoOnce() *OnceConsumer[T] {
	return NewConsumerOnce[T](f)
}

// SyncReadonlyConsumer is a ReadonlyConsumer handle usable from any number
// of goroutines.
type SyncReadonlyConsumer[T any] struct {
	fn func(T)
}

// NewSyncReadonlyConsumer wraps fn. fn must be safe for concurrent use.
func NewSyncReadonlyConsumer[T any](fn func(T)) SyncReadonlyConsumer[T] {
	return SyncReadonlyConsumer[T]{fn: fn}
}

// Observe implements ReadonlyConsumer.
func (c SyncReadonlyConsumer[T]) Observe(v T) {
	c.fn(v)
}

// Accept implements Consumer.
func (c SyncReadonlyConsumer[T]) Accept(v T) {
	c.fn(v)
}

// AndThen passes each value to c, then to next; c and next stay usable.
func (c SyncReadonlyConsumer[T]) AndThen(next ReadonlyConsumer[T]) SyncReadonlyConsumer[T] {
	return SyncReadonlyConsumer[T]{fn: ReadonlyConsumerFunc[T](c.fn).AndThen(next)}
}

// Clone returns a second handle to the same closure.
func (c SyncReadonlyConsumer[T]) Clone() SyncReadonlyConsumer[T] {
	return c
}

// ToFunc unwraps the handle.
func (c SyncReadonlyConsumer[T]) ToFunc() ReadonlyConsumerFunc[T] {
	return c.fn
}

// ToSync returns c.
func (c SyncReadonlyConsumer[T]) ToSync() SyncReadonlyConsumer[T] {
	return c
}

// ToLocal returns a goroutine-local handle to the same closure.
func (c SyncReadonlyConsumer[T]) ToLocal() LocalReadonlyConsumer[T] {
	return LocalReadonlyConsumer[T]{fn: c.fn}
}

// IntoOnce wraps c so it can observe a single value.
func (c SyncReadonlyConsumer[T]) IntoOnce() *OnceConsumer[T] {
	return NewConsumerOnce(c.fn)
}

// LocalReadonlyConsumer is a ReadonlyConsumer handle shared within one
// goroutine.
// Going through ToFunc().ToSync() drops the single-goroutine guarantee;
// only do so for a closure that is safe for concurrent use.
type LocalReadonlyConsumer[T any] struct {
	fn func(T)
}

// NewLocalReadonlyConsumer wraps fn.
func NewLocalReadonlyConsumer[T any](fn func(T)) LocalReadonlyConsumer[T] {
	return LocalReadonlyConsumer[T]{fn: fn}
}

// Observe implements ReadonlyConsumer.
func (c LocalReadonlyConsumer[T]) Observe(v T) {
	c.fn(v)
}

// Accept implements Consumer.
func (c LocalReadonlyConsumer[T]) Accept(v T) {
	c.fn(v)
}

// AndThen passes each value to c, then to next; c and next stay usable.
func (c LocalReadonlyConsumer[T]) AndThen(next ReadonlyConsumer[T]) LocalReadonlyConsumer[T] {
	return LocalReadonlyConsumer[T]{fn: ReadonlyConsumerFunc[T](c.fn).AndThen(next)}
}

// Clone returns a second handle to the same closure.
func (c LocalReadonlyConsumer[T]) Clone() LocalReadonlyConsumer[T] {
	return c
}

// ToFunc unwraps the handle.
func (c LocalReadonlyConsumer[T]) ToFunc() ReadonlyConsumerFunc[T] {
	return c.fn
}

// ToLocal returns c.
func (c LocalReadonlyConsumer[T]) ToLocal() LocalReadonlyConsumer[T] {
	return c
}

// IntoOnce wraps c so it can observe a single value.
func (c LocalReadonlyConsumer[T]) IntoOnce() *OnceConsumer[T] {
	return NewConsumerOnce(c.fn)
}
