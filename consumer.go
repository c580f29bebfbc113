package purefunc

// Consumer observes a value without changing it but may accumulate state of
// its own (counters, collectors, sinks).
type Consumer[T any] interface {
	Accept(v T)
}

// ConsumerFunc adapts a func(T) to Consumer. It is the exclusive variant.
//
// Example:
//
//	var seen []string
//	collect := ConsumerFunc[string](func(s string) { seen = append(seen, s) })
//	collect.AndThen(logLine).Accept("ready")
type ConsumerFunc[T any] func(v T)

// Accept implements Consumer.
func (f ConsumerFunc[T]) Accept(v T) {
	f(v)
}

// AcceptOnce implements ConsumerOnce.
func (f ConsumerFunc[T]) AcceptOnce(v T) {
	f(v)
}

// AndThen passes each value to f, then to next.
func (f ConsumerFunc[T]) AndThen(next Consumer[T]) ConsumerFunc[T] {
	return func(v T) {
		f(v)
		next.Accept(v)
	}
}

// ToFunc returns f.
func (f ConsumerFunc[T]) ToFunc() ConsumerFunc[T] {
	return f
}

// ToSync moves f behind a lock.
func (f ConsumerFunc[T]) ToSync() SyncConsumer[T] {
	return NewSyncConsumer[T](f)
}

// ToLocal moves f behind a reentrancy check.
func (f ConsumerFunc[T]) ToLocal() LocalConsumer[T] {
	return NewLocalConsumer[T](f)
}

// IntoOnce wraps f so it can accept a single value.
func (f ConsumerFunc[T]) IntoOnce() *OnceConsumer[T] {
	return NewConsumerOnce[T](f)
}

// ============================================================================
// SyncConsumer
// ============================================================================

// SyncConsumer is a Consumer handle usable from any number of goroutines.
type SyncConsumer[T any] struct {
	guards syncGuards
	fn     func(T)
}

// NewSyncConsumer wraps fn behind a new lock.
func NewSyncConsumer[T any](fn func(T)) SyncConsumer[T] {
	return SyncConsumer[T]{guards: newSyncGuards(), fn: fn}
}

func (c SyncConsumer[T]) syncParts() (syncGuards, func(T)) {
	return c.guards, c.fn
}

// Accept implements Consumer. It panics with ErrPoisoned if an earlier call
// panicked while holding the lock.
func (c SyncConsumer[T]) Accept(v T) {
	must(c.TryAccept(v))
}

// TryAccept is Accept reporting a poisoned lock as an error.
func (c SyncConsumer[T]) TryAccept(v T) error {
	return c.guards.run(func() {
		c.fn(v)
	})
}

// AndThen passes each value to c, then to next. A SyncConsumer next shares
// the call's locks; c and next stay usable.
func (c SyncConsumer[T]) AndThen(next Consumer[T]) SyncConsumer[T] {
	guards, call := c.guards, next.Accept
	if s, ok := next.(syncGuarded[func(T)]); ok {
		var g syncGuards
		g, call = s.syncParts()
		guards = guards.merge(g)
	}
	fn := c.fn
	return SyncConsumer[T]{guards: guards, fn: func(v T) {
		fn(v)
		call(v)
	}}
}

// Clone returns a second handle sharing c's closure and lock.
func (c SyncConsumer[T]) Clone() SyncConsumer[T] {
	return c
}

// Poisoned reports whether a panicking call left c's lock poisoned.
func (c SyncConsumer[T]) Poisoned() bool {
	return c.guards.poisoned()
}

// ClearPoison makes c callable again after a panic.
func (c SyncConsumer[T]) ClearPoison() {
	c.guards.clearPoison()
}

// ToFunc returns a ConsumerFunc that calls through c's lock.
func (c SyncConsumer[T]) ToFunc() ConsumerFunc[T] {
	return c.Accept
}

// ToSync returns c.
func (c SyncConsumer[T]) ToSync() SyncConsumer[T] {
	return c
}

// ToLocal returns a local handle that calls through c's lock.
func (c SyncConsumer[T]) ToLocal() LocalConsumer[T] {
	return NewLocalConsumer(c.Accept)
}

// IntoOnce wraps c so it can accept a single value.
func (c SyncConsumer[T]) IntoOnce() *OnceConsumer[T] {
	return NewConsumerOnce(c.Accept)
}

// ============================================================================
// LocalConsumer
// ============================================================================

// LocalConsumer is a Consumer handle shared within one goroutine.
// Going through ToFunc().ToSync() drops the single-goroutine guarantee;
// only do so for a closure that is safe for concurrent use.
type LocalConsumer[T any] struct {
	guards localGuards
	fn     func(T)
}

// NewLocalConsumer wraps fn behind a new reentrancy check.
func NewLocalConsumer[T any](fn func(T)) LocalConsumer[T] {
	return LocalConsumer[T]{guards: newLocalGuards(), fn: fn}
}

func (c LocalConsumer[T]) localParts() (localGuards, func(T)) {
	return c.guards, c.fn
}

// Accept implements Consumer. It panics with ErrReentrant if c is already
// running.
func (c LocalConsumer[T]) Accept(v T) {
	must(c.TryAccept(v))
}

// TryAccept is Accept reporting reentry as an error.
func (c LocalConsumer[T]) TryAccept(v T) error {
	return c.guards.run(func() {
		c.fn(v)
	})
}

// AndThen passes each value to c, then to next; c and next stay usable.
func (c LocalConsumer[T]) AndThen(next Consumer[T]) LocalConsumer[T] {
	guards, call := c.guards, next.Accept
	if l, ok := next.(localGuarded[func(T)]); ok {
		var g localGuards
		g, call = l.localParts()
		guards = guards.merge(g)
	}
	fn := c.fn
	return LocalConsumer[T]{guards: guards, fn: func(v T) {
		fn(v)
		call(v)
	}}
}

// Clone returns a second handle sharing c's closure and check.
func (c LocalConsumer[T]) Clone() LocalConsumer[T] {
	return c
}

// Active reports whether c is currently running.
func (c LocalConsumer[T]) Active() bool {
	return c.guards.active()
}

// ToFunc returns a ConsumerFunc that calls through c's check.
func (c LocalConsumer[T]) ToFunc() ConsumerFunc[T] {
	return c.Accept
}

// ToLocal returns c.
func (c LocalConsumer[T]) ToLocal() LocalConsumer[T] {
	return c
}

// IntoOnce wraps c so it can accept a single value.
func (c LocalConsumer[T]) IntoOnce() *OnceConsumer[T] {
	return NewConsumerOnce(c.Accept)
}

// ============================================================================
// Once variant
// ============================================================================

// ConsumerOnce accepts at most one value.
type ConsumerOnce[T any] interface {
	AcceptOnce(v T)
}

// OnceConsumer is the exclusive ConsumerOnce.
type OnceConsumer[T any] struct {
	onceFlag
	fn func(T)
}

// NewConsumerOnce wraps fn.
func NewConsumerOnce[T any](fn func(T)) *OnceConsumer[T] {
	return &OnceConsumer[T]{fn: fn}
}

func (o *OnceConsumer[T]) take() (func(T), error) {
	if err := o.onceFlag.take(); err != nil {
		return nil, err
	}
	fn := o.fn
	o.fn = nil
	return fn, nil
}

// AcceptOnce implements ConsumerOnce. A second call panics with ErrConsumed.
func (o *OnceConsumer[T]) AcceptOnce(v T) {
	fn, err := o.take()
	must(err)
	fn(v)
}

// TryAcceptOnce is AcceptOnce reporting reuse as ErrConsumed.
func (o *OnceConsumer[T]) TryAcceptOnce(v T) error {
	fn, err := o.take()
	if err != nil {
		return err
	}
	fn(v)
	return nil
}

// AndThen spends o and returns a single-use consumer that passes the value
// to o, then to next. If next is itself a OnceConsumer it is spent too.
func (o *OnceConsumer[T]) AndThen(next ConsumerOnce[T]) *OnceConsumer[T] {
	fn, err := o.take()
	must(err)
	call := takeOperand[func(T)](next, next.AcceptOnce)
	return NewConsumerOnce(func(v T) {
		fn(v)
		call(v)
	})
}
