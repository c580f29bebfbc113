package purefunc

// Transformer is a pure conversion that takes ownership of its input and
// returns a new value.
type Transformer[T, R any] interface {
	Apply(v T) R
}

// TransformerFunc adapts a func(T) R to Transformer. It is the exclusive
// variant.
//
// Example:
//
//	parse := TransformerFunc[string, int](func(s string) int {
//	    n, err := strconv.Atoi(s)
//	    if err != nil {
//	        return 0
//	    }
//	    return n
//	})
//	parse.AndThen(TransformerFunc[int, int](func(n int) int { return n * 2 })).Apply("21") // 42
type TransformerFunc[T, R any] func(v T) R

// Apply implements Transformer.
func (f TransformerFunc[T, R]) Apply(v T) R {
	return f(v)
}

// Map implements Mapper; a pure transformer is a valid stateful one.
func (f TransformerFunc[T, R]) Map(v T) R {
	return f(v)
}

// ApplyOnce implements TransformerOnce; a reusable transformer may stand in
// wherever a single-use one is expected.
func (f TransformerFunc[T, R]) ApplyOnce(v T) R {
	return f(v)
}

// AndThen feeds the result of f into next. Use Then when next changes the
// result type.
func (f TransformerFunc[T, R]) AndThen(next Transformer[R, R]) TransformerFunc[T, R] {
	return func(v T) R {
		return next.Apply(f(v))
	}
}

// Compose runs before on the input and feeds its result into f.
func (f TransformerFunc[T, R]) Compose(before Transformer[T, T]) TransformerFunc[T, R] {
	return func(v T) R {
		return f(before.Apply(v))
	}
}

// ToFunc returns f.
func (f TransformerFunc[T, R]) ToFunc() TransformerFunc[T, R] {
	return f
}

// ToSync shares f across goroutines.
func (f TransformerFunc[T, R]) ToSync() SyncTransformer[T, R] {
	return NewSyncTransformer[T, R](f)
}

// ToLocal shares f within one goroutine.
func (f TransformerFunc[T, R]) ToLocal() LocalTransformer[T, R] {
	return NewLocalTransformer[T, R](f)
}

// IntoOnce wraps f so it can be applied a single time.
func (f TransformerFunc[T, R]) IntoOnce() *OnceTransformer[T, R] {
	return NewTransformerOnce[T, R](f)
}

// Then chains two transformers whose types differ.
func Then[T, R, U any](first Transformer[T, R], second Transformer[R, U]) TransformerFunc[T, U] {
	return func(v T) U {
		return second.Apply(first.Apply(v))
	}
}

// Identity returns the transformer that returns its input.
func Identity[T any]() TransformerFunc[T, T] {
	return func(v T) T { return v }
}

// ============================================================================
// Shared variants
// ============================================================================

// SyncTransformer is a Transformer handle usable from any number of
// goroutines. Transformers are pure, so invocation takes no lock.
type SyncTransformer[T, R any] struct {
	fn func(T) R
}

// NewSyncTransformer wraps fn. fn must be safe for concurrent use.
func NewSyncTransformer[T, R any](fn func(T) R) SyncTransformer[T, R] {
	return SyncTransformer[T, R]{fn: fn}
}

// Apply implements Transformer.
func (t SyncTransformer[T, R]) Apply(v T) R {
	return t.fn(v)
}

// Map implements Mapper.
func (t SyncTransformer[T, R]) Map(v T) R {
	return t.fn(v)
}

// AndThen feeds the result of t into next; t and next stay usable.
func (t SyncTransformer[T, R]) AndThen(next Transformer[R, R]) SyncTransformer[T, R] {
	return SyncTransformer[T, R]{fn: TransformerFunc[T, R](t.fn).AndThen(next)}
}

// Compose runs before on the input and feeds its result into t.
func (t SyncTransformer[T, R]) Compose(before Transformer[T, T]) SyncTransformer[T, R] {
	return SyncTransformer[T, R]{fn: TransformerFunc[T, R](t.fn).Compose(before)}
}

// Clone returns a second handle to the same closure.
func (t SyncTransformer[T, R]) Clone() SyncTransformer[T, R] {
	return t
}

// ToFunc unwraps the handle.
func (t SyncTransformer[T, R]) ToFunc() TransformerFunc[T, R] {
	return t.fn
}

// ToSync returns t.
func (t SyncTransformer[T, R]) ToSync() SyncTransformer[T, R] {
	return t
}

// ToLocal returns a goroutine-local handle to the same closure.
func (t SyncTransformer[T, R]) ToLocal() LocalTransformer[T, R] {
	return LocalTransformer[T, R]{fn: t.fn}
}

// IntoOnce wraps t so it can be applied a single time.
func (t SyncTransformer[T, R]) IntoOnce() *OnceTransformer[T, R] {
	return NewTransformerOnce(t.fn)
}

// LocalTransformer is a Transformer handle shared within a single goroutine.
// Going through ToFunc().ToSync() drops the single-goroutine guarantee;
// only do so for a closure that is safe for concurrent use.
type LocalTransformer[T, R any] struct {
	fn func(T) R
}

// NewLocalTransformer wraps fn.
func NewLocalTransformer[T, R any](fn func(T) R) LocalTransformer[T, R] {
	return LocalTransformer[T, R]{fn: fn}
}

// Apply implements Transformer.
func (t LocalTransformer[T, R]) Apply(v T) R {
	return t.fn(v)
}

// Map implements Mapper.
func (t LocalTransformer[T, R]) Map(v T) R {
	return t.fn(v)
}

// AndThen feeds the result of t into next; t and next stay usable.
func (t LocalTransformer[T, R]) AndThen(next Transformer[R, R]) LocalTransformer[T, R] {
	return LocalTransformer[T, R]{fn: TransformerFunc[T, R](t.fn).AndThen(next)}
}

// Compose runs before on the input and feeds its result into t.
func (t LocalTransformer[T, R]) Compose(before Transformer[T, T]) LocalTransformer[T, R] {
	return LocalTransformer[T, R]{fn: TransformerFunc[T, R](t.fn).Compose(before)}
}

// Clone returns a second handle to the same closure.
func (t LocalTransformer[T, R]) Clone() LocalTransformer[T, R] {
	return t
}

// ToFunc unwraps the handle.
func (t LocalTransformer[T, R]) ToFunc() TransformerFunc[T, R] {
	return t.fn
}

// ToLocal returns t.
func (t LocalTransformer[T, R]) ToLocal() LocalTransformer[T, R] {
	return t
}

// IntoOnce wraps t so it can be applied a single time.
func (t LocalTransformer[T, R]) IntoOnce() *OnceTransformer[T, R] {
	return NewTransformerOnce(t.fn)
}

// ============================================================================
// Once variant
// ============================================================================

// TransformerOnce is a transformer that may be applied at most once, for
// closures that hand over a resource they cannot duplicate.
type TransformerOnce[T, R any] interface {
	ApplyOnce(v T) R
}

// OnceTransformer is the exclusive TransformerOnce. Applying or composing
// it spends it; further use panics with ErrConsumed, or returns it from
// TryApplyOnce.
type OnceTransformer[T, R any] struct {
	onceFlag
	fn func(T) R
}

// NewTransformerOnce wraps fn.
func NewTransformerOnce[T, R any](fn func(T) R) *OnceTransformer[T, R] {
	return &OnceTransformer[T, R]{fn: fn}
}

// take spends o and hands out its closure.
func (o *OnceTransformer[T, R]) take() (func(T) R, error) {
	if err := o.onceFlag.take(); err != nil {
		return nil, err
	}
	fn := o.fn
	o.fn = nil
	return fn, nil
}

// ApplyOnce implements TransformerOnce.
func (o *OnceTransformer[T, R]) ApplyOnce(v T) R {
	fn, err := o.take()
	must(err)
	return fn(v)
}

// TryApplyOnce is ApplyOnce reporting reuse as ErrConsumed.
func (o *OnceTransformer[T, R]) TryApplyOnce(v T) (R, error) {
	fn, err := o.take()
	if err != nil {
		var zero R
		return zero, err
	}
	return fn(v), nil
}

// AndThen spends o and returns a single-use transformer that feeds o's
// result into next. If next is itself a OnceTransformer it is spent too.
func (o *OnceTransformer[T, R]) AndThen(next TransformerOnce[R, R]) *OnceTransformer[T, R] {
	fn, err := o.take()
	must(err)
	call := takeOperand[func(R) R](next, next.ApplyOnce)
	return NewTransformerOnce(func(v T) R {
		return call(fn(v))
	})
}

// ThenOnce spends first and chains it with a second single-use transformer
// of a different result type.
func ThenOnce[T, R, U any](first *OnceTransformer[T, R], second TransformerOnce[R, U]) *OnceTransformer[T, U] {
	fn, err := first.take()
	must(err)
	call := takeOperand[func(R) U](second, second.ApplyOnce)
	return NewTransformerOnce(func(v T) U {
		return call(fn(v))
	})
}
