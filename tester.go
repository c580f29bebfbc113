package purefunc

// Tester is a pure zero-argument judgment. Test must not change any state
// observable by the caller.
type Tester interface {
	Test() bool
}

// TesterFunc adapts a func() bool to Tester.
// It is the exclusive variant: every combinator returns a new TesterFunc.
//
// Example:
//
//	ready := TesterFunc(func() bool { return cache.Loaded() }).
//	    And(TesterFunc(func() bool { return !shuttingDown.Load() }))
type TesterFunc func() bool

// Test implements Tester.
func (f TesterFunc) Test() bool {
	return f()
}

// And returns a tester that holds when both hold. other is not called if f
// reports false.
func (f TesterFunc) And(other Tester) TesterFunc {
	return func() bool {
		return f() && other.Test()
	}
}

// Or returns a tester that holds when either holds. other is not called if
// f reports true.
func (f TesterFunc) Or(other Tester) TesterFunc {
	return func() bool {
		return f() || other.Test()
	}
}

// Not negates the tester.
func (f TesterFunc) Not() TesterFunc {
	return func() bool {
		return !f()
	}
}

// Xor holds when exactly one of the two holds. Both are always called.
func (f TesterFunc) Xor(other Tester) TesterFunc {
	return func() bool {
		return f() != other.Test()
	}
}

// ToFunc returns f.
func (f TesterFunc) ToFunc() TesterFunc {
	return f
}

// ToSync shares f across goroutines.
func (f TesterFunc) ToSync() SyncTester {
	return NewSyncTester(f)
}

// ToLocal shares f within one goroutine.
func (f TesterFunc) ToLocal() LocalTester {
	return NewLocalTester(f)
}

// SyncTester is a Tester handle that may be copied and used from any number
// of goroutines. Testers are read-only, so no lock is taken.
type SyncTester struct {
	fn func() bool
}

// NewSyncTester wraps fn. fn must be safe for concurrent use.
func NewSyncTester(fn func() bool) SyncTester {
	return SyncTester{fn: fn}
}

// Test implements Tester.
func (t SyncTester) Test() bool {
	return t.fn()
}

// And is the short-circuit conjunction; t stays usable.
func (t SyncTester) And(other Tester) SyncTester {
	return SyncTester{fn: TesterFunc(t.fn).And(other)}
}

// Or is the short-circuit disjunction; t stays usable.
func (t SyncTester) Or(other Tester) SyncTester {
	return SyncTester{fn: TesterFunc(t.fn).Or(other)}
}

// Not negates t.
func (t SyncTester) Not() SyncTester {
	return SyncTester{fn: TesterFunc(t.fn).Not()}
}

// Xor holds when exactly one of t and other holds.
func (t SyncTester) Xor(other Tester) SyncTester {
	return SyncTester{fn: TesterFunc(t.fn).Xor(other)}
}

// Clone returns a second handle to the same closure.
func (t SyncTester) Clone() SyncTester {
	return t
}

// ToFunc unwraps the handle.
func (t SyncTester) ToFunc() TesterFunc {
	return t.fn
}

// ToSync returns t.
func (t SyncTester) ToSync() SyncTester {
	return t
}

// ToLocal returns a goroutine-local handle to the same closure.
func (t SyncTester) ToLocal() LocalTester {
	return LocalTester{fn: t.fn}
}

// LocalTester is a Tester handle shared within a single goroutine.
// There is no ToSync: a local closure is not promised to be safe for
// concurrent use.
// ToFunc().ToSync() still gets there, and drops the single-goroutine
// guarantee on the way.
type LocalTester struct {
	fn func() bool
}

// NewLocalTester wraps fn.
func NewLocalTester(fn func() bool) LocalTester {
	return LocalTester{fn: fn}
}

// Test implements Tester.
func (t LocalTester) Test() bool {
	return t.fn()
}

// And is the short-circuit conjunction; t stays usable.
func (t LocalTester) And(other Tester) LocalTester {
	return LocalTester{fn: TesterFunc(t.fn).And(other)}
}

// Or is the short-circuit disjunction; t stays usable.
func (t LocalTester) Or(other Tester) LocalTester {
	return LocalTester{fn: TesterFunc(t.fn).Or(other)}
}

// Not negates t.
func (t LocalTester) Not() LocalTester {
	return LocalTester{fn: TesterFunc(t.fn).Not()}
}

// Xor holds when exactly one of t and other holds.
func (t LocalTester) Xor(other Tester) LocalTester {
	return LocalTester{fn: TesterFunc(t.fn).Xor(other)}
}

// Clone returns a second handle to the same closure.
func (t LocalTester) Clone() LocalTester {
	return t
}

// ToFunc unwraps the handle.
func (t LocalTester) ToFunc() TesterFunc {
	return t.fn
}

// ToLocal returns t.
func (t LocalTester) ToLocal() LocalTester {
	return t
}
