package purefunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

// counting wraps p and counts how often it runs.
func counting[T any](p PredicateFunc[T], calls *int) PredicateFunc[T] {
	return func(v T) bool {
		*calls++
		return p(v)
	}
}

// ============================================================================
// PredicateFunc Tests
// ============================================================================

func TestPredicateFunc_And_ShortCircuits(t *testing.T) {
	calls := 0
	second := counting(Always[int](), &calls)

	assert.False(t, Never[int]().And(second).Test(1))
	assert.Equal(t, 0, calls)

	assert.True(t, Always[int]().And(second).Test(1))
	assert.Equal(t, 1, calls)
}

func TestPredicateFunc_Or_ShortCircuits(t *testing.T) {
	calls := 0
	second := counting(Never[int](), &calls)

	assert.True(t, Always[int]().Or(second).Test(1))
	assert.Equal(t, 0, calls)

	assert.False(t, Never[int]().Or(second).Test(1))
	assert.Equal(t, 1, calls)
}

func TestPredicateFunc_NotXor(t *testing.T) {
	positive := PredicateFunc[int](func(n int) bool { return n > 0 })

	assert.True(t, positive.Not().Test(-1))
	assert.False(t, positive.Not().Test(1))

	tests := []struct {
		n    int
		want bool
	}{
		{n: 2, want: false},
		{n: 3, want: true},
		{n: -2, want: true},
		{n: -3, want: false},
	}
	xor := positive.Xor(isEven)
	for _, tt := range tests {
		assert.Equal(t, tt.want, xor.Test(tt.n), "n=%d", tt.n)
	}
}

func TestPredicateFunc_Bind(t *testing.T) {
	assert.True(t, isEven.Bind(4).Test())
	assert.False(t, isEven.Bind(5).Test())
}

// ============================================================================
// Shared Predicate Tests
// ============================================================================

func TestSyncPredicate_And(t *testing.T) {
	gtZero := NewSyncPredicate(func(n int) bool { return n > 0 })
	isEvenShared := NewSyncPredicate(func(n int) bool { return n%2 == 0 })
	both := gtZero.And(isEvenShared)

	assert.True(t, both.Test(4))
	assert.False(t, both.Test(-4))
	assert.False(t, both.Test(3))

	assert.True(t, gtZero.Test(3))
	assert.False(t, gtZero.Test(-4))
	assert.True(t, isEvenShared.Test(-4))
	assert.False(t, isEvenShared.Test(3))
}

func TestSyncPredicate_Concurrent(t *testing.T) {
	inRange := NewSyncPredicate(func(n int) bool { return n >= 10 }).
		And(NewSyncPredicate(func(n int) bool { return n < 20 })).
		Or(NewSyncPredicate(func(n int) bool { return n == 99 }))

	results := make([]bool, 100)
	var g errgroup.Group
	for i := range results {
		i := i // per-iteration copy (go 1.21 loop semantics)
		p := inRange.Clone()
		g.Go(func() error {
			results[i] = p.Test(i)
			return nil
		})
	}
	assert.NoError(t, g.Wait())

	for i, got := range results {
		want := (i >= 10 && i < 20) || i == 99
		assert.Equal(t, want, got, "n=%d", i)
	}
}

func TestSyncPredicate_Conversions(t *testing.T) {
	p := isEven.ToSync()

	assert.True(t, p.ToSync().Test(2))
	assert.True(t, p.ToLocal().Test(2))
	assert.True(t, p.ToFunc().Test(2))
	assert.True(t, p.Not().Test(3))
	assert.True(t, p.Xor(Never[int]()).Test(2))
	assert.True(t, p.Or(Never[int]()).Test(2))
}

func TestLocalPredicate_Combinators(t *testing.T) {
	calls := 0
	counted := counting(PredicateFunc[int](func(n int) bool { return n > 100 }), &calls).ToLocal()
	small := NewLocalPredicate(func(n int) bool { return n < 10 })

	either := small.Or(counted)
	assert.True(t, either.Test(5))
	assert.Equal(t, 0, calls)
	assert.True(t, either.Test(500))
	assert.Equal(t, 1, calls)

	assert.False(t, small.And(counted).Test(50))
	assert.Equal(t, 1, calls)
	assert.True(t, small.Not().Test(50))
	assert.False(t, small.Xor(counted).Test(50))
	assert.True(t, small.Clone().ToLocal().ToFunc().Test(1))
}
