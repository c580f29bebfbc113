package purefunc

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCompositionLaws(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	gtZero := PredicateFunc[int](func(n int) bool { return n > 0 })
	div3 := PredicateFunc[int](func(n int) bool { return n%3 == 0 })

	properties.Property("not(a and b) equals not(a) or not(b)", prop.ForAll(
		func(n int) bool {
			return gtZero.And(div3).Not().Test(n) == gtZero.Not().Or(div3.Not()).Test(n)
		},
		gen.Int(),
	))

	properties.Property("xor matches inequality", prop.ForAll(
		func(n int) bool {
			return gtZero.Xor(div3).Test(n) == (gtZero(n) != div3(n))
		},
		gen.Int(),
	))

	properties.Property("shared and local predicates agree with the closure", prop.ForAll(
		func(n int) bool {
			want := gtZero.And(div3).Test(n)
			return gtZero.ToSync().And(div3.ToSync()).Test(n) == want &&
				gtZero.ToLocal().And(div3.ToLocal()).Test(n) == want
		},
		gen.Int(),
	))

	properties.Property("and skips the right side when the left is false", prop.ForAll(
		func(n int) bool {
			calls := 0
			gtZero.And(counting(div3, &calls)).Test(n)
			return (calls == 1) == (n > 0)
		},
		gen.Int(),
	))

	properties.Property("transformer chain applies left to right", prop.ForAll(
		func(n int) bool {
			add := TransformerFunc[int, int](func(v int) int { return v + 7 })
			mul := TransformerFunc[int, int](func(v int) int { return v * 3 })
			return add.AndThen(mul).Apply(n) == (n+7)*3 &&
				add.Compose(mul).Apply(n) == n*3+7
		},
		gen.IntRange(-1_000_000, 1_000_000),
	))

	properties.Property("mutator branch runs exactly one arm", prop.ForAll(
		func(n int) bool {
			thenCalls, elseCalls := 0, 0
			m := MutatorFunc[int](func(v *int) { thenCalls++; *v /= 2 }).
				When(PredicateFunc[int](func(v int) bool { return v%2 == 0 })).
				OrElse(MutatorFunc[int](func(v *int) { elseCalls++; *v = 3*(*v) + 1 }))

			v := n
			m.Mutate(&v)
			if n%2 == 0 {
				return thenCalls == 1 && elseCalls == 0 && v == n/2
			}
			return thenCalls == 0 && elseCalls == 1 && v == 3*n+1
		},
		gen.IntRange(-1_000_000, 1_000_000),
	))

	properties.Property("sync mutator chain matches the closure chain", prop.ForAll(
		func(a, b int) bool {
			double := MutatorFunc[int](func(v *int) { *v *= 2 })
			shift := MutatorFunc[int](func(v *int) { *v += b })

			want, got := a, a
			double.AndThen(shift).Mutate(&want)
			double.ToSync().AndThen(shift.ToSync()).Mutate(&got)
			return want == got
		},
		gen.IntRange(-1_000_000, 1_000_000),
		gen.IntRange(-1_000_000, 1_000_000),
	))

	properties.TestingRun(t)
}
