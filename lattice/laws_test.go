package lattice

import (
	"maps"
	"slices"
	"testing"
)

// joined returns x ⊔ y without mutating either operand.
func joined[E, T any, P Impl[E, T, P]](x, y P) P {
	cp := *x
	p := P(&cp)
	p.Join(y)
	return p
}

// checkLaws verifies the semilattice laws and the derived order on every
// pair and triple drawn from xs.
func checkLaws[E any, T comparable, P Impl[E, T, P]](t *testing.T, xs []P) {
	t.Helper()
	checkLawsFunc[E, T, P](t, xs, func(a, b T) bool { return a == b })

	// Equality and inequality are exact complements.
	for _, x := range xs {
		for _, y := range xs {
			if Equal[E, T, P](x, y) == NotEqual[E, T, P](x, y) {
				t.Errorf("= and ≠ agree on %v, %v", x, y)
			}
		}
	}
}

func checkLawsFunc[E, T any, P Impl[E, T, P]](t *testing.T, xs []P, eq func(T, T) bool) {
	t.Helper()
	equal := func(a, b P) bool { return EqualFunc[E, T, P](a, b, eq) }
	leq := func(a, b P) bool { return LessOrEqualFunc[E, T, P](a, b, eq) }
	join := joined[E, T, P]

	for _, x := range xs {
		if !equal(join(x, x), x) {
			t.Errorf("%v ⊔ %v ≠ %v (idempotence)", x, x, x)
		}
		if !leq(x, x) {
			t.Errorf("%v ⋢ %v (reflexivity)", x, x)
		}
	}

	for _, x := range xs {
		for _, y := range xs {
			if !equal(join(x, y), join(y, x)) {
				t.Errorf("%v ⊔ %v ≠ %v ⊔ %v (commutativity)", x, y, y, x)
			}
			if !leq(x, join(x, y)) {
				t.Errorf("%v ⋢ %v ⊔ %v (monotonicity)", x, x, y)
			}
			if leq(x, y) && leq(y, x) && !equal(x, y) {
				t.Errorf("%v ⊑ %v and %v ⊑ %v but %v ≠ %v (antisymmetry)", x, y, y, x, x, y)
			}
		}
	}

	for _, x := range xs {
		for _, y := range xs {
			for _, z := range xs {
				l := join(x, join(y, z))
				r := join(join(x, y), z)
				if !equal(l, r) {
					t.Errorf("%v ⊔ (%v ⊔ %v) = %v but (%v ⊔ %v) ⊔ %v = %v (associativity)",
						x, y, z, l, x, y, z, r)
				}
			}
		}
	}
}

func TestMaxLaws(t *testing.T) {
	checkLaws[Max[int], int](t, []*Max[int]{
		NewMax(2), NewMax(3), NewMax(4), NewMax(5), NewMax(7), NewMax(9),
	})
}

func TestMinLaws(t *testing.T) {
	checkLaws[Min[int], int](t, []*Min[int]{
		NewMin(-3), NewMin(0), NewMin(1), NewMin(8),
	})
}

func TestOrLaws(t *testing.T) {
	checkLaws[Or, bool](t, []*Or{NewOr(false), NewOr(true)})
}

func TestAndLaws(t *testing.T) {
	checkLaws[And, bool](t, []*And{NewAnd(false), NewAnd(true)})
}

func TestFlatLaws(t *testing.T) {
	checkLaws[Flat[string], FlatValue[string]](t, []*Flat[string]{
		NewFlatBot[string](),
		NewFlat("a"), NewFlat("b"), NewFlat("c"),
		NewFlatTop[string](),
	})
}

func TestIntervalLaws(t *testing.T) {
	checkLaws[Interval, Span](t, []*Interval{
		EmptyInterval(),
		IntervalFinite(0, 0),
		IntervalFinite(1, 5),
		IntervalFinite(3, 9),
		NewInterval(MinusInfinity{}, FiniteBound(2)),
		NewInterval(FiniteBound(2), PlusInfinity{}),
		NewInterval(MinusInfinity{}, PlusInfinity{}),
	})
}

func TestPairLaws(t *testing.T) {
	type pair = Pair[Max[int], int, Or, bool, *Max[int], *Or]
	mk := func(n int, b bool) *pair { return NewPair[Max[int], int, Or, bool](NewMax(n), NewOr(b)) }
	checkLaws[pair, PairValue[int, bool]](t, []*pair{
		mk(0, false), mk(0, true), mk(3, false), mk(7, true),
	})
}

func TestSetLaws(t *testing.T) {
	checkLawsFunc[Set[string], []string](t, []*Set[string]{
		NewSet[string](),
		NewSet("a"), NewSet("b"), NewSet("c"),
		NewSet("a", "b"), NewSet("a", "b", "c"),
	}, slices.Equal[[]string])
}

func TestMapLaws(t *testing.T) {
	type m = Map[string, Max[int], int, *Max[int]]
	mk := func(bind map[string]int) *m {
		el := NewMap[string, Max[int], int, *Max[int]]()
		for k, n := range bind {
			el.Update(k, NewMax(n))
		}
		return el
	}
	checkLawsFunc[m, map[string]int](t, []*m{
		mk(nil),
		mk(map[string]int{"x": 1}),
		mk(map[string]int{"x": 4}),
		mk(map[string]int{"y": 2}),
		mk(map[string]int{"x": 1, "y": 5}),
	}, maps.Equal[map[string]int, map[string]int])
}

func TestVClockLaws(t *testing.T) {
	mk := func(ticks map[string]int) *VClock {
		c := NewVClock()
		for id, n := range ticks {
			for i := 0; i < n; i++ {
				c.Tick(id)
			}
		}
		return c
	}
	checkLawsFunc[VClock, map[string]uint64](t, []*VClock{
		mk(nil),
		mk(map[string]int{"a": 1}),
		mk(map[string]int{"a": 3}),
		mk(map[string]int{"b": 2}),
		mk(map[string]int{"a": 1, "b": 2}),
		mk(map[string]int{"a": 2, "c": 1}),
	}, maps.Equal[map[string]uint64, map[string]uint64])
}

func TestPartitionLaws(t *testing.T) {
	discrete := NewPartition("a", "b", "c", "d")
	ab := NewPartition("a", "b", "c", "d")
	ab.Observe("a", "b")
	cd := NewPartition("a", "b", "c", "d")
	cd.Observe("c", "d")
	abc := NewPartition("a", "b", "c", "d")
	abc.Observe("a", "b")
	abc.Observe("b", "c")
	checkLawsFunc[Partition[string], map[string]string](t, []*Partition[string]{
		NewPartition[string](), discrete, ab, cd, abc,
	}, maps.Equal[map[string]string, map[string]string])
}
