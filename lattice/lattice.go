// Package lattice provides the join-semilattice contract and a family of
// concrete lattice types implementing it.
//
// A join semilattice is a partially ordered set in which every pair of
// elements has a least upper bound, the join. Join is associative,
// commutative and idempotent:
//
//	x ⊔ (y ⊔ z) = (x ⊔ y) ⊔ z
//	x ⊔ y       = y ⊔ x
//	x ⊔ x       = x
//
// Dually, any associative, commutative, idempotent operator induces a
// partial order: x ⊑ y iff x ⊔ y = y. Because merge results are the same
// no matter how joins are ordered or grouped, independently updated
// replicas of a lattice value can be merged deterministically without
// coordination.
package lattice

// Lattice is the contract every join-semilattice value type satisfies.
// The type parameter L is the implementing pointer type itself, so that
// Join only ever accepts another instance of the same concrete lattice.
// Mixing two different lattice types does not type-check.
//
// T is the observable value of the lattice. Get must be pure and must
// return the same value until the next Join on the receiver.
//
// Join mutates the receiver in place to the least upper bound of the
// receiver's prior value and other. It must never mutate other, and it
// must satisfy the semilattice laws above together with monotonicity:
// both operands are ⊑ the result.
//
// Implementations with internal pointer-reachable state must treat that
// state as immutable and replace it wholesale in Join, so that a shallow
// copy of the element struct is always safe to join into.
type Lattice[L, T any] interface {
	Get() T
	Join(other L)
}

// Impl constrains P to be a pointer to the element struct E of a lattice
// with observable values of type T. Forcing the pointer shape is what
// allows the derived comparisons to copy an element (*l) and join into
// the copy without touching the caller's value.
type Impl[E, T, P any] interface {
	Lattice[P, T]
	*E
}

// Equal reports whether l and r hold the same observable value. This is
// structural equality over Get, not identity of the instances.
func Equal[E any, T comparable, P Impl[E, T, P]](l, r P) bool {
	return l.Get() == r.Get()
}

// NotEqual is the logical complement of Equal.
func NotEqual[E any, T comparable, P Impl[E, T, P]](l, r P) bool {
	return !Equal[E, T, P](l, r)
}

// LessOrEqual reports whether l ⊑ r in the order induced by Join.
// It joins r into a copy of l and compares the result with r; neither
// input is mutated. Cost is one Join plus one comparison.
func LessOrEqual[E any, T comparable, P Impl[E, T, P]](l, r P) bool {
	cp := *l
	p := P(&cp)
	p.Join(r)
	return p.Get() == r.Get()
}

// EqualFunc is Equal for lattices whose observable value is not
// comparable (slices, maps); eq supplies the equality on T.
func EqualFunc[E, T any, P Impl[E, T, P]](l, r P, eq func(T, T) bool) bool {
	return eq(l.Get(), r.Get())
}

// NotEqualFunc is the logical complement of EqualFunc.
func NotEqualFunc[E, T any, P Impl[E, T, P]](l, r P, eq func(T, T) bool) bool {
	return !eq(l.Get(), r.Get())
}

// LessOrEqualFunc is LessOrEqual with an explicit equality on T.
func LessOrEqualFunc[E, T any, P Impl[E, T, P]](l, r P, eq func(T, T) bool) bool {
	cp := *l
	p := P(&cp)
	p.Join(r)
	return eq(p.Get(), r.Get())
}
