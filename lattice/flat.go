package lattice

import "fmt"

// FlatKind discriminates the three layers of a flat lattice.
type FlatKind uint8

const (
	FlatBot FlatKind = iota
	FlatConst
	FlatTop
)

// FlatValue is the observable value of a Flat element. Const is the zero
// of V unless Kind is FlatConst, so values compare correctly with ==.
type FlatValue[V comparable] struct {
	Kind  FlatKind
	Const V
}

// Flat is the flat (constant propagation) lattice over V:
//
//	    ⊤
//	 /  |  \
//	c1  c2  c3 ...
//	 \  |  /
//	    ⊥
//
// All constants are mutually incomparable; joining two distinct
// constants yields ⊤. The zero value is ⊥.
type Flat[V comparable] struct {
	kind FlatKind
	v    V
}

// NewFlat returns a flat element holding the constant v.
func NewFlat[V comparable](v V) *Flat[V] {
	return &Flat[V]{kind: FlatConst, v: v}
}

// NewFlatBot returns the ⊥ element of the flat lattice over V.
func NewFlatBot[V comparable]() *Flat[V] {
	return &Flat[V]{}
}

// NewFlatTop returns the ⊤ element of the flat lattice over V.
func NewFlatTop[V comparable]() *Flat[V] {
	return &Flat[V]{kind: FlatTop}
}

func (e *Flat[V]) Get() FlatValue[V] {
	return FlatValue[V]{Kind: e.kind, Const: e.v}
}

// IsBot reports whether the element is ⊥.
func (e *Flat[V]) IsBot() bool {
	return e.kind == FlatBot
}

// IsTop reports whether the element is ⊤.
func (e *Flat[V]) IsTop() bool {
	return e.kind == FlatTop
}

// Const returns the constant the element holds, if it holds one.
func (e *Flat[V]) Const() (V, bool) {
	return e.v, e.kind == FlatConst
}

func (e *Flat[V]) Join(other *Flat[V]) {
	switch {
	case other.kind == FlatBot:
	case e.kind == FlatBot:
		e.kind, e.v = other.kind, other.v
	case e.kind == FlatConst && other.kind == FlatConst && e.v == other.v:
	default:
		// Distinct constants, or either side already ⊤.
		var zero V
		e.kind, e.v = FlatTop, zero
	}
}

func (e *Flat[V]) String() string {
	switch e.kind {
	case FlatBot:
		return colorize.Element("⊥")
	case FlatTop:
		return colorize.Element("⊤")
	default:
		return colorize.Const(fmt.Sprint(e.v))
	}
}
