package lattice

import (
	"cmp"
	"fmt"
)

// Max is the lattice of a totally ordered domain under maximum:
// x ⊔ y = max(x, y), and the induced order coincides with <=.
//
// The zero value holds the zero of T, which is the bottom element only
// for domains whose least value is zero (unsigned integers, ""). Use
// NewMax to start from an explicit value.
type Max[T cmp.Ordered] struct {
	v T
}

// NewMax returns a max-lattice holding v.
func NewMax[T cmp.Ordered](v T) *Max[T] {
	return &Max[T]{v: v}
}

func (e *Max[T]) Get() T {
	return e.v
}

func (e *Max[T]) Join(other *Max[T]) {
	if other.v > e.v {
		e.v = other.v
	}
}

func (e *Max[T]) String() string {
	return colorize.Element(fmt.Sprint(e.v))
}

// Min is the lattice of a totally ordered domain under minimum. It is
// the dual of Max: x ⊔ y = min(x, y), so the induced order is the
// reverse of <= — smaller values sit higher in the lattice.
type Min[T cmp.Ordered] struct {
	v T
}

// NewMin returns a min-lattice holding v.
func NewMin[T cmp.Ordered](v T) *Min[T] {
	return &Min[T]{v: v}
}

func (e *Min[T]) Get() T {
	return e.v
}

func (e *Min[T]) Join(other *Min[T]) {
	if other.v < e.v {
		e.v = other.v
	}
}

func (e *Min[T]) String() string {
	return colorize.Element(fmt.Sprint(e.v))
}
