package lattice

import (
	"cmp"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Set is the powerset lattice over an ordered key domain K, ordered by
// inclusion with union as join. The zero value is the empty set, which
// is the bottom element.
//
// The backing structure is persistent, so shallow copies of a Set share
// nothing mutable and every element operation is safe on copies.
type Set[K cmp.Ordered] struct {
	set *immutable.SortedMap[K, struct{}]
}

// NewSet returns the set containing xs.
func NewSet[K cmp.Ordered](xs ...K) *Set[K] {
	s := &Set[K]{}
	s.Insert(xs...)
	return s
}

func (e *Set[K]) members() *immutable.SortedMap[K, struct{}] {
	if e.set == nil {
		return immutable.NewSortedMap[K, struct{}](comparer[K]())
	}
	return e.set
}

// Insert adds xs to the set. Insertion is a join with a finite set, so
// it only ever moves the element up in the order.
func (e *Set[K]) Insert(xs ...K) {
	m := e.members()
	for _, x := range xs {
		m = m.Set(x, struct{}{})
	}
	e.set = m
}

// Contains reports whether x is a member.
func (e *Set[K]) Contains(x K) bool {
	_, ok := e.members().Get(x)
	return ok
}

// Size returns the number of members.
func (e *Set[K]) Size() int {
	return e.members().Len()
}

// Get returns the members in ascending order.
func (e *Set[K]) Get() []K {
	m := e.members()
	xs := make([]K, 0, m.Len())
	for it := m.Iterator(); !it.Done(); {
		x, _, _ := it.Next()
		xs = append(xs, x)
	}
	return xs
}

func (e *Set[K]) Join(other *Set[K]) {
	m := e.members()
	for it := other.members().Iterator(); !it.Done(); {
		x, _, _ := it.Next()
		m = m.Set(x, struct{}{})
	}
	e.set = m
}

func (e *Set[K]) String() string {
	xs := e.Get()
	if len(xs) == 0 {
		return colorize.Element("∅")
	}
	strs := make([]string, len(xs))
	for i, x := range xs {
		strs[i] = colorize.Key(x)
	}
	return "{ " + strings.Join(strs, ", ") + " }"
}
