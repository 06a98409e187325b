package lattice

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Map is the pointwise lift of an element lattice over an ordered key
// domain: a binding of keys to lattice elements, joined keywise. Keys
// absent from the map are implicitly bound to the element lattice's
// bottom, so the zero value (no bindings) is the bottom element.
//
// E is the element struct of the range lattice, T its observable value
// and P its pointer type, exactly as in Impl.
type Map[K cmp.Ordered, E, T any, P Impl[E, T, P]] struct {
	m *immutable.SortedMap[K, E]
}

// NewMap returns a map with no bindings.
func NewMap[K cmp.Ordered, E, T any, P Impl[E, T, P]]() *Map[K, E, T, P] {
	return &Map[K, E, T, P]{}
}

func (e *Map[K, E, T, P]) bindings() *immutable.SortedMap[K, E] {
	if e.m == nil {
		return immutable.NewSortedMap[K, E](comparer[K]())
	}
	return e.m
}

// Update joins v into the binding at k. Bindings only ever grow, so the
// whole map moves up in the pointwise order.
func (e *Map[K, E, T, P]) Update(k K, v P) {
	m := e.bindings()
	if own, ok := m.Get(k); ok {
		P(&own).Join(v)
		e.m = m.Set(k, own)
		return
	}
	e.m = m.Set(k, *v)
}

// At returns the observable value bound at k. The boolean is false when
// k is unbound (implicitly bottom).
func (e *Map[K, E, T, P]) At(k K) (T, bool) {
	if own, ok := e.bindings().Get(k); ok {
		return P(&own).Get(), true
	}
	var zero T
	return zero, false
}

// Size returns the number of explicit bindings.
func (e *Map[K, E, T, P]) Size() int {
	return e.bindings().Len()
}

// Get returns a snapshot of the observable values of all bindings.
func (e *Map[K, E, T, P]) Get() map[K]T {
	m := e.bindings()
	out := make(map[K]T, m.Len())
	for it := m.Iterator(); !it.Done(); {
		k, v, _ := it.Next()
		out[k] = P(&v).Get()
	}
	return out
}

func (e *Map[K, E, T, P]) Join(other *Map[K, E, T, P]) {
	m := e.bindings()
	for it := other.bindings().Iterator(); !it.Done(); {
		k, v, _ := it.Next()
		if own, ok := m.Get(k); ok {
			P(&own).Join(P(&v))
			m = m.Set(k, own)
		} else {
			m = m.Set(k, v)
		}
	}
	e.m = m
}

func (e *Map[K, E, T, P]) String() string {
	m := e.bindings()
	if m.Len() == 0 {
		return colorize.Element("⊥")
	}
	strs := make([]string, 0, m.Len())
	for it := m.Iterator(); !it.Done(); {
		k, v, _ := it.Next()
		strs = append(strs, fmt.Sprintf("%s ↦ %v", colorize.Key(k), P(&v).Get()))
	}
	return "[ " + strings.Join(strs, ", ") + " ]"
}
