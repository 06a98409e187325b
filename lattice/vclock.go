package lattice

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"
)

// VClock is a vector clock: a map from replica IDs to event counters,
// joined by pointwise maximum. The induced order is exactly causal
// order — v ⊑ w iff every counter of v is at or below the corresponding
// counter of w. Two clocks incomparable in the order represent
// concurrent histories. The zero value is the clock with all counters
// at zero, the bottom element.
type VClock struct {
	m *immutable.SortedMap[string, uint64]
}

// NewVClock returns the all-zero clock.
func NewVClock() *VClock {
	return &VClock{}
}

func (e *VClock) counters() *immutable.SortedMap[string, uint64] {
	if e.m == nil {
		return immutable.NewSortedMap[string, uint64](comparer[string]())
	}
	return e.m
}

// Tick records one local event at replica id. Ticking strictly
// increases the clock in the causal order.
func (e *VClock) Tick(id string) {
	m := e.counters()
	n, _ := m.Get(id)
	e.m = m.Set(id, n+1)
}

// Time returns the counter recorded for replica id.
func (e *VClock) Time(id string) uint64 {
	n, _ := e.counters().Get(id)
	return n
}

// Get returns a snapshot of all nonzero counters.
func (e *VClock) Get() map[string]uint64 {
	m := e.counters()
	out := make(map[string]uint64, m.Len())
	for it := m.Iterator(); !it.Done(); {
		id, n, _ := it.Next()
		if n > 0 {
			out[id] = n
		}
	}
	return out
}

func (e *VClock) Join(other *VClock) {
	m := e.counters()
	for it := other.counters().Iterator(); !it.Done(); {
		id, n, _ := it.Next()
		if own, _ := m.Get(id); n > own {
			m = m.Set(id, n)
		}
	}
	e.m = m
}

func (e *VClock) String() string {
	snap := e.counters()
	if snap.Len() == 0 {
		return colorize.Element("⊥")
	}
	strs := make([]string, 0, snap.Len())
	for it := snap.Iterator(); !it.Done(); {
		id, n, _ := it.Next()
		strs = append(strs, fmt.Sprintf("%s:%d", colorize.Key(id), n))
	}
	return "⟨" + strings.Join(strs, " ") + "⟩"
}
