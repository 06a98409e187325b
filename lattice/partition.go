package lattice

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	uf "github.com/spakin/disjoint"
)

// Partition is the lattice of partitions of an ordered element domain,
// ordered by refinement: P ⊑ Q iff every block of P is contained in a
// block of Q. Join is the finest common coarsening, computed by
// union-find, so joining accumulates "these elements are equivalent"
// facts. The zero value is the empty partition, the bottom element.
//
// The canonical representation maps every element to the least member of
// its block. The map is replaced wholesale on every mutation, never
// written in place, so shallow copies of a Partition are always safe.
type Partition[E cmp.Ordered] struct {
	blocks map[E]E
}

// NewPartition returns the discrete partition of domain: every element
// in a singleton block.
func NewPartition[E cmp.Ordered](domain ...E) *Partition[E] {
	blocks := make(map[E]E, len(domain))
	for _, x := range domain {
		blocks[x] = x
	}
	return &Partition[E]{blocks: blocks}
}

// Observe merges the blocks of x and y, adding either element to the
// domain if absent. Merging blocks only coarsens the partition, so the
// element moves up in the refinement order.
func (e *Partition[E]) Observe(x, y E) {
	least := x
	if y < x {
		least = y
	}
	e.Join(&Partition[E]{blocks: map[E]E{x: least, y: least}})
}

// Same reports whether x and y are in the same block.
func (e *Partition[E]) Same(x, y E) bool {
	rx, okx := e.blocks[x]
	ry, oky := e.blocks[y]
	return okx && oky && rx == ry
}

// Get returns the canonical representative map: each element of the
// domain mapped to the least member of its block.
func (e *Partition[E]) Get() map[E]E {
	if e.blocks == nil {
		return map[E]E{}
	}
	return maps.Clone(e.blocks)
}

func (e *Partition[E]) Join(other *Partition[E]) {
	elems := make(map[E]*uf.Element, len(e.blocks)+len(other.blocks))
	touch := func(x E) *uf.Element {
		el, ok := elems[x]
		if !ok {
			el = uf.NewElement()
			elems[x] = el
		}
		return el
	}
	absorb := func(blocks map[E]E) {
		for x, rep := range blocks {
			uf.Union(touch(x), touch(rep))
		}
	}
	absorb(e.blocks)
	absorb(other.blocks)

	// Pick the least member of each union-find tree as representative.
	reps := make(map[*uf.Element]E, len(elems))
	for x, el := range elems {
		root := el.Find()
		if least, ok := reps[root]; !ok || x < least {
			reps[root] = x
		}
	}
	fresh := make(map[E]E, len(elems))
	for x, el := range elems {
		fresh[x] = reps[el.Find()]
	}
	e.blocks = fresh
}

func (e *Partition[E]) String() string {
	if len(e.blocks) == 0 {
		return colorize.Element("∅")
	}
	members := make(map[E][]E)
	for x, rep := range e.blocks {
		members[rep] = append(members[rep], x)
	}
	reps := make([]E, 0, len(members))
	for rep := range members {
		reps = append(reps, rep)
	}
	slices.Sort(reps)
	strs := make([]string, 0, len(reps))
	for _, rep := range reps {
		xs := members[rep]
		slices.Sort(xs)
		elems := make([]string, len(xs))
		for i, x := range xs {
			elems[i] = colorize.Key(x)
		}
		strs = append(strs, "{ "+strings.Join(elems, ", ")+" }")
	}
	return "{ " + strings.Join(strs, ", ") + " }"
}
