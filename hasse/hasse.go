// Package hasse renders finite fragments of a lattice as Hasse diagrams.
// It is a generic consumer of the lattice contract: the order between
// elements is recovered purely through LessOrEqual.
package hasse

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/deepinit-arek/latticeflow/lattice"
)

// Node is a lattice element in the diagram.
type Node struct {
	ID    int
	Label string
}

// Edge is a covering pair: From ⊏ To with no element strictly between.
type Edge struct {
	From, To int
}

// Graph is a Hasse diagram: nodes and the cover relation, drawn bottom
// to top.
type Graph struct {
	Name  string
	Nodes []Node
	Edges []Edge
}

// Diagram computes the Hasse diagram of elems. Duplicate elements (by
// observable value) are collapsed; node IDs follow the order of first
// appearance.
func Diagram[E any, T comparable, P lattice.Impl[E, T, P]](elems []P, label func(T) string) *Graph {
	return DiagramFunc[E, T, P](elems, label, func(a, b T) bool { return a == b })
}

// DiagramFunc is Diagram with an explicit equality on the observable
// value type, for lattices whose values are not comparable.
func DiagramFunc[E, T any, P lattice.Impl[E, T, P]](elems []P, label func(T) string, eq func(T, T) bool) *Graph {
	uniq := make([]P, 0, len(elems))
	for _, e := range elems {
		dup := false
		for _, u := range uniq {
			if lattice.EqualFunc[E, T, P](e, u, eq) {
				dup = true
				break
			}
		}
		if !dup {
			uniq = append(uniq, e)
		}
	}

	n := len(uniq)
	leq := make([][]bool, n)
	for i := range leq {
		leq[i] = make([]bool, n)
		for j := range leq[i] {
			leq[i][j] = lattice.LessOrEqualFunc[E, T, P](uniq[i], uniq[j], eq)
		}
	}

	g := &Graph{Name: "Hasse"}
	for i, e := range uniq {
		g.Nodes = append(g.Nodes, Node{ID: i, Label: label(e.Get())})
	}

	// After deduplication, i ⊑ j with i ≠ j is strict order. A pair is
	// covering when no third element sits strictly between.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || !leq[i][j] {
				continue
			}
			cover := true
			for k := 0; k < n && cover; k++ {
				if k != i && k != j && leq[i][k] && leq[k][j] {
					cover = false
				}
			}
			if cover {
				g.Edges = append(g.Edges, Edge{From: i, To: j})
			}
		}
	}
	return g
}

// Dot returns the diagram in Graphviz DOT syntax. The output is
// deterministic for a given input order.
func (g *Graph) Dot() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", g.Name)
	buf.WriteString("\trankdir=\"BT\";\n")
	buf.WriteString("\tnode [shape=\"box\" fontname=\"Verdana\"];\n")
	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "\t%q [label=%q];\n", strconv.Itoa(n.ID), n.Label)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "\t%q -> %q;\n", strconv.Itoa(e.From), strconv.Itoa(e.To))
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}
