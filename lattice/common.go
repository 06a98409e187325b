package lattice

import (
	"cmp"

	"github.com/benbjohnson/immutable"

	"github.com/fatih/color"
)

// colorize bundles the Sprint-functions used by the String methods of the
// concrete lattice types. fatih/color disables itself on non-terminals,
// so the same strings are safe to use in logs and golden files.
var colorize = struct {
	Element func(...interface{}) string
	Const   func(...interface{}) string
	Key     func(...interface{}) string
	Attr    func(...interface{}) string
}{
	Element: color.New(color.FgCyan).SprintFunc(),
	Const:   color.New(color.FgHiWhite).SprintFunc(),
	Key:     color.New(color.FgYellow).SprintFunc(),
	Attr:    color.New(color.FgHiRed).SprintFunc(),
}

type orderedComparer[K cmp.Ordered] struct{}

func (orderedComparer[K]) Compare(a, b K) int {
	return cmp.Compare(a, b)
}

// comparer is the key comparer handed to the persistent sorted maps
// backing Set, Map and VClock. immutable's built-in default comparer
// only covers a handful of concrete key types; this one covers every
// ordered key domain.
func comparer[K cmp.Ordered]() immutable.Comparer[K] {
	return orderedComparer[K]{}
}
