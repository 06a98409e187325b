package lattice

import (
	"cmp"
	"strconv"
)

// Bound is an endpoint of an interval: finite, or one of ±∞.
type Bound interface {
	String() string
	isBound()
}

// FiniteBound is a finite interval endpoint.
type FiniteBound int

// PlusInfinity is the +∞ endpoint.
type PlusInfinity struct{}

// MinusInfinity is the -∞ endpoint.
type MinusInfinity struct{}

func (FiniteBound) isBound()   {}
func (PlusInfinity) isBound()  {}
func (MinusInfinity) isBound() {}

func (b FiniteBound) String() string {
	return colorize.Const(strconv.Itoa(int(b)))
}

func (PlusInfinity) String() string {
	return colorize.Attr("+∞")
}

func (MinusInfinity) String() string {
	return colorize.Attr("-∞")
}

// boundCmp totally orders bounds with -∞ least and +∞ greatest.
func boundCmp(a, b Bound) int {
	rank := func(x Bound) int {
		switch x.(type) {
		case MinusInfinity:
			return -1
		case PlusInfinity:
			return 1
		}
		return 0
	}
	if ra, rb := rank(a), rank(b); ra != rb {
		return ra - rb
	}
	fa, ok := a.(FiniteBound)
	if !ok {
		return 0
	}
	return cmp.Compare(fa, b.(FiniteBound))
}

// Span is the observable value of an Interval: its two endpoints.
type Span struct {
	Low, High Bound
}

// Interval is the lattice of integer intervals ordered by inclusion;
// join is the convex hull [min(low₁, low₂), max(high₁, high₂)].
// The empty interval ⊥ is represented as [+∞, -∞], and the zero value
// of Interval is ⊥.
type Interval struct {
	low, high Bound
}

// NewInterval returns the interval [low, high], or ⊥ if low > high.
func NewInterval(low, high Bound) *Interval {
	if boundCmp(low, high) > 0 {
		return EmptyInterval()
	}
	return &Interval{low: low, high: high}
}

// IntervalFinite returns the interval with finite endpoints [low, high].
func IntervalFinite(low, high int) *Interval {
	return NewInterval(FiniteBound(low), FiniteBound(high))
}

// EmptyInterval returns ⊥, the empty interval.
func EmptyInterval() *Interval {
	return &Interval{}
}

func (e *Interval) bounds() (Bound, Bound) {
	low, high := e.low, e.high
	if low == nil {
		low = PlusInfinity{}
	}
	if high == nil {
		high = MinusInfinity{}
	}
	return low, high
}

func (e *Interval) Get() Span {
	low, high := e.bounds()
	return Span{Low: low, High: high}
}

// IsEmpty reports whether the interval is ⊥.
func (e *Interval) IsEmpty() bool {
	low, high := e.bounds()
	return boundCmp(low, high) > 0
}

func (e *Interval) Join(other *Interval) {
	low, high := e.bounds()
	olow, ohigh := other.bounds()
	if boundCmp(olow, low) < 0 {
		low = olow
	}
	if boundCmp(ohigh, high) > 0 {
		high = ohigh
	}
	e.low, e.high = low, high
}

func (e *Interval) String() string {
	if e.IsEmpty() {
		return colorize.Element("⊥")
	}
	low, high := e.bounds()
	return "[" + low.String() + ", " + high.String() + "]"
}
