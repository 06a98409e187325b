package lattice

import "fmt"

// PairValue is the observable value of a Pair.
type PairValue[A, B any] struct {
	First  A
	Second B
}

// Pair is the componentwise product of two lattices: joins, and the
// induced order, apply to both components independently. The zero value
// is the pair of the component zero values.
type Pair[EA, TA, EB, TB any, PA Impl[EA, TA, PA], PB Impl[EB, TB, PB]] struct {
	first  EA
	second EB
}

// NewPair returns a pair holding copies of *a and *b.
func NewPair[EA, TA, EB, TB any, PA Impl[EA, TA, PA], PB Impl[EB, TB, PB]](a PA, b PB) *Pair[EA, TA, EB, TB, PA, PB] {
	return &Pair[EA, TA, EB, TB, PA, PB]{first: *a, second: *b}
}

// First returns the first component. Joining through the returned
// pointer is a componentwise join of the pair.
func (e *Pair[EA, TA, EB, TB, PA, PB]) First() PA {
	return PA(&e.first)
}

// Second returns the second component.
func (e *Pair[EA, TA, EB, TB, PA, PB]) Second() PB {
	return PB(&e.second)
}

func (e *Pair[EA, TA, EB, TB, PA, PB]) Get() PairValue[TA, TB] {
	return PairValue[TA, TB]{
		First:  PA(&e.first).Get(),
		Second: PB(&e.second).Get(),
	}
}

func (e *Pair[EA, TA, EB, TB, PA, PB]) Join(other *Pair[EA, TA, EB, TB, PA, PB]) {
	PA(&e.first).Join(PA(&other.first))
	PB(&e.second).Join(PB(&other.second))
}

func (e *Pair[EA, TA, EB, TB, PA, PB]) String() string {
	return fmt.Sprintf("(%v, %v)", PA(&e.first), PB(&e.second))
}
