package lattice

// Or is the two-element boolean lattice with disjunction as join:
//
//	⊤ = true
//	|
//	⊥ = false
//
// The zero value is ⊥.
type Or struct {
	v bool
}

// NewOr returns an or-lattice holding v.
func NewOr(v bool) *Or {
	return &Or{v: v}
}

func (e *Or) Get() bool {
	return e.v
}

func (e *Or) Join(other *Or) {
	e.v = e.v || other.v
}

func (e *Or) String() string {
	if e.v {
		return colorize.Element("⊤")
	}
	return colorize.Element("⊥")
}

// And is the two-element boolean lattice with conjunction as join. It is
// the dual of Or: false sits on top, so the zero value is ⊤, and true is
// the bottom element.
type And struct {
	v bool
}

// NewAnd returns an and-lattice holding v.
func NewAnd(v bool) *And {
	return &And{v: v}
}

func (e *And) Get() bool {
	return e.v
}

func (e *And) Join(other *And) {
	e.v = e.v && other.v
}

func (e *And) String() string {
	if e.v {
		return colorize.Element("⊥")
	}
	return colorize.Element("⊤")
}
