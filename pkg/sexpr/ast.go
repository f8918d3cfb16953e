package sexpr

// Node represents an element of the parsed expression tree: either a
// bare Atom or a List of child nodes. The variant set is closed; all
// tree walks switch exhaustively over these two types.
type Node interface {
	// Pos returns the node's source position.
	Pos() Position

	node()
}

// Atom is a bare symbol: a selector fragment, property name, or value.
type Atom struct {
	Text     string
	Position Position
}

func (a *Atom) Pos() Position { return a.Position }
func (*Atom) node()           {}

// List is an ordered sequence of child nodes delimited by parentheses.
// Children preserve source order; a List may be empty.
type List struct {
	Nodes    []Node
	Position Position // position of the opening paren
}

func (l *List) Pos() Position { return l.Position }
func (*List) node()           {}
