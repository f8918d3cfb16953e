package sexpr

import "fmt"

// ErrorKind classifies parse errors.
type ErrorKind int

// Parse error kinds.
const (
	// UnmatchedOpenParen reports a list form still open at end of input.
	UnmatchedOpenParen ErrorKind = iota
	// UnmatchedCloseParen reports a close paren with no open list.
	UnmatchedCloseParen
)

// String returns the error kind's message text.
func (k ErrorKind) String() string {
	switch k {
	case UnmatchedOpenParen:
		return "unmatched opening parenthesis"
	case UnmatchedCloseParen:
		return "unmatched closing parenthesis"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError represents a parsing error with position information.
type ParseError struct {
	Kind ErrorKind
	Pos  Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Kind)
}
