// Package sexpr provides lexing and parsing of the Cascading Style
// S-Expression source notation into a generic nested-expression tree.
package sexpr

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

// Token types produced by the lexer.
const (
	TokenEOF TokenType = iota
	TokenLParen
	TokenRParen
	TokenAtom
)

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenAtom:
		return "atom"
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Position represents a location in the source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Token represents a lexical token with its source position.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
