package sexpr

// Lexer tokenizes S-expression input.
//
// The lexer is total: any byte sequence produces a token stream, with
// structural problems (unmatched parentheses) left for the parser.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// Tokenize runs a lexer over input and returns the complete token
// sequence, excluding the trailing EOF token.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for tok := l.NextToken(); tok.Type != TokenEOF; tok = l.NextToken() {
		tokens = append(tokens, tok)
	}
	return tokens
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// currentPos returns the current position.
func (l *Lexer) currentPos() Position {
	return Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.currentPos()

	switch l.ch {
	case 0:
		return Token{Type: TokenEOF, Pos: pos}
	case '(':
		l.readChar()
		return Token{Type: TokenLParen, Literal: "(", Pos: pos}
	case ')':
		l.readChar()
		return Token{Type: TokenRParen, Literal: ")", Pos: pos}
	}

	return Token{Type: TokenAtom, Literal: l.readAtom(), Pos: pos}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readAtom reads a maximal run of non-whitespace bytes. A '(' inside an
// atom opens a nested depth that swallows everything, whitespace
// included, up to the matching ')'. This keeps functional CSS values
// such as var(--text-color, red) as a single atom while leaving a
// paren at token start as a structural token.
func (l *Lexer) readAtom() string {
	start := l.pos
	depth := 0
	for l.ch != 0 {
		switch {
		case l.ch == '(':
			depth++
		case l.ch == ')' && depth > 0:
			depth--
		case l.ch == ')':
			return l.input[start:l.pos]
		case isWhitespace(l.ch) && depth == 0:
			return l.input[start:l.pos]
		}
		l.readChar()
	}
	return l.input[start:l.pos]
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
