package sexpr

// Parser builds the expression tree from a token stream.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a parser over an already-lexed token sequence.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseString lexes and parses source text in one step.
func ParseString(src string) ([]Node, error) {
	return Parse(Tokenize(src))
}

// Parse consumes the token sequence and returns the ordered top-level
// nodes. Every meaningful top-level form is a List; a bare top-level
// atom still parses (the rule interpreter rejects it).
func Parse(tokens []Token) ([]Node, error) {
	return NewParser(tokens).Parse()
}

// Parse reads nodes until the token stream is exhausted.
func (p *Parser) Parse() ([]Node, error) {
	var roots []Node
	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		switch tok.Type {
		case TokenAtom:
			p.pos++
			roots = append(roots, &Atom{Text: tok.Literal, Position: tok.Pos})
		case TokenLParen:
			list, err := p.parseList()
			if err != nil {
				return nil, err
			}
			roots = append(roots, list)
		case TokenRParen:
			return nil, &ParseError{Kind: UnmatchedCloseParen, Pos: tok.Pos}
		default:
			p.pos++
		}
	}
	return roots, nil
}

// parseList consumes the opening paren and reads child nodes until the
// matching close paren, recursing on nested opens. Exactly one close
// paren is consumed per open.
func (p *Parser) parseList() (*List, error) {
	open := p.tokens[p.pos]
	p.pos++

	list := &List{Position: open.Pos}
	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		switch tok.Type {
		case TokenAtom:
			p.pos++
			list.Nodes = append(list.Nodes, &Atom{Text: tok.Literal, Position: tok.Pos})
		case TokenLParen:
			child, err := p.parseList()
			if err != nil {
				return nil, err
			}
			list.Nodes = append(list.Nodes, child)
		case TokenRParen:
			p.pos++
			return list, nil
		}
	}
	return nil, &ParseError{Kind: UnmatchedOpenParen, Pos: open.Pos}
}
