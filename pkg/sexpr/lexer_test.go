package sexpr

import "testing"

func atom(text string) Token { return Token{Type: TokenAtom, Literal: text} }
func lparen() Token          { return Token{Type: TokenLParen, Literal: "("} }
func rparen() Token          { return Token{Type: TokenRParen, Literal: ")"} }

func assertTokens(t *testing.T, input string, want []Token) {
	t.Helper()
	got := Tokenize(input)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i].Type != want[i].Type {
			t.Errorf("token %d: expected type %s, got %s", i, want[i].Type, got[i].Type)
		}
		if got[i].Literal != want[i].Literal {
			t.Errorf("token %d: expected literal %q, got %q", i, want[i].Literal, got[i].Literal)
		}
	}
}

func TestLexer_SelectorOnly(t *testing.T) {
	assertTokens(t, "(body)", []Token{lparen(), atom("body"), rparen()})
}

func TestLexer_SelectorPropertyValue(t *testing.T) {
	assertTokens(t, "(body color red)", []Token{
		lparen(), atom("body"), atom("color"), atom("red"), rparen(),
	})
}

func TestLexer_HyphenatedProperty(t *testing.T) {
	assertTokens(t, "(body background-color red)", []Token{
		lparen(), atom("body"), atom("background-color"), atom("red"), rparen(),
	})
}

func TestLexer_ParenAdjacentToAtom(t *testing.T) {
	assertTokens(t, "(ul (li text-decoration none))", []Token{
		lparen(), atom("ul"),
		lparen(), atom("li"), atom("text-decoration"), atom("none"), rparen(),
		rparen(),
	})
}

func TestLexer_BalancedParensInsideAtom(t *testing.T) {
	assertTokens(t, "(body background-color var(--text-color, red))", []Token{
		lparen(), atom("body"), atom("background-color"),
		atom("var(--text-color, red)"), rparen(),
	})
}

func TestLexer_BalancedParensContinuingAtom(t *testing.T) {
	assertTokens(t, "(body background-color var(--text-color, red)def)", []Token{
		lparen(), atom("body"), atom("background-color"),
		atom("var(--text-color, red)def"), rparen(),
	})
}

func TestLexer_PseudoSelector(t *testing.T) {
	assertTokens(t, "(a:hover text-decoration underline)", []Token{
		lparen(), atom("a:hover"), atom("text-decoration"), atom("underline"), rparen(),
	})
}

func TestLexer_MultipleTopLevelForms(t *testing.T) {
	assertTokens(t, "(body color red)\n(p color blue)", []Token{
		lparen(), atom("body"), atom("color"), atom("red"), rparen(),
		lparen(), atom("p"), atom("color"), atom("blue"), rparen(),
	})
}

func TestLexer_WhitespaceVariants(t *testing.T) {
	assertTokens(t, "\t( body\r\n color \t red )\n", []Token{
		lparen(), atom("body"), atom("color"), atom("red"), rparen(),
	})
}

func TestLexer_EmptyInput(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("expected no tokens, got %v", got)
	}
	if got := Tokenize("  \n\t "); len(got) != 0 {
		t.Errorf("expected no tokens for whitespace, got %v", got)
	}
}

func TestLexer_Positions(t *testing.T) {
	tokens := Tokenize("(body\n color red)")
	if tokens[0].Pos.Line != 1 || tokens[0].Pos.Column != 1 {
		t.Errorf("expected ( at line 1, column 1, got %s", tokens[0].Pos)
	}
	if tokens[2].Pos.Line != 2 {
		t.Errorf("expected 'color' on line 2, got %s", tokens[2].Pos)
	}
	if tokens[2].Literal != "color" {
		t.Errorf("expected third token 'color', got %q", tokens[2].Literal)
	}
}
