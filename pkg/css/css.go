// Package css flattens parsed S-expression trees into CSS rule blocks
// and serializes them as stylesheet text.
package css

// Declaration is a single property/value pair inside a rule block.
// Declaration order is significant for CSS later-wins semantics and is
// preserved exactly as authored.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a fully-resolved CSS rule: a flattened selector paired with
// the declarations that appear at its own nesting level.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Document is the ordered sequence of resolved rules for a whole
// source document, in pre-order: each level's own rule precedes the
// rules of its nested forms.
type Document struct {
	Rules []Rule
}
