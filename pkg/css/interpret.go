package css

import (
	"strings"

	"github.com/cassis-lang/cassis/pkg/sexpr"
)

// Interpret walks the top-level forms and produces the resolved rule
// sequence. Each form must be a list whose first atom names the
// selector fragment for that level; remaining children are classified
// by one-node lookahead as either declaration pairs or nested rules.
func Interpret(roots []sexpr.Node) (*Document, error) {
	doc := &Document{}
	for _, root := range roots {
		list, ok := root.(*sexpr.List)
		if !ok {
			atom := root.(*sexpr.Atom)
			return nil, &Error{Kind: InvalidTopLevelForm, Pos: atom.Position, Fragment: atom.Text}
		}
		if err := interpretForm(list, nil, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// interpretForm resolves one rule form under the accumulated selector
// path and appends its rule, then its nested forms' rules, to doc.
func interpretForm(form *sexpr.List, path []string, doc *Document) error {
	if len(form.Nodes) == 0 {
		return &Error{Kind: MissingSelector, Pos: form.Position}
	}
	head, ok := form.Nodes[0].(*sexpr.Atom)
	if !ok {
		return &Error{Kind: MissingSelector, Pos: form.Nodes[0].Pos()}
	}

	// Each descent gets its own path copy so sibling branches never
	// observe each other's extensions.
	next := make([]string, len(path), len(path)+1)
	copy(next, path)
	next = append(next, head.Text)

	var decls []Declaration
	var nested []*sexpr.List
	rest := form.Nodes[1:]
	for i := 0; i < len(rest); i++ {
		switch child := rest[i].(type) {
		case *sexpr.List:
			nested = append(nested, child)
		case *sexpr.Atom:
			if i+1 >= len(rest) {
				return &Error{Kind: DanglingProperty, Pos: child.Position, Fragment: child.Text}
			}
			value, ok := rest[i+1].(*sexpr.Atom)
			if !ok {
				return &Error{Kind: InvalidValue, Pos: rest[i+1].Pos(), Fragment: child.Text}
			}
			decls = append(decls, Declaration{Property: child.Text, Value: value.Text})
			i++
		}
	}

	// A level with no declarations of its own is a pure grouping node:
	// it contributes no rule block but still extends the path.
	if len(decls) > 0 {
		doc.Rules = append(doc.Rules, Rule{Selector: JoinPath(next), Declarations: decls})
	}
	for _, child := range nested {
		if err := interpretForm(child, next, doc); err != nil {
			return err
		}
	}
	return nil
}

// JoinPath joins a selector path with the descendant combinator. A
// fragment containing commas is a selector list; the accumulated
// ancestor chain is distributed over each comma-separated part, so
// ["body", "h1,h2"] yields "body h1, body h2".
func JoinPath(path []string) string {
	selectors := []string{""}
	for _, frag := range path {
		parts := strings.Split(frag, ",")
		next := make([]string, 0, len(selectors)*len(parts))
		for _, sel := range selectors {
			for _, part := range parts {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				if sel == "" {
					next = append(next, part)
				} else {
					next = append(next, sel+" "+part)
				}
			}
		}
		if len(next) > 0 {
			selectors = next
		}
	}
	return strings.Join(selectors, ", ")
}
