package css

import (
	"bytes"
	"strings"
)

const indentSize = 2

// printer accumulates stylesheet text with indentation tracking.
type printer struct {
	output      *bytes.Buffer
	depth       int
	atLineStart bool
}

func newPrinter() *printer {
	return &printer{
		output:      &bytes.Buffer{},
		atLineStart: true,
	}
}

// String returns the emitted output with a single trailing newline.
func (p *printer) String() string {
	return strings.TrimRight(p.output.String(), "\n") + "\n"
}

func (p *printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *printer) indent() {
	p.depth++
}

func (p *printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

// Emit serializes the resolved rules as CSS text. It is a structural
// serializer only: selector, property, and value text pass through
// verbatim. Emitting the same document twice yields identical bytes.
func Emit(doc *Document) string {
	if len(doc.Rules) == 0 {
		return ""
	}
	p := newPrinter()
	for i, rule := range doc.Rules {
		if i > 0 {
			p.writeln()
		}
		p.emitRule(rule)
	}
	return p.String()
}

func (p *printer) emitRule(r Rule) {
	p.write(r.Selector)
	p.write(" {")
	p.writeln()
	p.indent()
	for _, d := range r.Declarations {
		p.write(d.Property)
		p.write(": ")
		p.write(d.Value)
		p.write(";")
		p.writeln()
	}
	p.dedent()
	p.write("}")
	p.writeln()
}
