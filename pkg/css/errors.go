package css

import (
	"fmt"

	"github.com/cassis-lang/cassis/pkg/sexpr"
)

// ErrorKind classifies rule interpretation errors.
type ErrorKind int

// Interpretation error kinds.
const (
	// InvalidTopLevelForm reports a bare atom where a (selector ...)
	// form is required.
	InvalidTopLevelForm ErrorKind = iota
	// MissingSelector reports a rule form that is empty or begins with
	// a nested list instead of a selector fragment.
	MissingSelector
	// DanglingProperty reports a property atom with no following value
	// before the end of its enclosing form.
	DanglingProperty
	// InvalidValue reports a list where a value atom was expected.
	InvalidValue
)

// Error represents a rule interpretation error with the source
// position and, where available, the offending fragment.
type Error struct {
	Kind     ErrorKind
	Pos      sexpr.Position
	Fragment string
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidTopLevelForm:
		return fmt.Sprintf("compile error at %s: expected a (selector ...) form, got bare atom %q", e.Pos, e.Fragment)
	case MissingSelector:
		return fmt.Sprintf("compile error at %s: rule form must begin with a selector fragment", e.Pos)
	case DanglingProperty:
		return fmt.Sprintf("compile error at %s: property %q has no value", e.Pos, e.Fragment)
	case InvalidValue:
		return fmt.Sprintf("compile error at %s: value for property %q must be an atom, not a list", e.Pos, e.Fragment)
	}
	return fmt.Sprintf("compile error at %s", e.Pos)
}
