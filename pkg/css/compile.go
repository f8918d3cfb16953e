package css

import (
	"fmt"
	"os"

	"github.com/cassis-lang/cassis/pkg/sexpr"
)

// Compile lowers S-expression source text into CSS text. Failures in
// any stage short-circuit and surface that stage's error unchanged.
func Compile(src string) (string, error) {
	roots, err := sexpr.ParseString(src)
	if err != nil {
		return "", err
	}
	doc, err := Interpret(roots)
	if err != nil {
		return "", err
	}
	return Emit(doc), nil
}

// CompileFile reads a source file and compiles its contents.
func CompileFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	out, err := Compile(string(data))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
