package css

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cassis-lang/cassis/pkg/sexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_RoundTrip(t *testing.T) {
	out, err := Compile("(body color red)")
	require.NoError(t, err)
	assert.Equal(t, "body {\n  color: red;\n}\n", out)
}

func TestCompile_Nesting(t *testing.T) {
	out, err := Compile("(body color red (a text-decoration underline))")
	require.NoError(t, err)
	assert.Equal(t, "body {\n  color: red;\n}\n\nbody a {\n  text-decoration: underline;\n}\n", out)
}

func TestCompile_PureGrouping(t *testing.T) {
	out, err := Compile("(nav (a color blue))")
	require.NoError(t, err)
	assert.Equal(t, "nav a {\n  color: blue;\n}\n", out)
}

func TestCompile_ParseErrorsSurfaceUnchanged(t *testing.T) {
	tests := []struct {
		src  string
		kind sexpr.ErrorKind
	}{
		{"(body", sexpr.UnmatchedOpenParen},
		{")", sexpr.UnmatchedCloseParen},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := Compile(tt.src)
			var perr *sexpr.ParseError
			require.True(t, errors.As(err, &perr), "expected *sexpr.ParseError, got %v", err)
			assert.Equal(t, tt.kind, perr.Kind)
		})
	}
}

func TestCompile_InterpretErrorsSurfaceUnchanged(t *testing.T) {
	tests := []struct {
		src  string
		kind ErrorKind
	}{
		{"(body color)", DanglingProperty},
		{"()", MissingSelector},
		{"body", InvalidTopLevelForm},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := Compile(tt.src)
			var cerr *Error
			require.True(t, errors.As(err, &cerr), "expected *css.Error, got %v", err)
			assert.Equal(t, tt.kind, cerr.Kind)
		})
	}
}

func TestCompile_NoPartialOutputOnError(t *testing.T) {
	out, err := Compile("(body color red)\n(p color)")
	require.Error(t, err)
	assert.Empty(t, out, "a malformed document must produce no CSS output")
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.csse")
	require.NoError(t, os.WriteFile(path, []byte("(body color red)"), 0o644))

	out, err := CompileFile(path)
	require.NoError(t, err)
	assert.Equal(t, "body {\n  color: red;\n}\n", out)
}

func TestCompileFile_Missing(t *testing.T) {
	_, err := CompileFile(filepath.Join(t.TempDir(), "nope.csse"))
	require.Error(t, err)
}

func TestCompileFile_ErrorKeepsKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csse")
	require.NoError(t, os.WriteFile(path, []byte("(body color)"), 0o644))

	_, err := CompileFile(path)
	var cerr *Error
	require.True(t, errors.As(err, &cerr), "wrapped error must preserve the compile error")
	assert.Equal(t, DanglingProperty, cerr.Kind)
}
