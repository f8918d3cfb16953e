package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a command with captured output. CASSIS_OUTPUT controls
// the renderer mode since buffers are never terminals.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCompileCommand_Text(t *testing.T) {
	t.Setenv("CASSIS_OUTPUT", "text")
	src := writeSource(t, t.TempDir(), "site.csse", "(body color red)")

	out, err := execute(t, NewCompileCommand(), src)
	require.NoError(t, err)
	assert.Equal(t, "body {\n  color: red;\n}\n", out)
}

func TestCompileCommand_JSON(t *testing.T) {
	t.Setenv("CASSIS_OUTPUT", "json")
	src := writeSource(t, t.TempDir(), "site.csse", "(body color red)")

	out, err := execute(t, NewCompileCommand(), src)
	require.NoError(t, err)

	var result CompileOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, src, result.File)
	assert.Equal(t, "body {\n  color: red;\n}\n", result.CSS)
}

func TestCompileCommand_Markdown(t *testing.T) {
	t.Setenv("CASSIS_OUTPUT", "markdown")
	src := writeSource(t, t.TempDir(), "site.csse", "(body color red)")

	out, err := execute(t, NewCompileCommand(), src)
	require.NoError(t, err)
	assert.Contains(t, out, "```css")
	assert.Contains(t, out, "body {")
}

func TestCompileCommand_OutFile(t *testing.T) {
	t.Setenv("CASSIS_OUTPUT", "text")
	dir := t.TempDir()
	src := writeSource(t, dir, "site.csse", "(body color red)")
	dst := filepath.Join(dir, "site.css")

	_, err := execute(t, NewCompileCommand(), src, "--out", dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "body {\n  color: red;\n}\n", string(data))
}

func TestCompileCommand_BadSource(t *testing.T) {
	t.Setenv("CASSIS_OUTPUT", "text")
	src := writeSource(t, t.TempDir(), "bad.csse", "(body color)")

	_, err := execute(t, NewCompileCommand(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color")
}

func TestBuildCommand_CompilesAllSources(t *testing.T) {
	t.Setenv("CASSIS_OUTPUT", "text")
	dir := t.TempDir()
	t.Setenv("CASSIS_STYLES_DIR", dir)
	writeSource(t, dir, "site.csse", "(body color red)")
	writeSource(t, dir, "components/nav.csse", "(nav (a color blue))")

	out, err := execute(t, NewBuildCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "compiled 2 file(s)")

	data, err := os.ReadFile(filepath.Join(dir, "site.css"))
	require.NoError(t, err)
	assert.Equal(t, "body {\n  color: red;\n}\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "components", "nav.css"))
	require.NoError(t, err)
	assert.Equal(t, "nav a {\n  color: blue;\n}\n", string(data))
}

func TestBuildCommand_OutDir(t *testing.T) {
	t.Setenv("CASSIS_OUTPUT", "text")
	dir := t.TempDir()
	outDir := filepath.Join(dir, "public")
	t.Setenv("CASSIS_STYLES_DIR", dir)
	t.Setenv("CASSIS_OUT_DIR", outDir)
	writeSource(t, dir, "site.csse", "(body color red)")

	_, err := execute(t, NewBuildCommand())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "site.css"))
	require.NoError(t, err)
}

func TestBuildCommand_FailsOnBadSource(t *testing.T) {
	t.Setenv("CASSIS_OUTPUT", "text")
	dir := t.TempDir()
	t.Setenv("CASSIS_STYLES_DIR", dir)
	writeSource(t, dir, "bad.csse", "(body")

	_, err := execute(t, NewBuildCommand())
	require.Error(t, err)
}

func TestBuildCommand_NoSources(t *testing.T) {
	t.Setenv("CASSIS_OUTPUT", "text")
	t.Setenv("CASSIS_STYLES_DIR", t.TempDir())

	out, err := execute(t, NewBuildCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "no .csse sources found")
}

func TestCheckCommand(t *testing.T) {
	t.Setenv("CASSIS_OUTPUT", "text")
	dir := t.TempDir()
	good := writeSource(t, dir, "good.csse", "(body color red)")
	bad := writeSource(t, dir, "bad.csse", "(body color)")

	out, err := execute(t, NewCheckCommand(), good)
	require.NoError(t, err)
	assert.Contains(t, out, "1 file(s) ok")

	out, err = execute(t, NewCheckCommand(), good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "ok "+good)
}

func TestRulesCommand_JSON(t *testing.T) {
	t.Setenv("CASSIS_OUTPUT", "json")
	src := writeSource(t, t.TempDir(), "site.csse", "(body color red (a color blue))")

	out, err := execute(t, NewRulesCommand(), src)
	require.NoError(t, err)

	var rules []ruleInfo
	require.NoError(t, json.Unmarshal([]byte(out), &rules))
	require.Len(t, rules, 2)
	assert.Equal(t, "body", rules[0].Selector)
	assert.Equal(t, "body a", rules[1].Selector)
	require.Len(t, rules[0].Declarations, 1)
	assert.Equal(t, declInfo{Property: "color", Value: "red"}, rules[0].Declarations[0])
}

func TestRulesCommand_Table(t *testing.T) {
	t.Setenv("CASSIS_OUTPUT", "text")
	src := writeSource(t, t.TempDir(), "site.csse", "(body color red)")

	out, err := execute(t, NewRulesCommand(), src)
	require.NoError(t, err)
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "(1 rule(s))")
}

func TestInitCommand(t *testing.T) {
	t.Setenv("CASSIS_OUTPUT", "text")
	dir := filepath.Join(t.TempDir(), "my-site")

	out, err := execute(t, NewInitCommand(), dir)
	require.NoError(t, err)
	assert.Contains(t, out, "initialized")

	_, err = os.Stat(filepath.Join(dir, "cassis.yaml"))
	require.NoError(t, err)

	// The example stylesheet must itself compile.
	example := filepath.Join(dir, "styles", "site.csse")
	_, err = execute(t, NewCheckCommand(), example)
	require.NoError(t, err)
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	t.Setenv("CASSIS_OUTPUT", "text")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cassis.yaml"), []byte("styles_dir: x\n"), 0o644))

	_, err := execute(t, NewInitCommand(), dir)
	require.Error(t, err)

	_, err = execute(t, NewInitCommand(), dir, "--force")
	require.NoError(t, err)
}

func TestOutputPathFor(t *testing.T) {
	assert.Equal(t, filepath.Join("styles", "site.css"), outputPathFor(filepath.Join("styles", "site.csse"), ""))
	assert.Equal(t, filepath.Join("public", "site.css"), outputPathFor(filepath.Join("styles", "site.csse"), "public"))
}
