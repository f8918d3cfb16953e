package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cassis-lang/cassis/internal/cli/output"
	"github.com/cassis-lang/cassis/pkg/css"
	"github.com/spf13/cobra"
)

// CompileOutput is the JSON shape of a single compiled file.
type CompileOutput struct {
	File string `json:"file"`
	CSS  string `json:"css"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile one source file and print the CSS",
		Long: `Compile a single .csse source file and print the resulting CSS.

Output adapts to environment:
  - Terminal: plain CSS
  - Piped/Scripted: markdown with a code block
  - JSON: machine-readable format`,
		Example: `  # Compile to stdout
  cassis compile styles/site.csse

  # Compile to a file
  cassis compile styles/site.csse --out public/site.css

  # Compile as JSON
  cassis compile styles/site.csse --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args[0], outFile)
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "Write CSS to this file instead of stdout")

	return cmd
}

func runCompile(cmd *cobra.Command, srcPath, outFile string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	text, err := css.CompileFile(srcPath)
	if err != nil {
		return err
	}

	if outFile != "" {
		if err := os.WriteFile(outFile, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outFile, err)
		}
		r.Success(fmt.Sprintf("compiled %s -> %s", srcPath, outFile))
		return nil
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(CompileOutput{File: srcPath, CSS: text})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, fmt.Sprintf("Compiled: %s", srcPath)))
		r.Println("")
		r.Println(output.FormatCodeBlock("css", text))
	default:
		r.Printf("%s", text)
	}

	return nil
}
