package commands

import (
	"fmt"
	"os"

	"github.com/cassis-lang/cassis/pkg/css"
	"github.com/cassis-lang/cassis/pkg/sexpr"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Check sources for errors without writing output",
		Long: `Parse and interpret .csse sources, reporting any errors.

Without arguments, every .csse file under the styles directory is
checked. Nothing is written; the exit code is non-zero when any file
fails.`,
		Example: `  # Check everything under the styles directory
  cassis check

  # Check one file
  cassis check styles/site.csse`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	sources, err := resolveSources(cmdCtx.Cfg, args)
	if err != nil {
		return fmt.Errorf("failed to find sources: %w", err)
	}
	if len(sources) == 0 {
		r.Println("no .csse sources found")
		return nil
	}

	failed := 0
	for _, src := range sources {
		if err := checkFile(src); err != nil {
			r.Error(fmt.Sprintf("%s: %v", src, err))
			failed++
			continue
		}
		r.Println("ok", src)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(sources))
	}
	r.Success(fmt.Sprintf("%d file(s) ok", len(sources)))
	return nil
}

// checkFile runs the pipeline up to rule interpretation; emission
// cannot fail, so it is skipped.
func checkFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	roots, err := sexpr.ParseString(string(data))
	if err != nil {
		return err
	}
	_, err = css.Interpret(roots)
	return err
}
