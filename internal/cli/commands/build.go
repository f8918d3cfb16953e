package commands

import (
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/cassis-lang/cassis/pkg/css"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [files...]",
		Short: "Compile sources to .css files",
		Long: `Compile .csse sources to .css files.

Without arguments, every .csse file under the styles directory is
compiled. Each compilation is independent, so files are compiled
concurrently. Output goes alongside each source, or into --out-dir
when set.`,
		Example: `  # Build everything under the styles directory
  cassis build

  # Build specific files
  cassis build styles/site.csse styles/print.csse

  # Build into a separate output directory
  cassis build --out-dir public/css`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args)
		},
	}

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	logger := cmdCtx.Logger

	sources, err := resolveSources(cmdCtx.Cfg, args)
	if err != nil {
		return fmt.Errorf("failed to find sources: %w", err)
	}
	if len(sources) == 0 {
		r.Println("no .csse sources found")
		return nil
	}

	outDir := cmdCtx.Cfg.OutDir
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Compilations share no state, so fan out across cores.
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	compiled := make([]string, len(sources))
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			text, err := css.CompileFile(src)
			if err != nil {
				return err
			}
			dst := outputPathFor(src, outDir)
			if err := os.WriteFile(dst, []byte(text), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", dst, err)
			}
			logger.Debug("compiled", "source", src, "output", dst)
			compiled[i] = fmt.Sprintf("%s -> %s", src, dst)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Strings(compiled)
	for _, line := range compiled {
		r.Println(line)
	}
	r.Success(fmt.Sprintf("compiled %d file(s)", len(sources)))
	return nil
}
