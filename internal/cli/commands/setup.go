// Package commands implements the cassis CLI subcommands.
package commands

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cassis-lang/cassis/internal/cli/config"
	"github.com/cassis-lang/cassis/internal/cli/output"
	"github.com/spf13/cobra"
)

// SourceExt is the file extension for cassis source files.
const SourceExt = ".csse"

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's
// configuration and context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration, falling back to
// environment variables with defaults when no config has been loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		StylesDir:    getEnvOrDefault("CASSIS_STYLES_DIR", config.DefaultStylesDir),
		OutDir:       os.Getenv("CASSIS_OUT_DIR"),
		Verbose:      os.Getenv("CASSIS_VERBOSE") == "true",
		OutputFormat: getEnvOrDefault("CASSIS_OUTPUT", config.DefaultOutput),
	}
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// findSources walks dir and returns all .csse files in walk order.
func findSources(dir string) ([]string, error) {
	var sources []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip hidden directories
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == SourceExt {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sources, nil
}

// resolveSources returns the explicit args when given, otherwise all
// sources under the configured styles directory.
func resolveSources(cfg *config.Config, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	return findSources(cfg.StylesDir)
}

// outputPathFor maps a source path to its compiled output path. With
// an out dir configured the source's base name is placed there,
// otherwise the .css file sits alongside the source.
func outputPathFor(src, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(src), SourceExt) + ".css"
	if outDir == "" {
		return filepath.Join(filepath.Dir(src), base)
	}
	return filepath.Join(outDir, base)
}
