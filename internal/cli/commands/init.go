package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cassis-lang/cassis/internal/cli/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// exampleSource is the starter stylesheet written by init.
const exampleSource = `(body
  font-family sans-serif
  color #222
  (a
    color #0a58ca
    text-decoration none)
  (a:hover text-decoration underline))

(nav
  (ul
    margin 0
    padding 0
    (li
      display inline-block
      padding-right 16px)))
`

// initConfig is the cassis.yaml shape written by init.
type initConfig struct {
	StylesDir string          `yaml:"styles_dir"`
	OutDir    string          `yaml:"out_dir"`
	Serve     initServeConfig `yaml:"serve"`
}

type initServeConfig struct {
	Port int `yaml:"port"`
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new cassis project",
		Long: `Initialize a new cassis project with a default configuration and
an example stylesheet.

This creates:
  - cassis.yaml configuration file
  - styles/ directory with an example site.csse`,
		Example: `  # Initialize in the current directory
  cassis init

  # Initialize in a new directory
  cassis init my-site

  # Force overwrite an existing config
  cassis init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	if dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "cassis.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("cassis.yaml already exists, use --force to overwrite")
	}

	data, err := yaml.Marshal(initConfig{
		StylesDir: config.DefaultStylesDir,
		OutDir:    "public/css",
		Serve:     initServeConfig{Port: config.DefaultPort},
	})
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	stylesDir := filepath.Join(dir, config.DefaultStylesDir)
	if err := os.MkdirAll(stylesDir, 0o750); err != nil {
		return fmt.Errorf("failed to create %s: %w", stylesDir, err)
	}

	examplePath := filepath.Join(stylesDir, "site.csse")
	if _, err := os.Stat(examplePath); err != nil || force {
		if err := os.WriteFile(examplePath, []byte(exampleSource), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", examplePath, err)
		}
	}

	r.Success(fmt.Sprintf("initialized cassis project in %s", dir))
	r.Println("  cassis.yaml")
	r.Println("  " + filepath.Join(config.DefaultStylesDir, "site.csse"))
	r.Println("")
	r.Println("Next: cassis build")
	return nil
}
