// Package config provides configuration management for the cassis CLI.
//
// Configuration is resolved with koanf from (lowest to highest
// precedence) built-in defaults, a cassis.yaml project file,
// CASSIS_-prefixed environment variables, and command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// StylesDir is the directory scanned for .csse sources.
	StylesDir string `koanf:"styles_dir"`
	// OutDir is where compiled .css files are written. Empty means
	// alongside each source file.
	OutDir       string       `koanf:"out_dir"`
	Verbose      bool         `koanf:"verbose"`
	OutputFormat string       `koanf:"output"`
	Serve        *ServeConfig `koanf:"serve"`

	// ProjectRoot is the resolved project root directory (not read
	// from the config file).
	ProjectRoot string `koanf:"-"`
}

// ServeConfig holds configuration for the playground server.
type ServeConfig struct {
	Port int `koanf:"port"`
}

// Default configuration values.
const (
	DefaultStylesDir = "styles"
	DefaultOutput    = "auto" // TTY=text, non-TTY=markdown
	DefaultPort      = 8765
)

// GetServe returns the serve config with defaults applied.
func (c *Config) GetServe() *ServeConfig {
	if c.Serve == nil {
		return &ServeConfig{Port: DefaultPort}
	}
	s := c.Serve
	if s.Port == 0 {
		s.Port = DefaultPort
	}
	return s
}
