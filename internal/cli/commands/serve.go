package commands

import (
	"github.com/cassis-lang/cassis/internal/playground"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the browser playground",
		Long: `Run a local playground server: a browser page that compiles
S-expression style rules to CSS as you type.`,
		Example: `  # Serve on the default port
  cassis serve

  # Serve on a specific port
  cassis serve --port 9000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)

			if port == 0 {
				port = cmdCtx.Cfg.GetServe().Port
			}

			srv := playground.NewServer(playground.Config{
				Port:   port,
				Logger: cmdCtx.Logger,
			})
			return srv.Serve(cmd.Context())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")

	return cmd
}
