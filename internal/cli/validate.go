package cli

import (
	"github.com/spf13/cobra"

	tkio "github.com/tracekit/tracekit/pkg/io"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a graph document against the engine's invariants",
		Long: `Validate loads a graph document, optionally applies a configuration
overlay, and runs kind-specific validation. The command exits non-zero
when the document is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := tkio.ImportGraph(args[0])
			if err != nil {
				return err
			}
			if configPath != "" {
				if err := tkio.ApplyConfig(configPath, g); err != nil {
					return err
				}
			}

			if invalid := g.Validate(); invalid != nil {
				printError("Invalid %s graph", g.Kind())
				printDetail("%s", invalid.Message)
				return invalid
			}

			printSuccess("Valid %s graph", g.Kind())
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "configuration overlay file (TOML or JSON)")

	return cmd
}
