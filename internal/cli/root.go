// Package cli implements the doiscan command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/identifiers/internal/platform/logging"
)

// Execute runs doiscan with os.Args and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	logLevel string
	output   string

	logger *slog.Logger
}

// NewRootCmd builds the doiscan root command. Input and output streams come
// from cobra, so tests can substitute them with SetIn/SetOut/SetErr.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:          "doiscan",
		Short:        "Find and validate Digital Object Identifiers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(outputFormats, opts.output) {
				return fmt.Errorf("unsupported output %q (expected text|json|yaml)", opts.output)
			}
			opts.logger = logging.New(opts.logLevel, "text", cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", formatText, "Output format: text|json|yaml")

	cmd.AddCommand(
		extractCmd(opts),
		validateCmd(opts),
		versionCmd(),
	)
	return cmd
}
