package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/identifiers/doi"
)

func validateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <text>...",
		Short: "Print the first DOI in the text, or fail if there is none",
		Long: "Arguments are joined with single spaces and parsed as one text.\n" +
			"Exits non-zero when no DOI is found.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := doi.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return writeRecord(cmd.OutOrStdout(), opts.output, newRecord(d, ""))
		},
	}
}
