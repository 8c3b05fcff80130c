package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/DBst-23/DBst-23/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate workflow game records locally",
	Long: `Validate checks the JSON game records the workflow commits against
the bridge schema: required fields, date format, score and odds
ranges, and the allowed optional fields.

Path may be a single .json file or a directory; for a directory every
non-hidden .json file directly inside it is checked. Validation is
read-only.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	_, _, logger, err := bootstrap()
	if err != nil {
		return err
	}

	reports, err := validate.CheckPath(args[0])
	if err != nil {
		return err
	}
	logger.Debug("validated files", "path", args[0], "files", len(reports))

	invalid := printReports(cmd.OutOrStdout(), reports)
	if invalid > 0 {
		return fmt.Errorf("%d invalid record(s)", invalid)
	}
	return nil
}

// printReports writes the per-file summaries and returns the total number
// of invalid records.
func printReports(w io.Writer, reports []validate.FileReport) int {
	invalid := 0
	for _, r := range reports {
		fmt.Fprintf(w, "%s: %d valid, %d invalid\n", r.Path, r.Good, len(r.Bad))
		for _, bad := range r.Bad {
			for _, msg := range bad.Errors {
				fmt.Fprintf(w, "  row %d: %s\n", bad.Row, msg)
			}
		}
		invalid += len(r.Bad)
	}
	return invalid
}
