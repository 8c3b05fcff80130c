package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DBst-23/DBst-23/internal/guide"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the operator guide",
	Long: `Guide renders the operator guide in the terminal, with the command
reference generated live from the catalog so it can never drift from
the vocabulary the workflow expects.`,
	Args: cobra.NoArgs,
	RunE: runGuide,
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, args []string) error {
	_, cat, _, err := bootstrap()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), guide.Render(cat))
	return nil
}
