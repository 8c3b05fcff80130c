package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DBst-23/DBst-23/internal/format"
)

var listMarkdown bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every bridge command, grouped by category",
	Long: `List prints the full command vocabulary grouped by category, with the
exact text to paste into a GitHub issue comment.

With --markdown the catalog is rendered as a GitHub-flavored markdown
table instead, for embedding in the repository's docs.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listMarkdown, "markdown", false, "Render the catalog as a markdown table")
}

func runList(cmd *cobra.Command, args []string) error {
	_, cat, _, err := bootstrap()
	if err != nil {
		return err
	}

	if listMarkdown {
		fmt.Fprint(cmd.OutOrStdout(), format.CatalogTable(cat.Entries()))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), format.Header())
	fmt.Fprint(cmd.OutOrStdout(), format.GroupedList(cat.ByCategory()))
	return nil
}
