package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/DBst-23/DBst-23/internal/page"
	"github.com/DBst-23/DBst-23/internal/session"
)

var pageOut string

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Generate the static HTML console page",
	Long: `Page renders the console as a single self-contained HTML file: one
button per command, a preview pane, and a client-side session log.
The page loads no external resources and makes no network calls.

Output goes to stdout unless --out names a file.`,
	Args: cobra.NoArgs,
	RunE: runPage,
}

func init() {
	rootCmd.AddCommand(pageCmd)
	pageCmd.Flags().StringVar(&pageOut, "out", "", "Write the page to this file instead of stdout")
}

func runPage(cmd *cobra.Command, args []string) error {
	cfg, cat, logger, err := bootstrap()
	if err != nil {
		return err
	}

	log := session.New()
	if pageOut == "" {
		return page.Render(cmd.OutOrStdout(), cat, cfg.Repository, log.ShortID(), time.Now())
	}

	f, err := os.Create(pageOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", pageOut, err)
	}
	defer f.Close()

	if err := page.Render(f, cat, cfg.Repository, log.ShortID(), time.Now()); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	logger.Info("console page written", "path", pageOut, "commands", cat.Len())
	return nil
}
