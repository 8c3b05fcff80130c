package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/DBst-23/DBst-23/internal/format"
	"github.com/DBst-23/DBst-23/internal/gitinfo"
	"github.com/DBst-23/DBst-23/internal/menu"
	"github.com/DBst-23/DBst-23/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report what the bridge workflow has produced locally",
	Long: `Status scans the data directories the workflow commits into and
reports file counts and the newest file's timestamp per directory,
plus best-effort git branch and latest-commit context. The scan is
read-only and reflects the working tree at this moment.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, cat, logger, err := bootstrap()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, format.Header())
	fmt.Fprint(out, format.SystemStatus(cfg.Repository, time.Now()))

	targets := menu.Targets(cat)
	logger.Debug("scanning data directories", "root", cfg.DataRoot, "dirs", len(targets))
	fmt.Fprint(out, format.DataStatus(status.Scan(cfg.DataRoot, targets)))

	if git, ok := gitinfo.Describe(cmd.Context(), cfg.DataRoot); ok {
		fmt.Fprint(out, format.GitContext(git))
	} else {
		logger.Debug("git context unavailable", "dir", cfg.DataRoot)
	}
	return nil
}
