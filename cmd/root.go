package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/DBst-23/DBst-23/internal/catalog"
	"github.com/DBst-23/DBst-23/internal/config"
	"github.com/DBst-23/DBst-23/internal/format"
	"github.com/DBst-23/DBst-23/internal/gitinfo"
	"github.com/DBst-23/DBst-23/internal/menu"
	"github.com/DBst-23/DBst-23/internal/session"
	"github.com/DBst-23/DBst-23/internal/status"
)

var (
	flagVerbose bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "charlotte [command-key]",
	Short: "Control console for the Charlotte bridge workflow",
	Long: `charlotte is the operator console for the Charlotte bridge, the
GitHub-Actions-driven sports data pipeline. It displays the command
vocabulary the workflow understands (for manual copy/paste into issue
comments) and reports what the workflow has produced locally. It never
posts comments or triggers anything itself.

Run it with no arguments for the interactive numbered menu, or pass a
command key (e.g. "nba_pull") to show that command's details.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRoot,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose progress output")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "Suppress all progress output")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, cat, _, err := bootstrap()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		m := &menu.Menu{
			Catalog:    cat,
			Repository: cfg.Repository,
			DataRoot:   cfg.DataRoot,
			In:         os.Stdin,
			Out:        os.Stdout,
			Log:        session.New(),
		}
		return m.Run(cmd.Context())
	}

	return showEntry(cmd, cfg, cat, args[0])
}

// showEntry prints the one-shot detail view for a key or full command
// string. Unknown names list the catalog and fail the invocation.
func showEntry(cmd *cobra.Command, cfg *config.Config, cat *catalog.Catalog, name string) error {
	e, ok := cat.Lookup(name)
	if !ok {
		fmt.Fprint(cmd.OutOrStdout(), format.UnknownKey(name, cat.Entries()))
		return fmt.Errorf("command %q not recognized, see 'charlotte list'", name)
	}

	var dir *status.DirStatus
	if e.TargetDir != "" {
		scanned := status.Scan(cfg.DataRoot, []status.Target{{Label: e.DirLabel, Path: e.TargetDir}})
		dir = &scanned[0]
	}

	var git *gitinfo.Context
	if g, ok := gitinfo.Describe(cmd.Context(), cfg.DataRoot); ok {
		git = &g
	}

	fmt.Fprint(cmd.OutOrStdout(), format.Header())
	fmt.Fprint(cmd.OutOrStdout(), format.SystemStatus(cfg.Repository, time.Now()))
	fmt.Fprint(cmd.OutOrStdout(), format.DetailView(e, dir, git))
	return nil
}
