package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/DBst-23/DBst-23/internal/console"
	"github.com/DBst-23/DBst-23/internal/session"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Open the full-screen terminal console",
	Long: `Console opens the interactive full-screen console: the command
catalog on the left, and preview, live data status, and session log
panes on the right. Press enter to stage a command for copy/paste,
q to quit. The session log lives in memory only and disappears with
the session.`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, cat, logger, err := bootstrap()
	if err != nil {
		return err
	}

	model := console.New(cat, cfg.Repository, cfg.DataRoot, session.New(), logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
