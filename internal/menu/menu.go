package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/DBst-23/DBst-23/internal/catalog"
	"github.com/DBst-23/DBst-23/internal/format"
	"github.com/DBst-23/DBst-23/internal/gitinfo"
	"github.com/DBst-23/DBst-23/internal/session"
	"github.com/DBst-23/DBst-23/internal/status"
)

// Menu drives the numbered console: header, grouped command menu, and a
// selection loop that renders command details until exit. Reader and writer
// are injected so the loop can be driven from tests.
type Menu struct {
	Catalog    *catalog.Catalog
	Repository string
	DataRoot   string
	In         io.Reader
	Out        io.Writer
	Log        *session.Log
	Now        func() time.Time // defaults to time.Now
}

// Run renders the console and reads selections until exit, q, or EOF.
// Every valid selection appends one entry to the session log; invalid
// input never does.
func (m *Menu) Run(ctx context.Context) error {
	now := m.Now
	if now == nil {
		now = time.Now
	}

	fmt.Fprint(m.Out, format.Header())
	fmt.Fprint(m.Out, format.SystemStatus(m.Repository, now()))

	numbered := m.Catalog.Numbered()
	reader := bufio.NewReader(m.In)

	for {
		fmt.Fprint(m.Out, format.CommandMenu(m.Catalog.ByCategory()))
		fmt.Fprintf(m.Out, "Select command (0-%d): ", len(numbered))

		line, err := reader.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			return m.finish()
		}
		choice := strings.TrimSpace(line)

		if choice == "0" || strings.EqualFold(choice, "q") {
			return m.finish()
		}
		if strings.EqualFold(choice, "s") {
			fmt.Fprint(m.Out, format.DataStatus(status.Scan(m.DataRoot, Targets(m.Catalog))))
			continue
		}
		if strings.EqualFold(choice, "l") {
			// The menu is reprinted on every pass anyway.
			continue
		}

		idx, convErr := strconv.Atoi(choice)
		if convErr != nil {
			fmt.Fprint(m.Out, "Invalid input. Please enter a number.\n\n")
			continue
		}
		if idx < 1 || idx > len(numbered) {
			fmt.Fprintf(m.Out, "Invalid choice. Please select 0-%d\n\n", len(numbered))
			continue
		}

		m.show(ctx, numbered[idx-1], now())

		fmt.Fprint(m.Out, "\nPress Enter to continue...")
		if _, err := reader.ReadString('\n'); err != nil {
			return m.finish()
		}
	}
}

// show renders the detail view for one entry and records the selection.
func (m *Menu) show(ctx context.Context, e catalog.Entry, at time.Time) {
	var dir *status.DirStatus
	if e.TargetDir != "" {
		scanned := status.Scan(m.DataRoot, []status.Target{{Label: e.DirLabel, Path: e.TargetDir}})
		dir = &scanned[0]
	}

	var git *gitinfo.Context
	if g, ok := gitinfo.Describe(ctx, m.DataRoot); ok {
		git = &g
	}

	fmt.Fprint(m.Out, format.DetailView(e, dir, git))
	m.Log.Add(session.Entry{At: at, Key: e.Key, Command: e.Command})
}

func (m *Menu) finish() error {
	fmt.Fprint(m.Out, format.Goodbye())
	fmt.Fprint(m.Out, format.SessionSummary(m.Log))
	return nil
}

// Targets converts the catalog's data directories into scan targets.
func Targets(c *catalog.Catalog) []status.Target {
	dirs := c.DataDirs()
	out := make([]status.Target, len(dirs))
	for i, d := range dirs {
		out[i] = status.Target{Label: d.Label, Path: d.Path}
	}
	return out
}
