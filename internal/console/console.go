// Package console implements the full-screen terminal console: the
// command catalog on the left, and preview, data status, and session log
// panes on the right. It is the terminal-native version of the HTML
// console page; like the page, it only ever displays command text for
// the operator to paste into GitHub.
package console

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DBst-23/DBst-23/internal/catalog"
	"github.com/DBst-23/DBst-23/internal/format"
	"github.com/DBst-23/DBst-23/internal/session"
	"github.com/DBst-23/DBst-23/internal/status"
)

// refreshInterval is the periodic status rescan. The fsnotify watcher
// usually gets there first; the tick covers missing directories and
// platforms where watching fails.
const refreshInterval = 5 * time.Second

type tickMsg time.Time

type statusMsg []status.DirStatus

type fsChangeMsg struct{}

// commandItem adapts a catalog entry to the bubbles list.
type commandItem struct {
	entry catalog.Entry
}

func (i commandItem) Title() string { return i.entry.Command }

func (i commandItem) Description() string {
	return i.entry.Category.Label() + " · " + i.entry.Description
}

func (i commandItem) FilterValue() string {
	return i.entry.Key + " " + i.entry.Command + " " + i.entry.Description
}

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("14")).
			Padding(0, 1)
	paneTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	previewStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	missStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	logLineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Model is the bubbletea model for the console. Build one with New and
// hand it to tea.NewProgram.
type Model struct {
	catalog    *catalog.Catalog
	repository string
	dataRoot   string
	targets    []status.Target
	log        *session.Log
	logger     *slog.Logger

	list     list.Model
	statuses []status.DirStatus
	selected *catalog.Entry
	watcher  *dirWatcher

	width  int
	height int
	now    func() time.Time
}

// New builds the console model. The session log is owned by the caller so
// the surface and its tests can inspect it after the program exits.
func New(c *catalog.Catalog, repository, dataRoot string, log *session.Log, logger *slog.Logger) Model {
	items := make([]list.Item, 0, c.Len())
	for _, e := range c.Numbered() {
		items = append(items, commandItem{entry: e})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Charlotte Commands"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	targets := make([]status.Target, 0)
	for _, d := range c.DataDirs() {
		targets = append(targets, status.Target{Label: d.Label, Path: d.Path})
	}

	return Model{
		catalog:    c,
		repository: repository,
		dataRoot:   dataRoot,
		targets:    targets,
		log:        log,
		logger:     logger,
		list:       l,
		statuses:   status.Scan(dataRoot, targets),
		watcher:    watchDataDirs(dataRoot, targets, logger),
		now:        time.Now,
	}
}

// Init starts the refresh tick and, when the watcher came up, the wait
// for the first directory change.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.scheduleTick()}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) rescan() tea.Cmd {
	root, targets := m.dataRoot, m.targets
	return func() tea.Msg {
		return statusMsg(status.Scan(root, targets))
	}
}

// waitForChange blocks on the watcher until the next debounced change.
func waitForChange(w *dirWatcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		return fsChangeMsg{}
	}
}

// Update handles messages. Selecting a command updates the preview pane
// and appends to the session log; nothing is ever executed.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.listWidth(), m.height-2)
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.rescan(), m.scheduleTick())

	case fsChangeMsg:
		return m, tea.Batch(m.rescan(), waitForChange(m.watcher))

	case statusMsg:
		m.statuses = []status.DirStatus(msg)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			m.watcher.Close()
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(commandItem); ok {
				e := item.entry
				m.selected = &e
				m.log.Add(session.Entry{At: m.now(), Key: e.Key, Command: e.Command})
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) listWidth() int {
	w := m.width * 2 / 5
	if w < 30 {
		w = 30
	}
	return w
}

// View renders the two-column layout.
func (m Model) View() string {
	if m.width == 0 {
		return "loading console..."
	}

	rightWidth := m.width - m.listWidth() - 6
	if rightWidth < 20 {
		rightWidth = 20
	}

	right := lipgloss.JoinVertical(lipgloss.Left,
		paneStyle.Width(rightWidth).Render(m.previewPane()),
		paneStyle.Width(rightWidth).Render(m.statusPane()),
		paneStyle.Width(rightWidth).Render(m.logPane()),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), right)
}

func (m Model) previewPane() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("Preview") + "\n\n")
	if m.selected == nil {
		b.WriteString(dimStyle.Render("Select a command and press enter.") + "\n")
		b.WriteString(dimStyle.Render("Repository: "+m.repository) + "\n")
		return b.String()
	}

	e := *m.selected
	b.WriteString(previewStyle.Render(e.Command) + "\n\n")
	b.WriteString(e.Description + "\n\n")
	for i, line := range format.GuidanceLines(e) {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, line))
	}
	return b.String()
}

func (m Model) statusPane() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("Data Status") + "\n\n")
	for _, st := range m.statuses {
		if st.Missing {
			b.WriteString(fmt.Sprintf("%-10s %s\n", st.Label, missStyle.Render("✗ not found")))
			continue
		}
		line := okStyle.Render(fmt.Sprintf("%d files", st.FileCount))
		if st.Newest != nil {
			line += dimStyle.Render("  newest " + format.DataTimestamp(*st.Newest))
		}
		b.WriteString(fmt.Sprintf("%-10s %s\n", st.Label, line))
	}
	if len(m.statuses) == 0 {
		b.WriteString(dimStyle.Render("no data directories configured") + "\n")
	}
	return b.String()
}

// logPane shows the tail of the session log, newest last.
func (m Model) logPane() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render(fmt.Sprintf("Session Log · %s", m.log.ShortID())) + "\n\n")

	entries := m.log.Entries()
	const tail = 8
	if len(entries) > tail {
		b.WriteString(dimStyle.Render(fmt.Sprintf("... %d earlier", len(entries)-tail)) + "\n")
		entries = entries[len(entries)-tail:]
	}
	if len(entries) == 0 {
		b.WriteString(dimStyle.Render("no selections yet") + "\n")
		return b.String()
	}
	for _, e := range entries {
		b.WriteString(dimStyle.Render(format.ClockTimestamp(e.At)) + "  " + logLineStyle.Render(e.Command) + "\n")
	}
	return b.String()
}
