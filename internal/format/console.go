package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/DBst-23/DBst-23/internal/catalog"
	"github.com/DBst-23/DBst-23/internal/gitinfo"
	"github.com/DBst-23/DBst-23/internal/session"
	"github.com/DBst-23/DBst-23/internal/status"
)

// DataTimestamp formats a file timestamp the way the status board shows it.
func DataTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// ClockTimestamp formats a time-of-day stamp for session log lines.
func ClockTimestamp(t time.Time) string {
	return t.Format("15:04:05")
}

// Header renders the console banner.
func Header() string {
	var builder strings.Builder
	builder.WriteString("\n" + bannerStyle.Render(divider) + "\n")
	builder.WriteString(titleStyle.Render("🎮 Charlotte Control Console") + "\n")
	builder.WriteString(bannerStyle.Render("Bridge Command Hub - Automated Sports Data Operations") + "\n")
	builder.WriteString(bannerStyle.Render(divider) + "\n\n")
	return builder.String()
}

// SystemStatus renders the workflow banner shown under the header.
func SystemStatus(repo string, now time.Time) string {
	var builder strings.Builder
	builder.WriteString(sectionStyle.Render("📡 System Status:") + "\n")
	builder.WriteString("  Workflow: " + goodStyle.Render("Charlotte Bridge Active") + "\n")
	builder.WriteString("  Repository: " + bannerStyle.Render(repo) + "\n")
	builder.WriteString("  Time: " + timeStyle.Render(now.Format("2006-01-02 15:04:05")) + "\n\n")
	return builder.String()
}

// CommandMenu renders the grouped catalog with global numbering and the
// exit row. Numbering matches catalog.Numbered: 1..N across groups.
func CommandMenu(groups []catalog.Group) string {
	var builder strings.Builder
	builder.WriteString(sectionStyle.Render("📋 Available Commands:") + "\n\n")

	i := 1
	for _, g := range groups {
		builder.WriteString(categoryStyle.Render(g.Category.Label()+":") + "\n")
		for _, e := range g.Entries {
			builder.WriteString(fmt.Sprintf("  %s %s\n", numberStyle.Render(fmt.Sprintf("%d.", i)), e.Description))
			builder.WriteString("     " + commandStyle.Render(e.Command) + "\n")
			i++
		}
		builder.WriteString("\n")
	}

	builder.WriteString(exitStyle.Render("0. Exit Console") + "\n\n")
	return builder.String()
}

// CommandList renders the plain listing used by the list subcommand.
func CommandList(entries []catalog.Entry) string {
	var builder strings.Builder
	builder.WriteString(sectionStyle.Render("Available Commands:") + "\n\n")
	for _, e := range entries {
		builder.WriteString(fmt.Sprintf("  %-15s - %s\n", e.Key, e.Description))
		builder.WriteString(fmt.Sprintf("  %-15s   %s\n", "", commandStyle.Render(e.Command)))
	}
	builder.WriteString("\n")
	return builder.String()
}

// GroupedList renders the catalog grouped by category with global
// numbering, for the list subcommand. Same ordering as CommandMenu but
// without the interactive exit row.
func GroupedList(groups []catalog.Group) string {
	var builder strings.Builder
	i := 1
	for _, g := range groups {
		builder.WriteString(categoryStyle.Render(g.Category.Label()+":") + "\n")
		for _, e := range g.Entries {
			builder.WriteString(fmt.Sprintf("  %s %-15s %s\n", numberStyle.Render(fmt.Sprintf("%d.", i)), e.Key, e.Description))
			builder.WriteString("     " + commandStyle.Render(e.Command) + "\n")
			i++
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// GitContext renders the best-effort git section.
func GitContext(git gitinfo.Context) string {
	var builder strings.Builder
	builder.WriteString(sectionStyle.Render("Git Context:") + "\n")
	builder.WriteString("  Branch: " + bannerStyle.Render(git.Branch) + "\n")
	builder.WriteString("  Latest: " + bannerStyle.Render(git.Commit) + "\n\n")
	return builder.String()
}

// GuidanceLines returns the unstyled guidance for an entry. The first three
// lines are the same for every command; the last depends on whether the
// command produces data files.
func GuidanceLines(e catalog.Entry) []string {
	lines := []string{
		fmt.Sprintf("Post '%s' as a comment on a GitHub issue", e.Command),
		"Manually trigger the workflow in GitHub Actions",
		"Use GitHub API with proper authentication",
	}
	if e.TargetDir != "" {
		lines = append(lines, fmt.Sprintf("Results are committed under %s once the workflow finishes", e.TargetDir))
	} else {
		lines = append(lines, "Utility commands reply in the issue thread and write no data files")
	}
	return lines
}

// DetailView renders the full detail block for one command: the command
// text, its details, the paste guidance, and optional git context. dir may
// be nil when the entry has no target directory.
func DetailView(e catalog.Entry, dir *status.DirStatus, git *gitinfo.Context) string {
	var builder strings.Builder
	builder.WriteString("\n" + bannerStyle.Render(thinDivider) + "\n")
	builder.WriteString(sectionStyle.Render("Executing:") + " " + commandStyle.Render(e.Command) + "\n")
	builder.WriteString(bannerStyle.Render(thinDivider) + "\n\n")

	builder.WriteString(sectionStyle.Render("Command Details:") + "\n")
	builder.WriteString("  Description: " + e.Description + "\n")
	builder.WriteString("  Category: " + e.Category.Label() + "\n")
	builder.WriteString("  Full Command: " + e.Command + "\n")
	if e.TargetDir != "" {
		builder.WriteString("  Target Dir: " + e.TargetDir + targetDirNote(dir) + "\n")
	}
	builder.WriteString("\n")

	builder.WriteString(timeStyle.Render("ℹ️  To execute this command:") + "\n")
	for i, line := range GuidanceLines(e) {
		builder.WriteString(fmt.Sprintf("  %d. %s\n", i+1, line))
	}
	builder.WriteString("\n")

	if git != nil {
		builder.WriteString(GitContext(*git))
	}

	builder.WriteString(goodStyle.Render("✅ Command prepared successfully") + "\n")
	builder.WriteString(bannerStyle.Render(thinDivider) + "\n\n")
	return builder.String()
}

func targetDirNote(dir *status.DirStatus) string {
	if dir == nil {
		return ""
	}
	if dir.Missing {
		return " (not found)"
	}
	return fmt.Sprintf(" (%d files)", dir.FileCount)
}

// DataStatus renders the per-directory status board.
func DataStatus(statuses []status.DirStatus) string {
	var builder strings.Builder
	builder.WriteString("\n" + sectionStyle.Render("📊 Data Status:") + "\n\n")
	for _, st := range statuses {
		builder.WriteString(fmt.Sprintf("  %-12s %s\n", st.Label, DirStatusLine(st)))
	}
	builder.WriteString("\n")
	return builder.String()
}

// DirStatusLine renders one directory's count and newest timestamp.
func DirStatusLine(st status.DirStatus) string {
	if st.Missing {
		return badStyle.Render("✗") + " Not found"
	}
	line := goodStyle.Render("✓") + fmt.Sprintf(" %d files", st.FileCount)
	if st.Newest != nil {
		line += " (latest: " + timeStyle.Render(DataTimestamp(*st.Newest)) + ")"
	}
	return line
}

// UnknownKey renders the miss message plus the catalog as a reminder.
func UnknownKey(name string, entries []catalog.Entry) string {
	var builder strings.Builder
	builder.WriteString(badStyle.Render(fmt.Sprintf("Error: Command '%s' not found", name)) + "\n\n")
	builder.WriteString(timeStyle.Render("Available commands:") + "\n")
	for _, e := range entries {
		builder.WriteString(fmt.Sprintf("  %-15s - %s\n", e.Key, e.Description))
	}
	builder.WriteString("\n")
	return builder.String()
}

// Goodbye renders the exit farewell.
func Goodbye() string {
	return "\n" + bannerStyle.Render("Goodbye! 👋") + "\n\n"
}

// SessionSummary renders the selection log printed when an interactive
// session ends. Returns "" when nothing was selected.
func SessionSummary(log *session.Log) string {
	if log == nil || log.Len() == 0 {
		return ""
	}
	var builder strings.Builder
	builder.WriteString(sectionStyle.Render(fmt.Sprintf("Session log (%d selections):", log.Len())) + "\n")
	for _, e := range log.Entries() {
		builder.WriteString(fmt.Sprintf("  %s  %s\n", ClockTimestamp(e.At), commandStyle.Render(e.Command)))
	}
	builder.WriteString("\n")
	return builder.String()
}
