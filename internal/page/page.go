// Package page renders the control console as a single self-contained
// HTML page: one button per catalog command, a preview pane, and a
// client-side session log. The page loads no external resources and
// makes no network calls.
package page

import (
	_ "embed"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/DBst-23/DBst-23/internal/catalog"
	"github.com/DBst-23/DBst-23/internal/format"
)

//go:embed console.html.tmpl
var consoleTemplate string

var tmpl = template.Must(template.New("console").Parse(consoleTemplate))

type pageEntry struct {
	Key         string
	Command     string
	Description string
	Guidance    string
}

type pageGroup struct {
	Label   string
	Entries []pageEntry
}

type pageData struct {
	Title       string
	Subtitle    string
	Repository  string
	Groups      []pageGroup
	GeneratedAt string
	SessionID   string
}

// Render writes the console page for the catalog to w. The session id
// only labels the footer; the on-page log lives entirely in the browser.
func Render(w io.Writer, c *catalog.Catalog, repository, sessionID string, now time.Time) error {
	data := pageData{
		Title:       "Charlotte Control Console",
		Subtitle:    "Bridge Command Hub - Automated Sports Data Operations",
		Repository:  repository,
		GeneratedAt: now.Format("2006-01-02 15:04:05"),
		SessionID:   sessionID,
	}
	for _, group := range c.ByCategory() {
		pg := pageGroup{Label: group.Category.Label()}
		for _, e := range group.Entries {
			pg.Entries = append(pg.Entries, pageEntry{
				Key:         e.Key,
				Command:     e.Command,
				Description: e.Description,
				Guidance:    strings.Join(format.GuidanceLines(e), "\n"),
			})
		}
		data.Groups = append(data.Groups, pg)
	}
	return tmpl.Execute(w, data)
}
