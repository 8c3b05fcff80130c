// Package guide serves the embedded operator guide with the live
// command reference appended.
package guide

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/DBst-23/DBst-23/internal/catalog"
	"github.com/DBst-23/DBst-23/internal/format"
)

//go:embed guide.md
var guideMarkdown string

// Markdown returns the guide source with a command reference table
// built from the catalog, so vocabulary extensions show up without
// editing the guide itself.
func Markdown(c *catalog.Catalog) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(guideMarkdown, "\n"))
	b.WriteString("\n\n")
	b.WriteString(format.CatalogTableWithTitle("Command Reference", c.Entries()))
	return b.String()
}

// Render renders the guide for the terminal. When no styled renderer
// can be built the raw markdown comes back instead.
func Render(c *catalog.Catalog) string {
	md := Markdown(c)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil || renderer == nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}
