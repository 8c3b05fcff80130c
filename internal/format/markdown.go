package format

import (
	"fmt"
	"strings"

	"github.com/DBst-23/DBst-23/internal/catalog"
)

// CatalogTable renders the command catalog as a markdown table for embedding
// in the repository's docs, so written references never drift from the
// vocabulary the workflow expects.
func CatalogTable(entries []catalog.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var builder strings.Builder

	// Write table header
	builder.WriteString("| Command | Description | Category | Output |\n")
	builder.WriteString("|---------|-------------|----------|--------|\n")

	// Write each row
	for _, e := range entries {
		output := e.TargetDir
		if output == "" {
			output = "(none)"
		} else {
			output = fmt.Sprintf("`%s`", output)
		}

		builder.WriteString(fmt.Sprintf("| `%s` | %s | %s | %s |\n",
			e.Command,
			escapeMarkdownTableCell(e.Description),
			e.Category.Label(),
			output))
	}

	return builder.String()
}

// CatalogTableWithTitle renders a table under a markdown heading.
func CatalogTableWithTitle(title string, entries []catalog.Entry) string {
	table := CatalogTable(entries)
	if table == "" {
		return ""
	}

	if title == "" {
		return table
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("## %s\n\n", title))
	builder.WriteString(table)
	return builder.String()
}

// escapeMarkdownTableCell escapes pipe characters and other problematic content for table cells
func escapeMarkdownTableCell(content string) string {
	// First escape existing backslashes to prevent unintended escaping
	content = strings.ReplaceAll(content, "\\", "\\\\")

	// Then replace pipe characters that would break table formatting
	content = strings.ReplaceAll(content, "|", "\\|")

	// Use collapseNewlines to properly handle line endings and spacing
	content = collapseNewlines(content)

	// Replace tabs
	content = strings.ReplaceAll(content, "\t", " ")

	return strings.TrimSpace(content)
}

// collapseNewlines replaces newlines with single spaces for table cell content
func collapseNewlines(content string) string {
	// Replace Windows line endings first to avoid double spaces
	content = strings.ReplaceAll(content, "\r\n", " ")
	// Then replace remaining Unix and Mac line endings
	content = strings.ReplaceAll(content, "\n", " ")
	content = strings.ReplaceAll(content, "\r", " ")

	// Collapse multiple spaces into single spaces
	for strings.Contains(content, "  ") {
		content = strings.ReplaceAll(content, "  ", " ")
	}

	return strings.TrimSpace(content)
}
