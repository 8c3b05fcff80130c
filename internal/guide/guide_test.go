package guide

import (
	"strings"
	"testing"

	"github.com/DBst-23/DBst-23/internal/catalog"
)

func TestMarkdownAppendsCommandReference(t *testing.T) {
	md := Markdown(catalog.Builtin())

	if !strings.Contains(md, "# Charlotte Operator Guide") {
		t.Error("guide missing its title")
	}
	if !strings.Contains(md, "## Command Reference") {
		t.Error("guide missing the command reference section")
	}
	for _, e := range catalog.Builtin().Entries() {
		if !strings.Contains(md, "`"+e.Command+"`") {
			t.Errorf("command reference missing %q", e.Command)
		}
	}
}

func TestMarkdownReflectsVocabulary(t *testing.T) {
	c, err := catalog.ParseVocab([]byte(`commands:
  - key: nhl_pull
    command: /charlotte nhl pull
    description: Pull latest NHL game data
    category: utility
`))
	if err != nil {
		t.Fatalf("ParseVocab returned error: %v", err)
	}

	md := Markdown(c)
	if !strings.Contains(md, "`/charlotte nhl pull`") {
		t.Error("command reference missing vocabulary extension")
	}
}

func TestRenderNeverEmpty(t *testing.T) {
	out := Render(catalog.Builtin())

	if strings.TrimSpace(out) == "" {
		t.Fatal("Render returned empty output")
	}
	if !strings.Contains(out, "Charlotte") {
		t.Error("rendered guide does not mention Charlotte")
	}
}
