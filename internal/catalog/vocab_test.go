package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseVocabAddsEntries(t *testing.T) {
	data := []byte(`
commands:
  - key: nhl_pull
    command: /charlotte nhl pull
    description: Pull latest NHL game data
    category: batch
    target_dir: data/raw/nhl
    dir_label: NHL
`)

	c, err := ParseVocab(data)
	if err != nil {
		t.Fatalf("ParseVocab() returned error: %v", err)
	}

	if c.Len() != len(builtinEntries)+1 {
		t.Fatalf("catalog has %d entries, expected %d", c.Len(), len(builtinEntries)+1)
	}

	e, ok := c.Lookup("nhl_pull")
	if !ok {
		t.Fatal("Lookup(\"nhl_pull\") missed the loaded entry")
	}
	if e.Command != "/charlotte nhl pull" {
		t.Errorf("Command = %q, expected %q", e.Command, "/charlotte nhl pull")
	}
	if e.Category != Batch {
		t.Errorf("Category = %q, expected %q", e.Category, Batch)
	}
	if e.DirLabel != "NHL" {
		t.Errorf("DirLabel = %q, expected %q", e.DirLabel, "NHL")
	}

	// Built-ins keep their registration order ahead of loaded entries.
	entries := c.Entries()
	if entries[len(entries)-1].Key != "nhl_pull" {
		t.Errorf("last entry key = %q, expected the loaded entry appended", entries[len(entries)-1].Key)
	}
}

func TestParseVocabOverridesBuiltinDescriptionOnly(t *testing.T) {
	data := []byte(`
commands:
  - key: nba_pull
    command: /charlotte nba refresh
    description: Refresh NBA box scores
    category: utility
    target_dir: data/other
`)

	c, err := ParseVocab(data)
	if err != nil {
		t.Fatalf("ParseVocab() returned error: %v", err)
	}
	if c.Len() != len(builtinEntries) {
		t.Fatalf("catalog has %d entries, expected %d (override must not append)", c.Len(), len(builtinEntries))
	}

	e, _ := c.Lookup("nba_pull")
	if e.Description != "Refresh NBA box scores" {
		t.Errorf("Description = %q, expected override applied", e.Description)
	}
	if e.Command != "/charlotte nba pull" {
		t.Errorf("Command = %q, expected builtin command text preserved", e.Command)
	}
	if e.Category != NBA {
		t.Errorf("Category = %q, expected builtin category preserved", e.Category)
	}
	if e.TargetDir != "data/raw/nba" {
		t.Errorf("TargetDir = %q, expected builtin target dir preserved", e.TargetDir)
	}
}

func TestParseVocabErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		errPart string
	}{
		{
			name:    "not yaml",
			data:    "commands: [",
			errPart: "decode vocabulary",
		},
		{
			name:    "empty key",
			data:    "commands:\n  - command: /charlotte x\n    category: nba\n",
			errPart: "empty key",
		},
		{
			name:    "duplicate key in file",
			data:    "commands:\n  - key: a_pull\n    command: /charlotte a\n    category: nba\n  - key: a_pull\n    command: /charlotte b\n    category: nba\n",
			errPart: "twice",
		},
		{
			name:    "unknown category",
			data:    "commands:\n  - key: a_pull\n    command: /charlotte a\n    category: cricket\n",
			errPart: "unknown category",
		},
		{
			name:    "missing prefix",
			data:    "commands:\n  - key: a_pull\n    command: charlotte a\n    category: nba\n",
			errPart: "must start with",
		},
		{
			name:    "command text collides with builtin",
			data:    "commands:\n  - key: nba_again\n    command: /charlotte nba pull\n    category: nba\n",
			errPart: "duplicate command text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVocab([]byte(tt.data))
			if err == nil {
				t.Fatalf("ParseVocab() succeeded, expected error containing %q", tt.errPart)
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("ParseVocab() error = %q, expected it to contain %q", err, tt.errPart)
			}
		})
	}
}

func TestLoadMissingFileFallsBackToBuiltin(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() with missing file returned error: %v", err)
	}
	if c.Len() != Builtin().Len() {
		t.Errorf("catalog has %d entries, expected the %d built-ins", c.Len(), Builtin().Len())
	}
}

func TestLoadEmptyPathFallsBackToBuiltin(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if c.Len() != Builtin().Len() {
		t.Errorf("catalog has %d entries, expected the %d built-ins", c.Len(), Builtin().Len())
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charlotte.yaml")
	data := "commands:\n  - key: wnba_pull\n    command: /charlotte wnba pull\n    description: Pull latest WNBA game data\n    category: nba\n    target_dir: data/raw/wnba\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing vocabulary file: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	e, ok := c.Lookup("wnba_pull")
	if !ok {
		t.Fatal("Lookup(\"wnba_pull\") missed the loaded entry")
	}
	if e.DirLabel != "NBA" {
		t.Errorf("DirLabel = %q, expected the category label default", e.DirLabel)
	}
}

func TestLoadParseErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charlotte.yaml")
	if err := os.WriteFile(path, []byte("commands: ["), 0o644); err != nil {
		t.Fatalf("writing vocabulary file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() succeeded on malformed yaml, expected error")
	}
	if !strings.Contains(err.Error(), "charlotte.yaml") {
		t.Errorf("Load() error = %q, expected it to name the file", err)
	}
}
