package catalog

import (
	"strings"
	"testing"
)

func TestBuiltinEntries(t *testing.T) {
	c := Builtin()

	if c.Len() != len(builtinEntries) {
		t.Fatalf("Builtin().Len() = %d, expected %d", c.Len(), len(builtinEntries))
	}

	for _, e := range c.Entries() {
		if e.Key == "" {
			t.Errorf("builtin entry with empty key: %+v", e)
		}
		if !strings.HasPrefix(e.Command, CommandPrefix) {
			t.Errorf("builtin %q command %q missing %q prefix", e.Key, e.Command, CommandPrefix)
		}
		if e.Description == "" {
			t.Errorf("builtin %q has no description", e.Key)
		}
		if _, ok := ParseCategory(string(e.Category)); !ok {
			t.Errorf("builtin %q has unknown category %q", e.Key, e.Category)
		}
		if e.TargetDir != "" && e.DirLabel == "" {
			t.Errorf("builtin %q has target dir %q but no label", e.Key, e.TargetDir)
		}
	}

	expectedKeys := []string{"nba_pull", "mlb_pull", "nfl_pull", "mlb_sim", "batch", "help", "release"}
	for _, key := range expectedKeys {
		if _, ok := c.Lookup(key); !ok {
			t.Errorf("Builtin() is missing key %q", key)
		}
	}
}

func TestLookup(t *testing.T) {
	c := Builtin()

	tests := []struct {
		name        string
		input       string
		expectedKey string
		found       bool
	}{
		{
			name:        "by key",
			input:       "nba_pull",
			expectedKey: "nba_pull",
			found:       true,
		},
		{
			name:        "by full command text",
			input:       "/charlotte mlb sim pregame",
			expectedKey: "mlb_sim",
			found:       true,
		},
		{
			name:        "surrounding whitespace",
			input:       "  release  ",
			expectedKey: "release",
			found:       true,
		},
		{
			name:  "unknown key",
			input: "nhl_pull",
			found: false,
		},
		{
			name:  "partial command text",
			input: "/charlotte mlb",
			found: false,
		},
		{
			name:  "empty string",
			input: "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := c.Lookup(tt.input)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) ok = %v, expected %v", tt.input, ok, tt.found)
			}
			if ok && e.Key != tt.expectedKey {
				t.Errorf("Lookup(%q).Key = %q, expected %q", tt.input, e.Key, tt.expectedKey)
			}
			if ok && e.Command == "" {
				t.Errorf("Lookup(%q) returned entry with empty command text", tt.input)
			}
		})
	}
}

func TestByCategoryCoversEveryEntryOnce(t *testing.T) {
	c := Builtin()

	counts := make(map[string]int)
	for _, g := range c.ByCategory() {
		if len(g.Entries) == 0 {
			t.Errorf("ByCategory() returned empty group for %q", g.Category)
		}
		for _, e := range g.Entries {
			if e.Category != g.Category {
				t.Errorf("entry %q with category %q filed under group %q", e.Key, e.Category, g.Category)
			}
			counts[e.Key]++
		}
	}

	for _, e := range c.Entries() {
		if counts[e.Key] != 1 {
			t.Errorf("entry %q appears %d times across groups, expected 1", e.Key, counts[e.Key])
		}
	}
}

func TestByCategoryOrder(t *testing.T) {
	groups := Builtin().ByCategory()

	expected := []Category{NBA, MLB, NFL, Batch, Utility}
	if len(groups) != len(expected) {
		t.Fatalf("ByCategory() returned %d groups, expected %d", len(groups), len(expected))
	}
	for i, g := range groups {
		if g.Category != expected[i] {
			t.Errorf("group[%d].Category = %q, expected %q", i, g.Category, expected[i])
		}
	}

	// Both MLB commands belong to the same group.
	if keys := entryKeys(groups[1].Entries); len(keys) != 2 || keys[0] != "mlb_pull" || keys[1] != "mlb_sim" {
		t.Errorf("MLB group keys = %v, expected [mlb_pull mlb_sim]", keys)
	}
}

func TestNumbered(t *testing.T) {
	c := Builtin()
	numbered := c.Numbered()

	if len(numbered) != c.Len() {
		t.Fatalf("Numbered() returned %d entries, expected %d", len(numbered), c.Len())
	}

	expected := []string{"nba_pull", "mlb_pull", "mlb_sim", "nfl_pull", "batch", "help", "release"}
	if keys := entryKeys(numbered); !equalStrings(keys, expected) {
		t.Errorf("Numbered() keys = %v, expected %v", keys, expected)
	}
}

func TestDataDirs(t *testing.T) {
	dirs := Builtin().DataDirs()

	expected := []DataDir{
		{Label: "NBA", Path: "data/raw/nba"},
		{Label: "MLB", Path: "data/raw/mlb"},
		{Label: "NFL", Path: "data/raw/nfl"},
		{Label: "MLB Sims", Path: "data/models/mlb/sims"},
		{Label: "Batches", Path: "data/batches"},
	}

	if len(dirs) != len(expected) {
		t.Fatalf("DataDirs() returned %d dirs, expected %d", len(dirs), len(expected))
	}
	for i, d := range dirs {
		if d != expected[i] {
			t.Errorf("DataDirs()[%d] = %+v, expected %+v", i, d, expected[i])
		}
	}
}

func TestNewValidation(t *testing.T) {
	valid := Entry{Key: "nhl_pull", Command: "/charlotte nhl pull", Description: "Pull NHL data", Category: NFL}

	tests := []struct {
		name    string
		entries []Entry
		errPart string
	}{
		{
			name:    "empty key",
			entries: []Entry{{Command: "/charlotte x", Category: NBA}},
			errPart: "empty key",
		},
		{
			name:    "missing prefix",
			entries: []Entry{{Key: "x", Command: "charlotte x", Category: NBA}},
			errPart: "must start with",
		},
		{
			name:    "prefix only",
			entries: []Entry{{Key: "x", Command: "/charlotte ", Category: NBA}},
			errPart: "no text after the prefix",
		},
		{
			name:    "unknown category",
			entries: []Entry{{Key: "x", Command: "/charlotte x", Category: "esports"}},
			errPart: "unknown category",
		},
		{
			name:    "duplicate key",
			entries: []Entry{valid, {Key: "nhl_pull", Command: "/charlotte nhl sched", Category: NFL}},
			errPart: "duplicate command key",
		},
		{
			name:    "duplicate command text",
			entries: []Entry{valid, {Key: "nhl_other", Command: "/charlotte nhl pull", Category: NFL}},
			errPart: "duplicate command text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			if err == nil {
				t.Fatalf("New(%+v) succeeded, expected error containing %q", tt.entries, tt.errPart)
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("New() error = %q, expected it to contain %q", err, tt.errPart)
			}
		})
	}
}

func TestNewNormalizes(t *testing.T) {
	c, err := New([]Entry{
		{Key: "  nhl_pull ", Command: " /charlotte nhl pull ", Description: " Pull NHL data ", Category: "NFL", TargetDir: "data/raw/nhl"},
	})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	e, ok := c.Lookup("nhl_pull")
	if !ok {
		t.Fatal("Lookup(\"nhl_pull\") missed after trimming")
	}
	if e.Command != "/charlotte nhl pull" {
		t.Errorf("Command = %q, expected trimmed text", e.Command)
	}
	if e.Description != "Pull NHL data" {
		t.Errorf("Description = %q, expected trimmed text", e.Description)
	}
	if e.Category != NFL {
		t.Errorf("Category = %q, expected %q after case folding", e.Category, NFL)
	}
	if e.DirLabel != "NFL" {
		t.Errorf("DirLabel = %q, expected category label default", e.DirLabel)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
		ok       bool
	}{
		{"nba", NBA, true},
		{"MLB", MLB, true},
		{" nfl ", NFL, true},
		{"batch", Batch, true},
		{"utility", Utility, true},
		{"utilities", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cat, ok := ParseCategory(tt.input)
			if ok != tt.ok || cat != tt.expected {
				t.Errorf("ParseCategory(%q) = (%q, %v), expected (%q, %v)", tt.input, cat, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	if label := Batch.Label(); label != "Batch Operations" {
		t.Errorf("Batch.Label() = %q, expected %q", label, "Batch Operations")
	}
	if label := Category("weird").Label(); label != "weird" {
		t.Errorf("unknown category Label() = %q, expected the raw name", label)
	}
}

func entryKeys(entries []Entry) []string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
