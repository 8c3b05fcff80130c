package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// CommandPrefix is the literal prefix the bridge workflow requires on every
// command comment. Entries without it are rejected at load time.
const CommandPrefix = "/charlotte "

// Category groups commands by the part of the pipeline they address.
type Category string

// Known categories, in display order.
const (
	NBA     Category = "nba"
	MLB     Category = "mlb"
	NFL     Category = "nfl"
	Batch   Category = "batch"
	Utility Category = "utility"
)

var categoryOrder = []Category{NBA, MLB, NFL, Batch, Utility}

var categoryLabels = map[Category]string{
	NBA:     "NBA",
	MLB:     "MLB",
	NFL:     "NFL",
	Batch:   "Batch Operations",
	Utility: "Utilities",
}

// Label returns the display heading for the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// ParseCategory converts a category name to a Category value.
// Returns (Category, false) if the name is not recognized.
func ParseCategory(name string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(name))) {
	case NBA:
		return NBA, true
	case MLB:
		return MLB, true
	case NFL:
		return NFL, true
	case Batch:
		return Batch, true
	case Utility:
		return Utility, true
	default:
		return "", false
	}
}

// Entry describes a single command the bridge workflow understands. Entries
// are display text only; nothing in this program ever executes them.
type Entry struct {
	Key         string   // stable identifier, e.g. "nba_pull"
	Command     string   // full comment text, e.g. "/charlotte nba pull"
	Description string   // one-line human description
	Category    Category // grouping for menus and listings
	TargetDir   string   // where the workflow writes results, relative to the data root; empty when the command produces no files
	DirLabel    string   // display label for TargetDir; defaults to the category label
}

// Built-in bridge vocabulary, in registration order.
var builtinEntries = []Entry{
	{
		Key:         "nba_pull",
		Command:     "/charlotte nba pull",
		Description: "Pull latest NBA game data",
		Category:    NBA,
		TargetDir:   "data/raw/nba",
		DirLabel:    "NBA",
	},
	{
		Key:         "mlb_pull",
		Command:     "/charlotte mlb pull",
		Description: "Pull latest MLB game data and schedules",
		Category:    MLB,
		TargetDir:   "data/raw/mlb",
		DirLabel:    "MLB",
	},
	{
		Key:         "nfl_pull",
		Command:     "/charlotte nfl pull",
		Description: "Pull latest NFL game data",
		Category:    NFL,
		TargetDir:   "data/raw/nfl",
		DirLabel:    "NFL",
	},
	{
		Key:         "mlb_sim",
		Command:     "/charlotte mlb sim pregame",
		Description: "Run MLB pregame simulation with EV edge detection",
		Category:    MLB,
		TargetDir:   "data/models/mlb/sims",
		DirLabel:    "MLB Sims",
	},
	{
		Key:         "batch",
		Command:     "/charlotte batch starter",
		Description: "Generate pregame simulation configuration",
		Category:    Batch,
		TargetDir:   "data/batches",
		DirLabel:    "Batches",
	},
	{
		Key:         "help",
		Command:     "/charlotte help",
		Description: "Display all available Charlotte commands",
		Category:    Utility,
	},
	{
		Key:         "release",
		Command:     "/charlotte release",
		Description: "Create a stable release tag with timestamp",
		Category:    Utility,
	},
}

// Catalog is an immutable set of command entries with key and command-text
// lookup. Build one with New or Load; it never changes afterwards.
type Catalog struct {
	entries   []Entry
	byKey     map[string]Entry
	byCommand map[string]Entry
}

// New builds a catalog from entries, validating keys, command prefixes and
// categories. Entry order is preserved.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		byKey:     make(map[string]Entry, len(entries)),
		byCommand: make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		e.Key = strings.TrimSpace(e.Key)
		e.Command = strings.TrimSpace(e.Command)
		e.Description = strings.TrimSpace(e.Description)

		if e.Key == "" {
			return nil, errors.New("command entry with empty key")
		}
		if !strings.HasPrefix(e.Command, CommandPrefix) {
			return nil, fmt.Errorf("command %q for key %q must start with %q", e.Command, e.Key, CommandPrefix)
		}
		if strings.TrimPrefix(e.Command, CommandPrefix) == "" {
			return nil, fmt.Errorf("command for key %q has no text after the prefix", e.Key)
		}
		cat, ok := ParseCategory(string(e.Category))
		if !ok {
			return nil, fmt.Errorf("unknown category %q for key %q", e.Category, e.Key)
		}
		e.Category = cat
		if _, dup := c.byKey[e.Key]; dup {
			return nil, fmt.Errorf("duplicate command key %q", e.Key)
		}
		if _, dup := c.byCommand[e.Command]; dup {
			return nil, fmt.Errorf("duplicate command text %q", e.Command)
		}
		if e.TargetDir != "" && e.DirLabel == "" {
			e.DirLabel = e.Category.Label()
		}

		c.entries = append(c.entries, e)
		c.byKey[e.Key] = e
		c.byCommand[e.Command] = e
	}
	return c, nil
}

func mustNew(entries []Entry) *Catalog {
	c, err := New(entries)
	if err != nil {
		panic(err)
	}
	return c
}

var builtin = mustNew(builtinEntries)

// Builtin returns the catalog of built-in bridge commands.
func Builtin() *Catalog {
	return builtin
}

// Lookup finds an entry by key or by full command text.
// Returns (Entry, false) when nothing matches.
func (c *Catalog) Lookup(keyOrCommand string) (Entry, bool) {
	name := strings.TrimSpace(keyOrCommand)
	if e, ok := c.byKey[name]; ok {
		return e, true
	}
	if e, ok := c.byCommand[name]; ok {
		return e, true
	}
	return Entry{}, false
}

// Entries returns all entries in registration order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Group is one category's slice of the catalog.
type Group struct {
	Category Category
	Entries  []Entry
}

// ByCategory returns entries grouped by category, categories in display
// order. Every entry appears in exactly one group; empty categories are
// omitted.
func (c *Catalog) ByCategory() []Group {
	byCat := make(map[Category][]Entry)
	for _, e := range c.entries {
		byCat[e.Category] = append(byCat[e.Category], e)
	}

	var groups []Group
	for _, cat := range categoryOrder {
		if entries := byCat[cat]; len(entries) > 0 {
			groups = append(groups, Group{Category: cat, Entries: entries})
		}
	}
	return groups
}

// Numbered returns the entries in menu order: grouped by category, numbered
// 1..N across groups. Index i selects Numbered()[i-1].
func (c *Catalog) Numbered() []Entry {
	var out []Entry
	for _, g := range c.ByCategory() {
		out = append(out, g.Entries...)
	}
	return out
}

// DataDir pairs a display label with a directory the workflow writes to.
type DataDir struct {
	Label string
	Path  string
}

// DataDirs returns the distinct target directories in registration order.
func (c *Catalog) DataDirs() []DataDir {
	seen := make(map[string]bool, len(c.entries))
	var dirs []DataDir
	for _, e := range c.entries {
		if e.TargetDir == "" || seen[e.TargetDir] {
			continue
		}
		seen[e.TargetDir] = true
		dirs = append(dirs, DataDir{Label: e.DirLabel, Path: e.TargetDir})
	}
	return dirs
}
