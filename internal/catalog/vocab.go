package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// vocabFile is the on-disk shape of a command vocabulary file. The file lets
// operators teach the console about new workflow commands without a rebuild.
type vocabFile struct {
	Commands []vocabEntry `yaml:"commands"`
}

// vocabEntry is one command in a vocabulary file. For keys that already exist
// in the built-in set only the description is applied; command text, category
// and target directory of built-ins are fixed by the workflow contract.
type vocabEntry struct {
	Key         string `yaml:"key"`
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	TargetDir   string `yaml:"target_dir"`
	DirLabel    string `yaml:"dir_label"`
}

// ParseVocab decodes a vocabulary payload and merges it over the built-in
// entries, returning the combined catalog.
func ParseVocab(data []byte) (*Catalog, error) {
	var file vocabFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode vocabulary: %w", err)
	}
	return merge(builtinEntries, file.Commands)
}

// Load builds the catalog from the built-in entries plus the vocabulary file
// at path. A missing file is not an error; the built-ins stand alone.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Builtin(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Builtin(), nil
		}
		return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	c, err := ParseVocab(data)
	if err != nil {
		return nil, fmt.Errorf("vocabulary %s: %w", path, err)
	}
	return c, nil
}

func merge(base []Entry, extra []vocabEntry) (*Catalog, error) {
	merged := make([]Entry, len(base))
	copy(merged, base)
	index := make(map[string]int, len(base))
	for i, e := range merged {
		index[e.Key] = i
	}

	seen := make(map[string]bool, len(extra))
	for _, v := range extra {
		key := strings.TrimSpace(v.Key)
		if key == "" {
			return nil, errors.New("vocabulary entry with empty key")
		}
		if seen[key] {
			return nil, fmt.Errorf("vocabulary lists key %q twice", key)
		}
		seen[key] = true

		if i, ok := index[key]; ok {
			if desc := strings.TrimSpace(v.Description); desc != "" {
				merged[i].Description = desc
			}
			continue
		}

		cat, ok := ParseCategory(v.Category)
		if !ok {
			return nil, fmt.Errorf("vocabulary key %q has unknown category %q", key, v.Category)
		}
		merged = append(merged, Entry{
			Key:         key,
			Command:     v.Command,
			Description: v.Description,
			Category:    cat,
			TargetDir:   strings.TrimSpace(v.TargetDir),
			DirLabel:    strings.TrimSpace(v.DirLabel),
		})
	}

	return New(merged)
}
