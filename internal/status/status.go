package status

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Target names a directory to scan, with its display label.
type Target struct {
	Label string
	Path  string // relative to the scan root
}

// DirStatus describes one data directory at scan time.
type DirStatus struct {
	Label     string
	Path      string     // the configured relative path, for display
	FileCount int        // regular, non-hidden files directly in the directory
	Newest    *time.Time // modification time of the newest counted file; nil when none
	Missing   bool       // the directory does not exist or could not be read
}

// Scan inspects each target directory under root, in the order given.
// Missing or unreadable directories report zero files and no timestamp;
// they are never errors. The result reflects the filesystem at call time
// only; nothing is cached between calls.
func Scan(root string, targets []Target) []DirStatus {
	out := make([]DirStatus, 0, len(targets))
	for _, t := range targets {
		out = append(out, scanDir(root, t))
	}
	return out
}

func scanDir(root string, t Target) DirStatus {
	st := DirStatus{Label: t.Label, Path: t.Path}

	entries, err := os.ReadDir(filepath.Join(root, t.Path))
	if err != nil {
		st.Missing = true
		return st
	}

	var newest time.Time
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		st.FileCount++

		info, err := entry.Info()
		if err != nil {
			// The file was counted; it just contributes no timestamp.
			continue
		}
		if mt := info.ModTime(); mt.After(newest) {
			newest = mt
		}
	}

	if !newest.IsZero() {
		st.Newest = &newest
	}
	return st
}
