package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BadRecord pairs a failing record with its 1-based row number and the
// rule violations found.
type BadRecord struct {
	Row    int
	Errors []string
	Record Record
}

// Partition splits records into valid and invalid, preserving input order.
// Row numbers count from 1.
func Partition(records []Record) ([]Record, []BadRecord) {
	var good []Record
	var bad []BadRecord
	for i, rec := range records {
		if errs := CheckRecord(rec); len(errs) > 0 {
			bad = append(bad, BadRecord{Row: i + 1, Errors: errs, Record: rec})
			continue
		}
		good = append(good, rec)
	}
	return good, bad
}

// ReadFile decodes records from a JSON file: either a top-level array of
// record objects or a single record object. Numbers are kept as
// json.Number so integer rules can tell 3 from 3.0.
func ReadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("parse %s: file is empty", path)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	if trimmed[0] == '[' {
		var records []Record
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return records, nil
	}

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return []Record{rec}, nil
}

// FileReport summarizes validation of one file.
type FileReport struct {
	Path string
	Good int
	Bad  []BadRecord
}

// Total returns the number of records the file held.
func (r FileReport) Total() int {
	return r.Good + len(r.Bad)
}

// CheckPath validates a .json file, or every non-hidden .json file directly
// inside a directory. Reports come back in filename order.
func CheckPath(path string) ([]FileReport, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		report, err := checkFile(path)
		if err != nil {
			return nil, err
		}
		return []FileReport{report}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var reports []FileReport
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(strings.ToLower(name), ".json") {
			continue
		}
		report, err := checkFile(filepath.Join(path, name))
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func checkFile(path string) (FileReport, error) {
	records, err := ReadFile(path)
	if err != nil {
		return FileReport{}, err
	}
	good, bad := Partition(records)
	return FileReport{Path: path, Good: len(good), Bad: bad}, nil
}
