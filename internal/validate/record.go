package validate

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// Record is one decoded game record, as the workflow commits them.
type Record map[string]any

// Every record the workflow writes must carry these fields.
var requiredFields = []string{
	"date", "team_1", "team_2", "score_1", "score_2",
	"odds_open_team_1", "odds_open_team_2",
	"odds_close_team_1", "odds_close_team_2",
	"line_movement", "outcome",
}

// Optional fields the workflow is allowed to add.
var allowedExtras = map[string]bool{
	"injuries":        true,
	"weather_summary": true,
	"venue":           true,
	"referee_id":      true,
}

// CheckRecord returns the rule violations for one record. An empty slice
// means the record is valid.
func CheckRecord(rec Record) []string {
	var errs []string

	for _, k := range requiredFields {
		if _, ok := rec[k]; !ok {
			errs = append(errs, "missing field: "+k)
		}
	}

	if v, ok := rec["date"]; ok && !isDate(v) {
		errs = append(errs, "invalid date format (YYYY-MM-DD expected)")
	}

	for _, k := range []string{"team_1", "team_2"} {
		if v, ok := rec[k]; ok && !isNonEmptyString(v) {
			errs = append(errs, k+" must be non-empty string")
		}
	}

	for _, k := range []string{"score_1", "score_2"} {
		if v, ok := rec[k]; ok {
			if i, isInt := intValue(v); !isInt || i < 0 {
				errs = append(errs, k+" must be integer >= 0")
			}
		}
	}

	for _, k := range []string{"odds_open_team_1", "odds_open_team_2", "odds_close_team_1", "odds_close_team_2"} {
		if v, ok := rec[k]; ok {
			if f, isNum := floatValue(v); !isNum || f <= 1.0 {
				errs = append(errs, k+" must be a number > 1.0")
			}
		}
	}

	if v, ok := rec["line_movement"]; ok {
		if f, isNum := floatValue(v); !isNum || f < 0 {
			errs = append(errs, "line_movement must be a number >= 0")
		}
	}

	if v, ok := rec["outcome"]; ok {
		if i, isInt := intValue(v); !isInt || (i != 0 && i != 1) {
			errs = append(errs, "outcome must be 0 or 1")
		}
	}

	var extra []string
	for k := range rec {
		if !isAllowedField(k) {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		errs = append(errs, "unexpected fields: "+strings.Join(extra, ", "))
	}

	return errs
}

func isAllowedField(name string) bool {
	if allowedExtras[name] {
		return true
	}
	for _, k := range requiredFields {
		if k == name {
			return true
		}
	}
	return false
}

func isDate(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func isNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// intValue accepts JSON integers (decoded with UseNumber) and Go ints.
// Fractional numbers are not integers, matching the upstream rules.
func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
