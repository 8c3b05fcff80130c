package session

import (
	"time"

	"github.com/google/uuid"
)

// Entry records one command selection made during a session.
type Entry struct {
	At      time.Time
	Key     string
	Command string
}

// Log is a session-scoped, append-only record of command selections. It only
// ever lives in memory: nothing is written to disk and the log disappears
// with the session. Each interactive surface owns exactly one Log, so no
// locking is needed.
type Log struct {
	id      string
	entries []Entry
}

// New returns an empty log with a fresh session id.
func New() *Log {
	return &Log{id: uuid.NewString()}
}

// ID returns the full session identifier.
func (l *Log) ID() string {
	return l.id
}

// ShortID returns the first eight characters of the session id, for display.
func (l *Log) ShortID() string {
	if len(l.id) < 8 {
		return l.id
	}
	return l.id[:8]
}

// Add appends one selection. Selections are never removed or reordered.
func (l *Log) Add(e Entry) {
	l.entries = append(l.entries, e)
}

// Entries returns the selections in insertion order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of selections recorded so far.
func (l *Log) Len() int {
	return len(l.entries)
}
