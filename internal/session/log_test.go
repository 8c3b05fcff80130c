package session

import (
	"testing"
	"time"
)

func TestLogAppendsInOrder(t *testing.T) {
	l := New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	selections := []Entry{
		{At: base, Key: "nba_pull", Command: "/charlotte nba pull"},
		{At: base.Add(time.Minute), Key: "mlb_sim", Command: "/charlotte mlb sim pregame"},
		{At: base.Add(2 * time.Minute), Key: "nba_pull", Command: "/charlotte nba pull"},
	}

	for i, e := range selections {
		l.Add(e)
		if l.Len() != i+1 {
			t.Fatalf("Len() = %d after %d adds, expected %d", l.Len(), i+1, i+1)
		}
	}

	got := l.Entries()
	for i, e := range got {
		if e != selections[i] {
			t.Errorf("Entries()[%d] = %+v, expected %+v", i, e, selections[i])
		}
	}
}

func TestLogEntriesReturnsCopy(t *testing.T) {
	l := New()
	l.Add(Entry{Key: "release", Command: "/charlotte release"})

	got := l.Entries()
	got[0].Key = "mutated"

	if l.Entries()[0].Key != "release" {
		t.Error("mutating the returned slice changed the log")
	}
}

func TestLogIDs(t *testing.T) {
	a, b := New(), New()

	if a.ID() == "" {
		t.Error("ID() is empty")
	}
	if a.ID() == b.ID() {
		t.Errorf("two sessions share id %q", a.ID())
	}
	if len(a.ShortID()) != 8 {
		t.Errorf("ShortID() = %q, expected eight characters", a.ShortID())
	}
}
