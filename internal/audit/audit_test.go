package audit

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()

	log, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

func TestRecordAndEvents(t *testing.T) {
	log := openTestLog(t)

	events := []Event{
		{Operation: "init", Success: true},
		{Operation: "add", EntryName: "github", Success: true},
		{Operation: "get", EntryName: "github", Success: false},
	}
	for _, e := range events {
		if err := log.Record(e); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := log.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(got) != len(events) {
		t.Fatalf("expected %d events, got %d", len(events), len(got))
	}

	// Append order must be preserved.
	for i, e := range events {
		if got[i].Operation != e.Operation || got[i].EntryName != e.EntryName || got[i].Success != e.Success {
			t.Errorf("event %d mismatch: got %+v, want %+v", i, got[i], e)
		}
		if got[i].Timestamp.IsZero() {
			t.Errorf("event %d should have been stamped", i)
		}
	}
}

func TestRecordKeepsExplicitTimestamp(t *testing.T) {
	log := openTestLog(t)

	ts := time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)
	if err := log.Record(Event{Operation: "add", Timestamp: ts, Success: true}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	events, err := log.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 1 || !events[0].Timestamp.Equal(ts) {
		t.Errorf("expected timestamp %v, got %+v", ts, events)
	}
}

func TestEmptyLog(t *testing.T) {
	log := openTestLog(t)

	events, err := log.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}
