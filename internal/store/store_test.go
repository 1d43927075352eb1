package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecords_PutGetDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := s.GetRecord(ctx, "user_session"); err != nil || ok {
		t.Fatalf("GetRecord on empty store = ok %v, err %v", ok, err)
	}

	if err := s.PutRecord(ctx, "user_session", `{"version":1}`); err != nil {
		t.Fatalf("PutRecord: %v", err)
	}
	got, ok, err := s.GetRecord(ctx, "user_session")
	if err != nil || !ok {
		t.Fatalf("GetRecord = ok %v, err %v", ok, err)
	}
	if got != `{"version":1}` {
		t.Errorf("GetRecord = %q", got)
	}

	// Overwrite.
	if err := s.PutRecord(ctx, "user_session", `{"version":2}`); err != nil {
		t.Fatalf("PutRecord overwrite: %v", err)
	}
	got, _, _ = s.GetRecord(ctx, "user_session")
	if got != `{"version":2}` {
		t.Errorf("after overwrite GetRecord = %q", got)
	}

	if err := s.DeleteRecord(ctx, "user_session"); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}
	if _, ok, _ := s.GetRecord(ctx, "user_session"); ok {
		t.Error("record still present after delete")
	}

	// Deleting again is not an error.
	if err := s.DeleteRecord(ctx, "user_session"); err != nil {
		t.Errorf("DeleteRecord on absent key: %v", err)
	}
}

func TestRecords_SurviveReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.PutRecord(ctx, "theme", "dark"); err != nil {
		t.Fatalf("PutRecord: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	got, ok, err := s2.GetRecord(ctx, "theme")
	if err != nil || !ok || got != "dark" {
		t.Fatalf("after reopen GetRecord = %q, ok %v, err %v", got, ok, err)
	}
}

func TestTutorEvents_AppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.TutorEvents()

	for i := 0; i < 3; i++ {
		err := repo.AppendTutorRequest(ctx, TutorEventData{
			Provider:   "mock",
			Model:      "mock",
			LatencyMs:  int64(10 + i),
			Success:    i != 1,
			InputChars: 5,
			ReplyChars: 7,
		})
		if err != nil {
			t.Fatalf("AppendTutorRequest: %v", err)
		}
	}

	events, err := repo.RecentTutorRequests(ctx, 2)
	if err != nil {
		t.Fatalf("RecentTutorRequests: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Most recent first.
	if events[0].ID < events[1].ID {
		t.Error("events not in reverse chronological order")
	}
	if events[0].LatencyMs != 12 {
		t.Errorf("latest event latency = %d, want 12", events[0].LatencyMs)
	}
}
