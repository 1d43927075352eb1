package progress

import (
	"context"
	"path/filepath"
	"testing"

	"anglolingua/internal/store"
)

func openRecords(t *testing.T, path string) *store.Store {
	t.Helper()
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLogin_Defaults(t *testing.T) {
	db := openRecords(t, filepath.Join(t.TempDir(), "p.db"))
	s := NewStore(db, nil)
	ctx := context.Background()

	u, err := s.Login(ctx, "  kasia@example.com ", "Kasia Nowak")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Email != "kasia@example.com" {
		t.Errorf("email = %q", u.Email)
	}
	if u.Tier != TierFree {
		t.Errorf("tier = %q, want FREE", u.Tier)
	}
	if u.Level != DefaultLevel {
		t.Errorf("level = %q, want %q", u.Level, DefaultLevel)
	}
	if len(u.CompletedLessonIDs) != 0 {
		t.Errorf("new user has completed lessons: %v", u.CompletedLessonIDs)
	}
	if u.AvatarSeed != "kasianowak" {
		t.Errorf("avatar seed = %q", u.AvatarSeed)
	}
	if !s.Authenticated() {
		t.Error("not authenticated after login")
	}
}

func TestLogin_EmptyEmailRejected(t *testing.T) {
	db := openRecords(t, filepath.Join(t.TempDir(), "p.db"))
	s := NewStore(db, nil)

	if _, err := s.Login(context.Background(), "   ", "Jan"); err == nil {
		t.Fatal("expected error for blank email")
	}
	if s.Authenticated() {
		t.Error("authenticated after failed login")
	}
}

func TestRehydrate_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.db")
	ctx := context.Background()

	db := openRecords(t, path)
	s := NewStore(db, nil)
	u, err := s.Login(ctx, "jan@example.com", "Jan")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := s.UpgradeToPremium(ctx); err != nil {
		t.Fatalf("UpgradeToPremium: %v", err)
	}
	if err := s.CompleteLesson(ctx, "lesson-1"); err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}
	if _, err := s.ToggleTheme(ctx); err != nil {
		t.Fatalf("ToggleTheme: %v", err)
	}
	db.Close()

	db2 := openRecords(t, path)
	s2 := NewStore(db2, nil)
	if err := s2.Rehydrate(ctx); err != nil {
		t.Fatalf("Rehydrate: %v", err)
	}
	got := s2.User()
	if got == nil {
		t.Fatal("no user after rehydrate")
	}
	if got.ID != u.ID || got.Email != u.Email || got.Name != u.Name {
		t.Errorf("rehydrated user = %+v, want identity of %+v", got, u)
	}
	if got.Tier != TierPremium {
		t.Errorf("tier = %q, want PREMIUM", got.Tier)
	}
	if !got.Completed("lesson-1") {
		t.Error("completed lesson lost across restart")
	}
	if s2.Theme() != ThemeDark {
		t.Errorf("theme = %q, want dark", s2.Theme())
	}
}

func TestLogout_ClearsPersistedSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.db")
	ctx := context.Background()

	db := openRecords(t, path)
	s := NewStore(db, nil)
	if _, err := s.Login(ctx, "jan@example.com", "Jan"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if s.Authenticated() {
		t.Error("authenticated after logout")
	}
	db.Close()

	db2 := openRecords(t, path)
	s2 := NewStore(db2, nil)
	if err := s2.Rehydrate(ctx); err != nil {
		t.Fatalf("Rehydrate: %v", err)
	}
	if s2.Authenticated() {
		t.Error("session survived logout and restart")
	}
}

func TestRehydrate_MalformedRecordMeansLoggedOut(t *testing.T) {
	db := openRecords(t, filepath.Join(t.TempDir(), "p.db"))
	ctx := context.Background()
	if err := db.PutRecord(ctx, "user_session", `{not json`); err != nil {
		t.Fatalf("PutRecord: %v", err)
	}

	s := NewStore(db, nil)
	if err := s.Rehydrate(ctx); err != nil {
		t.Fatalf("Rehydrate: %v", err)
	}
	if s.Authenticated() {
		t.Error("authenticated from malformed record")
	}
}

func TestRehydrate_VersionMismatchDiscarded(t *testing.T) {
	db := openRecords(t, filepath.Join(t.TempDir(), "p.db"))
	ctx := context.Background()
	raw := `{"version":99,"user":{"id":"user-x","email":"x@x","name":"X","currentLevel":"A1","completedLessonIds":[],"subscriptionTier":"FREE"}}`
	if err := db.PutRecord(ctx, "user_session", raw); err != nil {
		t.Fatalf("PutRecord: %v", err)
	}

	s := NewStore(db, nil)
	if err := s.Rehydrate(ctx); err != nil {
		t.Fatalf("Rehydrate: %v", err)
	}
	if s.Authenticated() {
		t.Error("authenticated from record with unknown version")
	}
}

func TestCompleteLesson_Idempotent(t *testing.T) {
	db := openRecords(t, filepath.Join(t.TempDir(), "p.db"))
	s := NewStore(db, nil)
	ctx := context.Background()
	if _, err := s.Login(ctx, "jan@example.com", "Jan"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := s.CompleteLesson(ctx, "lesson-2"); err != nil {
			t.Fatalf("CompleteLesson: %v", err)
		}
	}
	u := s.User()
	if len(u.CompletedLessonIDs) != 1 {
		t.Errorf("completed set = %v, want single entry", u.CompletedLessonIDs)
	}
}

func TestUser_ReturnsCopy(t *testing.T) {
	db := openRecords(t, filepath.Join(t.TempDir(), "p.db"))
	s := NewStore(db, nil)
	ctx := context.Background()
	if _, err := s.Login(ctx, "jan@example.com", "Jan"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := s.CompleteLesson(ctx, "lesson-1"); err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}

	u := s.User()
	u.CompletedLessonIDs[0] = "mutated"
	u.Tier = TierPremium

	fresh := s.User()
	if fresh.CompletedLessonIDs[0] != "lesson-1" || fresh.Tier != TierFree {
		t.Error("mutating the returned user leaked into the store")
	}
}
