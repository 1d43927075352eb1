package catalog

import (
	"context"
	"errors"
	"testing"
	"time"
)

type sliceSource struct {
	lessons []Lesson
	err     error
}

func (s sliceSource) FetchAll(context.Context) ([]Lesson, error) {
	return s.lessons, s.err
}

func TestLoad_SortsByOrder(t *testing.T) {
	seed := SeedLessons()
	// Feed in reverse order to prove the store sorts.
	reversed := make([]Lesson, len(seed))
	for i, l := range seed {
		reversed[len(seed)-1-i] = l
	}

	s := NewStore(sliceSource{lessons: reversed})
	if s.Ready() {
		t.Fatal("store reported ready before Load")
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.Ready() {
		t.Fatal("store not ready after Load")
	}

	got := s.List()
	if len(got) != len(seed) {
		t.Fatalf("List returned %d lessons, want %d", len(got), len(seed))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Order >= got[i].Order {
			t.Errorf("lessons not ordered: %d before %d", got[i-1].Order, got[i].Order)
		}
	}
}

func TestLoad_Idempotent(t *testing.T) {
	s := NewStore(sliceSource{lessons: SeedLessons()})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("first Load: %v", err)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if s.Len() != len(SeedLessons()) {
		t.Errorf("Len = %d after double load, want %d", s.Len(), len(SeedLessons()))
	}
}

func TestGet_UnknownID(t *testing.T) {
	s := NewStore(sliceSource{lessons: SeedLessons()})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, ok := s.Get("lesson-1"); !ok {
		t.Error("expected lesson-1 to be found")
	}
	if _, ok := s.Get("no-such-lesson"); ok {
		t.Error("expected unknown id to report not found")
	}
}

func TestLoad_RejectsDuplicateOrder(t *testing.T) {
	seed := SeedLessons()[:2]
	seed[1].Order = seed[0].Order

	s := NewStore(sliceSource{lessons: seed})
	if err := s.Load(context.Background()); err == nil {
		t.Fatal("expected duplicate order to be rejected")
	}
}

func TestLoad_PropagatesSourceError(t *testing.T) {
	wantErr := errors.New("network down")
	s := NewStore(sliceSource{err: wantErr})
	if err := s.Load(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("Load error = %v, want %v", err, wantErr)
	}
	if s.Ready() {
		t.Error("store must not be ready after failed load")
	}
}

func TestSeedLessons_Valid(t *testing.T) {
	s := NewStore(sliceSource{lessons: SeedLessons()})
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("seed catalog failed validation: %v", err)
	}
}

func TestStaticSource_RespectsContext(t *testing.T) {
	src := StaticSource{Delay: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := src.FetchAll(ctx); err == nil {
		t.Fatal("expected context cancellation error")
	}
}
