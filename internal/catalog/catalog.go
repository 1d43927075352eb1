package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Source supplies the full lesson set. Implementations may simulate or
// perform remote fetches; the store awaits them once at startup.
type Source interface {
	FetchAll(ctx context.Context) ([]Lesson, error)
}

// Store holds the immutable lesson catalog in memory. It is populated
// once via Load and serves ordered listings and id lookups afterwards.
type Store struct {
	src Source

	mu      sync.RWMutex
	lessons []Lesson
	byID    map[string]Lesson
	ready   bool
}

// NewStore creates an unpopulated store reading from src.
func NewStore(src Source) *Store {
	return &Store{src: src, byID: make(map[string]Lesson)}
}

// Load fetches, validates, and indexes the catalog. It is idempotent:
// once the store is ready, further calls are no-ops.
func (s *Store) Load(ctx context.Context) error {
	s.mu.RLock()
	ready := s.ready
	s.mu.RUnlock()
	if ready {
		return nil
	}

	lessons, err := s.src.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch catalog: %w", err)
	}

	byID := make(map[string]Lesson, len(lessons))
	orders := make(map[int]string, len(lessons))
	for _, l := range lessons {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("invalid catalog: %w", err)
		}
		if prev, dup := byID[l.ID]; dup {
			return fmt.Errorf("invalid catalog: duplicate lesson id %s", prev.ID)
		}
		if prev, dup := orders[l.Order]; dup {
			return fmt.Errorf("invalid catalog: lessons %s and %s share order %d", prev, l.ID, l.Order)
		}
		byID[l.ID] = l
		orders[l.Order] = l.ID
	}

	sorted := make([]Lesson, len(lessons))
	copy(sorted, lessons)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}
	s.lessons = sorted
	s.byID = byID
	s.ready = true
	return nil
}

// Ready reports whether the catalog has been populated.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// List returns all lessons ordered ascending by Order. The returned
// slice is a copy and safe to retain.
func (s *Store) List() []Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Lesson, len(s.lessons))
	copy(out, s.lessons)
	return out
}

// Get returns the lesson with the given id, or false if unknown.
func (s *Store) Get(id string) (Lesson, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.byID[id]
	return l, ok
}

// Len returns the number of lessons in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lessons)
}

// StaticSource serves the built-in AngloLingua lesson set after a short
// artificial delay, standing in for a remote content service.
type StaticSource struct {
	Delay time.Duration
}

// FetchAll returns the seed lessons once the delay has elapsed.
func (s StaticSource) FetchAll(ctx context.Context) ([]Lesson, error) {
	if s.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.Delay):
		}
	}
	return SeedLessons(), nil
}
