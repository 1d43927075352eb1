package access

import (
	"testing"

	"anglolingua/internal/catalog"
	"anglolingua/internal/progress"
)

func TestLessonLocked(t *testing.T) {
	p := NewPolicy()
	free := &progress.User{Tier: progress.TierFree}
	premium := &progress.User{Tier: progress.TierPremium}

	tests := []struct {
		name   string
		lesson catalog.Lesson
		user   *progress.User
		want   bool
	}{
		{"free user, order 1", catalog.Lesson{Order: 1}, free, false},
		{"free user, order 2", catalog.Lesson{Order: 2}, free, false},
		{"free user, order 3", catalog.Lesson{Order: 3}, free, true},
		{"premium user, order 3", catalog.Lesson{Order: 3}, premium, false},
		{"premium user, order 5", catalog.Lesson{Order: 5}, premium, false},
		{"force locked beats premium", catalog.Lesson{Order: 1, ForceLocked: true}, premium, true},
		{"nil user treated as free", catalog.Lesson{Order: 3}, nil, true},
		{"nil user, free range", catalog.Lesson{Order: 1}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.LessonLocked(tt.lesson, tt.user); got != tt.want {
				t.Errorf("LessonLocked = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConversationAllowed(t *testing.T) {
	p := NewPolicy()
	if p.ConversationAllowed(&progress.User{Tier: progress.TierFree}) {
		t.Error("free tier allowed into conversation")
	}
	if !p.ConversationAllowed(&progress.User{Tier: progress.TierPremium}) {
		t.Error("premium tier denied conversation")
	}
	if p.ConversationAllowed(nil) {
		t.Error("nil user allowed into conversation")
	}
}

func TestCustomFreeThreshold(t *testing.T) {
	p := Policy{FreeLessons: 4}
	free := &progress.User{Tier: progress.TierFree}
	if p.LessonLocked(catalog.Lesson{Order: 4}, free) {
		t.Error("order 4 locked under threshold 4")
	}
	if !p.LessonLocked(catalog.Lesson{Order: 5}, free) {
		t.Error("order 5 unlocked under threshold 4")
	}
}
