// Package access decides what a learner's subscription tier unlocks.
package access

import (
	"anglolingua/internal/catalog"
	"anglolingua/internal/progress"
)

// DefaultFreeLessons is how many lessons, counted by catalog order, a
// free account can open.
const DefaultFreeLessons = 2

// PremiumFeatures is the benefit list shown on the upgrade screen.
var PremiumFeatures = []string{
	"Access to all lessons (A1-C1)",
	"Unlimited AI Conversation practice",
	"Advanced grammar exercises",
	"Personalized learning path",
	"Offline mode access",
}

// Policy gates premium content behind the subscription tier.
type Policy struct {
	// FreeLessons is the highest lesson order a free account can open.
	FreeLessons int
}

// NewPolicy returns a policy with the default free threshold.
func NewPolicy() Policy {
	return Policy{FreeLessons: DefaultFreeLessons}
}

// LessonLocked reports whether the lesson is out of reach for the user.
// A nil user is treated as a free account.
func (p Policy) LessonLocked(lesson catalog.Lesson, user *progress.User) bool {
	if lesson.ForceLocked {
		return true
	}
	if user != nil && user.Tier == progress.TierPremium {
		return false
	}
	return lesson.Order > p.FreeLessons
}

// ConversationAllowed reports whether the user may open the AI
// conversation practice.
func (p Policy) ConversationAllowed(user *progress.User) bool {
	return user != nil && user.Tier == progress.TierPremium
}
