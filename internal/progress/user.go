package progress

import "strings"

// Tier is the subscription level gating premium content.
type Tier string

const (
	TierFree    Tier = "FREE"
	TierPremium Tier = "PREMIUM"
)

// DefaultLevel is the proficiency label assigned to new learners.
const DefaultLevel = "A1"

// User is the authenticated learner and their learning state.
type User struct {
	ID                 string   `json:"id"`
	Email              string   `json:"email"`
	Name               string   `json:"name"`
	Level              string   `json:"currentLevel"`
	CompletedLessonIDs []string `json:"completedLessonIds"`
	Tier               Tier     `json:"subscriptionTier"`

	// AvatarSeed deterministically selects a profile picture; derived
	// from the display name at login.
	AvatarSeed string `json:"avatarSeed,omitempty"`
}

// Completed reports whether the lesson id is in the completed set.
func (u *User) Completed(lessonID string) bool {
	if u == nil {
		return false
	}
	for _, id := range u.CompletedLessonIDs {
		if id == lessonID {
			return true
		}
	}
	return false
}

// avatarSeed derives a stable avatar key from a display name.
func avatarSeed(name string) string {
	seed := strings.ToLower(strings.Join(strings.Fields(name), ""))
	if seed == "" {
		seed = "student"
	}
	return seed
}
