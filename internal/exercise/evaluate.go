package exercise

import "strings"

// Answer is a learner's submission for one exercise. OptionID is set
// for multiple choice, Blanks for fill-in exercises (one value per
// blank, in prompt order).
type Answer struct {
	OptionID string
	Blanks   []string
}

// Evaluate compares a submitted answer against the exercise definition.
//
// Normalization rules for fill-in answers:
//   - Whitespace is trimmed
//   - Comparison is case-insensitive
//   - A missing value for a blank position counts as incorrect
//
// Multiple choice compares option ids exactly. Evaluate is pure: the
// same inputs always yield the same verdict.
func Evaluate(e Exercise, a Answer) bool {
	switch e.Kind {
	case KindMultipleChoice:
		return a.OptionID != "" && a.OptionID == e.CorrectOption

	case KindFillInBlanks:
		for i, want := range e.Blanks {
			if i >= len(a.Blanks) {
				return false
			}
			if !blankMatches(a.Blanks[i], want) {
				return false
			}
		}
		return true
	}
	return false
}

// blankMatches compares one submitted blank value against the expected
// text, trimmed and case-folded.
func blankMatches(got, want string) bool {
	return strings.EqualFold(strings.TrimSpace(got), strings.TrimSpace(want))
}
