package catalog

import (
	"fmt"
	"strings"

	"anglolingua/internal/exercise"
)

// VocabularyItem pairs a Polish term with its English translation.
type VocabularyItem struct {
	Polish        string
	English       string
	Example       string
	Pronunciation string
}

// GrammarRule is one grammar point with worked examples.
type GrammarRule struct {
	Title       string
	Explanation string
	Examples    []string
}

// DialogueLine is a single utterance in a lesson dialogue.
type DialogueLine struct {
	Speaker string
	Line    string
}

// Dialogue is an optional scripted conversation in a lesson.
type Dialogue struct {
	Title        string
	Participants []string
	Lines        []DialogueLine
}

// Content is the teaching material of a lesson.
type Content struct {
	Introduction string
	Vocabulary   []VocabularyItem
	Grammar      []GrammarRule
	Dialogue     *Dialogue
	Summary      string
}

// Lesson is one immutable content unit of the catalog.
// Order defines the canonical sequence and is the value the access
// policy compares against the free-lesson threshold; it need not be
// contiguous across the catalog.
type Lesson struct {
	ID               string
	Title            string
	Level            string
	Order            int
	EstimatedMinutes int
	Tags             []string

	// ForceLocked locks the lesson regardless of tier, used for
	// administrative previews of unreleased content.
	ForceLocked bool

	Content  Content
	Homework []exercise.Exercise
}

// Validate checks the lesson's structural invariants, including every
// embedded homework exercise.
func (l Lesson) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("lesson has no id")
	}
	if strings.TrimSpace(l.Title) == "" {
		return fmt.Errorf("lesson %s: empty title", l.ID)
	}
	if l.Order <= 0 {
		return fmt.Errorf("lesson %s: order must be positive, got %d", l.ID, l.Order)
	}
	seen := make(map[string]bool, len(l.Homework))
	for _, ex := range l.Homework {
		if err := ex.Validate(); err != nil {
			return fmt.Errorf("lesson %s: %w", l.ID, err)
		}
		if seen[ex.ID] {
			return fmt.Errorf("lesson %s: duplicate exercise id %s", l.ID, ex.ID)
		}
		seen[ex.ID] = true
	}
	return nil
}
