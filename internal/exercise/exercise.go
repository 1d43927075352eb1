package exercise

import (
	"fmt"
	"strings"
)

// Kind distinguishes the supported exercise variants.
type Kind int

const (
	KindMultipleChoice Kind = iota
	KindFillInBlanks
)

func (k Kind) String() string {
	switch k {
	case KindMultipleChoice:
		return "multiple-choice"
	case KindFillInBlanks:
		return "fill-in-blanks"
	default:
		return "unknown"
	}
}

// BlankMarker is the placeholder for a blank in a fill-in prompt,
// e.g. "My name ___ Maria."
const BlankMarker = "___"

// Option is one selectable answer for a multiple-choice exercise.
type Option struct {
	ID   string
	Text string
}

// Exercise is a single homework question embedded in a lesson.
// Multiple-choice exercises carry Options and CorrectOption; fill-in
// exercises carry Blanks, one expected answer per marker in Prompt.
type Exercise struct {
	ID     string
	Kind   Kind
	Prompt string

	Options       []Option
	CorrectOption string

	Blanks []string

	// Explanation is shown during homework review. Optional.
	Explanation string
}

// BlankCount returns the number of blank markers in the prompt.
func (e Exercise) BlankCount() int {
	return strings.Count(e.Prompt, BlankMarker)
}

// PromptParts splits the prompt around its blank markers for rendering.
func (e Exercise) PromptParts() []string {
	return strings.Split(e.Prompt, BlankMarker)
}

// Validate checks the structural invariants of an exercise. Fill-in
// exercises must carry exactly one expected answer per blank marker;
// multiple-choice exercises must name an existing option as correct.
func (e Exercise) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("exercise has no id")
	}
	if strings.TrimSpace(e.Prompt) == "" {
		return fmt.Errorf("exercise %s: empty prompt", e.ID)
	}

	switch e.Kind {
	case KindMultipleChoice:
		if len(e.Options) < 2 {
			return fmt.Errorf("exercise %s: multiple choice needs at least 2 options", e.ID)
		}
		found := false
		for _, opt := range e.Options {
			if opt.ID == e.CorrectOption {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("exercise %s: correct option %q not among options", e.ID, e.CorrectOption)
		}
	case KindFillInBlanks:
		if len(e.Blanks) == 0 {
			return fmt.Errorf("exercise %s: no expected answers", e.ID)
		}
		if got, want := e.BlankCount(), len(e.Blanks); got != want {
			return fmt.Errorf("exercise %s: %d blank markers but %d expected answers", e.ID, got, want)
		}
	default:
		return fmt.Errorf("exercise %s: unknown kind %d", e.ID, e.Kind)
	}
	return nil
}

// CorrectAnswerText returns the canonical correct answer for display
// in homework review.
func (e Exercise) CorrectAnswerText() string {
	switch e.Kind {
	case KindMultipleChoice:
		for _, opt := range e.Options {
			if opt.ID == e.CorrectOption {
				return opt.Text
			}
		}
		return e.CorrectOption
	case KindFillInBlanks:
		return strings.Join(e.Blanks, ", ")
	}
	return ""
}
