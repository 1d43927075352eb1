// Package homework runs the answer-collect-submit cycle for a lesson's
// exercise set and reports pass or fail.
package homework

import (
	"context"
	"errors"
	"fmt"

	"anglolingua/internal/catalog"
	"anglolingua/internal/exercise"
)

// PassThreshold is the minimum score percentage that completes the
// lesson.
const PassThreshold = 60.0

// State is the phase of a homework attempt.
type State int

const (
	// StateNoHomework means the lesson has no exercises to attempt.
	StateNoHomework State = iota
	// StateUnanswered means no answer has been recorded yet.
	StateUnanswered
	// StateInProgress means some but not all exercises are answered.
	StateInProgress
	// StateAllAnswered means every exercise has an answer and the
	// attempt can be submitted.
	StateAllAnswered
	// StateSubmitted means the attempt was scored.
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateNoHomework:
		return "no-homework"
	case StateUnanswered:
		return "unanswered"
	case StateInProgress:
		return "in-progress"
	case StateAllAnswered:
		return "all-answered"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrNotReady is returned by Submit when some exercises are still
// unanswered.
var ErrNotReady = errors.New("homework: not all exercises answered")

// ErrAlreadySubmitted is returned when recording or submitting after
// the attempt was scored.
var ErrAlreadySubmitted = errors.New("homework: attempt already submitted")

// Completer records that a lesson was passed. Satisfied by
// *progress.Store.
type Completer interface {
	CompleteLesson(ctx context.Context, lessonID string) error
}

// Result is the scored outcome of a submitted attempt.
type Result struct {
	Correct int
	Total   int
	Score   float64
	Passed  bool
	// PerExercise maps exercise id to correctness.
	PerExercise map[string]bool
}

// Session holds one learner's attempt at a lesson's homework. Answers
// may be changed freely until Submit; after that the attempt is frozen
// until Reset.
type Session struct {
	lesson    catalog.Lesson
	exercises []exercise.Exercise
	answers   map[string]exercise.Answer
	result    *Result
}

// NewSession starts an attempt at the lesson's homework.
func NewSession(lesson catalog.Lesson) *Session {
	return &Session{
		lesson:    lesson,
		exercises: lesson.Homework,
		answers:   make(map[string]exercise.Answer),
	}
}

// State derives the current phase from the recorded answers.
func (s *Session) State() State {
	if len(s.exercises) == 0 {
		return StateNoHomework
	}
	if s.result != nil {
		return StateSubmitted
	}
	switch len(s.answers) {
	case 0:
		return StateUnanswered
	case len(s.exercises):
		return StateAllAnswered
	default:
		return StateInProgress
	}
}

// Exercises returns the exercise set in lesson order.
func (s *Session) Exercises() []exercise.Exercise {
	return s.exercises
}

// LessonID returns the lesson this attempt belongs to.
func (s *Session) LessonID() string {
	return s.lesson.ID
}

// Answer returns the recorded answer for the exercise, if any.
func (s *Session) Answer(exerciseID string) (exercise.Answer, bool) {
	a, ok := s.answers[exerciseID]
	return a, ok
}

// Record stores the answer for an exercise, replacing any previous
// answer. Recording after submission is rejected.
func (s *Session) Record(exerciseID string, answer exercise.Answer) error {
	if s.result != nil {
		return ErrAlreadySubmitted
	}
	for _, ex := range s.exercises {
		if ex.ID == exerciseID {
			s.answers[exerciseID] = answer
			return nil
		}
	}
	return fmt.Errorf("homework: unknown exercise %q", exerciseID)
}

// Submit scores the attempt. Every exercise must be answered first. A
// passing score marks the lesson complete through the completer; a
// failing score leaves completion untouched. Submitting twice returns
// ErrAlreadySubmitted with the original result.
func (s *Session) Submit(ctx context.Context, completer Completer) (Result, error) {
	if s.result != nil {
		return *s.result, ErrAlreadySubmitted
	}
	if len(s.exercises) == 0 {
		return Result{}, ErrNotReady
	}
	if len(s.answers) != len(s.exercises) {
		return Result{}, ErrNotReady
	}

	res := Result{
		Total:       len(s.exercises),
		PerExercise: make(map[string]bool, len(s.exercises)),
	}
	for _, ex := range s.exercises {
		ok := exercise.Evaluate(ex, s.answers[ex.ID])
		res.PerExercise[ex.ID] = ok
		if ok {
			res.Correct++
		}
	}
	res.Score = float64(res.Correct) / float64(res.Total) * 100
	res.Passed = res.Score >= PassThreshold

	if res.Passed && completer != nil {
		if err := completer.CompleteLesson(ctx, s.lesson.ID); err != nil {
			return Result{}, fmt.Errorf("record lesson completion: %w", err)
		}
	}
	s.result = &res
	return res, nil
}

// Result returns the scored outcome after submission.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// Reset discards the answers and result so the learner can retry.
// Lesson completion earned by a previous pass is kept.
func (s *Session) Reset() {
	s.answers = make(map[string]exercise.Answer)
	s.result = nil
}
