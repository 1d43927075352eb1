package homework

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"anglolingua/internal/catalog"
	"anglolingua/internal/exercise"
)

type fakeCompleter struct {
	completed []string
	err       error
}

func (f *fakeCompleter) CompleteLesson(_ context.Context, lessonID string) error {
	if f.err != nil {
		return f.err
	}
	f.completed = append(f.completed, lessonID)
	return nil
}

func mcExercise(id string) exercise.Exercise {
	return exercise.Exercise{
		ID:   id,
		Kind: exercise.KindMultipleChoice,
		Options: []exercise.Option{
			{ID: "opt1", Text: "right"},
			{ID: "opt2", Text: "wrong"},
		},
		CorrectOption: "opt1",
	}
}

func testLesson(n int) catalog.Lesson {
	l := catalog.Lesson{ID: "lesson-1", Title: "Test", Order: 1}
	for i := 0; i < n; i++ {
		l.Homework = append(l.Homework, mcExercise(fmt.Sprintf("hw-%d", i)))
	}
	return l
}

func correct() exercise.Answer   { return exercise.Answer{OptionID: "opt1"} }
func incorrect() exercise.Answer { return exercise.Answer{OptionID: "opt2"} }

func TestStateTransitions(t *testing.T) {
	s := NewSession(testLesson(2))
	if s.State() != StateUnanswered {
		t.Fatalf("initial state = %v", s.State())
	}
	if err := s.Record("hw-0", correct()); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if s.State() != StateInProgress {
		t.Fatalf("state after one answer = %v", s.State())
	}
	if err := s.Record("hw-1", correct()); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if s.State() != StateAllAnswered {
		t.Fatalf("state after all answers = %v", s.State())
	}
	if _, err := s.Submit(context.Background(), nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if s.State() != StateSubmitted {
		t.Fatalf("state after submit = %v", s.State())
	}
}

func TestNoHomework(t *testing.T) {
	s := NewSession(catalog.Lesson{ID: "lesson-x"})
	if s.State() != StateNoHomework {
		t.Fatalf("state = %v, want no-homework", s.State())
	}
	if _, err := s.Submit(context.Background(), nil); !errors.Is(err, ErrNotReady) {
		t.Errorf("Submit on empty homework: err = %v", err)
	}
}

func TestSubmit_RequiresAllAnswers(t *testing.T) {
	s := NewSession(testLesson(3))
	s.Record("hw-0", correct())
	if _, err := s.Submit(context.Background(), nil); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Submit with missing answers: err = %v", err)
	}
}

func TestSubmit_ScoreAndPass(t *testing.T) {
	tests := []struct {
		name      string
		answers   []bool
		wantScore float64
		wantPass  bool
	}{
		{"three of four", []bool{true, true, false, true}, 75, true},
		{"three of five is the boundary", []bool{true, false, true, false, true}, 60, true},
		{"half of four fails", []bool{true, false, true, false}, 50, false},
		{"all correct", []bool{true, true}, 100, true},
		{"all wrong", []bool{false, false}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(testLesson(len(tt.answers)))
			for i, right := range tt.answers {
				a := incorrect()
				if right {
					a = correct()
				}
				if err := s.Record(fmt.Sprintf("hw-%d", i), a); err != nil {
					t.Fatalf("Record: %v", err)
				}
			}
			fc := &fakeCompleter{}
			res, err := s.Submit(context.Background(), fc)
			if err != nil {
				t.Fatalf("Submit: %v", err)
			}
			if res.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", res.Score, tt.wantScore)
			}
			if res.Passed != tt.wantPass {
				t.Errorf("passed = %v, want %v", res.Passed, tt.wantPass)
			}
			wantCompleted := 0
			if tt.wantPass {
				wantCompleted = 1
			}
			if len(fc.completed) != wantCompleted {
				t.Errorf("completer calls = %v", fc.completed)
			}
		})
	}
}

func TestRecord_OverwritesBeforeSubmit(t *testing.T) {
	s := NewSession(testLesson(1))
	s.Record("hw-0", incorrect())
	if err := s.Record("hw-0", correct()); err != nil {
		t.Fatalf("re-record: %v", err)
	}
	res, err := s.Submit(context.Background(), nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Correct != 1 {
		t.Errorf("correct = %d, want 1 after overwrite", res.Correct)
	}
}

func TestRecord_AfterSubmitRejected(t *testing.T) {
	s := NewSession(testLesson(1))
	s.Record("hw-0", correct())
	if _, err := s.Submit(context.Background(), nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := s.Record("hw-0", incorrect()); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("Record after submit: err = %v", err)
	}
	if _, err := s.Submit(context.Background(), nil); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("second Submit: err = %v", err)
	}
}

func TestRecord_UnknownExercise(t *testing.T) {
	s := NewSession(testLesson(1))
	if err := s.Record("nope", correct()); err == nil {
		t.Error("expected error for unknown exercise id")
	}
}

func TestSubmit_CompleterErrorPropagates(t *testing.T) {
	s := NewSession(testLesson(1))
	s.Record("hw-0", correct())
	fc := &fakeCompleter{err: errors.New("disk full")}
	if _, err := s.Submit(context.Background(), fc); err == nil {
		t.Fatal("expected completer error to surface")
	}
	// The attempt is not frozen on a failed completion write.
	if s.State() != StateAllAnswered {
		t.Errorf("state = %v after failed submit", s.State())
	}
}

func TestReset_AllowsRetry(t *testing.T) {
	s := NewSession(testLesson(2))
	s.Record("hw-0", incorrect())
	s.Record("hw-1", incorrect())
	if _, err := s.Submit(context.Background(), nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	s.Reset()
	if s.State() != StateUnanswered {
		t.Fatalf("state after reset = %v", s.State())
	}
	if _, ok := s.Result(); ok {
		t.Error("result survived reset")
	}
	s.Record("hw-0", correct())
	s.Record("hw-1", correct())
	res, err := s.Submit(context.Background(), nil)
	if err != nil {
		t.Fatalf("Submit after reset: %v", err)
	}
	if !res.Passed {
		t.Error("retry did not pass")
	}
}
