// Package homework drives a lesson's exercise set: answer, submit,
// see the score, retry.
package homework

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"anglolingua/internal/catalog"
	"anglolingua/internal/exercise"
	hw "anglolingua/internal/homework"
	"anglolingua/internal/screen"
	"anglolingua/internal/ui/components"
	"anglolingua/internal/ui/layout"
	"anglolingua/internal/ui/theme"
)

// HomeworkScreen is the interactive attempt at one lesson's homework.
type HomeworkScreen struct {
	svc     *screen.Services
	session *hw.Session
	index   int

	choices map[int]components.MultiChoice
	blanks  map[int][]components.TextInput
	focus   int // focused blank input for fill-in exercises

	result *hw.Result
	errMsg string
}

var _ screen.Screen = (*HomeworkScreen)(nil)

// New starts an attempt at the lesson's homework.
func New(svc *screen.Services, lesson catalog.Lesson) *HomeworkScreen {
	s := &HomeworkScreen{
		svc:     svc,
		session: hw.NewSession(lesson),
		choices: make(map[int]components.MultiChoice),
		blanks:  make(map[int][]components.TextInput),
	}
	for i, ex := range s.session.Exercises() {
		switch ex.Kind {
		case exercise.KindMultipleChoice:
			s.choices[i] = components.NewMultiChoice(ex, "")
		case exercise.KindFillInBlanks:
			inputs := make([]components.TextInput, ex.BlankCount())
			for j := range inputs {
				inputs[j] = components.NewTextInput("answer", 60)
			}
			s.blanks[i] = inputs
		}
	}
	return s
}

func (s *HomeworkScreen) Title() string {
	return "Homework"
}

func (s *HomeworkScreen) Init() tea.Cmd {
	return s.focusCurrent()
}

func (s *HomeworkScreen) KeyHints() []layout.KeyHint {
	if s.result != nil {
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Exercise"},
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HomeworkScreen) exercises() []exercise.Exercise {
	return s.session.Exercises()
}

func (s *HomeworkScreen) focusCurrent() tea.Cmd {
	inputs, ok := s.blanks[s.index]
	if !ok {
		return nil
	}
	if s.focus >= len(inputs) {
		s.focus = 0
	}
	for j := range inputs {
		inputs[j].Blur()
	}
	return inputs[s.focus].Focus()
}

func (s *HomeworkScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	if s.result != nil {
		if isKey && kmsg.String() == "r" {
			s.retry()
			return s, s.focusCurrent()
		}
		return s, nil
	}

	if isKey {
		switch kmsg.String() {
		case "left", "p":
			if s.index > 0 {
				s.index--
				s.focus = 0
				return s, s.focusCurrent()
			}
			return s, nil
		case "right", "n":
			if s.index < len(s.exercises())-1 {
				s.index++
				s.focus = 0
				return s, s.focusCurrent()
			}
			return s, nil
		case "tab":
			if inputs, ok := s.blanks[s.index]; ok && len(inputs) > 1 {
				s.focus = (s.focus + 1) % len(inputs)
				return s, s.focusCurrent()
			}
			return s, nil
		case "ctrl+s":
			s.submit()
			return s, nil
		case "enter":
			return s, s.record()
		}
	}

	return s, s.forward(msg)
}

// forward routes the message to the active exercise widget.
func (s *HomeworkScreen) forward(msg tea.Msg) tea.Cmd {
	if mc, ok := s.choices[s.index]; ok {
		updated, cmd := mc.Update(msg)
		s.choices[s.index] = updated
		return cmd
	}
	if inputs, ok := s.blanks[s.index]; ok {
		updated, cmd := inputs[s.focus].Update(msg)
		inputs[s.focus] = updated
		return cmd
	}
	return nil
}

// record stores the answer for the current exercise and advances.
func (s *HomeworkScreen) record() tea.Cmd {
	ex := s.exercises()[s.index]

	var answer exercise.Answer
	if mc, ok := s.choices[s.index]; ok {
		if mc.Selected < 0 || mc.Selected >= len(mc.Options) {
			return nil
		}
		mc.ChosenID = mc.Options[mc.Selected].ID
		s.choices[s.index] = mc
		answer = exercise.Answer{OptionID: mc.ChosenID}
	} else if inputs, ok := s.blanks[s.index]; ok {
		values := make([]string, len(inputs))
		for j := range inputs {
			values[j] = inputs[j].Value()
		}
		answer = exercise.Answer{Blanks: values}
	}

	if err := s.session.Record(ex.ID, answer); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""

	if s.index < len(s.exercises())-1 {
		s.index++
		s.focus = 0
	}
	return s.focusCurrent()
}

func (s *HomeworkScreen) submit() {
	res, err := s.session.Submit(context.Background(), s.svc.Progress)
	if err != nil {
		s.errMsg = "Answer every exercise before submitting."
		s.svc.Logger.Debug("homework submit rejected", "err", err)
		return
	}
	s.errMsg = ""
	s.result = &res
	for i := range s.choices {
		mc := s.choices[i]
		mc.Reveal()
		s.choices[i] = mc
	}
	s.svc.Logger.Info("homework submitted",
		"lesson_id", s.session.LessonID(),
		"score", res.Score,
		"passed", res.Passed,
	)
}

func (s *HomeworkScreen) retry() {
	s.session.Reset()
	s.result = nil
	s.index = 0
	s.focus = 0
	s.errMsg = ""
	for i, ex := range s.exercises() {
		switch ex.Kind {
		case exercise.KindMultipleChoice:
			s.choices[i] = components.NewMultiChoice(ex, "")
		case exercise.KindFillInBlanks:
			inputs := make([]components.TextInput, ex.BlankCount())
			for j := range inputs {
				inputs[j] = components.NewTextInput("answer", 60)
			}
			s.blanks[i] = inputs
		}
	}
}

func (s *HomeworkScreen) View(width, height int) string {
	if s.result != nil {
		return s.resultView(width, height)
	}

	exs := s.exercises()
	ex := exs[s.index]

	var b strings.Builder
	answered := 0
	for _, e := range exs {
		if _, ok := s.session.Answer(e.ID); ok {
			answered++
		}
	}
	b.WriteString(theme.Subtitle().Render(
		fmt.Sprintf("Exercise %d of %d · %d answered", s.index+1, len(exs), answered)) + "\n\n")

	if mc, ok := s.choices[s.index]; ok {
		b.WriteString(mc.View())
	} else if inputs, ok := s.blanks[s.index]; ok {
		b.WriteString(theme.Body().Bold(true).Render(ex.Prompt) + "\n\n")
		for j := range inputs {
			label := ""
			if len(inputs) > 1 {
				label = fmt.Sprintf("Blank %d: ", j+1)
			}
			b.WriteString("  " + theme.Body().Render(label) + inputs[j].View() + "\n")
		}
	}

	if _, ok := s.session.Answer(ex.ID); ok {
		b.WriteString("\n" + theme.Hint().Render("Answer recorded. Enter re-records it."))
	}

	if s.session.State() == hw.StateAllAnswered {
		b.WriteString("\n\n" + theme.Correct().Render("All answered! Press Ctrl+S to submit."))
	}
	if s.errMsg != "" {
		b.WriteString("\n\n" + theme.Incorrect().Render(s.errMsg))
	}

	return lipgloss.NewStyle().Padding(1, 2).Width(width).Render(b.String())
}

func (s *HomeworkScreen) resultView(width, height int) string {
	res := *s.result

	var b strings.Builder
	if res.Passed {
		b.WriteString(theme.Correct().Render("Lesson passed!") + "\n\n")
	} else {
		b.WriteString(theme.Incorrect().Render(
			fmt.Sprintf("Not quite. You need %.0f%% to pass.", hw.PassThreshold)) + "\n\n")
	}

	bar := components.NewProgressBar(
		fmt.Sprintf("Score %d/%d", res.Correct, res.Total),
		res.Score/100, true, min(width-8, 50),
	)
	b.WriteString(bar.View() + "\n\n")

	for _, ex := range s.exercises() {
		mark := theme.Incorrect().Render("✗")
		if res.PerExercise[ex.ID] {
			mark = theme.Correct().Render("✓")
		}
		line := fmt.Sprintf("%s %s", mark, ex.Prompt)
		b.WriteString(line + "\n")
		if !res.PerExercise[ex.ID] {
			b.WriteString(theme.Hint().Render("    correct: "+ex.CorrectAnswerText()) + "\n")
			if ex.Explanation != "" {
				b.WriteString(theme.Hint().Render("    "+ex.Explanation) + "\n")
			}
		}
	}

	b.WriteString("\n" + theme.Hint().Render("Press r to retry or Esc to go back."))

	return lipgloss.NewStyle().Padding(1, 2).Width(width).Render(b.String())
}
