package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"anglolingua/internal/exercise"
	"anglolingua/internal/ui/theme"
)

// MultiChoice selects one of an exercise's answer options by id.
type MultiChoice struct {
	Prompt   string
	Options  []exercise.Option
	Selected int
	// Revealed shows the correct option after submission.
	Revealed  bool
	CorrectID string
	ChosenID  string
}

// NewMultiChoice creates a selector for the exercise's options,
// restoring a previously chosen option when chosenID is set.
func NewMultiChoice(ex exercise.Exercise, chosenID string) MultiChoice {
	selected := 0
	for i, opt := range ex.Options {
		if opt.ID == chosenID {
			selected = i
			break
		}
	}
	return MultiChoice{
		Prompt:    ex.Prompt,
		Options:   ex.Options,
		Selected:  selected,
		CorrectID: ex.CorrectOption,
		ChosenID:  chosenID,
	}
}

// Update handles keyboard navigation and selection. Enter records the
// highlighted option as chosen.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Options) {
			m.ChosenID = m.Options[m.Selected].ID
		}
	}

	return m, nil
}

// Reveal switches to result display.
func (m *MultiChoice) Reveal() {
	m.Revealed = true
}

// View renders the prompt and options.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text()).Bold(true).Render(m.Prompt) + "\n\n"

	for i, opt := range m.Options {
		label := string(rune('A' + i))
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}
		marker := " "
		if opt.ID == m.ChosenID {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt.Text)

		switch {
		case m.Revealed && opt.ID == m.CorrectID:
			s += theme.Correct().Render(line) + "\n"
		case m.Revealed && opt.ID == m.ChosenID:
			s += theme.Incorrect().Render(line) + "\n"
		case m.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim()).Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected().Render(line) + "\n"
		default:
			s += theme.Unselected().Render(line) + "\n"
		}
	}

	return s
}
