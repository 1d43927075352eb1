// Package notfound renders a fallback for unknown lesson ids.
package notfound

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"anglolingua/internal/screen"
	"anglolingua/internal/ui/theme"
)

// NotFoundScreen tells the learner the requested lesson doesn't exist.
type NotFoundScreen struct {
	lessonID string
}

var _ screen.Screen = (*NotFoundScreen)(nil)

// New creates the screen for the missing lesson id.
func New(lessonID string) *NotFoundScreen {
	return &NotFoundScreen{lessonID: lessonID}
}

func (s *NotFoundScreen) Title() string { return "Not Found" }

func (s *NotFoundScreen) Init() tea.Cmd { return nil }

func (s *NotFoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *NotFoundScreen) View(width, height int) string {
	body := theme.Title().Render("Lesson not found") + "\n\n" +
		theme.Subtitle().Render(fmt.Sprintf("No lesson with id %q exists.", s.lessonID)) + "\n\n" +
		theme.Hint().Render("Press Esc to go back.")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
