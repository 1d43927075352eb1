// Package profile shows the account, the theme toggle, and logout.
package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"anglolingua/internal/progress"
	"anglolingua/internal/screen"
	"anglolingua/internal/ui/layout"
	"anglolingua/internal/ui/theme"
)

// ProfileScreen shows the logged-in user's details and preferences.
type ProfileScreen struct {
	svc    *screen.Services
	errMsg string
}

var _ screen.Screen = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(svc *screen.Services) *ProfileScreen {
	return &ProfileScreen{svc: svc}
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "t", Description: "Toggle theme"},
		{Key: "l", Description: "Log out"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "t":
		next, err := s.svc.Progress.ToggleTheme(context.Background())
		if err != nil {
			s.errMsg = "Could not save the theme preference."
			s.svc.Logger.Error("theme toggle failed", "err", err)
			return s, nil
		}
		theme.Apply(next)
		return s, func() tea.Msg { return screen.RefreshMsg{} }

	case "l":
		if err := s.svc.Progress.Logout(context.Background()); err != nil {
			s.errMsg = "Could not log out cleanly."
			s.svc.Logger.Error("logout failed", "err", err)
			return s, nil
		}
		return s, func() tea.Msg { return screen.SessionEndedMsg{} }
	}

	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	user := s.svc.Progress.User()
	if user == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Subtitle().Render("Not signed in."))
	}

	label := lipgloss.NewStyle().Foreground(theme.TextDim()).Width(12)
	value := lipgloss.NewStyle().Foreground(theme.Text())

	tierStyle := value
	if user.Tier == progress.TierPremium {
		tierStyle = lipgloss.NewStyle().Foreground(theme.Accent()).Bold(true)
	}

	var b strings.Builder
	b.WriteString(theme.Title().Render(user.Name) + "\n\n")
	b.WriteString(label.Render("Email") + value.Render(user.Email) + "\n")
	b.WriteString(label.Render("Level") + value.Render(user.Level) + "\n")
	b.WriteString(label.Render("Plan") + tierStyle.Render(string(user.Tier)) + "\n")
	b.WriteString(label.Render("Completed") + value.Render(fmt.Sprintf("%d lessons", len(user.CompletedLessonIDs))) + "\n")
	b.WriteString(label.Render("Theme") + value.Render(s.svc.Progress.Theme()) + "\n")

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect().Render(s.errMsg))
	}

	card := theme.Card().Width(min(width-8, 48)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
