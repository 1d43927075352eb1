// Package home is the lesson catalog screen shown after login.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"anglolingua/internal/catalog"
	"anglolingua/internal/progress"
	"anglolingua/internal/router"
	"anglolingua/internal/screen"
	"anglolingua/internal/screens/conversation"
	"anglolingua/internal/screens/lesson"
	"anglolingua/internal/screens/paywall"
	"anglolingua/internal/screens/profile"
	"anglolingua/internal/ui/components"
	"anglolingua/internal/ui/layout"
	"anglolingua/internal/ui/theme"
)

// HomeScreen lists the catalog with lock and completion badges.
type HomeScreen struct {
	svc     *screen.Services
	menu    components.Menu
	lessons []catalog.Lesson
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen from the loaded catalog.
func New(svc *screen.Services) *HomeScreen {
	s := &HomeScreen{svc: svc}
	s.reload()
	return s
}

// reload rebuilds the menu from the catalog and the user's progress.
func (s *HomeScreen) reload() {
	s.lessons = s.svc.Catalog.List()
	user := s.svc.Progress.User()

	items := make([]components.MenuItem, 0, len(s.lessons))
	for _, l := range s.lessons {
		l := l
		locked := s.svc.Policy.LessonLocked(l, user)

		var badges []string
		badges = append(badges, l.Level)
		badges = append(badges, fmt.Sprintf("%d min", l.EstimatedMinutes))
		if user != nil && user.Completed(l.ID) {
			badges = append(badges, "✓ completed")
		}
		if locked {
			badges = append(badges, "🔒 premium")
		}

		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%d. %s", l.Order, l.Title),
			Badge: strings.Join(badges, "  "),
			Action: func() tea.Cmd {
				return s.open(l, locked)
			},
		})
	}

	s.menu = components.NewMenu(items)
}

func (s *HomeScreen) open(l catalog.Lesson, locked bool) tea.Cmd {
	if locked {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: paywall.New(s.svc)}
		}
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: lesson.New(s.svc, l.ID)}
	}
}

func (s *HomeScreen) Title() string {
	return "Lessons"
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "c", Description: "AI Conversation"},
		{Key: "p", Description: "Profile"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: conversation.New(s.svc)}
			}
		case "p":
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: profile.New(s.svc)}
			}
		case "u":
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: paywall.New(s.svc)}
			}
		}
	case screen.RefreshMsg:
		s.reload()
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	user := s.svc.Progress.User()

	var b strings.Builder
	if user != nil {
		b.WriteString(theme.Title().Width(width).Render(fmt.Sprintf("Welcome back, %s!", user.Name)) + "\n")

		completed := 0
		for _, l := range s.lessons {
			if user.Completed(l.ID) {
				completed++
			}
		}
		percent := 0.0
		if len(s.lessons) > 0 {
			percent = float64(completed) / float64(len(s.lessons))
		}
		bar := components.NewProgressBar(
			fmt.Sprintf("Progress %d/%d", completed, len(s.lessons)),
			percent, true, min(width-8, 60),
		)
		b.WriteString("\n" + bar.View() + "\n\n")
	}

	b.WriteString(s.menu.View())

	if user != nil && user.Tier != progress.TierPremium {
		b.WriteString("\n" + theme.Hint().Render("Press u to unlock all lessons with Premium."))
	}

	return lipgloss.NewStyle().Padding(1, 2).Width(width).Render(b.String())
}
