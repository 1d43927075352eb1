// Package lesson is the lesson detail screen: vocabulary, grammar and
// dialogue, with a jump into the homework.
package lesson

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"anglolingua/internal/catalog"
	"anglolingua/internal/router"
	"anglolingua/internal/screen"
	"anglolingua/internal/screens/homework"
	"anglolingua/internal/screens/notfound"
	"anglolingua/internal/ui/layout"
	"anglolingua/internal/ui/theme"
)

// LessonScreen shows one lesson's teaching material.
type LessonScreen struct {
	svc    *screen.Services
	lesson catalog.Lesson
	scroll int
}

var _ screen.Screen = (*LessonScreen)(nil)

// New creates the detail screen for the lesson id. Unknown ids get the
// not-found screen instead.
func New(svc *screen.Services, lessonID string) screen.Screen {
	l, ok := svc.Catalog.Get(lessonID)
	if !ok {
		svc.Logger.Warn("lesson not found", "lesson_id", lessonID)
		return notfound.New(lessonID)
	}
	return &LessonScreen{svc: svc, lesson: l}
}

func (s *LessonScreen) Title() string {
	return s.lesson.Title
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
	}
	if len(s.lesson.Homework) > 0 {
		hints = append(hints, layout.KeyHint{Key: "h", Description: "Homework"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
	return hints
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	case "h":
		if len(s.lesson.Homework) > 0 {
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: homework.New(s.svc, s.lesson)}
			}
		}
	}
	return s, nil
}

func (s *LessonScreen) View(width, height int) string {
	body := s.render(width - 4)
	lines := strings.Split(body, "\n")

	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := s.scroll + height
	if end > len(lines) {
		end = len(lines)
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(lines[s.scroll:end], "\n"))
}

func (s *LessonScreen) render(width int) string {
	c := s.lesson.Content
	dim := lipgloss.NewStyle().Foreground(theme.TextDim())
	heading := lipgloss.NewStyle().Foreground(theme.Secondary()).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text()).Width(width)

	var b strings.Builder
	b.WriteString(dim.Render(fmt.Sprintf("%s · %d min", s.lesson.Level, s.lesson.EstimatedMinutes)) + "\n\n")

	if c.Introduction != "" {
		b.WriteString(body.Render(c.Introduction) + "\n\n")
	}

	if len(c.Vocabulary) > 0 {
		b.WriteString(heading.Render("Vocabulary") + "\n\n")
		for _, v := range c.Vocabulary {
			entry := fmt.Sprintf("  %s — %s", v.English, v.Polish)
			if v.Pronunciation != "" {
				entry += dim.Render("  /" + v.Pronunciation + "/")
			}
			b.WriteString(body.Render(entry) + "\n")
			if v.Example != "" {
				b.WriteString(theme.Hint().Render("      "+v.Example) + "\n")
			}
		}
		b.WriteString("\n")
	}

	if len(c.Grammar) > 0 {
		b.WriteString(heading.Render("Grammar") + "\n\n")
		for _, g := range c.Grammar {
			b.WriteString(body.Bold(true).Render("  "+g.Title) + "\n")
			b.WriteString(body.Render("  "+g.Explanation) + "\n")
			for _, ex := range g.Examples {
				b.WriteString(theme.Hint().Render("    · "+ex) + "\n")
			}
			b.WriteString("\n")
		}
	}

	if c.Dialogue != nil {
		b.WriteString(heading.Render("Dialogue: "+c.Dialogue.Title) + "\n\n")
		for _, line := range c.Dialogue.Lines {
			speaker := lipgloss.NewStyle().Foreground(theme.Primary()).Bold(true).Render(line.Speaker + ":")
			b.WriteString("  " + speaker + " " + body.Render(line.Line) + "\n")
		}
		b.WriteString("\n")
	}

	if c.Summary != "" {
		b.WriteString(heading.Render("Summary") + "\n\n")
		b.WriteString(body.Render(c.Summary) + "\n\n")
	}

	if len(s.lesson.Homework) > 0 {
		b.WriteString(theme.Hint().Render(fmt.Sprintf("Press h to start the homework (%d exercises).", len(s.lesson.Homework))))
	} else {
		b.WriteString(theme.Hint().Render("This lesson has no homework."))
	}

	return b.String()
}
