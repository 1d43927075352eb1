package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"anglolingua/internal/tutor"
	"anglolingua/internal/ui/theme"
)

// ChatLog renders a conversation transcript, keeping the most recent
// turns that fit the given height.
type ChatLog struct {
	Messages []tutor.ChatMessage
	UserName string
}

// View renders the transcript bottom-anchored into width x height.
func (c ChatLog) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	var lines []string
	for _, m := range c.Messages {
		lines = append(lines, c.renderMessage(m, width)...)
		lines = append(lines, "")
	}
	if len(lines) > 0 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}

func (c ChatLog) renderMessage(m tutor.ChatMessage, width int) []string {
	name := "Tutor"
	nameStyle := lipgloss.NewStyle().Foreground(theme.Secondary()).Bold(true)
	if m.Role == tutor.RoleUser {
		name = c.UserName
		if name == "" {
			name = "You"
		}
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary()).Bold(true)
	}

	body := m.Content
	bodyStyle := lipgloss.NewStyle().Foreground(theme.Text()).Width(width - 2)
	if m.Pending {
		bodyStyle = lipgloss.NewStyle().Foreground(theme.TextDim()).Italic(true).Width(width - 2)
		body = "thinking " + m.Content
	}

	rendered := nameStyle.Render(name) + "\n" + bodyStyle.Render(body)
	return strings.Split(rendered, "\n")
}
