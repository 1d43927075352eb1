// Package conversation is the AI tutor chat screen. Free accounts see
// the premium upsell instead of the chat.
package conversation

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"anglolingua/internal/router"
	"anglolingua/internal/screen"
	"anglolingua/internal/screens/paywall"
	"anglolingua/internal/tutor"
	"anglolingua/internal/ui/components"
	"anglolingua/internal/ui/layout"
	"anglolingua/internal/ui/theme"
)

// replyMsg carries a resolved tutor reply back into the event loop.
type replyMsg tutor.Reply

// ConversationScreen is the chat with the AI English tutor.
type ConversationScreen struct {
	svc   *screen.Services
	conv  *tutor.Conversation
	input components.TextInput
	gated bool
}

var _ screen.Screen = (*ConversationScreen)(nil)

// New creates the conversation screen. The tier check happens here so
// the upsell renders for free accounts.
func New(svc *screen.Services) *ConversationScreen {
	s := &ConversationScreen{
		svc:   svc,
		input: components.NewTextInput("Type your message in English...", 500),
		gated: !svc.Policy.ConversationAllowed(svc.Progress.User()),
	}
	if !s.gated {
		s.conv = tutor.NewConversation(svc.Tutor, svc.TutorTimeout)
	}
	return s
}

func (s *ConversationScreen) Title() string {
	return "AI English Tutor"
}

func (s *ConversationScreen) Init() tea.Cmd {
	if s.gated {
		return nil
	}
	return s.input.Focus()
}

func (s *ConversationScreen) KeyHints() []layout.KeyHint {
	if s.gated {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Upgrade"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+R", Description: "Restart chat"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ConversationScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.gated {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: paywall.New(s.svc)}
			}
		}
		return s, nil
	}

	switch msg := msg.(type) {
	case replyMsg:
		if s.conv.Apply(tutor.Reply(msg)) && msg.Err != nil {
			s.svc.Logger.Warn("tutor reply failed", "err", msg.Err)
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s, s.send()
		case "ctrl+r":
			s.conv.Reset()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ConversationScreen) send() tea.Cmd {
	pending, err := s.conv.Send(s.input.Value())
	if err != nil {
		// Blank input or a reply already in flight; nothing to do.
		return nil
	}
	s.input.SetValue("")
	return func() tea.Msg {
		return replyMsg(pending.Await(context.Background()))
	}
}

func (s *ConversationScreen) View(width, height int) string {
	if s.gated {
		return s.upsellView(width, height)
	}

	inputLine := "> " + s.input.View()
	logHeight := height - 3
	if logHeight < 1 {
		logHeight = 1
	}

	userName := ""
	if u := s.svc.Progress.User(); u != nil {
		userName = u.Name
	}
	log := components.ChatLog{
		Messages: s.conv.Messages(),
		UserName: userName,
	}

	body := log.View(width-4, logHeight) + "\n\n" + inputLine
	return lipgloss.NewStyle().Padding(0, 2).Width(width).Render(body)
}

func (s *ConversationScreen) upsellView(width, height int) string {
	body := theme.Title().Render("AI Conversations are a Premium Feature") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text()).Width(min(width-12, 60)).Render(
			"Practice your English speaking and listening skills with our advanced AI tutor. "+
				"This feature is available for Premium subscribers.") + "\n\n" +
		theme.Hint().Render("Press Enter to upgrade to Premium.")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
