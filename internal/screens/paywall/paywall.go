// Package paywall is the premium upgrade screen.
package paywall

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"anglolingua/internal/access"
	"anglolingua/internal/progress"
	"anglolingua/internal/screen"
	"anglolingua/internal/ui/layout"
	"anglolingua/internal/ui/theme"
)

// PaywallScreen lists premium benefits and performs the mock upgrade.
type PaywallScreen struct {
	svc      *screen.Services
	upgraded bool
	errMsg   string
}

var _ screen.Screen = (*PaywallScreen)(nil)

// New creates the paywall screen.
func New(svc *screen.Services) *PaywallScreen {
	u := svc.Progress.User()
	return &PaywallScreen{
		svc:      svc,
		upgraded: u != nil && u.Tier == progress.TierPremium,
	}
}

func (s *PaywallScreen) Title() string {
	return "Go Premium"
}

func (s *PaywallScreen) Init() tea.Cmd {
	return nil
}

func (s *PaywallScreen) KeyHints() []layout.KeyHint {
	if s.upgraded {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Upgrade"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PaywallScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || kmsg.String() != "enter" || s.upgraded {
		return s, nil
	}

	// There is no billing; upgrading is immediate and persisted.
	if err := s.svc.Progress.UpgradeToPremium(context.Background()); err != nil {
		s.errMsg = "Could not save the upgrade. Please try again."
		s.svc.Logger.Error("premium upgrade failed", "err", err)
		return s, nil
	}
	s.upgraded = true
	s.svc.Logger.Info("upgraded to premium")
	return s, func() tea.Msg { return screen.RefreshMsg{} }
}

func (s *PaywallScreen) View(width, height int) string {
	var body string
	if s.upgraded {
		body = theme.Correct().Render("You are a Premium member!") + "\n\n" +
			theme.Subtitle().Render("All lessons and AI conversations are unlocked.") + "\n\n" +
			theme.Hint().Render("Press Esc to go back.")
	} else {
		body = theme.Title().Render("Unlock Everything with Premium") + "\n\n"
		for _, feature := range access.PremiumFeatures {
			body += theme.Correct().Render("✓ ") +
				lipgloss.NewStyle().Foreground(theme.Text()).Render(feature) + "\n"
		}
		body += "\n" + theme.Hint().Render("Press Enter to upgrade. No charge, this is a demo.")
		if s.errMsg != "" {
			body += "\n\n" + theme.Incorrect().Render(s.errMsg)
		}
	}

	card := theme.Card().Width(min(width-8, 56)).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
