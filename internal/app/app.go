// Package app owns the root Bubble Tea model: global keys, the screen
// stack, and the header/footer frame.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"anglolingua/internal/router"
	"anglolingua/internal/screen"
	"anglolingua/internal/screens/auth"
	"anglolingua/internal/screens/home"
	"anglolingua/internal/ui/layout"
	"anglolingua/internal/ui/theme"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	svc    *screen.Services
	router *router.Router
	width  int
	height int
}

// newAppModel builds the model. A rehydrated session skips the auth
// screen.
func newAppModel(svc *screen.Services) AppModel {
	theme.Apply(svc.Progress.Theme())

	var root screen.Screen
	if svc.Progress.Authenticated() {
		root = home.New(svc)
	} else {
		root = auth.New(svc)
	}
	return AppModel{
		svc:    svc,
		router: router.New(root),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.SessionStartedMsg:
		return m, m.router.Reset(home.New(m.svc))

	case screen.SessionEndedMsg:
		return m, m.router.Reset(auth.New(m.svc))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				popCmd := m.router.Pop()
				// The uncovered screen re-reads shared state.
				refreshCmd := m.router.Update(screen.RefreshMsg{})
				return m, tea.Batch(popCmd, refreshCmd)
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	userName, tier := "", ""
	if u := m.svc.Progress.User(); u != nil {
		userName = u.Name
		tier = string(u.Tier)
	}
	header := layout.RenderHeader(title, userName, tier, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(svc *screen.Services) error {
	p := tea.NewProgram(newAppModel(svc))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
