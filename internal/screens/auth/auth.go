// Package auth is the sign-in and registration screen.
package auth

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"anglolingua/internal/screen"
	"anglolingua/internal/ui/components"
	"anglolingua/internal/ui/layout"
	"anglolingua/internal/ui/theme"
)

// Mode selects between the two forms.
type Mode int

const (
	ModeSignIn Mode = iota
	ModeRegister
)

const (
	fieldEmail = iota
	fieldName
	fieldPassword
)

// AuthScreen collects credentials and starts the session.
type AuthScreen struct {
	svc      *screen.Services
	mode     Mode
	email    components.TextInput
	name     components.TextInput
	password components.TextInput
	focus    int
	errMsg   string
}

var _ screen.Screen = (*AuthScreen)(nil)

// New creates the auth screen in sign-in mode.
func New(svc *screen.Services) *AuthScreen {
	s := &AuthScreen{
		svc:      svc,
		email:    components.NewTextInput("you@example.com", 120),
		name:     components.NewTextInput("Full Name", 80),
		password: components.NewPasswordInput("Password", 120),
	}
	return s
}

func (s *AuthScreen) Title() string {
	if s.mode == ModeRegister {
		return "Create Account"
	}
	return "Sign In"
}

func (s *AuthScreen) Init() tea.Cmd {
	return s.email.Focus()
}

func (s *AuthScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+T", Description: "Sign in / Register"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *AuthScreen) fields() []int {
	if s.mode == ModeRegister {
		return []int{fieldEmail, fieldName, fieldPassword}
	}
	return []int{fieldEmail, fieldPassword}
}

func (s *AuthScreen) input(field int) *components.TextInput {
	switch field {
	case fieldName:
		return &s.name
	case fieldPassword:
		return &s.password
	default:
		return &s.email
	}
}

func (s *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.moveFocus(1)
		case "shift+tab", "up":
			return s, s.moveFocus(-1)
		case "ctrl+t":
			s.toggleMode()
			return s, s.focusCurrent()
		case "enter":
			return s, s.submit()
		}
	}

	fields := s.fields()
	active := s.input(fields[s.focus])
	updated, cmd := active.Update(msg)
	*active = updated
	return s, cmd
}

func (s *AuthScreen) moveFocus(delta int) tea.Cmd {
	fields := s.fields()
	s.input(fields[s.focus]).Blur()
	s.focus = (s.focus + delta + len(fields)) % len(fields)
	return s.focusCurrent()
}

func (s *AuthScreen) focusCurrent() tea.Cmd {
	fields := s.fields()
	if s.focus >= len(fields) {
		s.focus = 0
	}
	for _, f := range fields {
		s.input(f).Blur()
	}
	return s.input(fields[s.focus]).Focus()
}

func (s *AuthScreen) toggleMode() {
	if s.mode == ModeSignIn {
		s.mode = ModeRegister
	} else {
		s.mode = ModeSignIn
	}
	s.errMsg = ""
	s.focus = 0
}

func (s *AuthScreen) submit() tea.Cmd {
	email := strings.TrimSpace(s.email.Value())
	name := strings.TrimSpace(s.name.Value())
	password := s.password.Value()

	if err := Validate(s.mode, email, name, password); err != nil {
		s.errMsg = err.Error()
		return nil
	}

	loginName := name
	if s.mode == ModeSignIn {
		loginName = SignInName(email)
	}

	if _, err := s.svc.Progress.Login(context.Background(), email, loginName); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	theme.Apply(s.svc.Progress.Theme())

	return func() tea.Msg { return screen.SessionStartedMsg{} }
}

// Validate checks the form for the given mode. There is no real
// credential check; the password only has to be present.
func Validate(mode Mode, email, name, password string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if password == "" {
		return errors.New("password is required")
	}
	if mode == ModeRegister && name == "" {
		return errors.New("name is required to register")
	}
	return nil
}

// SignInName derives a display name from the email local part,
// defaulting to "Learner".
func SignInName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.TrimSpace(local)
	if local == "" {
		return "Learner"
	}
	return local
}

func (s *AuthScreen) View(width, height int) string {
	title := theme.Title().Render("Welcome to AngloLingua!")
	subtitle := "Sign in to continue your journey."
	if s.mode == ModeRegister {
		subtitle = "Create your account to start learning."
	}

	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(theme.Subtitle().Render(subtitle) + "\n\n")

	label := lipgloss.NewStyle().Foreground(theme.TextDim())
	b.WriteString(label.Render("Email address") + "\n")
	b.WriteString(s.email.View() + "\n\n")
	if s.mode == ModeRegister {
		b.WriteString(label.Render("Full Name") + "\n")
		b.WriteString(s.name.View() + "\n\n")
	}
	b.WriteString(label.Render("Password") + "\n")
	b.WriteString(s.password.View() + "\n")

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect().Render(s.errMsg) + "\n")
	}

	form := theme.Card().Width(min(width-8, 56)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, form)
}
