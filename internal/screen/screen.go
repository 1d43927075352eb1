package screen

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"anglolingua/internal/access"
	"anglolingua/internal/catalog"
	"anglolingua/internal/progress"
	"anglolingua/internal/tutor"
	"anglolingua/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// SessionStartedMsg announces a successful login. The root model
// rebuilds the screen stack on top of the home screen.
type SessionStartedMsg struct{}

// SessionEndedMsg announces a logout. The root model collapses the
// stack back to the auth screen.
type SessionEndedMsg struct{}

// RefreshMsg tells screens to re-read shared state (progress, theme)
// after another screen changed it.
type RefreshMsg struct{}

// Services bundles the shared application services screens depend on.
// One instance is built at startup and handed to every screen
// constructor.
type Services struct {
	Catalog      *catalog.Store
	Progress     *progress.Store
	Policy       access.Policy
	Tutor        tutor.Provider
	TutorTimeout time.Duration
	Logger       *slog.Logger
}
