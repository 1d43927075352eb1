package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Theme preference values shared with the UI layer.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Record keys in durable storage.
const (
	sessionKey = "user_session"
	themeKey   = "theme"
)

// sessionRecordVersion tags the persisted session shape so future
// format changes can be detected instead of misparsed.
const sessionRecordVersion = 1

// ErrNoUser is returned by mutations that require an active session.
var ErrNoUser = errors.New("no active user session")

// Records is the durable key-value storage the store persists into.
type Records interface {
	GetRecord(ctx context.Context, key string) (string, bool, error)
	PutRecord(ctx context.Context, key, value string) error
	DeleteRecord(ctx context.Context, key string) error
}

// sessionRecord is the JSON document persisted for an authenticated user.
type sessionRecord struct {
	Version int  `json:"version"`
	User    User `json:"user"`
}

// Store is the process-wide session context: it owns the current user
// and theme preference, and writes every mutation through to durable
// storage so a restart rehydrates identical state.
type Store struct {
	records Records
	logger  *slog.Logger

	user  *User
	theme string
}

// NewStore creates a store backed by the given records. Call Rehydrate
// before first use.
func NewStore(records Records, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		records: records,
		logger:  logger.With("component", "progress"),
		theme:   ThemeLight,
	}
}

// Rehydrate loads the persisted session and theme. A missing or
// malformed session record means "not authenticated", never an error:
// the stored document is discarded and the learner logs in again.
func (s *Store) Rehydrate(ctx context.Context) error {
	raw, ok, err := s.records.GetRecord(ctx, sessionKey)
	if err != nil {
		return fmt.Errorf("read session record: %w", err)
	}
	if ok {
		var rec sessionRecord
		if jsonErr := json.Unmarshal([]byte(raw), &rec); jsonErr != nil || rec.Version != sessionRecordVersion || rec.User.ID == "" {
			s.logger.Warn("discarding unreadable session record", "err", jsonErr, "version", rec.Version)
		} else {
			u := rec.User
			s.user = &u
		}
	}

	theme, ok, err := s.records.GetRecord(ctx, themeKey)
	if err != nil {
		return fmt.Errorf("read theme record: %w", err)
	}
	if ok && (theme == ThemeLight || theme == ThemeDark) {
		s.theme = theme
	}
	return nil
}

// Authenticated reports whether a user session is active.
func (s *Store) Authenticated() bool {
	return s.user != nil
}

// User returns a copy of the current user, or nil when logged out.
func (s *Store) User() *User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	u.CompletedLessonIDs = append([]string(nil), s.user.CompletedLessonIDs...)
	return &u
}

// Login creates a fresh user session from the submitted email and name,
// replacing any existing session, and persists it immediately. New
// users start on the free tier with an empty completed set.
func (s *Store) Login(ctx context.Context, email, name string) (User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" {
		return User{}, errors.New("email is required")
	}
	if name == "" {
		name = "Learner"
	}

	u := User{
		ID:                 "user-" + uuid.NewString(),
		Email:              email,
		Name:               name,
		Level:              DefaultLevel,
		CompletedLessonIDs: []string{},
		Tier:               TierFree,
		AvatarSeed:         avatarSeed(name),
	}
	s.user = &u

	if err := s.persistUser(ctx); err != nil {
		return User{}, err
	}
	s.logger.Info("user logged in", "user_id", u.ID)
	return u, nil
}

// Logout clears the session and removes the persisted record.
func (s *Store) Logout(ctx context.Context) error {
	s.user = nil
	if err := s.records.DeleteRecord(ctx, sessionKey); err != nil {
		return fmt.Errorf("delete session record: %w", err)
	}
	s.logger.Info("user logged out")
	return nil
}

// UpgradeToPremium sets the premium tier and persists. Idempotent;
// no-op when logged out.
func (s *Store) UpgradeToPremium(ctx context.Context) error {
	if s.user == nil {
		return nil
	}
	if s.user.Tier == TierPremium {
		return nil
	}
	s.user.Tier = TierPremium
	return s.persistUser(ctx)
}

// CompleteLesson adds the lesson id to the completed set and persists.
// The set only grows; repeat calls are no-ops.
func (s *Store) CompleteLesson(ctx context.Context, lessonID string) error {
	if s.user == nil || lessonID == "" {
		return nil
	}
	if s.user.Completed(lessonID) {
		return nil
	}
	s.user.CompletedLessonIDs = append(s.user.CompletedLessonIDs, lessonID)
	return s.persistUser(ctx)
}

// Theme returns the active theme preference.
func (s *Store) Theme() string {
	return s.theme
}

// ToggleTheme flips between light and dark and persists the choice.
// Unlike the session record, the theme survives logout.
func (s *Store) ToggleTheme(ctx context.Context) (string, error) {
	next := ThemeDark
	if s.theme == ThemeDark {
		next = ThemeLight
	}
	if err := s.records.PutRecord(ctx, themeKey, next); err != nil {
		return s.theme, fmt.Errorf("persist theme: %w", err)
	}
	s.theme = next
	return next, nil
}

func (s *Store) persistUser(ctx context.Context) error {
	rec := sessionRecord{Version: sessionRecordVersion, User: *s.user}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	if err := s.records.PutRecord(ctx, sessionKey, string(raw)); err != nil {
		return fmt.Errorf("persist session record: %w", err)
	}
	return nil
}
