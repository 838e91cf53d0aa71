// ABOUTME: Preference store for sidebar, theme, and locale UI flags
// ABOUTME: Every mutation is persisted immediately to the durable state store

package prefs

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/pushnotify/console/internal/state"
)

// Themes accepted by SetTheme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultLocale applies when no locale was ever chosen.
const DefaultLocale = "zh-CN"

// Store holds the UI preferences. Values are mutated only by explicit
// toggles and persisted on every mutation.
type Store struct {
	mu     sync.Mutex
	state  state.Store
	logger *slog.Logger

	sidebarCollapsed bool
	theme            string
	locale           string
}

// New creates a preference store, restoring persisted values. Missing keys
// fall back to defaults: expanded sidebar, light theme, DefaultLocale.
func New(st state.Store) *Store {
	s := &Store{
		state:  st,
		logger: slog.Default().With("component", "prefs"),
		theme:  ThemeLight,
		locale: DefaultLocale,
	}
	if v, err := st.Get(state.KeySidebarCollapsed); err == nil {
		s.sidebarCollapsed, _ = strconv.ParseBool(v)
	}
	if v, err := st.Get(state.KeyTheme); err == nil {
		s.theme = v
	}
	if v, err := st.Get(state.KeyLocale); err == nil {
		s.locale = v
	}
	return s
}

// SidebarCollapsed reports the sidebar flag.
func (s *Store) SidebarCollapsed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebarCollapsed
}

// Theme returns the current theme.
func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Locale returns the current locale.
func (s *Store) Locale() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

// ToggleSidebar flips the sidebar flag and persists it.
func (s *Store) ToggleSidebar() bool {
	s.mu.Lock()
	s.sidebarCollapsed = !s.sidebarCollapsed
	v := s.sidebarCollapsed
	s.mu.Unlock()

	s.persist(state.KeySidebarCollapsed, strconv.FormatBool(v))
	return v
}

// SetTheme switches between light and dark and persists the choice.
func (s *Store) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}

	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()

	s.persist(state.KeyTheme, theme)
	return nil
}

// SetLocale stores the locale and persists it.
func (s *Store) SetLocale(locale string) error {
	if locale == "" {
		return fmt.Errorf("locale must not be empty")
	}

	s.mu.Lock()
	s.locale = locale
	s.mu.Unlock()

	s.persist(state.KeyLocale, locale)
	return nil
}

func (s *Store) persist(key, value string) {
	if err := s.state.Set(key, value); err != nil {
		s.logger.Warn("persisting preference failed", "key", key, "error", err)
	}
}
