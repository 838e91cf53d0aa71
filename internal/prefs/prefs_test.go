// ABOUTME: Tests for the preference store toggles and persistence
// ABOUTME: Covers defaults, immediate persistence, and theme validation

package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushnotify/console/internal/state"
)

func TestNew_Defaults(t *testing.T) {
	s := New(state.NewMemoryStore())

	assert.False(t, s.SidebarCollapsed())
	assert.Equal(t, ThemeLight, s.Theme())
	assert.Equal(t, DefaultLocale, s.Locale())
}

func TestToggleSidebar_PersistsImmediately(t *testing.T) {
	st := state.NewMemoryStore()
	s := New(st)

	assert.True(t, s.ToggleSidebar())
	v, err := st.Get(state.KeySidebarCollapsed)
	require.NoError(t, err)
	assert.Equal(t, "true", v)

	assert.False(t, s.ToggleSidebar())
	v, err = st.Get(state.KeySidebarCollapsed)
	require.NoError(t, err)
	assert.Equal(t, "false", v)
}

func TestSetTheme_ValidatesEnum(t *testing.T) {
	st := state.NewMemoryStore()
	s := New(st)

	require.NoError(t, s.SetTheme(ThemeDark))
	assert.Equal(t, ThemeDark, s.Theme())

	err := s.SetTheme("sepia")
	require.Error(t, err)
	assert.Equal(t, ThemeDark, s.Theme(), "invalid theme leaves state untouched")
}

func TestSetLocale_RejectsEmpty(t *testing.T) {
	s := New(state.NewMemoryStore())
	assert.Error(t, s.SetLocale(""))
	require.NoError(t, s.SetLocale("en-US"))
	assert.Equal(t, "en-US", s.Locale())
}

func TestNew_RestoresPersistedValues(t *testing.T) {
	st := state.NewMemoryStore()
	require.NoError(t, st.Set(state.KeyTheme, ThemeDark))
	require.NoError(t, st.Set(state.KeyLocale, "en-US"))
	require.NoError(t, st.Set(state.KeySidebarCollapsed, "true"))

	s := New(st)
	assert.Equal(t, ThemeDark, s.Theme())
	assert.Equal(t, "en-US", s.Locale())
	assert.True(t, s.SidebarCollapsed())
}
