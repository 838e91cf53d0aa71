// ABOUTME: Tests for the session store lifecycle and credential persistence
// ABOUTME: Covers login hydration, logout, forced 401 clearing, and token expiry

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushnotify/console/internal/services"
	"github.com/pushnotify/console/internal/state"
)

// fakeAuthAPI scripts the auth service responses.
type fakeAuthAPI struct {
	loginResult *services.LoginResult
	loginErr    error
	me          *services.User
	meErr       error
	refreshed   *services.LoginResult

	meCalls int
}

func (f *fakeAuthAPI) Login(ctx context.Context, username, password string) (*services.LoginResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuthAPI) Register(ctx context.Context, username, email, password string) error {
	return nil
}

func (f *fakeAuthAPI) Me(ctx context.Context) (*services.User, error) {
	f.meCalls++
	return f.me, f.meErr
}

func (f *fakeAuthAPI) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return nil
}

func (f *fakeAuthAPI) Refresh(ctx context.Context, refreshToken string) (*services.LoginResult, error) {
	return f.refreshed, nil
}

func newTestStore(t *testing.T, api AuthAPI) (*Store, *state.MemoryStore) {
	t.Helper()
	st := state.NewMemoryStore()
	s := New(st)
	if api != nil {
		s.AttachAPI(api)
	}
	return s, st
}

func TestLogin_StoresTokenAndHydratesIdentity(t *testing.T) {
	api := &fakeAuthAPI{
		loginResult: &services.LoginResult{AccessToken: "at-1", RefreshToken: "rt-1"},
		me:          &services.User{ID: 1, Username: "admin", Role: "admin"},
	}
	s, st := newTestStore(t, api)

	require.NoError(t, s.Login(context.Background(), "admin", "secret"))

	assert.Equal(t, "at-1", s.Token())
	assert.True(t, s.IsLoggedIn())
	assert.True(t, s.IsAdmin())
	assert.Equal(t, "admin", s.PrimaryRole())
	assert.Equal(t, 1, api.meCalls, "profile hydrated immediately after login")

	persisted, err := st.Get(state.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "at-1", persisted)
}

func TestLogin_FailureLeavesSessionEmpty(t *testing.T) {
	api := &fakeAuthAPI{loginErr: errors.New("bad credentials")}
	s, _ := newTestStore(t, api)

	require.Error(t, s.Login(context.Background(), "admin", "wrong"))
	assert.False(t, s.IsLoggedIn())
	assert.Nil(t, s.Identity())
}

func TestNew_RestoresPersistedToken(t *testing.T) {
	st := state.NewMemoryStore()
	require.NoError(t, st.Set(state.KeyToken, "persisted-token"))

	s := New(st)
	assert.True(t, s.IsLoggedIn())
	assert.Equal(t, "persisted-token", s.Token())
	// identity is only hydrated lazily, by the route guard or login
	assert.False(t, s.HasIdentity())
}

func TestLogout_ClearsEverythingAndNavigates(t *testing.T) {
	api := &fakeAuthAPI{
		loginResult: &services.LoginResult{AccessToken: "at-1", RefreshToken: "rt-1"},
		me:          &services.User{Username: "u", Role: "user"},
	}
	s, st := newTestStore(t, api)
	navigated := 0
	s.SetLoginNavigator(func() { navigated++ })

	require.NoError(t, s.Login(context.Background(), "u", "p"))
	s.Logout()

	assert.False(t, s.IsLoggedIn())
	assert.Nil(t, s.Identity())
	assert.Empty(t, s.Roles())
	assert.Equal(t, 1, navigated)

	_, err := st.Get(state.KeyToken)
	assert.ErrorIs(t, err, state.ErrNotFound)
}

func TestHandleUnauthorized_ForcesClearAndLoginRoute(t *testing.T) {
	api := &fakeAuthAPI{
		loginResult: &services.LoginResult{AccessToken: "at-1"},
		me:          &services.User{Username: "u", Role: "user"},
	}
	s, st := newTestStore(t, api)
	navigated := 0
	s.SetLoginNavigator(func() { navigated++ })

	require.NoError(t, s.Login(context.Background(), "u", "p"))
	s.HandleUnauthorized()

	assert.Empty(t, s.Token())
	assert.Nil(t, s.Identity(), "identity never outlives the token")
	assert.Equal(t, 1, navigated, "redirected to login exactly once")
	_, err := st.Get(state.KeyToken)
	assert.ErrorIs(t, err, state.ErrNotFound)
}

func TestFetchProfile_ReplacesRoles(t *testing.T) {
	api := &fakeAuthAPI{me: &services.User{Username: "v", Role: "viewer"}}
	s, _ := newTestStore(t, api)

	require.NoError(t, s.FetchProfile(context.Background()))
	assert.Equal(t, []string{"viewer"}, s.Roles())
	assert.False(t, s.IsAdmin())

	api.me = &services.User{Username: "v", Role: "admin"}
	require.NoError(t, s.FetchProfile(context.Background()))
	assert.True(t, s.IsAdmin())
}

func TestRefresh_ReplacesTokenPair(t *testing.T) {
	api := &fakeAuthAPI{
		loginResult: &services.LoginResult{AccessToken: "at-1", RefreshToken: "rt-1"},
		me:          &services.User{Role: "user"},
		refreshed:   &services.LoginResult{AccessToken: "at-2", RefreshToken: "rt-2"},
	}
	s, st := newTestStore(t, api)

	require.NoError(t, s.Login(context.Background(), "u", "p"))
	require.NoError(t, s.Refresh(context.Background()))

	assert.Equal(t, "at-2", s.Token())
	persisted, err := st.Get(state.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "at-2", persisted)
}

func TestRefresh_WithoutTokenFails(t *testing.T) {
	s, _ := newTestStore(t, &fakeAuthAPI{})
	assert.Error(t, s.Refresh(context.Background()))
}

func TestTokenExpiry_ReadsClaimWithoutVerification(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("some-server-secret"))
	require.NoError(t, err)

	st := state.NewMemoryStore()
	require.NoError(t, st.Set(state.KeyToken, signed))
	s := New(st)

	got, ok := s.TokenExpiry()
	require.True(t, ok)
	assert.True(t, got.Equal(exp))
}

func TestTokenExpiry_MalformedToken(t *testing.T) {
	st := state.NewMemoryStore()
	require.NoError(t, st.Set(state.KeyToken, "not-a-jwt"))
	s := New(st)

	_, ok := s.TokenExpiry()
	assert.False(t, ok)
}

func TestUnboundAPI_Errors(t *testing.T) {
	s, _ := newTestStore(t, nil)
	assert.ErrorIs(t, s.Login(context.Background(), "u", "p"), ErrNotBound)
	assert.ErrorIs(t, s.FetchProfile(context.Background()), ErrNotBound)
}
