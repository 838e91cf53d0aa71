// ABOUTME: Session store holding the bearer token, identity, and derived roles
// ABOUTME: Persists credentials across restarts and clears them on logout or 401

package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pushnotify/console/internal/services"
	"github.com/pushnotify/console/internal/state"
)

// ErrNotBound is returned when an auth operation runs before AttachAPI.
var ErrNotBound = errors.New("session: auth API not attached")

// AdminRole is the role granting access to admin-only views.
const AdminRole = "admin"

// AuthAPI is the slice of the auth service the session store drives.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
	Register(ctx context.Context, username, email, password string) error
	Me(ctx context.Context) (*services.User, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	Refresh(ctx context.Context, refreshToken string) (*services.LoginResult, error)
}

// Store is the process-wide session. It implements api.TokenSource and the
// 401 Unauthorized callback. The identity is non-nil only while a token is
// held.
type Store struct {
	mu           sync.Mutex
	api          AuthAPI
	state        state.Store
	logger       *slog.Logger
	navigateHome func()

	token        string
	refreshToken string
	identity     *services.User
	roles        []string
}

// New creates a session store, restoring any persisted credential so the
// session survives process restarts.
func New(st state.Store) *Store {
	s := &Store{
		state:  st,
		logger: slog.Default().With("component", "session"),
	}
	if token, err := st.Get(state.KeyToken); err == nil {
		s.token = token
	}
	if refresh, err := st.Get(state.KeyRefreshToken); err == nil {
		s.refreshToken = refresh
	}
	return s
}

// AttachAPI binds the auth service. Done after construction because the API
// client itself reads the token from this store.
func (s *Store) AttachAPI(api AuthAPI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.api = api
}

// SetLoginNavigator registers the transition performed when the session is
// cleared by logout or a 401.
func (s *Store) SetLoginNavigator(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navigateHome = fn
}

// Token returns the current bearer credential, empty when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsLoggedIn reports whether a token is held.
func (s *Store) IsLoggedIn() bool {
	return s.Token() != ""
}

// Identity returns the hydrated profile, or nil before FetchProfile.
func (s *Store) Identity() *services.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// HasIdentity reports whether the profile has been hydrated.
func (s *Store) HasIdentity() bool {
	return s.Identity() != nil
}

// Roles returns the derived role set.
func (s *Store) Roles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.roles))
	copy(out, s.roles)
	return out
}

// PrimaryRole returns the first role, or empty when none.
func (s *Store) PrimaryRole() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.roles) == 0 {
		return ""
	}
	return s.roles[0]
}

// IsAdmin reports whether the role set contains the admin role.
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.roles {
		if r == AdminRole {
			return true
		}
	}
	return false
}

// Login exchanges credentials for a token pair, persists it, and hydrates
// the identity immediately.
func (s *Store) Login(ctx context.Context, username, password string) error {
	api := s.boundAPI()
	if api == nil {
		return ErrNotBound
	}

	result, err := api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = result.AccessToken
	s.refreshToken = result.RefreshToken
	s.mu.Unlock()

	if err := s.state.Set(state.KeyToken, result.AccessToken); err != nil {
		s.logger.Warn("persisting token failed", "error", err)
	}
	if err := s.state.Set(state.KeyRefreshToken, result.RefreshToken); err != nil {
		s.logger.Warn("persisting refresh token failed", "error", err)
	}

	return s.FetchProfile(ctx)
}

// Register forwards to the registration endpoint. No local state changes.
func (s *Store) Register(ctx context.Context, username, email, password string) error {
	api := s.boundAPI()
	if api == nil {
		return ErrNotBound
	}
	return api.Register(ctx, username, email, password)
}

// FetchProfile replaces the identity and derived role set from the server.
func (s *Store) FetchProfile(ctx context.Context) error {
	api := s.boundAPI()
	if api == nil {
		return ErrNotBound
	}

	user, err := api.Me(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = user
	s.roles = []string{user.Role}
	return nil
}

// ChangePassword forwards the rotation request. No local state changes.
func (s *Store) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	api := s.boundAPI()
	if api == nil {
		return ErrNotBound
	}
	return api.ChangePassword(ctx, oldPassword, newPassword)
}

// Refresh exchanges the stored refresh token for a fresh pair.
func (s *Store) Refresh(ctx context.Context) error {
	api := s.boundAPI()
	if api == nil {
		return ErrNotBound
	}

	s.mu.Lock()
	refresh := s.refreshToken
	s.mu.Unlock()
	if refresh == "" {
		return errors.New("session: no refresh token held")
	}

	result, err := api.Refresh(ctx, refresh)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = result.AccessToken
	s.refreshToken = result.RefreshToken
	s.mu.Unlock()

	if err := s.state.Set(state.KeyToken, result.AccessToken); err != nil {
		s.logger.Warn("persisting token failed", "error", err)
	}
	if err := s.state.Set(state.KeyRefreshToken, result.RefreshToken); err != nil {
		s.logger.Warn("persisting refresh token failed", "error", err)
	}
	return nil
}

// Logout clears token, identity, and roles, wipes persisted credentials,
// and navigates to login.
func (s *Store) Logout() {
	s.clear()
	s.goToLogin()
}

// HandleUnauthorized is wired as the API client's 401 callback: the session
// is force-cleared and the user sent back to login.
func (s *Store) HandleUnauthorized() {
	s.logger.Info("session expired, clearing credentials")
	s.clear()
	s.goToLogin()
}

// TokenExpiry returns the expiry claim of the held token. The token is
// parsed without signature verification — the client holds no signing
// secret; the server remains the authority.
func (s *Store) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *Store) clear() {
	s.mu.Lock()
	s.token = ""
	s.refreshToken = ""
	s.identity = nil
	s.roles = nil
	s.mu.Unlock()

	if err := s.state.Delete(state.KeyToken); err != nil {
		s.logger.Warn("clearing persisted token failed", "error", err)
	}
	if err := s.state.Delete(state.KeyRefreshToken); err != nil {
		s.logger.Warn("clearing persisted refresh token failed", "error", err)
	}
}

func (s *Store) goToLogin() {
	s.mu.Lock()
	fn := s.navigateHome
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (s *Store) boundAPI() AuthAPI {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.api
}
