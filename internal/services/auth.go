// ABOUTME: Auth endpoints: login, register, profile, password, refresh, logout
// ABOUTME: Thin verb+path mappings onto the API client, no local state

package services

import (
	"context"
	"fmt"

	"github.com/pushnotify/console/internal/api"
)

// LoginResult is the token pair returned by a successful login or refresh.
type LoginResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthService maps the /auth endpoints.
type AuthService struct {
	client *api.Client
}

// NewAuthService creates an AuthService on the given client.
func NewAuthService(c *api.Client) *AuthService {
	return &AuthService{client: c}
}

// Login exchanges credentials for a token pair.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var out LoginResult
	if err := s.client.Post(ctx, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account. No token is issued.
func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	body := map[string]string{"username": username, "email": email, "password": password}
	return s.client.Post(ctx, "/auth/register", body, nil)
}

// Me returns the authenticated identity.
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	var out User
	if err := s.client.Get(ctx, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword rotates the caller's password.
func (s *AuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	return s.client.Put(ctx, "/auth/password", body, nil)
}

// Refresh exchanges a refresh token for a fresh token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	body := map[string]string{"refresh_token": refreshToken}
	var out LoginResult
	if err := s.client.Post(ctx, "/auth/refresh", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the server-side session.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.Post(ctx, "/auth/logout", nil, nil)
}

// idPath joins a resource path with an ID, e.g. idPath("/repos", 3) → "/repos/3".
func idPath(base string, id int64) string {
	return fmt.Sprintf("%s/%d", base, id)
}
