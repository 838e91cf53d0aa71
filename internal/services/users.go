// ABOUTME: User administration endpoints with password reset and locking
// ABOUTME: Thin verb+path mappings onto the API client

package services

import (
	"context"

	"github.com/pushnotify/console/internal/api"
)

// UserService maps the /users endpoints. Admin role required server-side.
type UserService struct {
	client *api.Client
}

// NewUserService creates a UserService on the given client.
func NewUserService(c *api.Client) *UserService {
	return &UserService{client: c}
}

// List returns one page of users.
func (s *UserService) List(ctx context.Context, q ListQuery) (ListPage[User], error) {
	var out ListPage[User]
	err := s.client.Get(ctx, "/users", q.Values(), &out)
	return out, err
}

// Get returns one user by ID.
func (s *UserService) Get(ctx context.Context, id int64) (*User, error) {
	var out User
	if err := s.client.Get(ctx, idPath("/users", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create registers a new user.
func (s *UserService) Create(ctx context.Context, u User) (*User, error) {
	var out User
	if err := s.client.Post(ctx, "/users", u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a user's mutable fields.
func (s *UserService) Update(ctx context.Context, id int64, u User) (*User, error) {
	var out User
	if err := s.client.Put(ctx, idPath("/users", id), u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, idPath("/users", id), nil, nil)
}

// ResetPassword issues a server-generated password for the user.
func (s *UserService) ResetPassword(ctx context.Context, id int64) (string, error) {
	var out struct {
		Password string `json:"password"`
	}
	if err := s.client.Post(ctx, idPath("/users", id)+"/reset-password", nil, &out); err != nil {
		return "", err
	}
	return out.Password, nil
}

// SetLocked locks or unlocks the account.
func (s *UserService) SetLocked(ctx context.Context, id int64, locked bool) error {
	body := map[string]bool{"locked": locked}
	return s.client.Put(ctx, idPath("/users", id)+"/lock", body, nil)
}
