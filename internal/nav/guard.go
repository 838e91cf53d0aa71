// ABOUTME: Navigation guard evaluated before every route transition
// ABOUTME: Enforces public bypass, auth, lazy profile hydration, and role checks

package nav

import (
	"context"
	"log/slog"
	"slices"
)

// Action is the guard's verdict for a navigation attempt.
type Action int

// Guard verdicts.
const (
	ActionAllow Action = iota
	ActionRedirectLogin
	ActionRedirectForbidden
)

// Decision carries the verdict and, for login redirects, the originally
// intended path so the login view can return the user there afterwards.
type Decision struct {
	Action   Action
	ReturnTo string
}

// Session is the slice of the session store the guard consults.
type Session interface {
	IsLoggedIn() bool
	HasIdentity() bool
	FetchProfile(ctx context.Context) error
	PrimaryRole() string
}

// Guard decides whether a navigation may proceed.
type Guard struct {
	session Session
	logger  *slog.Logger
}

// NewGuard creates a guard over the given session.
func NewGuard(session Session) *Guard {
	return &Guard{
		session: session,
		logger:  slog.Default().With("component", "nav"),
	}
}

// Decide evaluates the guard rules in order:
//
//  1. public routes pass unconditionally
//  2. unauthenticated users go to login, keeping the intended destination
//  3. a held token without a hydrated identity triggers a profile fetch;
//     a failed fetch sends the user to login
//  4. a route restricted to roles the user's primary role is not among
//     redirects to the forbidden view
//  5. otherwise the navigation is allowed
func (g *Guard) Decide(ctx context.Context, route Route) Decision {
	if route.Public {
		return Decision{Action: ActionAllow}
	}

	if !g.session.IsLoggedIn() {
		return Decision{Action: ActionRedirectLogin, ReturnTo: route.Path}
	}

	if !g.session.HasIdentity() {
		if err := g.session.FetchProfile(ctx); err != nil {
			g.logger.Warn("profile hydration failed", "route", route.Name, "error", err)
			return Decision{Action: ActionRedirectLogin}
		}
	}

	if len(route.Roles) > 0 && !slices.Contains(route.Roles, g.session.PrimaryRole()) {
		g.logger.Info("navigation forbidden", "route", route.Name, "role", g.session.PrimaryRole())
		return Decision{Action: ActionRedirectForbidden}
	}

	return Decision{Action: ActionAllow}
}
