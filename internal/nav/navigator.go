// ABOUTME: Navigator applying guard decisions and tracking the current view
// ABOUTME: Remembers the intended destination across a login redirect

package nav

import (
	"context"
	"sync"
)

// Navigator resolves route names, runs the guard, and tracks the current
// view. Unknown names resolve to the not-found route.
type Navigator struct {
	mu       sync.Mutex
	guard    *Guard
	current  Route
	returnTo string
}

// NewNavigator creates a navigator starting at the login route.
func NewNavigator(guard *Guard) *Navigator {
	start, _ := Lookup(RouteLogin)
	return &Navigator{guard: guard, current: start}
}

// Go navigates to the named route. The guard is consulted first; redirects
// are followed, so the returned route is the view actually reached.
func (n *Navigator) Go(ctx context.Context, name string) Route {
	route, ok := Lookup(name)
	if !ok {
		route, _ = Lookup(RouteNotFound)
	}

	decision := n.guard.Decide(ctx, route)
	switch decision.Action {
	case ActionRedirectLogin:
		n.mu.Lock()
		n.returnTo = decision.ReturnTo
		n.mu.Unlock()
		route, _ = Lookup(RouteLogin)
	case ActionRedirectForbidden:
		route, _ = Lookup(RouteForbidden)
	}

	n.mu.Lock()
	n.current = route
	n.mu.Unlock()
	return route
}

// Current returns the view currently shown.
func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// ConsumeReturnTo returns the path preserved by a login redirect and clears
// it, so a successful login lands the user where they were headed.
func (n *Navigator) ConsumeReturnTo() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	path := n.returnTo
	n.returnTo = ""
	return path
}
