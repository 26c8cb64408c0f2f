// Package router provides the view route table and the guard that gates
// navigation on session state.
package router

import (
	"context"
	"sync"

	"github.com/Nidhi8595/DevTinder3/internal/client/session"
	"github.com/Nidhi8595/DevTinder3/internal/logging"
)

// Route identifies a client view.
type Route string

const (
	RouteLanding Route = "/"
	RouteLogin   Route = "/login"
	RouteSignup  Route = "/signup"
	RouteProfile Route = "/profile"
	RouteFeed    Route = "/feed"
	RouteChat    Route = "/chat"
)

// protected lists the routes that require an authenticated session.
var protected = map[Route]bool{
	RouteProfile: true,
	RouteFeed:    true,
	RouteChat:    true,
}

// Protected reports whether r requires authentication.
func Protected(r Route) bool {
	return protected[r]
}

// Decision is the outcome of guarding a navigation attempt.
type Decision struct {
	Allow      bool
	RedirectTo Route
}

// Guard decides whether st may visit target. Protected routes require an
// authenticated session; the redirect always lands on the login route and
// the original target is discarded.
func Guard(st session.State, target Route) Decision {
	if Protected(target) && !st.Authenticated {
		return Decision{RedirectTo: RouteLogin}
	}
	return Decision{Allow: true}
}

// Navigator tracks the current route and re-applies the guard both on every
// navigation attempt and on every session change, so that a logout revokes
// an already-entered protected view immediately.
type Navigator struct {
	mu      sync.Mutex
	current Route

	store *session.Store
	log   logging.Logger
}

// NewNavigator creates a Navigator starting on the landing route and wires
// it to session changes.
func NewNavigator(store *session.Store, log logging.Logger) *Navigator {
	n := &Navigator{current: RouteLanding, store: store, log: log}
	store.Subscribe(n.onSessionChange)
	return n
}

// Current returns the route the client is showing.
func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Go attempts to navigate to target, applying the guard against the current
// session state. It returns the route actually landed on.
func (n *Navigator) Go(ctx context.Context, target Route) Route {
	d := Guard(n.store.State(), target)
	if !d.Allow {
		n.log.Info(ctx, "navigation redirected", "target", string(target), "redirect", string(d.RedirectTo))
		target = d.RedirectTo
	}
	n.mu.Lock()
	n.current = target
	n.mu.Unlock()
	return target
}

func (n *Navigator) onSessionChange(st session.State) {
	n.mu.Lock()
	current := n.current
	n.mu.Unlock()

	if d := Guard(st, current); !d.Allow {
		n.mu.Lock()
		n.current = d.RedirectTo
		n.mu.Unlock()
	}
}
