// Package session holds the client's authentication state: a pure reducer
// over discrete events plus a store that applies persistence effects and
// notifies subscribers after each transition.
package session

import "github.com/Nidhi8595/DevTinder3/internal/client/models"

// State is the authoritative view of the current session.
//
// Invariant: Authenticated is true iff both Token and User are present.
// The reducer re-derives it on every transition; nothing else may set it.
type State struct {
	Authenticated bool
	Token         string
	User          *models.User
}

// Empty returns the logged-out state.
func Empty() State {
	return State{}
}

// Event is a session transition. The four implementations below are the only
// ways session state changes.
type Event interface {
	isEvent()
}

// Login carries a freshly issued credential and user record, from a
// successful login or signup call.
type Login struct {
	Token string
	User  *models.User
}

// Logout tears the session down.
type Logout struct{}

// UpdateUser replaces the user record wholesale, keeping the current token.
type UpdateUser struct {
	User *models.User
}

// Hydrate restores a previously persisted session at startup. It yields the
// same state as Login with the same payload, but without re-persisting.
type Hydrate struct {
	Token string
	User  *models.User
}

func (Login) isEvent()      {}
func (Logout) isEvent()     {}
func (UpdateUser) isEvent() {}
func (Hydrate) isEvent()    {}

// Reduce is the pure transition function. It performs no I/O; persistence is
// the store's job.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case Login:
		return derive(e.Token, e.User)
	case Hydrate:
		return derive(e.Token, e.User)
	case Logout:
		return Empty()
	case UpdateUser:
		// Advisory precondition: only meaningful with an active session.
		// Without a token the update is dropped so a user record can never
		// be paired with an empty credential.
		if s.Token == "" {
			return s
		}
		return derive(s.Token, e.User)
	default:
		return s
	}
}

func derive(token string, user *models.User) State {
	return State{
		Authenticated: token != "" && user != nil,
		Token:         token,
		User:          user,
	}
}
