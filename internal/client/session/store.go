package session

import (
	"context"
	"sync"

	"github.com/Nidhi8595/DevTinder3/internal/client/storage"
	"github.com/Nidhi8595/DevTinder3/internal/logging"
)

// Store owns the session State and mediates every change to it. It is an
// explicit, injectable object: views receive a *Store, there is no package
// global. Safe for concurrent use.
//
// Each Dispatch runs the pure reducer, performs the event's persistence
// side effect exactly once, and then notifies subscribers with the new
// state. Persistence failures are logged and never propagate: the worst
// case is a session that does not survive the next restart.
type Store struct {
	mu    sync.Mutex
	state State
	subs  []func(State)

	vault storage.Vault
	log   logging.Logger
}

// NewStore creates a Store in the logged-out state.
func NewStore(vault storage.Vault, log logging.Logger) *Store {
	return &Store{state: Empty(), vault: vault, log: log}
}

// State returns the current session state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to run after every state change. Subscribers are
// invoked outside the store lock, in registration order.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Dispatch applies ev and returns the resulting state.
func (s *Store) Dispatch(ctx context.Context, ev Event) State {
	s.mu.Lock()
	next := Reduce(s.state, ev)
	s.state = next
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	s.persist(ctx, ev, next)

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Hydrate restores the persisted session, if any. Called once at startup;
// a store with nothing (or garbage) persisted stays logged out.
func (s *Store) Hydrate(ctx context.Context) State {
	token, user, ok := s.vault.Load(ctx)
	if !ok {
		return s.State()
	}
	return s.Dispatch(ctx, Hydrate{Token: token, User: user})
}

// persist runs the single side effect tied to ev. Hydrate has none: the
// data it carries came from the vault in the first place.
func (s *Store) persist(ctx context.Context, ev Event, next State) {
	switch ev.(type) {
	case Login:
		if err := s.vault.Save(ctx, next.Token, next.User); err != nil {
			s.log.Warn(ctx, "failed to persist session", "error", err)
		}
	case UpdateUser:
		// The reducer drops updates without a token; nothing to persist then.
		if !next.Authenticated {
			return
		}
		if err := s.vault.Save(ctx, next.Token, next.User); err != nil {
			s.log.Warn(ctx, "failed to persist user record", "error", err)
		}
	case Logout:
		if err := s.vault.Clear(ctx); err != nil {
			s.log.Warn(ctx, "failed to clear persisted session", "error", err)
		}
	}
}
