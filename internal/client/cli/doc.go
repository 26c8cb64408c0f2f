// Package cli provides the interactive DevTinder terminal client.
//
// It wires configuration, the local session store, the API gateway, and the
// route-guarded navigator behind an interactive REPL. Typical flow: restore
// any persisted session, show the landing view, and execute user commands
// (login, signup, profile editing, feed browsing).
//
// Navigation goes through the router guard: a logged-out visit to a
// protected view (profile, feed, chat) lands on the login form instead, and
// a logout immediately revokes whatever protected view is current.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL, and EditProfile for details.
package cli
