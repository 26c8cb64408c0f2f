package cli

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"github.com/Nidhi8595/DevTinder3/internal/client/api"
	"github.com/Nidhi8595/DevTinder3/internal/client/router"
	"github.com/Nidhi8595/DevTinder3/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the backend.
//
// A rejection (wrong email/password) surfaces the server's detail message
// inline and leaves the session untouched. An unreachable server is reported
// as such. On success the session store transitions, the credential pair is
// persisted, and the client navigates to the feed.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	sess, err := a.gateway.Login(ctx, email, password)
	if err != nil {
		a.reportAuthError(ctx, "Login failed", err)
		return err
	}

	a.store.Dispatch(ctx, session.Login{Token: sess.AccessToken, User: sess.User})
	color.New(color.FgGreen).Fprintf(a.out, "Welcome back, %s!\n", sess.User.Name)

	a.nav.Go(ctx, router.RouteFeed)
	return nil
}

// Signup prompts for a name and credentials and creates a new account. On
// success the issued session is installed and the client navigates to the
// profile view so the user can fill in skills and interests.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	sess, err := a.gateway.Signup(ctx, name, email, password)
	if err != nil {
		a.reportAuthError(ctx, "Signup failed", err)
		return err
	}

	a.store.Dispatch(ctx, session.Login{Token: sess.AccessToken, User: sess.User})
	color.New(color.FgGreen).Fprintf(a.out, "Welcome to DevTinder, %s!\n", sess.User.Name)

	a.nav.Go(ctx, router.RouteProfile)
	return a.EditProfile(ctx)
}

// Logout tears down the session and returns to the landing view. The
// navigator also reacts to the state change, so an open protected view is
// revoked either way.
func (a *App) Logout(ctx context.Context) error {
	a.store.Dispatch(ctx, session.Logout{})
	a.nav.Go(ctx, router.RouteLanding)
	color.New(color.FgHiBlack).Fprintln(a.out, "Logged out.")
	return nil
}

// reportAuthError prints rejections with the server's own words and keeps
// transport problems distinguishable.
func (a *App) reportAuthError(ctx context.Context, prefix string, err error) {
	red := color.New(color.FgRed)

	var apiErr *api.APIError
	switch {
	case errors.As(err, &apiErr):
		red.Fprintf(a.out, "%s: %s\n", prefix, apiErr.Detail)
	case errors.Is(err, api.ErrUnavailable):
		red.Fprintf(a.out, "%s: server unavailable, try again later\n", prefix)
	default:
		red.Fprintf(a.out, "%s: %v\n", prefix, err)
	}
	a.log.Debug(ctx, "auth request failed", "error", err)
}
