package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/Nidhi8595/DevTinder3/internal/client/router"
)

// quotes rotate on the landing view, one per visit.
var quotes = []string{
	"Great code is born from great connections.",
	"Swipe right on your next coding buddy 🚀",
	"Where developers find their perfect match.",
	"Build together, grow together.",
	"Your next collaboration is just a swipe away.",
}

// open navigates to target through the guard and renders whatever view the
// navigation actually landed on. An unauthenticated visit to a protected
// view therefore falls through to the login form.
func (a *App) open(ctx context.Context, target router.Route) error {
	switch a.nav.Go(ctx, target) {
	case router.RouteLanding:
		a.renderLanding()
		return nil
	case router.RouteLogin:
		return a.Login(ctx)
	case router.RouteSignup:
		return a.Signup(ctx)
	case router.RouteProfile:
		return a.EditProfile(ctx)
	case router.RouteFeed:
		return a.renderFeed(ctx)
	case router.RouteChat:
		a.renderChat()
		return nil
	}
	return nil
}

func (a *App) Home(ctx context.Context) error {
	return a.open(ctx, router.RouteLanding)
}

func (a *App) OpenLogin(ctx context.Context) error {
	return a.open(ctx, router.RouteLogin)
}

func (a *App) OpenSignup(ctx context.Context) error {
	return a.open(ctx, router.RouteSignup)
}

func (a *App) Profile(ctx context.Context) error {
	return a.open(ctx, router.RouteProfile)
}

func (a *App) Feed(ctx context.Context) error {
	return a.open(ctx, router.RouteFeed)
}

func (a *App) Chat(ctx context.Context) error {
	return a.open(ctx, router.RouteChat)
}

func (a *App) renderLanding() {
	pink := color.New(color.FgMagenta, color.Bold)
	fmt.Fprint(a.out, "Dev")
	pink.Fprintln(a.out, "Tinder")
	fmt.Fprintln(a.out, "Where Developers Connect")
	color.New(color.FgHiBlack).Fprintf(a.out, "%q\n", a.nextQuote())
	fmt.Fprintln(a.out, "Type 'login' or 'signup' to start connecting.")
}

func (a *App) nextQuote() string {
	q := quotes[a.quoteIdx%len(quotes)]
	a.quoteIdx++
	return q
}

// renderFeed lists the other developers the backend offers. The matching
// mechanics (swipes, friend requests) are not built yet.
func (a *App) renderFeed(ctx context.Context) error {
	st := a.store.State()
	color.New(color.FgCyan, color.Bold).Fprintf(a.out, "Welcome, %s!\n", st.User.Name)

	users, err := a.gateway.Feed(ctx, st.Token)
	if err != nil {
		a.reportAuthError(ctx, "Could not load feed", err)
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No other developers around yet. Check back soon!")
		return nil
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "  %s — %s\n", color.CyanString(u.Name), strings.Join(u.Skills, ", "))
	}
	color.New(color.FgHiBlack).Fprintln(a.out, "Swiping is coming soon; 'profile' edits your card, 'chat' opens conversations.")
	return nil
}

func (a *App) renderChat() {
	color.New(color.FgCyan, color.Bold).Fprintln(a.out, "Chat")
	fmt.Fprintln(a.out, "Chat is coming soon! Real-time conversations with your connections will land here.")
}

// Connections prints the accepted connections list.
func (a *App) Connections(ctx context.Context) error {
	st := a.store.State()
	if !st.Authenticated {
		fmt.Fprintln(a.out, "Log in to see your connections.")
		return nil
	}
	users, err := a.gateway.Connections(ctx, st.Token)
	if err != nil {
		a.reportAuthError(ctx, "Could not load connections", err)
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No connections yet.")
		return nil
	}
	for _, u := range users {
		online := " "
		if u.IsOnline {
			online = color.GreenString("●")
		}
		fmt.Fprintf(a.out, "%s %s <%s>\n", online, u.Name, u.Email)
	}
	return nil
}

// WhoAmI shows the session's own user record.
func (a *App) WhoAmI(ctx context.Context) error {
	st := a.store.State()
	if !st.Authenticated {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	u := st.User
	color.New(color.FgCyan).Fprintln(a.out, u.Name)
	fmt.Fprintf(a.out, "Email:     %s\n", u.Email)
	fmt.Fprintf(a.out, "Bio:       %s\n", u.Bio)
	fmt.Fprintf(a.out, "Skills:    %s\n", strings.Join(u.Skills, ", "))
	fmt.Fprintf(a.out, "Interests: %s\n", strings.Join(u.Interests, ", "))
	return nil
}
