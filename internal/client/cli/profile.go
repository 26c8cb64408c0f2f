package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/Nidhi8595/DevTinder3/internal/client/api"
	"github.com/Nidhi8595/DevTinder3/internal/client/models"
	"github.com/Nidhi8595/DevTinder3/internal/client/router"
	"github.com/Nidhi8595/DevTinder3/internal/client/session"
	"github.com/Nidhi8595/DevTinder3/internal/client/tags"
)

// errSubmitInFlight reports a save triggered while a previous one is still
// running. The duplicate trigger is ignored.
var errSubmitInFlight = errors.New("profile submission already in flight")

// profileEditor is one edit session over the profile view. It is created
// from the current user record when the view opens and discarded when the
// user navigates away without saving.
//
// States: editing -> submitting -> editing (on failure) or done (on
// success). The submitting flag is flipped synchronously before the network
// call goes out, so a second rapid save observes it and is dropped.
type profileEditor struct {
	mu         sync.Mutex
	submitting bool

	id         string
	name       string
	bio        string
	profilePic string
	skills     tags.Collection
	interests  tags.Collection
}

func newProfileEditor(u *models.User) *profileEditor {
	return &profileEditor{
		id:         uuid.NewString(),
		name:       u.Name,
		bio:        u.Bio,
		profilePic: u.ProfilePic,
		skills:     tags.New(u.Skills...),
		interests:  tags.New(u.Interests...),
	}
}

func (e *profileEditor) beginSubmit() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.submitting {
		return false
	}
	e.submitting = true
	return true
}

func (e *profileEditor) endSubmit() {
	e.mu.Lock()
	e.submitting = false
	e.mu.Unlock()
}

func (e *profileEditor) update() models.ProfileUpdate {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.ProfileUpdate{
		Name:       e.name,
		Bio:        e.bio,
		Skills:     e.skills.Values(),
		Interests:  e.interests.Values(),
		ProfilePic: e.profilePic,
	}
}

// submitProfile sends the whole edited document to the backend. On failure
// the editor keeps its in-progress edits and the caller stays on the view.
// A response that arrives after the session ended is discarded.
func (a *App) submitProfile(ctx context.Context, ed *profileEditor) (*models.User, error) {
	if !ed.beginSubmit() {
		return nil, errSubmitInFlight
	}
	defer ed.endSubmit()

	st := a.store.State()
	if !st.Authenticated {
		return nil, api.ErrUnauthorized
	}

	user, err := a.gateway.UpdateProfile(ctx, st.Token, ed.update())
	if err != nil {
		return nil, err
	}

	// The user may have logged out while the request was in flight; a
	// superseded response must not resurrect the session's user record.
	if !a.store.State().Authenticated {
		a.log.Info(ctx, "discarding profile response after logout", "edit_session", ed.id)
		return nil, api.ErrUnauthorized
	}

	a.store.Dispatch(ctx, session.UpdateUser{User: user})
	return user, nil
}

// EditProfile runs the interactive profile view: a small sub-REPL mutating
// one profileEditor until the user saves or leaves.
func (a *App) EditProfile(ctx context.Context) error {
	st := a.store.State()
	if !st.Authenticated {
		return api.ErrUnauthorized
	}

	ed := newProfileEditor(st.User)
	a.renderEditor(ed)
	fmt.Fprintln(a.out, "Commands: name <text>, bio <text>, pic <url>, skill add|rm <tag>, interest add|rm <tag>, show, save, skip")

	for {
		fmt.Fprint(a.out, "profile> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "show":
			a.renderEditor(ed)

		case "name":
			ed.name = strings.TrimSpace(strings.TrimPrefix(strings.TrimRight(line, "\r\n"), "name"))

		case "bio":
			ed.bio = strings.TrimSpace(strings.TrimPrefix(strings.TrimRight(line, "\r\n"), "bio"))

		case "pic":
			ed.profilePic = strings.TrimSpace(strings.TrimPrefix(strings.TrimRight(line, "\r\n"), "pic"))

		case "skill":
			editTags(a.out, &ed.skills, parts[1:])

		case "interest":
			editTags(a.out, &ed.interests, parts[1:])

		case "save":
			if _, err := a.submitProfile(ctx, ed); err != nil {
				if errors.Is(err, errSubmitInFlight) {
					continue
				}
				a.reportAuthError(ctx, "Profile update failed", err)
				continue // back to editing, edits preserved
			}
			color.New(color.FgGreen).Fprintln(a.out, "Profile saved.")
			a.nav.Go(ctx, router.RouteFeed)
			return nil

		case "skip", "cancel", "back":
			a.nav.Go(ctx, router.RouteFeed)
			return nil

		default:
			fmt.Fprintln(a.out, "Unknown command:", parts[0])
		}
	}
}

func editTags(w io.Writer, c *tags.Collection, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(w, "Usage: skill|interest add|rm <tag>")
		return
	}
	value := strings.Join(args[1:], " ")
	switch args[0] {
	case "add":
		*c = c.Add(value)
	case "rm", "remove":
		*c = c.Remove(value)
	default:
		fmt.Fprintln(w, "Usage: skill|interest add|rm <tag>")
	}
}

func (a *App) renderEditor(ed *profileEditor) {
	cyan := color.New(color.FgCyan)
	cyan.Fprintln(a.out, "-- Your profile --")
	fmt.Fprintf(a.out, "Name:      %s\n", ed.name)
	fmt.Fprintf(a.out, "Bio:       %s\n", ed.bio)
	fmt.Fprintf(a.out, "Pic:       %s\n", ed.profilePic)
	fmt.Fprintf(a.out, "Skills:    %s\n", color.MagentaString(strings.Join(ed.skills.Values(), ", ")))
	fmt.Fprintf(a.out, "Interests: %s\n", color.MagentaString(strings.Join(ed.interests.Values(), ", ")))
}
