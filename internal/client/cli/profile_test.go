package cli

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nidhi8595/DevTinder3/internal/client/api"
	"github.com/Nidhi8595/DevTinder3/internal/client/session"
)

func loggedInApp(t *testing.T, gw api.Gateway) (*App, *session.Store) {
	t.Helper()
	a, store, _ := newTestApp(t, gw)
	store.Dispatch(context.Background(), session.Login{Token: "tok-1", User: testUser()})
	return a, store
}

func TestProfileEditor_StartsFromCurrentUser(t *testing.T) {
	ed := newProfileEditor(testUser())

	assert.Equal(t, "Ada", ed.name)
	assert.Equal(t, []string{"Go"}, ed.skills.Values())
	assert.Equal(t, []string{"Compilers"}, ed.interests.Values())
	assert.NotEmpty(t, ed.id)
}

func TestSubmitProfile_SendsWholeDocumentWithBearerToken(t *testing.T) {
	updated := testUser()
	updated.Skills = []string{"Go", "SQL"}
	gw := &fakeGateway{UpdateRet: updated}
	a, store := loggedInApp(t, gw)
	ctx := context.Background()

	ed := newProfileEditor(testUser())
	ed.skills = ed.skills.Add("SQL")

	u, err := a.submitProfile(ctx, ed)
	require.NoError(t, err)

	assert.Equal(t, "tok-1", gw.LastToken)
	assert.Equal(t, []string{"Go", "SQL"}, gw.LastUpdate.Skills)
	assert.Equal(t, updated, u)

	// The session's user record was refreshed, token kept.
	st := store.State()
	assert.Equal(t, []string{"Go", "SQL"}, st.User.Skills)
	assert.Equal(t, "tok-1", st.Token)
}

func TestSubmitProfile_DoubleTrigger_SendsExactlyOneRequest(t *testing.T) {
	gw := &fakeGateway{
		UpdateRet:     testUser(),
		UpdateStarted: make(chan struct{}),
		UpdateRelease: make(chan struct{}),
	}
	a, _ := loggedInApp(t, gw)
	ctx := context.Background()

	ed := newProfileEditor(testUser())

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = a.submitProfile(ctx, ed)
	}()

	<-gw.UpdateStarted // the first submit is in flight

	_, secondErr := a.submitProfile(ctx, ed)
	assert.ErrorIs(t, secondErr, errSubmitInFlight)

	close(gw.UpdateRelease)
	wg.Wait()

	require.NoError(t, firstErr)
	assert.Equal(t, 1, gw.UpdateCalls)
}

func TestSubmitProfile_Failure_KeepsEditsAndSession(t *testing.T) {
	gw := &fakeGateway{UpdateErr: &api.APIError{Status: 422, Detail: "bio too long"}}
	a, store := loggedInApp(t, gw)
	ctx := context.Background()

	ed := newProfileEditor(testUser())
	ed.skills = ed.skills.Add("SQL")
	ed.bio = "something new"

	_, err := a.submitProfile(ctx, ed)
	require.Error(t, err)

	// Back to editing: the in-progress edits survive and a retry works.
	assert.Equal(t, []string{"Go", "SQL"}, ed.skills.Values())
	assert.Equal(t, "something new", ed.bio)
	assert.False(t, ed.submitting)

	// The session's user record is untouched.
	assert.Equal(t, testUser(), store.State().User)

	gw.UpdateErr = nil
	gw.UpdateRet = testUser()
	_, err = a.submitProfile(ctx, ed)
	assert.NoError(t, err)
}

func TestSubmitProfile_ResponseAfterLogout_IsDiscarded(t *testing.T) {
	gw := &fakeGateway{
		UpdateRet:     testUser(),
		UpdateStarted: make(chan struct{}),
		UpdateRelease: make(chan struct{}),
	}
	a, store := loggedInApp(t, gw)
	ctx := context.Background()

	ed := newProfileEditor(testUser())

	var wg sync.WaitGroup
	wg.Add(1)
	var submitErr error
	go func() {
		defer wg.Done()
		_, submitErr = a.submitProfile(ctx, ed)
	}()

	<-gw.UpdateStarted
	store.Dispatch(ctx, session.Logout{}) // user logs out mid-flight
	close(gw.UpdateRelease)
	wg.Wait()

	assert.Error(t, submitErr)
	assert.Equal(t, session.Empty(), store.State(), "a superseded response must not resurrect the session")
}

func TestSubmitProfile_RequiresActiveSession(t *testing.T) {
	gw := &fakeGateway{}
	a, _, _ := newTestApp(t, gw)

	_, err := a.submitProfile(context.Background(), newProfileEditor(testUser()))

	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Equal(t, 0, gw.UpdateCalls)
}

func TestEditTags_AddAndRemove(t *testing.T) {
	ed := newProfileEditor(testUser())

	editTags(io.Discard, &ed.skills, []string{"add", "Distributed", "Systems"})
	assert.Equal(t, []string{"Go", "Distributed Systems"}, ed.skills.Values())

	editTags(io.Discard, &ed.skills, []string{"add", "Go"})
	assert.Equal(t, []string{"Go", "Distributed Systems"}, ed.skills.Values())

	editTags(io.Discard, &ed.skills, []string{"rm", "Go"})
	assert.Equal(t, []string{"Distributed Systems"}, ed.skills.Values())
}
