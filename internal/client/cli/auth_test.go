package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkravets/libris/internal/client/api"
	"github.com/dkravets/libris/internal/client/models"
	"github.com/dkravets/libris/internal/client/repositories/credential"
	"github.com/dkravets/libris/internal/client/router"
	"github.com/dkravets/libris/internal/client/session"
	"github.com/dkravets/libris/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- fakes ----

type fakeAuthClient struct {
	loginResp    *models.AuthResponse
	loginErr     error
	registerResp *models.AuthResponse
	registerErr  error
}

func (f *fakeAuthClient) Login(_ context.Context, _, _ string) (*models.AuthResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthClient) Register(_ context.Context, _ models.RegisterRequest) (*models.AuthResponse, error) {
	return f.registerResp, f.registerErr
}

// okSender answers every gateway call with an empty success envelope.
type okSender struct{}

func (okSender) Send(_ context.Context, _, _ string, _ any, _ url.Values) (*models.Result, error) {
	return &models.Result{Code: models.CodeOK}, nil
}

func stubInputs(t *testing.T, fields []string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		v := fields[i%len(fields)]
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
}

func newTestApp(t *testing.T, auth session.AuthClient) (*App, *bytes.Buffer) {
	t.Helper()

	db, err := credential.InitDatabase(context.Background(), "file:cliapp?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`DELETE FROM credential`)
	require.NoError(t, err)

	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	store, err := session.NewStore(context.Background(), credential.NewSQLiteRepository(db), auth, log)
	require.NoError(t, err)

	var out bytes.Buffer
	a := &App{
		log:     log,
		session: store,
		authAPI: api.NewAuth(okSender{}),
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     &out,
	}

	a.router, err = router.New(store, routeHome, routeLogin, []router.Route{
		{Path: routeHome, Name: "Dashboard", RequiresAuth: true},
		{Path: routeLogin, Name: "Login"},
		{Path: routeBooks, Name: "Books", RequiresAuth: true},
	})
	require.NoError(t, err)

	return a, &out
}

// ---- tests ----

func TestLoginView_Success(t *testing.T) {
	stubInputs(t, []string{"alice"}, "pw")
	a, out := newTestApp(t, &fakeAuthClient{loginResp: &models.AuthResponse{
		Token: "abc", ID: 1, Username: "alice", RealName: "Alice L.",
	}})

	require.NoError(t, a.Login(context.Background()))

	assert.Contains(t, out.String(), "Welcome, Alice L.!")
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "alice", a.username())
}

func TestLoginView_DistinguishesAuthFailures(t *testing.T) {
	t.Run("empty response", func(t *testing.T) {
		stubInputs(t, []string{"alice"}, "pw")
		a, out := newTestApp(t, &fakeAuthClient{loginResp: nil})

		err := a.Login(context.Background())
		require.ErrorIs(t, err, session.ErrEmptyAuthResponse)
		assert.Contains(t, out.String(), "empty response")
		assert.False(t, a.isLoggedIn())
	})

	t.Run("missing token", func(t *testing.T) {
		stubInputs(t, []string{"alice"}, "pw")
		a, out := newTestApp(t, &fakeAuthClient{loginResp: &models.AuthResponse{ID: 1, Username: "alice"}})

		err := a.Login(context.Background())
		require.ErrorIs(t, err, session.ErrMissingToken)
		assert.Contains(t, out.String(), "no token")
		assert.False(t, a.isLoggedIn())
	})
}

func TestRegisterView_SignsIn(t *testing.T) {
	stubInputs(t, []string{"bob", "Bob B.", "13800000000", "bob@example.org"}, "pw")
	a, out := newTestApp(t, &fakeAuthClient{registerResp: &models.AuthResponse{
		Token: "newtok", ID: 7, Username: "bob",
	}})

	require.NoError(t, a.Register(context.Background()))
	assert.Contains(t, out.String(), "Account created")
	assert.True(t, a.isLoggedIn())
}

func TestLogout_ClearsSession(t *testing.T) {
	stubInputs(t, []string{"alice"}, "pw")
	a, out := newTestApp(t, &fakeAuthClient{loginResp: &models.AuthResponse{Token: "abc", Username: "alice"}})

	require.NoError(t, a.Login(context.Background()))
	require.True(t, a.isLoggedIn())

	require.NoError(t, a.logout(context.Background()))
	assert.Contains(t, out.String(), "Logged out.")
	assert.False(t, a.isLoggedIn())

	// Logging out again is harmless.
	require.NoError(t, a.logout(context.Background()))
	assert.Contains(t, out.String(), "Not logged in.")
}

func TestNavigate_GuardRedirectsSignedOutUsers(t *testing.T) {
	a, out := newTestApp(t, &fakeAuthClient{})

	require.NoError(t, a.navigate(context.Background(), routeBooks))
	assert.Contains(t, out.String(), "Please login first.")
}

func TestNavigate_UnknownPath(t *testing.T) {
	a, out := newTestApp(t, &fakeAuthClient{})

	err := a.navigate(context.Background(), "/nope")
	require.ErrorIs(t, err, router.ErrUnknownRoute)
	assert.Contains(t, out.String(), "Unknown view")
}
