package session

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkravets/libris/internal/client/models"
	"github.com/dkravets/libris/internal/client/repositories/credential"
	"github.com/dkravets/libris/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupRepo(t *testing.T) credential.Repository {
	t.Helper()
	db, err := credential.InitDatabase(context.Background(), "file:sessionstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`DELETE FROM credential`)
	require.NoError(t, err)

	return credential.NewSQLiteRepository(db)
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

// ---- fake auth client ----

type fakeAuth struct {
	loginResp *models.AuthResponse
	loginErr  error

	registerResp *models.AuthResponse
	registerErr  error

	lastLoginUser string
	lastLoginPass string
	lastRegister  models.RegisterRequest
}

func (f *fakeAuth) Login(_ context.Context, username, password string) (*models.AuthResponse, error) {
	f.lastLoginUser, f.lastLoginPass = username, password
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.lastRegister = req
	return f.registerResp, f.registerErr
}

func newStore(t *testing.T, repo credential.Repository, auth AuthClient) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), repo, auth, testLogger())
	require.NoError(t, err)
	return s
}

// ---- tests ----

func TestIsAuthenticated_TracksToken(t *testing.T) {
	repo := setupRepo(t)
	s := newStore(t, repo, &fakeAuth{})

	assert.False(t, s.IsAuthenticated())

	require.NoError(t, repo.Set(context.Background(), "token", "tok123"))
	s2 := newStore(t, repo, &fakeAuth{})
	assert.True(t, s2.IsAuthenticated())
}

func TestNewStore_RehydratesCredentialButNotIdentity(t *testing.T) {
	repo := setupRepo(t)
	require.NoError(t, repo.Set(context.Background(), "token", "tok123"))

	s := newStore(t, repo, &fakeAuth{})

	assert.Equal(t, "tok123", s.Token())
	assert.True(t, s.IsAuthenticated())
	assert.Nil(t, s.Identity())
}

func TestLogin_Success(t *testing.T) {
	repo := setupRepo(t)
	auth := &fakeAuth{loginResp: &models.AuthResponse{
		Token:    "abc",
		ID:       1,
		Username: "alice",
		RealName: "Alice L.",
		Role:     "USER",
	}}
	s := newStore(t, repo, auth)

	user, err := s.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	assert.Equal(t, "alice", auth.lastLoginUser)
	assert.Equal(t, "pw", auth.lastLoginPass)

	assert.Equal(t, "abc", s.Token())
	assert.True(t, s.IsAuthenticated())
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, user, s.Identity())

	// Durable copy matches the in-memory credential.
	stored, err := repo.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", stored)
}

func TestLogin_EmptyResponse_LeavesStateUntouched(t *testing.T) {
	repo := setupRepo(t)
	require.NoError(t, repo.Set(context.Background(), "token", "prior"))

	auth := &fakeAuth{loginResp: nil}
	s := newStore(t, repo, auth)

	_, err := s.Login(context.Background(), "alice", "pw")
	require.ErrorIs(t, err, ErrEmptyAuthResponse)

	assert.Equal(t, "prior", s.Token())
	assert.Nil(t, s.Identity())

	stored, err := repo.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "prior", stored)
}

func TestLogin_MissingToken_LeavesStateUntouched(t *testing.T) {
	repo := setupRepo(t)
	auth := &fakeAuth{loginResp: &models.AuthResponse{ID: 1, Username: "alice"}}
	s := newStore(t, repo, auth)

	_, err := s.Login(context.Background(), "alice", "pw")
	require.ErrorIs(t, err, ErrMissingToken)

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Identity())
}

func TestLogin_TransportErrorPropagates(t *testing.T) {
	repo := setupRepo(t)
	auth := &fakeAuth{loginErr: assert.AnError}
	s := newStore(t, repo, auth)

	_, err := s.Login(context.Background(), "alice", "pw")
	require.ErrorIs(t, err, assert.AnError)
	assert.False(t, s.IsAuthenticated())
}

func TestRegister_SuccessAutoAuthenticates(t *testing.T) {
	repo := setupRepo(t)
	auth := &fakeAuth{registerResp: &models.AuthResponse{
		Token:    "newtok",
		ID:       7,
		Username: "bob",
	}}
	s := newStore(t, repo, auth)

	req := models.RegisterRequest{
		Username: "bob",
		Password: "secret",
		RealName: "Bob B.",
		Phone:    "13800000000",
		Email:    "bob@example.org",
	}
	user, err := s.Register(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, req, auth.lastRegister)
	require.NotNil(t, user)
	assert.Equal(t, "bob", user.Username)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "newtok", s.Token())
}

func TestRegister_TokenlessResponseIsMissingToken(t *testing.T) {
	repo := setupRepo(t)
	auth := &fakeAuth{registerResp: &models.AuthResponse{ID: 7, Username: "bob"}}
	s := newStore(t, repo, auth)

	_, err := s.Register(context.Background(), models.RegisterRequest{Username: "bob"})
	require.ErrorIs(t, err, ErrMissingToken)
	assert.False(t, s.IsAuthenticated())
}

func TestLogout_ClearsEverythingAndIsIdempotent(t *testing.T) {
	repo := setupRepo(t)
	auth := &fakeAuth{loginResp: &models.AuthResponse{Token: "abc", ID: 1, Username: "alice"}}
	s := newStore(t, repo, auth)

	_, err := s.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	require.NoError(t, s.Logout(context.Background()))
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.Identity())

	stored, err := repo.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.Empty(t, stored)

	// Second logout is a no-op, not an error.
	require.NoError(t, s.Logout(context.Background()))
	assert.False(t, s.IsAuthenticated())
}

func TestInvalidate_ClearsSession(t *testing.T) {
	repo := setupRepo(t)
	require.NoError(t, repo.Set(context.Background(), "token", "rejected"))
	s := newStore(t, repo, &fakeAuth{})

	require.True(t, s.IsAuthenticated())
	s.Invalidate(context.Background())

	assert.False(t, s.IsAuthenticated())
	stored, err := repo.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.Empty(t, stored)
}
