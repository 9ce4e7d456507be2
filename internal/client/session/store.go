// Package session owns the authentication state of the console: the bearer
// credential and the signed-in identity. The credential is persisted locally
// so a restart stays signed in; the identity is volatile and repopulated on
// the next login or registration.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dkravets/libris/internal/client/models"
	"github.com/dkravets/libris/internal/client/repositories/credential"
	"github.com/dkravets/libris/internal/logging"
)

// credentialKey is the fixed name of the durable credential row.
const credentialKey = "token"

// AuthClient is the slice of the API surface the store drives. A nil
// response with a nil error means the server returned no usable body.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
}

// Store is the single source of truth for authentication state. All
// mutation goes through Login, Register, Logout and Invalidate; collaborators
// hold read-only references.
type Store struct {
	mu       sync.RWMutex
	token    string
	identity *models.User

	creds credential.Repository
	auth  AuthClient
	log   logging.Logger
}

// NewStore rehydrates the credential from durable storage (empty string when
// absent) and returns the store. The identity always starts unset, even when
// a credential survived the restart.
func NewStore(ctx context.Context, creds credential.Repository, auth AuthClient, log logging.Logger) (*Store, error) {
	token, err := creds.Get(ctx, credentialKey)
	if err != nil {
		return nil, fmt.Errorf("rehydrate credential: %w", err)
	}
	return &Store{token: token, creds: creds, auth: auth, log: log}, nil
}

// IsAuthenticated reports whether a credential is present. Pure and cheap:
// the route guard calls it on every navigation.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the current credential, "" when signed out. The gateway
// reads it before every dispatch.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Identity returns the signed-in user, nil when unknown.
func (s *Store) Identity() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Login authenticates against the server. On success the credential and
// identity are set together and the credential is written through to durable
// storage. On any failure the store keeps its prior state.
func (s *Store) Login(ctx context.Context, username, password string) (*models.User, error) {
	resp, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, resp)
}

// Register creates an account; the server auto-authenticates a successful
// registration, so the response contract is identical to Login's.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	resp, err := s.auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, resp)
}

func (s *Store) adopt(ctx context.Context, resp *models.AuthResponse) (*models.User, error) {
	if resp == nil {
		return nil, ErrEmptyAuthResponse
	}
	if resp.Token == "" {
		return nil, ErrMissingToken
	}

	user := resp.User()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.creds.Set(ctx, credentialKey, resp.Token); err != nil {
		return nil, fmt.Errorf("persist credential: %w", err)
	}
	s.token = resp.Token
	s.identity = user
	return user, nil
}

// Logout clears the credential and identity in memory and removes the
// durable copy. Idempotent: logging out while signed out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.creds.Delete(ctx, credentialKey); err != nil {
		return fmt.Errorf("remove credential: %w", err)
	}
	s.token = ""
	s.identity = nil
	return nil
}

// Invalidate is the gateway's hook for a server-side credential rejection.
// Same clearing path as Logout; a storage failure here is logged, not
// returned, because the in-memory session must die regardless.
func (s *Store) Invalidate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.creds.Delete(ctx, credentialKey); err != nil {
		s.log.Error(ctx, "failed to remove rejected credential", "error", err)
	}
	s.token = ""
	s.identity = nil
}
