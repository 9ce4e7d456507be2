package api

import (
	"context"
	"net/http"

	"github.com/dkravets/libris/internal/client/models"
)

type Auth struct {
	gw Sender
}

func NewAuth(gw Sender) *Auth {
	return &Auth{gw: gw}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login posts the credentials and returns the auth payload. A success
// response without a usable body comes back as (nil, nil); the session store
// decides what that means.
func (a *Auth) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	res, err := a.gw.Send(ctx, http.MethodPost, "/auth/login", loginRequest{Username: username, Password: password}, nil)
	if err != nil {
		return nil, err
	}
	return decode[models.AuthResponse](res)
}

// Register creates an account; the response contract matches Login's.
func (a *Auth) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	res, err := a.gw.Send(ctx, http.MethodPost, "/auth/register", req, nil)
	if err != nil {
		return nil, err
	}
	return decode[models.AuthResponse](res)
}

// Logout tells the server the session is over. The server holds no session
// state, so this is best-effort bookkeeping; the local clear is what counts.
func (a *Auth) Logout(ctx context.Context) error {
	_, err := a.gw.Send(ctx, http.MethodPost, "/auth/logout", nil, nil)
	return err
}
