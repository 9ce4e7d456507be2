package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkravets/libris/internal/client/models"
	"github.com/dkravets/libris/internal/client/session"
)

// Register is the registration view. A successful registration signs the
// user in immediately: the server returns the same payload as login.
func (a *App) Register(ctx context.Context) error {
	req := models.RegisterRequest{}

	var err error
	if req.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if req.Password, err = getPassword(a.out); err != nil {
		return err
	}
	if req.RealName, err = getSimpleText(a.reader, "Real name", a.out); err != nil {
		return err
	}
	if req.Phone, err = getSimpleText(a.reader, "Phone", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}

	user, err := a.session.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrEmptyAuthResponse):
			fmt.Fprintln(a.out, "Registration failed: the server returned an empty response.")
		case errors.Is(err, session.ErrMissingToken):
			fmt.Fprintln(a.out, "Registration failed: the server response carried no token.")
		default:
			a.reportError(err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", displayName(user.RealName, user.Username))
	return nil
}
