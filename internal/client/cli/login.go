package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkravets/libris/internal/client/session"
)

// Login is the login view: prompt for credentials, authenticate, report.
// The two auth failure kinds render distinct messages so the user knows
// whether the server is broken or just said no.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrEmptyAuthResponse):
			fmt.Fprintln(a.out, "Login failed: the server returned an empty response.")
		case errors.Is(err, session.ErrMissingToken):
			fmt.Fprintln(a.out, "Login failed: the server response carried no token.")
		default:
			a.reportError(err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", displayName(user.RealName, user.Username))
	return nil
}

// logout clears the session. The server-side logout is fire-and-forget: it
// holds no state, and the local clear must happen either way.
func (a *App) logout(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	if err := a.authAPI.Logout(ctx); err != nil {
		a.log.Warn(ctx, "server logout failed", "error", err)
	}
	if err := a.session.Logout(ctx); err != nil {
		a.reportError(err)
		return err
	}

	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func displayName(realName, username string) string {
	if realName != "" {
		return realName
	}
	return username
}
