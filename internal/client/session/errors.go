package session

import "errors"

var (
	// ErrEmptyAuthResponse: the server answered login/register without a
	// usable body.
	ErrEmptyAuthResponse = errors.New("authentication failed: empty server response")

	// ErrMissingToken: the server answered with a body that carries no token.
	// A tokenless registration response lands here too.
	ErrMissingToken = errors.New("authentication failed: no token in response")
)
