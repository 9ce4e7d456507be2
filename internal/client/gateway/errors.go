package gateway

import (
	"errors"
	"fmt"
)

// ErrAuthorizationRejected is returned when the server refuses the attached
// credential (expired or invalid token). The gateway clears the session
// before surfacing it; callers match it with errors.Is.
var ErrAuthorizationRejected = errors.New("authorization rejected")

// APIError carries any other server-signaled failure: validation errors,
// not-found, server faults. The gateway never recovers from these, it hands
// them to the caller untouched.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error (code %d)", e.Code)
	}
	return fmt.Sprintf("api error (code %d): %s", e.Code, e.Message)
}
