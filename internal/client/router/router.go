// Package router drives navigation between console views through a static
// route table, with a guard that enforces the authentication boundary on
// every navigation attempt.
package router

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownRoute is returned for a path missing from the route table.
var ErrUnknownRoute = errors.New("unknown route")

// AuthState is the only question the guard asks: is someone signed in.
// The check is synchronous; the guard never performs network calls.
type AuthState interface {
	IsAuthenticated() bool
}

// Route is one entry of the navigation table. RequiresAuth is fixed at
// table construction and never mutated afterwards.
type Route struct {
	Path         string
	Name         string
	RequiresAuth bool
	Handler      func(ctx context.Context) error
}

// Resolution is the guard's decision for one navigation attempt. When
// Redirected is true, Route is the redirect target, not the requested one.
type Resolution struct {
	Route      Route
	Redirected bool
}

type Router struct {
	routes  map[string]Route
	session AuthState
	home    string
	login   string
}

// New builds a router over the given table. home is the redirect target for
// authenticated users hitting the login view; login is the redirect target
// for unauthenticated access to protected views. Both must be in the table.
func New(session AuthState, home, login string, routes []Route) (*Router, error) {
	table := make(map[string]Route, len(routes))
	for _, rt := range routes {
		if _, dup := table[rt.Path]; dup {
			return nil, fmt.Errorf("duplicate route %q", rt.Path)
		}
		table[rt.Path] = rt
	}
	for _, p := range []string{home, login} {
		if _, ok := table[p]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRoute, p)
		}
	}
	return &Router{routes: table, session: session, home: home, login: login}, nil
}

// Resolve makes exactly one guard decision for a navigation to path:
//
//   - protected route while signed out → redirect to the login view
//   - login view while signed in → redirect home
//   - everything else → the requested route
func (r *Router) Resolve(path string) (Resolution, error) {
	rt, ok := r.routes[path]
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}

	authenticated := r.session.IsAuthenticated()

	if rt.RequiresAuth && !authenticated {
		return Resolution{Route: r.routes[r.login], Redirected: true}, nil
	}
	if path == r.login && authenticated {
		return Resolution{Route: r.routes[r.home], Redirected: true}, nil
	}
	return Resolution{Route: rt}, nil
}

// Navigate resolves path and mounts the destination view.
func (r *Router) Navigate(ctx context.Context, path string) error {
	res, err := r.Resolve(path)
	if err != nil {
		return err
	}
	if res.Route.Handler == nil {
		return nil
	}
	return res.Route.Handler(ctx)
}
