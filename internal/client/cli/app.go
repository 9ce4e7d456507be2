// Package cli implements the interactive console: a REPL whose commands
// navigate between views through the route guard.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dkravets/libris/internal/client/api"
	"github.com/dkravets/libris/internal/client/config"
	"github.com/dkravets/libris/internal/client/gateway"
	"github.com/dkravets/libris/internal/client/repositories/credential"
	"github.com/dkravets/libris/internal/client/router"
	"github.com/dkravets/libris/internal/client/session"
	"github.com/dkravets/libris/internal/logging"

	_ "modernc.org/sqlite"
)

const (
	routeHome     = "/"
	routeLogin    = "/login"
	routeRegister = "/register"
	routeBooks    = "/books"
	routeBorrows  = "/borrow"
	routeHistory  = "/history"
)

const defaultPageSize = 10

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Store
	router  *router.Router

	authAPI      *api.Auth
	booksAPI     *api.Books
	borrowsAPI   *api.Borrows
	dashboardAPI *api.Dashboard

	reader *bufio.Reader
	out    io.Writer

	// args holds the arguments of the command currently being dispatched,
	// for views that take parameters (e.g. a catalog keyword).
	args []string
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := credential.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init local database: %w", err)
	}

	gw := gateway.New(cfg.BaseURL, cfg.RequestTimeout, log)
	authAPI := api.NewAuth(gw)

	store, err := session.NewStore(ctx, credential.NewSQLiteRepository(db), authAPI, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	// The store's own login/register calls travel through the gateway, so the
	// session is bound after both exist.
	gw.BindSession(store)

	a := &App{
		config:       cfg,
		log:          log,
		db:           db,
		session:      store,
		authAPI:      authAPI,
		booksAPI:     api.NewBooks(gw),
		borrowsAPI:   api.NewBorrows(gw),
		dashboardAPI: api.NewDashboard(gw),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}

	a.router, err = router.New(store, routeHome, routeLogin, a.routes())
	if err != nil {
		db.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) routes() []router.Route {
	return []router.Route{
		{Path: routeHome, Name: "Dashboard", RequiresAuth: true, Handler: a.Dashboard},
		{Path: routeLogin, Name: "Login", Handler: a.Login},
		{Path: routeRegister, Name: "Register", Handler: a.Register},
		{Path: routeBooks, Name: "Books", RequiresAuth: true, Handler: a.Books},
		{Path: routeBorrows, Name: "Borrows", RequiresAuth: true, Handler: a.Borrows},
		{Path: routeHistory, Name: "History", RequiresAuth: true, Handler: a.History},
	}
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) username() string {
	if id := a.session.Identity(); id != nil {
		return id.Username
	}
	return ""
}

// navigate runs one guarded navigation, mounting whichever view the guard
// resolved to.
func (a *App) navigate(ctx context.Context, path string, args ...string) error {
	a.args = args

	res, err := a.router.Resolve(path)
	if err != nil {
		fmt.Fprintf(a.out, "Unknown view: %s\n", path)
		return err
	}
	if res.Redirected && res.Route.Path == routeLogin {
		fmt.Fprintln(a.out, "Please login first.")
	}
	if res.Route.Handler == nil {
		return nil
	}
	return res.Route.Handler(ctx)
}

// reportError renders a failed API call. An authorization rejection has
// already destroyed the session by the time it gets here.
func (a *App) reportError(err error) {
	if errors.Is(err, gateway.ErrAuthorizationRejected) {
		fmt.Fprintln(a.out, "Your session has expired. Please login again.")
		return
	}
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		fmt.Fprintf(a.out, "Request failed: %s\n", apiErr.Message)
		return
	}
	fmt.Fprintf(a.out, "Request failed: %v\n", err)
}
