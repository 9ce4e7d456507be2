package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	username() string
	navigate(ctx context.Context, path string, args ...string) error
	borrowBook(ctx context.Context, args []string) error
	returnBook(ctx context.Context, args []string) error
	renewBook(ctx context.Context, args []string) error
	logout(ctx context.Context) error
}

func status(a execIface) string {
	if u := a.username(); u != "" {
		return fmt.Sprintf("(%s) ", u)
	}
	if a.isLoggedIn() {
		return "(signed in) "
	}
	return ""
}

// Run starts the console. The first navigation goes to the dashboard; the
// guard sends signed-out users to the login view instead.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "libris console (type 'help' for commands)")

	_ = a.navigate(ctx, routeHome)

	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}

// runREPL reads a line, parses the first token as the command, and
// dispatches. View commands go through the route guard; action commands call
// the API directly and rely on the gateway to police the credential. Handler
// errors are already rendered by the handlers themselves, so the loop drops
// them and keeps reading. Exits on EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("libris %s> ", status(a)))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, books [keyword], borrows, history, borrow <bookID>, return <recordID>, renew <recordID>, logout, exit")
			} else {
				printlnFn("Available commands: login, register, exit")
			}

		case "login":
			_ = a.navigate(ctx, routeLogin)

		case "register":
			_ = a.navigate(ctx, routeRegister)

		case "home", "dashboard":
			_ = a.navigate(ctx, routeHome)

		case "books":
			_ = a.navigate(ctx, routeBooks, args...)

		case "borrows":
			_ = a.navigate(ctx, routeBorrows)

		case "history":
			_ = a.navigate(ctx, routeHistory)

		case "borrow":
			_ = a.borrowBook(ctx, args)

		case "return":
			_ = a.returnBook(ctx, args)

		case "renew":
			_ = a.renewBook(ctx, args)

		case "logout":
			_ = a.logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
