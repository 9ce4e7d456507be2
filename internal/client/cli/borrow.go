package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
)

// Borrows is the active-borrows view.
func (a *App) Borrows(ctx context.Context) error {
	page, err := a.borrowsAPI.My(ctx, 1, defaultPageSize)
	if err != nil {
		a.reportError(err)
		return err
	}
	if page == nil || len(page.Records) == 0 {
		fmt.Fprintln(a.out, "No active borrows.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RECORD\tBOOK\tAUTHOR\tDUE\tRENEWALS\tSTATUS")
	for _, r := range page.Records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			r.ID, r.BookTitle, r.BookAuthor, r.DueDate, r.RenewCount, r.Status)
	}
	return w.Flush()
}

// History is the borrow-history view.
func (a *App) History(ctx context.Context) error {
	page, err := a.borrowsAPI.History(ctx, 1, defaultPageSize)
	if err != nil {
		a.reportError(err)
		return err
	}
	if page == nil || len(page.Records) == 0 {
		fmt.Fprintln(a.out, "No borrow history.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RECORD\tBOOK\tBORROWED\tRETURNED\tSTATUS")
	for _, r := range page.Records {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n", r.ID, r.BookID, r.BorrowDate, r.ReturnDate, r.Status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Showing %d of %d records.\n", len(page.Records), page.Total)
	return nil
}

// The borrow/return/renew actions call the API directly; the gateway polices
// the credential. The local check just saves a round-trip for signed-out
// users.

func (a *App) borrowBook(ctx context.Context, args []string) error {
	id, ok := a.requireID(args, "borrow <bookID>")
	if !ok {
		return nil
	}
	rec, err := a.borrowsAPI.Borrow(ctx, id)
	if err != nil {
		a.reportError(err)
		return err
	}
	if rec != nil {
		fmt.Fprintf(a.out, "Borrowed book %d, due %s (record %d).\n", rec.BookID, rec.DueDate, rec.ID)
	} else {
		fmt.Fprintln(a.out, "Borrowed.")
	}
	return nil
}

func (a *App) returnBook(ctx context.Context, args []string) error {
	id, ok := a.requireID(args, "return <recordID>")
	if !ok {
		return nil
	}
	if _, err := a.borrowsAPI.Return(ctx, id); err != nil {
		a.reportError(err)
		return err
	}
	fmt.Fprintf(a.out, "Returned record %d.\n", id)
	return nil
}

func (a *App) renewBook(ctx context.Context, args []string) error {
	id, ok := a.requireID(args, "renew <recordID>")
	if !ok {
		return nil
	}
	rec, err := a.borrowsAPI.Renew(ctx, id)
	if err != nil {
		a.reportError(err)
		return err
	}
	if rec != nil {
		fmt.Fprintf(a.out, "Renewed record %d, now due %s.\n", rec.ID, rec.DueDate)
	} else {
		fmt.Fprintf(a.out, "Renewed record %d.\n", id)
	}
	return nil
}

// requireID validates the single numeric argument of an action command.
func (a *App) requireID(args []string, usage string) (int64, bool) {
	if !a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Please login first.")
		return 0, false
	}
	if len(args) != 1 {
		fmt.Fprintf(a.out, "Usage: %s\n", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(a.out, "Not a valid id: %s\n", args[0])
		return 0, false
	}
	return id, true
}
