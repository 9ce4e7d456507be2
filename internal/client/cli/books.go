package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
)

// Books is the catalog view. An optional keyword from the command arguments
// filters the list ("books tolstoy").
func (a *App) Books(ctx context.Context) error {
	keyword := strings.Join(a.args, " ")

	page, err := a.booksAPI.List(ctx, 1, defaultPageSize, keyword)
	if err != nil {
		a.reportError(err)
		return err
	}
	if page == nil || len(page.Records) == 0 {
		fmt.Fprintln(a.out, "No books found.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tISBN\tAVAILABLE")
	for _, b := range page.Records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d/%d\n",
			b.ID, b.Title, b.Author, b.ISBN, b.AvailableQuantity, b.TotalQuantity)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Showing %d of %d books.\n", len(page.Records), page.Total)
	return nil
}
