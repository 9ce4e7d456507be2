package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// Dashboard is the home view: library-wide stats and recent activity.
func (a *App) Dashboard(ctx context.Context) error {
	dash, err := a.dashboardAPI.Get(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}
	if dash == nil {
		fmt.Fprintln(a.out, "No dashboard data.")
		return nil
	}

	// The identity is volatile; after a restart it stays unknown until the
	// next login even though the session itself survived.
	if id := a.session.Identity(); id != nil {
		fmt.Fprintf(a.out, "Signed in as %s\n", displayName(id.RealName, id.Username))
	}

	s := dash.Stats
	fmt.Fprintf(a.out, "Books: %d total, %d available, %d borrowed. Users: %d.\n",
		s.TotalBooks, s.AvailableBooks, s.BorrowedBooks, s.TotalUsers)

	if len(dash.RecentRecords) == 0 {
		return nil
	}

	fmt.Fprintln(a.out, "Recent activity:")
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBOOK\tUSER\tBORROWED\tSTATUS")
	for _, r := range dash.RecentRecords {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.ID, r.BookTitle, r.Username, r.BorrowDate, r.Status)
	}
	return w.Flush()
}
