package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dkravets/libris/internal/client/models"
)

type Borrows struct {
	gw Sender
}

func NewBorrows(gw Sender) *Borrows {
	return &Borrows{gw: gw}
}

// List fetches borrow records across users, optionally filtered; admin view.
func (b *Borrows) List(ctx context.Context, page, size int, userID int64, status string) (*models.Page[models.BorrowRecord], error) {
	q := pageQuery(page, size)
	if userID != 0 {
		q.Set("userId", fmt.Sprintf("%d", userID))
	}
	if status != "" {
		q.Set("status", status)
	}
	res, err := b.gw.Send(ctx, http.MethodGet, "/borrow", nil, q)
	if err != nil {
		return nil, err
	}
	return decode[models.Page[models.BorrowRecord]](res)
}

// My fetches the calling user's active borrows.
func (b *Borrows) My(ctx context.Context, page, size int) (*models.Page[models.BorrowRecordDetail], error) {
	res, err := b.gw.Send(ctx, http.MethodGet, "/borrow/my-borrows", nil, pageQuery(page, size))
	if err != nil {
		return nil, err
	}
	return decode[models.Page[models.BorrowRecordDetail]](res)
}

// History fetches the calling user's full borrow history.
func (b *Borrows) History(ctx context.Context, page, size int) (*models.Page[models.BorrowRecord], error) {
	res, err := b.gw.Send(ctx, http.MethodGet, "/borrow/history", nil, pageQuery(page, size))
	if err != nil {
		return nil, err
	}
	return decode[models.Page[models.BorrowRecord]](res)
}

func (b *Borrows) Borrow(ctx context.Context, bookID int64) (*models.BorrowRecord, error) {
	res, err := b.gw.Send(ctx, http.MethodPost, fmt.Sprintf("/borrow/%d", bookID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[models.BorrowRecord](res)
}

func (b *Borrows) Return(ctx context.Context, recordID int64) (*models.BorrowRecord, error) {
	res, err := b.gw.Send(ctx, http.MethodPut, fmt.Sprintf("/borrow/return/%d", recordID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[models.BorrowRecord](res)
}

func (b *Borrows) Renew(ctx context.Context, recordID int64) (*models.BorrowRecord, error) {
	res, err := b.gw.Send(ctx, http.MethodPut, fmt.Sprintf("/borrow/renew/%d", recordID), nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[models.BorrowRecord](res)
}
