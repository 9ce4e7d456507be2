package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dkravets/libris/internal/client/models"
)

type Books struct {
	gw Sender
}

func NewBooks(gw Sender) *Books {
	return &Books{gw: gw}
}

// List fetches one catalog page, optionally filtered by keyword.
func (b *Books) List(ctx context.Context, page, size int, keyword string) (*models.Page[models.Book], error) {
	q := pageQuery(page, size)
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	res, err := b.gw.Send(ctx, http.MethodGet, "/books", nil, q)
	if err != nil {
		return nil, err
	}
	return decode[models.Page[models.Book]](res)
}

func (b *Books) Get(ctx context.Context, id int64) (*models.Book, error) {
	res, err := b.gw.Send(ctx, http.MethodGet, fmt.Sprintf("/books/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[models.Book](res)
}

func (b *Books) Add(ctx context.Context, book models.Book) (*models.Book, error) {
	res, err := b.gw.Send(ctx, http.MethodPost, "/books", book, nil)
	if err != nil {
		return nil, err
	}
	return decode[models.Book](res)
}

func (b *Books) Update(ctx context.Context, id int64, book models.Book) (*models.Book, error) {
	res, err := b.gw.Send(ctx, http.MethodPut, fmt.Sprintf("/books/%d", id), book, nil)
	if err != nil {
		return nil, err
	}
	return decode[models.Book](res)
}

func (b *Books) Delete(ctx context.Context, id int64) error {
	_, err := b.gw.Send(ctx, http.MethodDelete, fmt.Sprintf("/books/%d", id), nil, nil)
	return err
}
