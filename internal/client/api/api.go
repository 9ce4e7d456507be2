// Package api holds the typed bindings for the library API. Each binding is
// a thin wrapper over the gateway: build the call, decode the payload,
// nothing else.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/dkravets/libris/internal/client/models"
)

// Sender dispatches one API call and returns the decoded envelope. The
// gateway implements it; tests substitute a fake.
type Sender interface {
	Send(ctx context.Context, method, path string, body any, query url.Values) (*models.Result, error)
}

// decode unmarshals the envelope payload into T. A missing or null payload
// yields (nil, nil) so callers can tell "no data" from "bad data".
func decode[T any](res *models.Result) (*T, error) {
	if !res.HasData() {
		return nil, nil
	}
	v := new(T)
	if err := json.Unmarshal(res.Data, v); err != nil {
		return nil, fmt.Errorf("decode response payload: %w", err)
	}
	return v, nil
}

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("size", fmt.Sprintf("%d", size))
	return q
}
