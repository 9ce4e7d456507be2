// Package models defines the data shapes exchanged with the library API.
package models

import "encoding/json"

// CodeOK is the envelope code the server sets on success. The server signals
// most business failures through the envelope rather than the HTTP status.
const CodeOK = 200

// Result is the envelope wrapping every API response body:
//
//	{"code": 200, "message": "...", "data": {...}}
//
// Data stays raw so each binding can decode its own payload type.
type Result struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// HasData reports whether the envelope carries a usable payload.
func (r *Result) HasData() bool {
	if r == nil || len(r.Data) == 0 {
		return false
	}
	return string(r.Data) != "null"
}

// Page is the server's pagination envelope for list endpoints.
type Page[T any] struct {
	Records []T   `json:"records"`
	Total   int64 `json:"total"`
	Size    int64 `json:"size"`
	Current int64 `json:"current"`
	Pages   int64 `json:"pages"`
}
