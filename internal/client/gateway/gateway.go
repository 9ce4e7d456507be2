// Package gateway dispatches every API call the console makes. It attaches
// the session credential to outgoing requests, unwraps the server's response
// envelope, and converts an authorization rejection into a forced logout.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkravets/libris/internal/client/models"
	"github.com/dkravets/libris/internal/logging"
)

// SessionState is the slice of the session store the gateway needs: the
// current credential, and a hook to destroy the session when the server
// rejects it. The store is bound after construction because the store's own
// auth calls travel through this gateway.
type SessionState interface {
	Token() string
	Invalidate(ctx context.Context)
}

type Client struct {
	baseURL string
	http    *http.Client
	session SessionState
	log     logging.Logger
}

// New builds a gateway for the API rooted at baseURL (e.g.
// "http://localhost:8080/api"). Every call shares one http.Client with the
// given timeout; no retries are performed at this layer.
func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// BindSession attaches the session store. Until bound, requests go out
// without a credential, which is all the login/register calls need.
func (c *Client) BindSession(s SessionState) {
	c.session = s
}

// Send dispatches one API call and returns the decoded response envelope.
//
// The credential is attached as a bearer header only when non-empty. A 401
// transport status, or an envelope code 401 tunneled through a 200 response,
// invalidates the session and returns ErrAuthorizationRejected. Any other
// failure becomes an *APIError. Calls are at-most-once: the caller owns any
// retry policy.
func (c *Client) Send(ctx context.Context, method, path string, body any, query url.Values) (*models.Result, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, c.reject(ctx, method, path, requestID)
	}

	var result models.Result
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &result); err != nil {
			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				return nil, &APIError{Code: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
			}
			return nil, fmt.Errorf("decode response body: %w", err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := result.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{Code: resp.StatusCode, Message: msg}
	}

	if result.Code == http.StatusUnauthorized {
		return nil, c.reject(ctx, method, path, requestID)
	}
	if result.Code != 0 && result.Code != models.CodeOK {
		return nil, &APIError{Code: result.Code, Message: result.Message}
	}

	return &result, nil
}

// reject tears down the session and surfaces the rejection. The error is
// never swallowed here: the caller still sees the failed call.
func (c *Client) reject(ctx context.Context, method, path, requestID string) error {
	c.log.Warn(ctx, "credential rejected, invalidating session",
		"method", method, "path", path, "request_id", requestID)
	if c.session != nil {
		c.session.Invalidate(ctx)
	}
	return ErrAuthorizationRejected
}
