package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/forkedapp/forked/internal/logging"
)

// TokenSource supplies the current session token. The session store
// satisfies this; tests can provide a stub.
type TokenSource interface {
	Token() (string, bool)
}

// Client talks to the Forked backend. Construct one per process with
// NewClient and share it; all methods are safe for concurrent use. Requests
// are never retried automatically; a failed call surfaces its error and the
// caller decides.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewClient builds a backend client. httpClient may be nil, in which case a
// client with a 30s timeout is used.
func NewClient(baseURL string, tokens TokenSource, log logging.Logger, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, http: httpClient, tokens: tokens, log: log}
}

// do executes a request descriptor and returns the status code and body.
// Transport-level failures come back wrapped in ErrTransport; non-2xx
// statuses are not an error at this level; status interpretation belongs to
// the per-operation mappers.
func (c *Client) do(ctx context.Context, r *request) (int, []byte, error) {
	req, err := r.httpRequest(c.baseURL)
	if err != nil {
		return 0, nil, err
	}

	resp, err := c.http.Do(req.WithContext(ctx))
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", r.method, "path", r.path, "error", err)
		return 0, nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: reading body: %v", ErrTransport, err)
	}

	c.log.Debug(ctx, "request completed", "method", r.method, "path", r.path, "status", resp.StatusCode)
	return resp.StatusCode, body, nil
}

// checkStatus maps a non-2xx status to its error kind. 2xx returns nil.
func checkStatus(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrServer, status)
	}
}

// decode unmarshals a 2xx body into v, folding any failure into
// ErrMalformedResponse.
func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
