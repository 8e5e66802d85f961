// Package api implements the Forked backend REST client: request
// construction, response mapping, and the per-operation calls. All expected
// failure modes are sentinel errors matched with errors.Is; callers receive
// them wrapped with operation context.
package api

import "errors"

var (
	// ErrTransport covers connectivity failures: dial errors, timeouts,
	// requests that produced no response at all.
	ErrTransport = errors.New("transport failure")

	// ErrMalformedResponse marks a successful exchange whose body did not
	// decode against the expected shape.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrUnauthorized is returned without issuing a request when an
	// operation requires a session token and none is available, and for
	// 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")

	// Registration validation conflicts, chosen by which field errors the
	// backend reports.
	ErrEmailInUse            = errors.New("email already in use")
	ErrUsernameInUse         = errors.New("username already in use")
	ErrEmailAndUsernameInUse = errors.New("email and username already in use")

	// ErrNotFound maps 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrServer is the catch-all for other non-2xx statuses without a
	// structured body.
	ErrServer = errors.New("server error")
)
