// Package common contains shared constants and small utilities used across
// Forked client components.
package common

// AuthHeaderName is the HTTP header used to carry the session token on
// outbound requests to the Forked backend.
const AuthHeaderName = "Authorization"

// AuthScheme is the prefix of the auth header value, e.g. "Token <token>".
const AuthScheme = "Token"

// RequestIDHeaderName carries a per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"
