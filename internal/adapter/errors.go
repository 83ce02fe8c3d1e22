package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the remote service rejects the
	// request with 401; the saved session token is stale or revoked.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrBadRequest is returned when the remote service rejects the payload
	// with 400/422. Replaying such an operation will keep failing until the
	// payload or the server changes; it stays queued regardless.
	ErrBadRequest = errors.New("request rejected by server")
)
