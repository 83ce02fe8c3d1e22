// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ERCS Client Authors

// Package adapter provides transport-layer abstractions for communicating
// with the remote volunteer-management REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/kirubhel/redcross-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the remote
// service. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// The four replay methods (Register, CreateActivity, UpdateProfile,
// CreatePayment) take the queued payload verbatim: the adapter never
// inspects or validates it, matching the queue's opaque-payload contract.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful Login and after a
	// session restore.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates with the remote service and returns the issued
	// bearer token. On success the token is also stored via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// Ping checks remote reachability via the health endpoint. A nil return
	// means the service answered; any error means it is unreachable or
	// unhealthy.
	Ping(ctx context.Context) error

	// Register replays a queued registration payload.
	Register(ctx context.Context, data json.RawMessage) error

	// CreateActivity replays a queued activity-log payload.
	CreateActivity(ctx context.Context, data json.RawMessage) error

	// UpdateProfile replays a queued profile-update payload.
	UpdateProfile(ctx context.Context, data json.RawMessage) error

	// CreatePayment replays a queued payment payload.
	CreatePayment(ctx context.Context, data json.RawMessage) error
}
