// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ERCS Client Authors

package models

import (
	"encoding/json"
	"time"
)

// OperationType tags a pending operation with the remote call it replays.
// The set is open: unknown tags are kept in the queue and logged, never
// dropped, so that a later release can register a handler for them.
type OperationType string

const (
	// OperationRegister replays a volunteer/member registration.
	OperationRegister OperationType = "register"
	// OperationCreateActivity replays an activity log entry.
	OperationCreateActivity OperationType = "createActivity"
	// OperationUpdateProfile replays a profile update.
	OperationUpdateProfile OperationType = "updateProfile"
	// OperationCreatePayment replays a payment submission.
	OperationCreatePayment OperationType = "createPayment"
)

// PendingOperation is a recorded intent to call the remote service, persisted
// until the call is confirmed successful and the row is compacted away.
//
// The payload in Data is opaque to the queue layer: it is stored and replayed
// verbatim, never inspected or validated here.
type PendingOperation struct {
	// ID is the auto-assigned primary key. IDs are never reused.
	ID int64 `json:"id"`
	// Type selects the handler that replays this operation.
	Type OperationType `json:"type"`
	// Data is the exact request body the remote call needs.
	Data json.RawMessage `json:"data"`
	// Timestamp is the creation time in milliseconds since epoch. Used for
	// ordering and eligible for age-based inspection.
	Timestamp int64 `json:"timestamp"`
	// Synced flips false→true exactly once, after the remote call succeeds.
	// A synced operation is never replayed and may be deleted at any time.
	Synced bool `json:"synced"`
}

// CreatedAt converts the millisecond timestamp into a time.Time.
func (p PendingOperation) CreatedAt() time.Time {
	return time.UnixMilli(p.Timestamp)
}

// OperationFilter narrows List queries over the pending-operation queue.
// Nil fields mean "no constraint".
type OperationFilter struct {
	Type   *OperationType
	Synced *bool
}
