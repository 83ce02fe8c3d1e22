// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ERCS Client Authors

package models

// SyncStatus is the transient four-state indicator surfaced to UI layers.
type SyncStatus string

const (
	// SyncIdle means no sync pass is running and none recently finished.
	SyncIdle SyncStatus = "idle"
	// SyncInProgress means a sync pass is draining the queue right now.
	SyncInProgress SyncStatus = "syncing"
	// SyncSuccess means the last pass completed cleanly. Decays to idle
	// after a short display delay.
	SyncSuccess SyncStatus = "success"
	// SyncError means the last pass failed. Decays to idle after a short
	// display delay.
	SyncError SyncStatus = "error"
)

// StatusSnapshot is the reactive status surface consumed by the TUI and the
// local HTTP facade: the live connectivity boolean plus the sync indicator.
type StatusSnapshot struct {
	IsOnline   bool       `json:"isOnline"`
	SyncStatus SyncStatus `json:"syncStatus"`
}
