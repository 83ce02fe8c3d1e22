// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ERCS Client Authors

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services, the local HTTP facade, and the
// background workers into a single process lifecycle.
package client
