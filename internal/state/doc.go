// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package state holds the client's in-memory application state: the
// session, the three record stores, the three drafts and the filter
// range, with explicit begin/complete operations for the async
// lifecycles.
//
// The TUI and the CLI both drive this package; it knows nothing about
// either. I/O stays in internal/api and internal/export, which keeps the
// lifecycle rules testable without a terminal or a network.
//
// # Refresh generations
//
// Every refresh carries a per-kind generation number. A completion whose
// generation is older than the newest issued for that kind is discarded,
// so overlapping refreshes always converge on the most recent request's
// result regardless of response order.
//
// # Submit lifecycle
//
// BeginSubmit validates the draft (no network on failure), refuses a
// second in-flight submit of the same kind, and hands out the draft's
// idempotency key. CompleteSubmit resets the draft and rotates the key
// only on success; a failed draft stays intact for retry.
package state
