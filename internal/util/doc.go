// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across the askai-tui packages.
//
// String helpers are rune- and width-aware (go-runewidth) so truncation is
// safe for CJK and emoji content. AtomicWriteFile writes crash-safely with
// fsync and rename, used for exports and config saves.
package util
