// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the non-interactive command surface: one-shot
// questions, history listing, CSV export, and configuration management.
// Running the binary with no command starts the TUI instead.
package cli
