// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the askai TUI:
// the color palette and a Theme of prebuilt lipgloss styles, profiled
// against the terminal's color capability via termenv.
package styles
