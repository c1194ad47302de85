// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable UI components for the askai TUI:
// non-blocking toast notifications and chroma-backed code block
// highlighting for chat answers.
package components
