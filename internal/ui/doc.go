// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui implements the Bubble Tea terminal interface.
//
// The App root model owns the API client, the state store, and the view
// router. Sub-models (login, browse, the per-kind forms) never touch the
// network themselves; they return intents and the App translates those
// into commands. Async results come back as the typed messages in
// msgs.go, each fetch carrying the generation that lets stale responses
// be dropped on arrival.
package ui
