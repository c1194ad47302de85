// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"github.com/askai-labs/askai-tui/internal/model"
	"github.com/askai-labs/askai-tui/internal/session"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// Async results come back as typed messages. Fetch completions carry the
// generation handed out by the state store so stale responses can be
// discarded on arrival.

// LoginResultMsg reports the login exchange outcome.
type LoginResultMsg struct {
	Credential session.Credential
	Identity   session.Identity
	Err        error
}

// ChatsFetchedMsg delivers a chat refresh result.
type ChatsFetchedMsg struct {
	Gen     uint64
	Records []model.Chat
	Err     error
}

// ImagesFetchedMsg delivers an image refresh result.
type ImagesFetchedMsg struct {
	Gen     uint64
	Records []model.Image
	Err     error
}

// VideosFetchedMsg delivers a video refresh result.
type VideosFetchedMsg struct {
	Gen     uint64
	Records []model.Video
	Err     error
}

// SubmitResultMsg reports a record submission outcome.
type SubmitResultMsg struct {
	Kind model.Kind
	Err  error
}

// ExportResultMsg reports a CSV export outcome.
type ExportResultMsg struct {
	Path string
	Err  error
}

// ConfigReloadedMsg announces a config file change picked up by the
// watcher.
type ConfigReloadedMsg struct{}
