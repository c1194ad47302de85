// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading for askai-tui.
//
// Supports TOML and JSON formats with sensible defaults, environment
// variable overrides and validation.
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (ASKAI_*)
//   - ~/.config/askai/config.toml
//   - ~/.config/askai/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Access settings:
//
//	base := cfg.API.BaseURL
//	policy := cfg.Refresh.Policy
//
// A Watcher (fsnotify) reloads the file when it changes on disk, which
// the TUI uses to pick up edits without a restart. Config files are
// saved with 0600 permissions since they may carry the upstream API key.
package config
