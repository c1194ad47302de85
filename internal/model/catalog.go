// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// MODEL CATALOGS
// =============================================================================

// Per-kind model choices offered by the forms. The backend passes the name
// through to its upstream, so these track what the service account has
// access to rather than any client capability. The built-ins below are
// defaults; SetCatalogs overrides them from the models.* config keys.

var (
	ChatModels  = []string{"gpt-4", "gpt-3.5-turbo"}
	ImageModels = []string{"dall-e-3", "dall-e-2"}
	VideoModels = []string{"sora"}
)

// SetCatalogs replaces the per-kind catalogs. Empty lists leave the
// current catalog in place so a partial config cannot strand a kind
// with no choices.
func SetCatalogs(chat, image, video []string) {
	if len(chat) > 0 {
		ChatModels = chat
	}
	if len(image) > 0 {
		ImageModels = image
	}
	if len(video) > 0 {
		VideoModels = video
	}
}

// DefaultModel returns the first catalog entry for a kind.
func DefaultModel(k Kind) string {
	models := Models(k)
	if len(models) == 0 {
		return ""
	}
	return models[0]
}

// Models returns the catalog for a kind.
func Models(k Kind) []string {
	switch k {
	case KindChat:
		return ChatModels
	case KindImage:
		return ImageModels
	case KindVideo:
		return VideoModels
	default:
		return nil
	}
}

// NextModel cycles to the following catalog entry, wrapping around.
// Unknown names restart at the catalog head.
func NextModel(k Kind, current string) string {
	models := Models(k)
	if len(models) == 0 {
		return current
	}
	for i, m := range models {
		if m == current {
			return models[(i+1)%len(models)]
		}
	}
	return models[0]
}
