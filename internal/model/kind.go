// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "fmt"

// =============================================================================
// RECORD KINDS
// =============================================================================

// Kind identifies one of the three record collections the backend serves.
type Kind int

const (
	KindChat Kind = iota
	KindImage
	KindVideo
)

// AllKinds lists every record kind in tab order.
var AllKinds = []Kind{KindChat, KindImage, KindVideo}

// String returns the lowercase plural name used in API paths and the CLI.
func (k Kind) String() string {
	switch k {
	case KindChat:
		return "chats"
	case KindImage:
		return "images"
	case KindVideo:
		return "videos"
	default:
		return "unknown"
	}
}

// Title returns the capitalized name used for tab labels.
func (k Kind) Title() string {
	switch k {
	case KindChat:
		return "Chats"
	case KindImage:
		return "Images"
	case KindVideo:
		return "Videos"
	default:
		return "Unknown"
	}
}

// ParseKind maps a user-supplied name to a Kind. Accepts singular and
// plural forms.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "chat", "chats":
		return KindChat, nil
	case "image", "images":
		return KindImage, nil
	case "video", "videos":
		return KindVideo, nil
	default:
		return 0, fmt.Errorf("unknown record kind %q (want chats, images or videos)", s)
	}
}
