// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "fmt"

// =============================================================================
// VALIDATION ERRORS
// =============================================================================

// FieldError reports a missing or invalid draft field by name so the UI
// can point at the offending input.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Video duration bounds, matching what the backend's upstream accepts.
const (
	MinVideoDuration = 1
	MaxVideoDuration = 10
)

// =============================================================================
// DRAFTS
// =============================================================================

// Drafts hold in-progress form state for one submission each. Email is the
// session owner's address, stamped on login and preserved across Reset.
// APIKey is the optional upstream key forwarded to the backend.

// ChatDraft is the pending chat submission.
type ChatDraft struct {
	Email    string
	Model    string
	Question string
	APIKey   string
}

// Validate reports the first missing required field.
func (d *ChatDraft) Validate() error {
	if d.Question == "" {
		return &FieldError{Field: "question", Reason: "required"}
	}
	return nil
}

// Reset clears the draft for the next submission, keeping the owner email.
func (d *ChatDraft) Reset() {
	d.Question = ""
}

// ImageDraft is the pending image submission.
type ImageDraft struct {
	Email       string
	Model       string
	Description string
	APIKey      string
}

func (d *ImageDraft) Validate() error {
	if d.Description == "" {
		return &FieldError{Field: "description", Reason: "required"}
	}
	return nil
}

func (d *ImageDraft) Reset() {
	d.Description = ""
}

// VideoDraft is the pending video submission. Duration is seconds and must
// stay within [MinVideoDuration, MaxVideoDuration].
type VideoDraft struct {
	Email    string
	Model    string
	Content  string
	Duration int
	APIKey   string
}

func (d *VideoDraft) Validate() error {
	if d.Content == "" {
		return &FieldError{Field: "content", Reason: "required"}
	}
	if d.Duration < MinVideoDuration || d.Duration > MaxVideoDuration {
		return &FieldError{
			Field:  "duration",
			Reason: fmt.Sprintf("must be between %d and %d seconds", MinVideoDuration, MaxVideoDuration),
		}
	}
	return nil
}

func (d *VideoDraft) Reset() {
	d.Content = ""
	d.Duration = 0
}
