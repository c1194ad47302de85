// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the domain types shared by the client layers.
//
// # Key Types
//
//   - Kind: record collection identifier (chats, images, videos)
//   - Chat, Image, Video: records mirroring the backend rows
//   - ChatDraft, ImageDraft, VideoDraft: in-progress form state with
//     per-kind validation
//   - DateRange: inclusive date filter emitting start_date/end_date params
//   - Timestamp: time.Time wrapper tolerant of the server's naive datetimes
//
// # Usage
//
// Validate and reset a draft around a submission:
//
//	draft := model.ChatDraft{Email: owner, Model: model.DefaultModel(model.KindChat)}
//	draft.Question = "What is a goroutine?"
//	if err := draft.Validate(); err != nil {
//	    var fe *model.FieldError
//	    errors.As(err, &fe) // fe.Field names the input to highlight
//	}
//	draft.Reset() // clears the question, keeps the owner email
package model
