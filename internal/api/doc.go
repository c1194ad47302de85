// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the AskAI backend.
//
// All requests share one pooled http.Client with a TLS 1.2 floor and a
// 30 second timeout. Response bodies are read through a 10 MB cap.
// Status codes map onto a sentinel error taxonomy (ErrAuthFailed,
// ErrForbidden, ErrRateLimited, ErrServer, ...) so callers branch with
// errors.Is rather than string matching.
//
// # Endpoints
//
//   - Login: POST /verify-login, identity token plus bot-check proof
//   - ListChats/ListImages/ListVideos: GET with bearer credential and
//     optional start_date/end_date bounds
//   - CreateChat/CreateImage/CreateVideo: POST with flat JSON bodies
//     and a client-generated idempotency key
//
// Create calls pass through a token-bucket rate limiter.
//
// SECURITY: request logging records method, path, status and duration
// only. Tokens, headers and bodies are never logged.
package api
