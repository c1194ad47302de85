// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the in-memory authentication state.
//
// # Key Types
//
//   - Holder: mutex-guarded session container with the
//     anonymous/authenticating/authenticated state machine
//   - Credential: the opaque bearer string (the Google ID token)
//   - Identity: name, email and subject of the signed-in user
//
// # Usage
//
//	holder := session.NewHolder()
//	if err := holder.BeginLogin(); err != nil { ... }
//	id, err := client.Login(ctx, token, botCheck)
//	if err != nil {
//	    holder.FailLogin()
//	} else {
//	    holder.CompleteLogin(session.Credential(token), id)
//	}
//
// Credentials live only in memory. Nothing in this package persists or
// logs them.
package session
