// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/askai-labs/askai-tui/internal/session"
)

// =============================================================================
// LOGIN EXCHANGE
// =============================================================================

// loginRequest mirrors the backend's verify-login body.
type loginRequest struct {
	GoogleToken    string `json:"google_token"`
	RecaptchaToken string `json:"recaptcha_token"`
}

// loginResponse mirrors the backend's verify-login reply.
type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

// Login exchanges the identity token and bot-check proof for a verified
// identity. The bot-check proof is mandatory: an empty one fails locally
// before any network I/O. HTTP 200 alone is not success, the body must
// also say success, matching the backend contract.
func (c *Client) Login(ctx context.Context, identityToken, botCheckToken string) (session.Identity, error) {
	if botCheckToken == "" {
		return session.Identity{}, ErrBotCheckRequired
	}
	if identityToken == "" {
		return session.Identity{}, fmt.Errorf("%w: empty identity token", ErrAuthFailed)
	}

	var resp loginResponse
	err := c.doJSON(ctx, http.MethodPost, "/verify-login", nil, "", nil, loginRequest{
		GoogleToken:    identityToken,
		RecaptchaToken: botCheckToken,
	}, &resp)
	if err != nil {
		return session.Identity{}, err
	}

	if !resp.Success {
		if resp.Message != "" {
			return session.Identity{}, fmt.Errorf("%w: %s", ErrBotCheckRejected, resp.Message)
		}
		return session.Identity{}, ErrBotCheckRejected
	}

	id := session.Identity{Name: resp.User.Name, Email: resp.User.Email}
	if id.Email == "" {
		// Older backend builds omit the user object, fall back to the
		// token's own claims.
		if decoded, derr := session.DecodeIdentity(identityToken); derr == nil {
			id = decoded
		}
	}
	return id, nil
}
