// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/askai-labs/askai-tui/internal/model"
	"github.com/askai-labs/askai-tui/internal/session"
)

// =============================================================================
// RECORD FETCHES
// =============================================================================

// Collection paths. Trailing slash matters to the backend router.
const (
	pathChats  = "/chats/"
	pathImages = "/images/"
	pathVideos = "/videos/"
)

// ListChats fetches the caller's chats, newest first, bounded by the
// range. Unset bounds emit no query parameter.
func (c *Client) ListChats(ctx context.Context, cred session.Credential, r model.DateRange) ([]model.Chat, error) {
	var out []model.Chat
	if err := c.doJSON(ctx, http.MethodGet, pathChats, r.Query(), cred, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListImages fetches the caller's image records, newest first.
func (c *Client) ListImages(ctx context.Context, cred session.Credential, r model.DateRange) ([]model.Image, error) {
	var out []model.Image
	if err := c.doJSON(ctx, http.MethodGet, pathImages, r.Query(), cred, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListVideos fetches the caller's video records, newest first.
func (c *Client) ListVideos(ctx context.Context, cred session.Credential, r model.DateRange) ([]model.Video, error) {
	var out []model.Video
	if err := c.doJSON(ctx, http.MethodGet, pathVideos, r.Query(), cred, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
