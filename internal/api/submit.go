// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/askai-labs/askai-tui/internal/model"
	"github.com/askai-labs/askai-tui/internal/session"
)

// =============================================================================
// RECORD SUBMISSION
// =============================================================================

// idempotencyHeader lets the backend drop duplicate submissions. The key
// is client-generated per draft and rotated only after a success.
const idempotencyHeader = "X-Idempotency-Key"

// Flat wire bodies matching the backend schemas. The upstream API key
// rides along so the server can bill the caller's own account.

type chatSubmission struct {
	Email    string `json:"email"`
	Model    string `json:"model"`
	Question string `json:"question"`
	APIKey   string `json:"openaiapi_key"`
}

type imageSubmission struct {
	Email       string `json:"email"`
	Model       string `json:"model"`
	Description string `json:"description"`
	APIKey      string `json:"openaiapi_key"`
}

type videoSubmission struct {
	Email    string `json:"email"`
	Model    string `json:"model"`
	Duration string `json:"duration"`
	Content  string `json:"content"`
	APIKey   string `json:"openaiapi_key"`
}

// waitCreate applies the submissions rate limit before a create call.
func (c *Client) waitCreate(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return nil
}

// CreateChat submits a chat draft and returns the stored record with the
// generated answer. The draft must already be validated.
func (c *Client) CreateChat(ctx context.Context, cred session.Credential, d model.ChatDraft, idemKey string) (model.Chat, error) {
	if err := c.waitCreate(ctx); err != nil {
		return model.Chat{}, err
	}
	body := chatSubmission{Email: d.Email, Model: d.Model, Question: d.Question, APIKey: d.APIKey}
	var out model.Chat
	if err := c.doJSON(ctx, http.MethodPost, pathChats, nil, cred, idemHeader(idemKey), body, &out); err != nil {
		return model.Chat{}, err
	}
	return out, nil
}

// CreateImage submits an image draft and returns the stored record with
// the generated artifact URL.
func (c *Client) CreateImage(ctx context.Context, cred session.Credential, d model.ImageDraft, idemKey string) (model.Image, error) {
	if err := c.waitCreate(ctx); err != nil {
		return model.Image{}, err
	}
	body := imageSubmission{Email: d.Email, Model: d.Model, Description: d.Description, APIKey: d.APIKey}
	var out model.Image
	if err := c.doJSON(ctx, http.MethodPost, pathImages, nil, cred, idemHeader(idemKey), body, &out); err != nil {
		return model.Image{}, err
	}
	return out, nil
}

// CreateVideo submits a video draft. Duration goes over the wire as a
// decimal string, the backend schema wants it that way.
func (c *Client) CreateVideo(ctx context.Context, cred session.Credential, d model.VideoDraft, idemKey string) (model.Video, error) {
	if err := c.waitCreate(ctx); err != nil {
		return model.Video{}, err
	}
	body := videoSubmission{
		Email:    d.Email,
		Model:    d.Model,
		Duration: strconv.Itoa(d.Duration),
		Content:  d.Content,
		APIKey:   d.APIKey,
	}
	var out model.Video
	if err := c.doJSON(ctx, http.MethodPost, pathVideos, nil, cred, idemHeader(idemKey), body, &out); err != nil {
		return model.Video{}, err
	}
	return out, nil
}

func idemHeader(key string) http.Header {
	if key == "" {
		return nil
	}
	return http.Header{idempotencyHeader: []string{key}}
}
