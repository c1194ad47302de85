// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the AskAI backend.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/askai-labs/askai-tui/internal/session"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// DefaultTimeout bounds a single request round trip.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize caps how much of a response body is read (10 MB).
	// PERFORMANCE: record lists can grow but a larger body than this
	// means something is wrong on the other end.
	MaxResponseSize = 10 * 1024 * 1024

	// DefaultCreateRateLimit is the default submissions-per-minute cap.
	DefaultCreateRateLimit = 30
)

// =============================================================================
// SHARED HTTP CLIENT
// =============================================================================

// PERFORMANCE: One pooled client for all requests. Connection reuse
// matters on the list-refresh path where three fetches fire at once.
var (
	sharedHTTPClient *http.Client
	clientOnce       sync.Once
)

func getHTTPClient(timeout time.Duration) *http.Client {
	clientOnce.Do(func() {
		transport := &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				// SECURITY: TLS 1.2 floor.
				MinVersion: tls.VersionTLS12,
			},
		}
		sharedHTTPClient = &http.Client{
			Timeout:   timeout,
			Transport: transport,
		}
	})
	return sharedHTTPClient
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the AskAI backend. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		// Clone so the shared pool keeps its own timeout.
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithHTTPClient substitutes the underlying HTTP client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithCreateRateLimit sets the submissions-per-minute cap.
func WithCreateRateLimit(perMinute int) Option {
	return func(c *Client) {
		if perMinute > 0 {
			c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
		}
	}
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    getHTTPClient(DefaultTimeout),
		limiter: rate.NewLimiter(rate.Every(time.Minute/DefaultCreateRateLimit), DefaultCreateRateLimit),
		logger:  log.New(log.Writer(), "[api] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// doJSON performs a request with an optional JSON body and decodes the
// JSON response into out (when out is non-nil). cred may be empty for
// unauthenticated endpoints. extra headers are merged in last.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, cred session.Credential, extra http.Header, body, out any) error {
	if c.baseURL == "" {
		return ErrNotConfigured
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cred != "" {
		req.Header.Set("Authorization", "Bearer "+string(cred))
	}
	for k, vs := range extra {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// SECURITY: log method+path only, never headers or bodies.
		c.logger.Printf("%s %s failed after %s: transport error", method, path, time.Since(start).Round(time.Millisecond))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Printf("%s %s -> %d (%s)", method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	data, err := readResponse(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// readResponse reads a body through the size cap.
func readResponse(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(data) > MaxResponseSize {
		return nil, ErrResponseTooLarge
	}
	return data, nil
}

// statusError maps an HTTP status to the sentinel error taxonomy,
// attaching the backend's detail message when one decodes.
func statusError(status int, body []byte) error {
	var base error
	switch {
	case status == http.StatusUnauthorized:
		base = ErrAuthFailed
	case status == http.StatusForbidden:
		base = ErrForbidden
	case status == http.StatusNotFound:
		base = ErrNotFound
	case status == http.StatusTooManyRequests:
		base = ErrRateLimited
	case status >= 500:
		base = ErrServer
	default:
		base = fmt.Errorf("api: unexpected status %d", status)
	}

	var detail struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &detail); err == nil {
		msg := detail.Detail
		if msg == "" {
			msg = detail.Message
		}
		if msg != "" {
			return fmt.Errorf("%w: %s", base, msg)
		}
	}
	return base
}
