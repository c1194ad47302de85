// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoIdentityClaims is returned when the token decodes but carries no
// usable identity.
var ErrNoIdentityClaims = errors.New("token carries no identity claims")

// DecodeIdentity extracts name, email and subject from a Google ID token
// without verifying the signature. Verification is the backend's job; the
// client only needs the claims for display and for stamping drafts, the
// same trust model the web frontend used.
func DecodeIdentity(rawToken string) (Identity, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(rawToken, claims); err != nil {
		return Identity{}, fmt.Errorf("failed to decode identity token: %w", err)
	}

	id := Identity{
		Name:    stringClaim(claims, "name"),
		Email:   stringClaim(claims, "email"),
		Subject: stringClaim(claims, "sub"),
	}
	if id.Email == "" && id.Subject == "" {
		return Identity{}, ErrNoIdentityClaims
	}
	return id, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
