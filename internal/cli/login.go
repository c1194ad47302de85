// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// login.go - CLI credential handling.
//
// The client embeds no OAuth flow. Tokens are obtained out of band and
// either exported as ASKAI_TOKEN or pasted once into `askai login`,
// which verifies them against the backend and stores them in a 0600
// file next to the config.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/askai-labs/askai-tui/internal/api"
	"github.com/askai-labs/askai-tui/internal/config"
	"github.com/askai-labs/askai-tui/internal/session"
	"github.com/askai-labs/askai-tui/internal/util"
)

const (
	// EnvToken supplies the Google ID token without a stored file.
	EnvToken = "ASKAI_TOKEN"

	// EnvBotCheckToken supplies the bot-check proof for login.
	EnvBotCheckToken = "ASKAI_BOTCHECK_TOKEN"

	tokenFileName = "token"
)

// ErrNotLoggedIn means no credential could be resolved.
var ErrNotLoggedIn = errors.New("not logged in, run `askai login` or set " + EnvToken)

func tokenPath() (string, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, tokenFileName), nil
}

// resolveCredential finds the active credential: the environment wins,
// then the stored token file. The identity is decoded locally from the
// token's claims.
func resolveCredential() (session.Credential, session.Identity, error) {
	token := strings.TrimSpace(os.Getenv(EnvToken))

	if token == "" {
		path, err := tokenPath()
		if err != nil {
			return "", session.Identity{}, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", session.Identity{}, ErrNotLoggedIn
			}
			return "", session.Identity{}, fmt.Errorf("failed to read token: %w", err)
		}
		token = strings.TrimSpace(string(data))
	}

	if token == "" {
		return "", session.Identity{}, ErrNotLoggedIn
	}

	id, err := session.DecodeIdentity(token)
	if err != nil {
		return "", session.Identity{}, fmt.Errorf("stored token is not usable: %w", err)
	}
	return session.Credential(token), id, nil
}

// newClient builds an API client from the global config.
func newClient(cfg *config.Config) *api.Client {
	return api.New(cfg.API.BaseURL,
		api.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
		api.WithCreateRateLimit(cfg.API.RateLimitPerMin),
	)
}

// HandleLogin verifies a pasted token pair and stores the ID token.
func HandleLogin(args Args) error {
	cfg := config.Global()

	token := strings.TrimSpace(os.Getenv(EnvToken))
	if token == "" {
		var err error
		token, err = promptMasked("Google ID token")
		if err != nil {
			return err
		}
	}
	if token == "" {
		return errors.New("no token provided")
	}

	botCheck := strings.TrimSpace(os.Getenv(EnvBotCheckToken))
	if botCheck == "" {
		var err error
		botCheck, err = promptMasked("Bot-check token")
		if err != nil {
			return err
		}
	}

	client := newClient(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	id, err := client.Login(ctx, token, botCheck)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	if !args.Quiet {
		fmt.Printf("Logged in as %s <%s>\n", id.Name, id.Email)
		fmt.Println("Note: ID tokens expire; log in again when requests start failing.")
	}
	return nil
}

// HandleLogout removes the stored token. The environment variable, if
// set, is out of reach and stays authoritative.
func HandleLogout(args Args) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			if !args.Quiet {
				fmt.Println("No stored token.")
			}
			return nil
		}
		return fmt.Errorf("failed to remove token: %w", err)
	}
	if !args.Quiet {
		fmt.Println("Logged out.")
	}
	if os.Getenv(EnvToken) != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s is still set in the environment.\n", EnvToken)
	}
	return nil
}
