// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// key.go - upstream OpenAI API key management.
//
// SECURITY: the key is read with echo off and never printed back.

package cli

import (
	"errors"
	"fmt"

	"github.com/askai-labs/askai-tui/internal/config"
)

// HandleKey sets or clears the upstream API key in the config file.
func HandleKey(args Args) error {
	cfg := config.Global()

	switch args.Subcommand {
	case "", "set":
		key, err := promptMasked("OpenAI API key")
		if err != nil {
			return err
		}
		if key == "" {
			return errors.New("no key provided")
		}
		cfg.CLI.OpenAIKey = key
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		if !args.Quiet {
			fmt.Println("API key stored.")
		}
		return nil

	case "clear":
		cfg.CLI.OpenAIKey = ""
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		if !args.Quiet {
			fmt.Println("API key cleared.")
		}
		return nil

	case "status":
		if cfg.CLI.OpenAIKey == "" {
			fmt.Println("No API key stored.")
		} else {
			fmt.Println("API key is set.")
		}
		return nil

	default:
		return fmt.Errorf("unknown key subcommand: %s (use set|clear|status)", args.Subcommand)
	}
}
