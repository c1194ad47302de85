// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// configcmd.go - configuration inspection and editing.

package cli

import (
	"fmt"

	"github.com/askai-labs/askai-tui/internal/config"
)

// HandleConfig dispatches the config subcommands.
func HandleConfig(args Args) error {
	cfg := config.Global()

	switch args.Subcommand {
	case "", "show", "list":
		for _, key := range config.Keys() {
			value, err := cfg.Get(key)
			if err != nil {
				continue
			}
			// SECURITY: never print the stored API key.
			if key == "cli.openai_key" && value != "" {
				value = "(set)"
			}
			fmt.Printf("%-24s = %v\n", key, value)
		}
		return nil

	case "get":
		if args.ConfigKey == "" {
			return fmt.Errorf("usage: askai config get <key>")
		}
		value, err := cfg.Get(args.ConfigKey)
		if err != nil {
			return err
		}
		fmt.Printf("%v\n", value)
		return nil

	case "set":
		if args.ConfigKey == "" || args.ConfigVal == "" {
			return fmt.Errorf("usage: askai config set <key> <value>")
		}
		if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		if !args.Quiet {
			fmt.Printf("Set %s\n", args.ConfigKey)
		}
		return nil

	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil

	default:
		return fmt.Errorf("unknown config subcommand: %s (use show|get|set|list|path)", args.Subcommand)
	}
}
