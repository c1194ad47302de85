// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// export.go - chat history CSV export from the command line.

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/askai-labs/askai-tui/internal/config"
	"github.com/askai-labs/askai-tui/internal/export"
	"github.com/askai-labs/askai-tui/internal/model"
)

// HandleExport fetches the full chat history and writes it as CSV.
func HandleExport(args Args) error {
	cfg := config.Global()

	cred, _, err := resolveCredential()
	if err != nil {
		return err
	}

	client := newClient(cfg)
	chats, err := client.ListChats(context.Background(), cred, model.DateRange{})
	if err != nil {
		return fmt.Errorf("failed to fetch chats: %w", err)
	}

	dir := args.Out
	if dir == "" {
		dir = cfg.Export.Dir
	}

	path, err := export.ExportChats(chats, export.NewChatCSV(), &export.Options{OutputDir: dir})
	if err != nil {
		if errors.Is(err, export.ErrNothingToExport) {
			fmt.Println("Nothing to export.")
			return nil
		}
		return err
	}

	if !args.Quiet {
		fmt.Printf("Exported %d chats to %s\n", len(chats), path)
	}
	return nil
}
