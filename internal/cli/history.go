// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// history.go - print stored records to stdout.

package cli

import (
	"context"
	"fmt"

	"github.com/askai-labs/askai-tui/internal/config"
	"github.com/askai-labs/askai-tui/internal/model"
)

const historyTimeLayout = "2006-01-02 15:04"

// HandleHistory fetches one kind of records and prints them, newest
// first as the backend returns them.
func HandleHistory(args Args) error {
	cfg := config.Global()

	cred, _, err := resolveCredential()
	if err != nil {
		return err
	}

	kind := model.KindChat
	if args.Kind != "" {
		kind, err = model.ParseKind(args.Kind)
		if err != nil {
			return err
		}
	}

	r := model.DateRange{Start: args.From, End: args.To}
	if err := r.Validate(); err != nil {
		return err
	}

	client := newClient(cfg)
	ctx := context.Background()

	switch kind {
	case model.KindChat:
		chats, err := client.ListChats(ctx, cred, r)
		if err != nil {
			return err
		}
		if len(chats) == 0 {
			fmt.Println("No chats in range.")
			return nil
		}
		for _, c := range chats {
			fmt.Printf("[%s] %s\n", c.Date.Format(historyTimeLayout), c.Model)
			fmt.Printf("Q: %s\n", c.Question)
			fmt.Printf("A: %s\n\n", c.Answer)
		}

	case model.KindImage:
		images, err := client.ListImages(ctx, cred, r)
		if err != nil {
			return err
		}
		if len(images) == 0 {
			fmt.Println("No images in range.")
			return nil
		}
		for _, img := range images {
			fmt.Printf("[%s] %s\n", img.Date.Format(historyTimeLayout), img.Model)
			fmt.Printf("%s\n%s\n\n", img.Description, img.ImageURL)
		}

	case model.KindVideo:
		videos, err := client.ListVideos(ctx, cred, r)
		if err != nil {
			return err
		}
		if len(videos) == 0 {
			fmt.Println("No videos in range.")
			return nil
		}
		for _, v := range videos {
			fmt.Printf("[%s] %s\n", v.Date.Format(historyTimeLayout), v.Model)
			fmt.Printf("%s\n%s\n\n", v.Content, v.VideoURL)
		}
	}
	return nil
}
