// askai - terminal client for the AskAI question/answer log.
//
// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/askai-labs/askai-tui/internal/cli"
	"github.com/askai-labs/askai-tui/internal/config"
	"github.com/askai-labs/askai-tui/internal/ui"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdTUI:
		err = runTUI()
	case cli.CmdAsk:
		err = cli.HandleAsk(args)
	case cli.CmdHistory:
		err = cli.HandleHistory(args)
	case cli.CmdExport:
		err = cli.HandleExport(args)
	case cli.CmdLogin:
		err = cli.HandleLogin(args)
	case cli.CmdLogout:
		err = cli.HandleLogout(args)
	case cli.CmdConfig:
		err = cli.HandleConfig(args)
	case cli.CmdKey:
		err = cli.HandleKey(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		cli.PrintUsage()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI starts the Bubble Tea program with a config watcher feeding
// reloads into the running model.
func runTUI() error {
	cfg := config.Global()
	app := ui.NewApp(cfg)

	program := tea.NewProgram(app, tea.WithAltScreen())

	if path, err := config.ConfigPathTOML(); err == nil {
		watcher, err := config.NewWatcher(path, func(*config.Config) {
			program.Send(ui.ConfigReloadedMsg{})
		})
		if err == nil {
			if err := watcher.Watch(); err == nil {
				defer watcher.Close()
			}
		}
	}

	_, err := program.Run()
	return err
}
