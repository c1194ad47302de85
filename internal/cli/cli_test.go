// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"
)

func TestParseArgsCommands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"no args launches tui", nil, CmdTUI},
		{"explicit tui", []string{"tui"}, CmdTUI},
		{"ask", []string{"ask", "hello"}, CmdAsk},
		{"history", []string{"history"}, CmdHistory},
		{"history alias", []string{"hist", "images"}, CmdHistory},
		{"export", []string{"export"}, CmdExport},
		{"login", []string{"login"}, CmdLogin},
		{"logout", []string{"logout"}, CmdLogout},
		{"config", []string{"config", "show"}, CmdConfig},
		{"key", []string{"key", "set"}, CmdKey},
		{"version", []string{"version"}, CmdVersion},
		{"version flag", []string{"--version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"bare words become a question", []string{"what", "is", "go"}, CmdAsk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ParseArgs(tt.argv)
			if got != tt.want {
				t.Errorf("ParseArgs(%v) = %v, want %v", tt.argv, got, tt.want)
			}
		})
	}
}

func TestParseArgsAskQuery(t *testing.T) {
	_, args := ParseArgs([]string{"ask", "what", "is", "a", "monad"})
	if args.Query != "what is a monad" {
		t.Errorf("Query = %q", args.Query)
	}

	_, args = ParseArgs([]string{"ask", "--model", "gpt-3.5-turbo", "hello"})
	if args.Model != "gpt-3.5-turbo" {
		t.Errorf("Model = %q", args.Model)
	}
	if args.Query != "hello" {
		t.Errorf("Query = %q", args.Query)
	}

	// Bare words without the ask keyword still make a question.
	_, args = ParseArgs([]string{"why", "is", "the", "sky", "blue"})
	if args.Query != "why is the sky blue" {
		t.Errorf("Query = %q", args.Query)
	}
}

func TestParseArgsHistoryFlags(t *testing.T) {
	_, args := ParseArgs([]string{"history", "videos", "--from", "2025-01-01", "--to=2025-02-01"})
	if args.Kind != "videos" {
		t.Errorf("Kind = %q", args.Kind)
	}
	if args.From != "2025-01-01" {
		t.Errorf("From = %q", args.From)
	}
	if args.To != "2025-02-01" {
		t.Errorf("To = %q", args.To)
	}
}

func TestParseArgsGlobalFlags(t *testing.T) {
	cmd, args := ParseArgs([]string{"-q", "--model=gpt-4", "export", "--out", "/tmp/x"})
	if cmd != CmdExport {
		t.Fatalf("cmd = %v", cmd)
	}
	if !args.Quiet {
		t.Error("Quiet not set")
	}
	if args.Model != "gpt-4" {
		t.Errorf("Model = %q", args.Model)
	}
	if args.Out != "/tmp/x" {
		t.Errorf("Out = %q", args.Out)
	}
}

func TestParseArgsConfig(t *testing.T) {
	_, args := ParseArgs([]string{"config", "set", "refresh.policy", "all"})
	if args.Subcommand != "set" {
		t.Errorf("Subcommand = %q", args.Subcommand)
	}
	if args.ConfigKey != "refresh.policy" {
		t.Errorf("ConfigKey = %q", args.ConfigKey)
	}
	if args.ConfigVal != "all" {
		t.Errorf("ConfigVal = %q", args.ConfigVal)
	}
}

func TestArgParserFormats(t *testing.T) {
	p := NewArgParser([]string{"show", "--lines", "50", "--since=2025-01-01", "--json", "extra"})

	if p.Subcommand() != "show" {
		t.Errorf("Subcommand = %q", p.Subcommand())
	}
	if p.Flag("lines") != "50" {
		t.Errorf("Flag(lines) = %q", p.Flag("lines"))
	}
	if p.Flag("since") != "2025-01-01" {
		t.Errorf("Flag(since) = %q", p.Flag("since"))
	}
	if !p.BoolFlag("json") {
		t.Error("BoolFlag(json) = false")
	}
	if p.Positional(1) != "extra" {
		t.Errorf("Positional(1) = %q", p.Positional(1))
	}
	if p.FlagOrDefault("missing", "fallback") != "fallback" {
		t.Error("FlagOrDefault did not fall back")
	}
	if p.HasFlag("nope") {
		t.Error("HasFlag(nope) = true")
	}
}

func TestArgParserExplicitBool(t *testing.T) {
	p := NewArgParser([]string{"--render=false", "--color=true"})
	if p.BoolFlag("render") {
		t.Error("render should be false")
	}
	if !p.BoolFlag("color") {
		t.Error("color should be true")
	}
}
