// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - command parsing and dispatch for askai.

package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdHistory
	CmdExport
	CmdLogin
	CmdLogout
	CmdConfig
	CmdKey
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags.
	Quiet   bool
	Verbose bool
	Model   string

	// Command-specific.
	Query      string // ask: the question
	Kind       string // history: chats|images|videos
	From       string // history: start date bound
	To         string // history: end date bound
	Out        string // export: output directory override
	Subcommand string // config/key subcommand
	ConfigKey  string
	ConfigVal  string

	// Raw args remaining after flag parsing.
	Raw []string
}

const usageText = `askai - question and answer log for the AskAI backend

Askai keeps your chat, image, and video generations in one place. Sign
in with a Google ID token and browse, submit, filter, and export your
history from the terminal.

Usage:
  askai                        Start the TUI (default)
  askai ask "question"         Ask one question and print the answer
  askai ask                    Interactive REPL with input history
  askai history [kind]         Print records (kind: chats|images|videos)
    --from YYYY-MM-DD          Start date bound
    --to YYYY-MM-DD            End date bound
  askai export                 Export chats to semicolon CSV
    --out DIR                  Output directory (default: export.dir)
  askai login                  Verify and store a pasted ID token
  askai logout                 Forget the stored token
  askai config [show|get|set|list|path]
  askai key [set|clear]        Manage the upstream OpenAI API key
  askai version                Print version information
  askai help                   Show this help

Global Flags:
  -q, --quiet     Minimal output
  -v, --verbose   Debug output
  --model NAME    Override the default model for ask

Environment:
  ASKAI_TOKEN           Google ID token (skips the stored token)
  ASKAI_BOTCHECK_TOKEN  Bot-check proof for login
  ASKAI_BASE_URL        Backend base URL override
  ASKAI_OPENAI_KEY      Upstream API key override

Examples:
  askai ask "What is a bloom filter?"
  askai ask --model gpt-3.5-turbo "Summarize this"
  askai history images --from 2025-01-01
  askai export --out ~/exports
  askai config set refresh.policy all

Version: %s
`

// PrintUsage prints the usage text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("askai version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses os.Args and returns the command to run.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given arguments.
func ParseArgs(argv []string) (Command, Args) {
	remaining, args := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, args
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	args.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, args

	case "ask":
		parseAskArgs(&args, remaining)
		return CmdAsk, args

	case "history", "hist":
		parseHistoryArgs(&args, remaining)
		return CmdHistory, args

	case "export":
		p := NewArgParser(remaining)
		args.Out = p.Flag("out")
		return CmdExport, args

	case "login":
		return CmdLogin, args

	case "logout":
		return CmdLogout, args

	case "config", "cfg":
		parseConfigArgs(&args, remaining)
		return CmdConfig, args

	case "key":
		if len(remaining) > 0 {
			args.Subcommand = remaining[0]
		}
		return CmdKey, args

	case "version", "-v", "--version":
		return CmdVersion, args

	case "help", "-h", "--help":
		return CmdHelp, args

	default:
		// Unknown word: treat everything as a question for ask, which
		// keeps `askai what is X` working without quoting.
		args.Query = strings.Join(append([]string{cmd}, remaining...), " ")
		return CmdAsk, args
	}
}

// parseGlobalFlags extracts global flags and returns what is left.
func parseGlobalFlags(argv []string) ([]string, Args) {
	var remaining []string
	var args Args

	i := 0
	for i < len(argv) {
		arg := argv[i]
		switch {
		case arg == "-q" || arg == "--quiet":
			args.Quiet = true
		case arg == "-v" || arg == "--verbose":
			args.Verbose = true
		case arg == "--model":
			if i+1 < len(argv) {
				i++
				args.Model = argv[i]
			}
		case strings.HasPrefix(arg, "--model="):
			args.Model = strings.TrimPrefix(arg, "--model=")
		default:
			remaining = append(remaining, arg)
		}
		i++
	}
	return remaining, args
}

func parseAskArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	if m := p.Flag("model"); m != "" {
		args.Model = m
	}
	args.Query = strings.Join(p.PositionalFrom(0), " ")
}

func parseHistoryArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	args.Kind = p.FlagOrDefault("kind", p.Positional(0))
	args.From = p.Flag("from")
	args.To = p.Flag("to")
}

func parseConfigArgs(args *Args, remaining []string) {
	p := NewArgParser(remaining)
	args.Subcommand = p.Subcommand()
	args.ConfigKey = p.Positional(1)
	args.ConfigVal = p.Positional(2)
}
