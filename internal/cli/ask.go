// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - one-shot question and interactive REPL.
//
// USABILITY: Markdown rendering on TTYs and readline-style history in
// the REPL.

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"github.com/peterh/liner"

	"github.com/askai-labs/askai-tui/internal/api"
	"github.com/askai-labs/askai-tui/internal/config"
	"github.com/askai-labs/askai-tui/internal/model"
	"github.com/askai-labs/askai-tui/internal/session"
)

const replHistoryFile = "cli_history"

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Plain text fallback when the renderer cannot initialize.
		markdownRenderer = nil
	}
}

// renderAnswer formats an answer for display. Markdown rendering only
// happens on a TTY with cli.render_markdown enabled; piped output stays
// untouched.
func renderAnswer(cfg *config.Config, answer string) string {
	if !cfg.CLI.RenderMarkdown || !IsStdoutTTY() || markdownRenderer == nil {
		return answer
	}
	rendered, err := markdownRenderer.Render(answer)
	if err != nil {
		return answer
	}
	return rendered
}

// =============================================================================
// ASK HANDLER
// =============================================================================

// HandleAsk submits a single question, or starts the REPL when no
// question was given on the command line or stdin.
func HandleAsk(args Args) error {
	cfg := config.Global()
	model.SetCatalogs(cfg.Models.Chat, cfg.Models.Image, cfg.Models.Video)

	cred, id, err := resolveCredential()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	question := args.Query

	// Piped stdin becomes the question when none was passed.
	if question == "" {
		if stat, _ := os.Stdin.Stat(); stat != nil && (stat.Mode()&os.ModeCharDevice) == 0 {
			data, err := io.ReadAll(bufio.NewReader(os.Stdin))
			if err == nil && len(data) > 0 {
				question = strings.TrimSpace(string(data))
			}
		}
	}

	modelName := args.Model
	if modelName == "" {
		modelName = model.DefaultModel(model.KindChat)
	}

	if question != "" {
		return askOnce(cfg, client, cred, id, modelName, question, args)
	}
	return runREPL(cfg, client, cred, id, modelName, args)
}

// askOnce submits one question and prints the answer.
func askOnce(cfg *config.Config, client *api.Client, cred session.Credential, id session.Identity, modelName, question string, args Args) error {
	draft := model.ChatDraft{
		Email:    id.Email,
		Model:    modelName,
		Question: question,
		APIKey:   cfg.CLI.OpenAIKey,
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	if !args.Quiet {
		fmt.Fprintf(os.Stderr, "Asking %s...\n", modelName)
	}

	start := time.Now()
	chat, err := client.CreateChat(context.Background(), cred, draft, uuid.NewString())
	if err != nil {
		return fmt.Errorf("submit failed: %w", err)
	}

	fmt.Print(renderAnswer(cfg, chat.Answer))
	if !strings.HasSuffix(chat.Answer, "\n") {
		fmt.Println()
	}

	if args.Verbose {
		fmt.Fprintf(os.Stderr, "Answered in %s\n", time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// =============================================================================
// REPL
// =============================================================================

// replInput wraps liner with persistent history.
type replInput struct {
	line        *liner.State
	historyFile string
}

func newREPLInput() *replInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	r := &replInput{line: line}
	if dir, err := config.ConfigDir(); err == nil {
		r.historyFile = filepath.Join(dir, replHistoryFile)
		if f, err := os.Open(r.historyFile); err == nil {
			r.line.ReadHistory(f)
			f.Close()
		}
	}
	return r
}

func (r *replInput) read(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

func (r *replInput) close() {
	if r.historyFile != "" {
		if f, err := os.Create(r.historyFile); err == nil {
			r.line.WriteHistory(f)
			f.Close()
			os.Chmod(r.historyFile, 0600)
		}
	}
	r.line.Close()
}

// runREPL reads questions until EOF or an exit command.
func runREPL(cfg *config.Config, client *api.Client, cred session.Credential, id session.Identity, modelName string, args Args) error {
	input := newREPLInput()
	defer input.close()

	if !args.Quiet {
		fmt.Printf("askai REPL (%s, model %s). Type 'exit' to quit.\n", id.Email, modelName)
	}

	for {
		q, err := input.read("askai> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println()
				return nil
			}
			return fmt.Errorf("input failed: %w", err)
		}

		q = strings.TrimSpace(q)
		switch q {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		if err := askOnce(cfg, client, cred, id, modelName, q, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}
