// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askai-labs/askai-tui/internal/model"
)

func ts(t *testing.T, s string) model.Timestamp {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", s)
	require.NoError(t, err)
	return model.Timestamp{Time: parsed}
}

func TestChatCSVLineCount(t *testing.T) {
	chats := []model.Chat{
		{Model: "gpt-4", Question: "q1", Answer: "a1", Date: ts(t, "2025-03-01 10:30")},
		{Model: "gpt-4", Question: "q2", Answer: "a2", Date: ts(t, "2025-02-28 09:00")},
		{Model: "gpt-3.5-turbo", Question: "q3", Answer: "a3", Date: ts(t, "2025-02-27 08:00")},
	}

	var buf bytes.Buffer
	require.NoError(t, NewChatCSV().Export(&buf, chats))

	out := strings.TrimPrefix(buf.String(), "\ufeff")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header plus one line per chat.
	require.Len(t, lines, 1+len(chats))
	assert.Equal(t, "Created;Model;Question;Answer", lines[0])
	assert.Equal(t, `2025-03-01 10:30;gpt-4;"q1";"a1"`, lines[1])
}

func TestChatCSVStartsWithBOM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewChatCSV().Export(&buf, []model.Chat{
		{Model: "gpt-4", Question: "q", Answer: "a", Date: ts(t, "2025-03-01 10:30")},
	}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}), "missing UTF-8 BOM")
}

func TestChatCSVQuoteDoubling(t *testing.T) {
	chats := []model.Chat{{
		Model:    "gpt-4",
		Question: `what does "idempotent" mean; exactly?`,
		Answer:   `it means "safe to repeat"`,
		Date:     ts(t, "2025-03-01 10:30"),
	}}

	var buf bytes.Buffer
	require.NoError(t, NewChatCSV().Export(&buf, chats))

	out := strings.TrimPrefix(buf.String(), "\ufeff")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t,
		`2025-03-01 10:30;gpt-4;"what does ""idempotent"" mean; exactly?";"it means ""safe to repeat"""`,
		lines[1])
}

func TestExportChatsEmptyStore(t *testing.T) {
	dir := t.TempDir()
	_, err := ExportChats(nil, NewChatCSV(), &Options{OutputDir: dir})
	require.ErrorIs(t, err, ErrNothingToExport)

	// No file created.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportChatsWritesFile(t *testing.T) {
	dir := t.TempDir()
	fixed := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	opts := &Options{OutputDir: dir, Now: func() time.Time { return fixed }}

	chats := []model.Chat{
		{Model: "gpt-4", Question: "q", Answer: "a", Date: ts(t, "2025-03-01 10:30")},
	}
	path, err := ExportChats(chats, NewChatCSV(), opts)
	require.NoError(t, err)
	assert.Equal(t, dir+"/askai-chats-20250301-103000.csv", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Created;Model;Question;Answer")

	// Same instant overwrites instead of piling up.
	_, err = ExportChats(chats, NewChatCSV(), opts)
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "askai-chats-20251231-235959.csv", Filename(now, ".csv"))
}
