// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/askai-labs/askai-tui/internal/model"
)

// =============================================================================
// CSV EXPORTER
// =============================================================================

// csvHeader is the fixed first line of every chat export.
const csvHeader = "Created;Model;Question;Answer"

// createdLayout formats the Created column.
const createdLayout = "2006-01-02 15:04"

// ChatCSV exports chats as semicolon-delimited CSV. The question and
// answer columns are always quoted with embedded quotes doubled, since
// free text routinely carries semicolons and newlines. Model names come
// from a fixed catalog and are emitted bare. Output starts with the
// UTF-8 BOM so spreadsheet applications detect the encoding.
type ChatCSV struct{}

// NewChatCSV returns the CSV exporter.
func NewChatCSV() *ChatCSV {
	return &ChatCSV{}
}

// Export writes the header plus one line per chat in store order
// (newest first, as fetched).
func (e *ChatCSV) Export(w *bytes.Buffer, chats []model.Chat) error {
	enc := unicode.UTF8BOM.NewEncoder()
	out := enc.Writer(w)

	if _, err := out.Write([]byte(csvHeader + "\n")); err != nil {
		return err
	}
	for _, c := range chats {
		line := c.Date.Format(createdLayout) + ";" +
			c.Model + ";" +
			quoteField(c.Question) + ";" +
			quoteField(c.Answer) + "\n"
		if _, err := out.Write([]byte(line)); err != nil {
			return err
		}
	}
	return nil
}

// FileExtension returns ".csv".
func (e *ChatCSV) FileExtension() string { return ".csv" }

// MimeType returns the CSV MIME type.
func (e *ChatCSV) MimeType() string { return "text/csv; charset=utf-8" }

// quoteField wraps a free-text field in double quotes, doubling any
// embedded quotes. Always applied, not only when a delimiter is present,
// so the column shape is uniform.
func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
