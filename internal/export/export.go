// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes the chat store to disk in spreadsheet-friendly
// formats.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/askai-labs/askai-tui/internal/model"
	"github.com/askai-labs/askai-tui/internal/util"
)

// ErrNothingToExport is returned when the chat store is empty. Callers
// surface a notice and create no file.
var ErrNothingToExport = errors.New("nothing to export")

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter converts the chat store to one output format.
type Exporter interface {
	// Export writes the formatted chats to w.
	Export(w *bytes.Buffer, chats []model.Chat) error

	// FileExtension returns the file extension (e.g. ".csv").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files are written.
	// Default: current working directory.
	OutputDir string

	// Now supplies the timestamp for the filename (tests pin it).
	// Default: time.Now.
	Now func() time.Time
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir: ".",
		Now:       time.Now,
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportChats writes the chat store through the exporter and returns the
// output path. An empty store yields ErrNothingToExport and no file.
func ExportChats(chats []model.Chat, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	if len(chats) == 0 {
		return "", ErrNothingToExport
	}

	var buf bytes.Buffer
	if err := exporter.Export(&buf, chats); err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	outputPath := filepath.Join(opts.OutputDir, Filename(now(), exporter.FileExtension()))
	if err := util.AtomicWriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return outputPath, nil
}

// Filename returns the date-stamped export filename, stable for a given
// instant so repeated exports in the same second overwrite rather than
// pile up.
func Filename(now time.Time, ext string) string {
	return "askai-chats-" + now.Format("20060102-150405") + ext
}
