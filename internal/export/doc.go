// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes the chat store to disk.
//
// The one shipping format is semicolon-delimited CSV: a fixed
// Created;Model;Question;Answer header, one line per chat in store
// order, question and answer always quoted with embedded quotes
// doubled, and a UTF-8 BOM up front so spreadsheet applications pick
// the right encoding. The Exporter interface keeps the door open for
// other formats without touching the callers.
//
// # Usage
//
//	path, err := export.ExportChats(store.Chats(), export.NewChatCSV(), &export.Options{
//	    OutputDir: cfg.Export.Dir,
//	})
//	if errors.Is(err, export.ErrNothingToExport) {
//	    // surface a notice, no file was created
//	}
//
// Files are written atomically (temp file + rename) with a
// date-stamped name, e.g. askai-chats-20250301-103000.csv.
package export
