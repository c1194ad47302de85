// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			"rfc3339",
			`"2025-03-01T10:30:00Z"`,
			time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			"naive server datetime",
			`"2025-03-01T10:30:00"`,
			time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			"naive with microseconds",
			`"2025-03-01T10:30:00.123456"`,
			time.Date(2025, 3, 1, 10, 30, 0, 123456000, time.UTC),
		},
		{
			"null",
			`null`,
			time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tt.input), &ts); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.input, err)
			}
			if !ts.Time.Equal(tt.want) {
				t.Errorf("got %v, want %v", ts.Time, tt.want)
			}
		})
	}

	var ts Timestamp
	if err := json.Unmarshal([]byte(`"not a date"`), &ts); err == nil {
		t.Error("expected error for garbage timestamp")
	}
}

func TestChatRecordDecode(t *testing.T) {
	raw := `{"id":7,"email":"a@b.c","model":"gpt-4","question":"hi","answer":"hello","date":"2025-03-01T10:30:00"}`
	var c Chat
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if c.ID != 7 || c.Email != "a@b.c" || c.Question != "hi" || c.Answer != "hello" {
		t.Errorf("unexpected chat: %+v", c)
	}
}

func TestVideoRecordToleratesMissingDuration(t *testing.T) {
	// The backend stores no duration column, fetched videos never carry one.
	raw := `{"id":1,"email":"a@b.c","model":"sora","content":"waves","video":"https://bucket/v.mp4","date":"2025-03-01T10:30:00"}`
	var v Video
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.VideoURL != "https://bucket/v.mp4" {
		t.Errorf("VideoURL = %q", v.VideoURL)
	}
}

func TestDraftValidation(t *testing.T) {
	tests := []struct {
		name      string
		draft     interface{ Validate() error }
		wantField string
	}{
		{"chat missing question", &ChatDraft{Model: "gpt-4"}, "question"},
		{"chat ok", &ChatDraft{Model: "gpt-4", Question: "q"}, ""},
		{"image missing description", &ImageDraft{Model: "dall-e-3"}, "description"},
		{"image ok", &ImageDraft{Model: "dall-e-3", Description: "d"}, ""},
		{"video missing content", &VideoDraft{Model: "sora", Duration: 5}, "content"},
		{"video duration zero", &VideoDraft{Model: "sora", Content: "c"}, "duration"},
		{"video duration too long", &VideoDraft{Model: "sora", Content: "c", Duration: 11}, "duration"},
		{"video at lower bound", &VideoDraft{Model: "sora", Content: "c", Duration: 1}, ""},
		{"video at upper bound", &VideoDraft{Model: "sora", Content: "c", Duration: 10}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("Validate() = %v, want *FieldError", err)
			}
			if fe.Field != tt.wantField {
				t.Errorf("field = %q, want %q", fe.Field, tt.wantField)
			}
		})
	}
}

func TestDraftResetPreservesEmail(t *testing.T) {
	cd := ChatDraft{Email: "owner@x.y", Model: "gpt-4", Question: "q", APIKey: "k"}
	cd.Reset()
	if cd.Email != "owner@x.y" {
		t.Error("chat reset dropped owner email")
	}
	if cd.Question != "" {
		t.Error("chat reset kept question")
	}

	vd := VideoDraft{Email: "owner@x.y", Model: "sora", Content: "c", Duration: 5}
	vd.Reset()
	if vd.Email != "owner@x.y" {
		t.Error("video reset dropped owner email")
	}
	if vd.Content != "" || vd.Duration != 0 {
		t.Error("video reset kept content fields")
	}
}

func TestDateRangeQuery(t *testing.T) {
	tests := []struct {
		name  string
		r     DateRange
		want  string
	}{
		{"empty", DateRange{}, ""},
		{"start only", DateRange{Start: "2025-01-01"}, "start_date=2025-01-01"},
		{"end only", DateRange{End: "2025-02-01"}, "end_date=2025-02-01"},
		{"both", DateRange{Start: "2025-01-01", End: "2025-02-01"}, "end_date=2025-02-01&start_date=2025-01-01"},
		{"inverted still sent", DateRange{Start: "2025-02-01", End: "2025-01-01"}, "end_date=2025-01-01&start_date=2025-02-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Query().Encode(); got != tt.want {
				t.Errorf("Query() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateRangeValidate(t *testing.T) {
	tests := []struct {
		name    string
		r       DateRange
		wantErr bool
	}{
		{"empty ok", DateRange{}, false},
		{"ordered ok", DateRange{Start: "2025-01-01", End: "2025-01-31"}, false},
		{"same day ok", DateRange{Start: "2025-01-01", End: "2025-01-01"}, false},
		// Ordering is the server's business, an inverted range passes.
		{"inverted ok", DateRange{Start: "2025-02-01", End: "2025-01-01"}, false},
		{"bad format", DateRange{Start: "01/02/2025"}, true},
		{"bad end format", DateRange{End: "Jan 1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"chat", "chats"} {
		k, err := ParseKind(s)
		if err != nil || k != KindChat {
			t.Errorf("ParseKind(%q) = %v, %v", s, k, err)
		}
	}
	if _, err := ParseKind("songs"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestSetCatalogs(t *testing.T) {
	savedChat, savedImage, savedVideo := ChatModels, ImageModels, VideoModels
	defer func() {
		ChatModels, ImageModels, VideoModels = savedChat, savedImage, savedVideo
	}()

	SetCatalogs([]string{"gpt-4o", "o1"}, nil, nil)

	if got := Models(KindChat); len(got) != 2 || got[0] != "gpt-4o" {
		t.Errorf("chat catalog = %v", got)
	}
	if got := DefaultModel(KindChat); got != "gpt-4o" {
		t.Errorf("DefaultModel = %q", got)
	}
	if got := NextModel(KindChat, "gpt-4o"); got != "o1" {
		t.Errorf("NextModel = %q", got)
	}
	// Empty lists leave the built-ins alone.
	if got := Models(KindVideo); len(got) != 1 || got[0] != "sora" {
		t.Errorf("video catalog = %v", got)
	}
}

func TestNextModel(t *testing.T) {
	if got := NextModel(KindChat, "gpt-4"); got != "gpt-3.5-turbo" {
		t.Errorf("NextModel = %q", got)
	}
	// Wraps around.
	if got := NextModel(KindChat, ChatModels[len(ChatModels)-1]); got != ChatModels[0] {
		t.Errorf("NextModel wrap = %q", got)
	}
	// Unknown restarts at head.
	if got := NextModel(KindChat, "mystery"); got != ChatModels[0] {
		t.Errorf("NextModel unknown = %q", got)
	}
}
