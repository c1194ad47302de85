// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 30, cfg.API.TimeoutSeconds)
	assert.Equal(t, "own", cfg.Refresh.Policy)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "chats", cfg.UI.DefaultTab)
	assert.True(t, cfg.CLI.RenderMarkdown)
	assert.Equal(t, []string{"gpt-4", "gpt-3.5-turbo"}, cfg.Models.Chat)
	assert.Equal(t, []string{"dall-e-3", "dall-e-2"}, cfg.Models.Image)
	assert.Equal(t, []string{"sora"}, cfg.Models.Video)
	require.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[api]
base_url = "https://askai.example.com"
timeout_seconds = 10

[refresh]
policy = "all"

[ui]
theme = "light"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg := Default()
	require.NoError(t, LoadTOML(cfg, path))
	assert.Equal(t, "https://askai.example.com", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.API.TimeoutSeconds)
	assert.Equal(t, "all", cfg.Refresh.Policy)
	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestLoadTOMLTightensPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\n"), 0644))

	cfg := Default()
	require.NoError(t, LoadTOML(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"api":{"base_url":"https://askai.example.com"},"export":{"dir":"/tmp/exports"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg := Default()
	require.NoError(t, LoadJSON(cfg, path))
	assert.Equal(t, "https://askai.example.com", cfg.API.BaseURL)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.API.BaseURL = "https://askai.example.com"
	cfg.CLI.OpenAIKey = "sk-secret"
	require.NoError(t, SaveTOML(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "config with API key must be 0600")

	loaded := Default()
	require.NoError(t, LoadTOML(loaded, path))
	assert.Equal(t, cfg.API.BaseURL, loaded.API.BaseURL)
	assert.Equal(t, cfg.CLI.OpenAIKey, loaded.CLI.OpenAIKey)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ASKAI_BASE_URL", "https://override.example.com")
	t.Setenv("ASKAI_REFRESH_POLICY", "all")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, "https://override.example.com", cfg.API.BaseURL)
	assert.Equal(t, "all", cfg.Refresh.Policy)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad scheme", func(c *Config) { c.API.BaseURL = "ftp://x" }, "api.base_url"},
		{"negative timeout", func(c *Config) { c.API.TimeoutSeconds = -1 }, "api.timeout_seconds"},
		{"bad policy", func(c *Config) { c.Refresh.Policy = "some" }, "refresh.policy"},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, "ui.theme"},
		{"bad tab", func(c *Config) { c.UI.DefaultTab = "songs" }, "ui.default_tab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetSet(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set("api.base_url", "https://askai.example.com"))
	got, err := cfg.Get("api.base_url")
	require.NoError(t, err)
	assert.Equal(t, "https://askai.example.com", got)

	require.NoError(t, cfg.Set("api.timeout_seconds", "45"))
	assert.Equal(t, 45, cfg.API.TimeoutSeconds)

	require.NoError(t, cfg.Set("cli.render_markdown", "false"))
	assert.False(t, cfg.CLI.RenderMarkdown)

	_, err = cfg.Get("api.no_such_key")
	assert.Error(t, err)
	assert.Error(t, cfg.Set("nope.nope", "x"))
}

func TestModelCatalogKeys(t *testing.T) {
	cfg := Default()

	// Comma-separated input becomes a list, whitespace trimmed.
	require.NoError(t, cfg.Set("models.chat", "gpt-4o, o1"))
	assert.Equal(t, []string{"gpt-4o", "o1"}, cfg.Models.Chat)

	got, err := cfg.Get("models.chat")
	require.NoError(t, err)
	assert.Equal(t, []string{"gpt-4o", "o1"}, got)

	// A list cannot be emptied out from the CLI.
	assert.Error(t, cfg.Set("models.image", " , "))
	assert.Equal(t, []string{"dall-e-3", "dall-e-2"}, cfg.Models.Image)
}

func TestModelsSurviveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[models]
chat = ["gpt-4o"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg := Default()
	require.NoError(t, LoadTOML(cfg, path))
	cfg.SetDefaults()

	assert.Equal(t, []string{"gpt-4o"}, cfg.Models.Chat)
	// Kinds the file is silent on keep the built-ins.
	assert.Equal(t, []string{"sora"}, cfg.Models.Video)
}

func TestKeysResolve(t *testing.T) {
	cfg := Default()
	for _, key := range Keys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, "key %q does not resolve", key)
	}
}

func TestGlobalSingleton(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = "https://pinned.example.com"
	SetGlobal(cfg)
	assert.Same(t, cfg, Global())
}
