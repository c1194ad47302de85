// Copyright (c) 2025 The askai-tui Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config manages askai-tui configuration.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/askai-labs/askai-tui/internal/util"
)

// =============================================================================
// CONFIGURATION TYPES
// =============================================================================

// Config is the top-level configuration.
type Config struct {
	API     APIConfig     `toml:"api" json:"api"`
	Auth    AuthConfig    `toml:"auth" json:"auth"`
	Export  ExportConfig  `toml:"export" json:"export"`
	Refresh RefreshConfig `toml:"refresh" json:"refresh"`
	Models  ModelsConfig  `toml:"models" json:"models"`
	UI      UIConfig      `toml:"ui" json:"ui"`
	CLI     CLIConfig     `toml:"cli" json:"cli"`
}

// APIConfig configures the backend connection.
type APIConfig struct {
	// BaseURL is the backend root, e.g. https://askai.example.com.
	BaseURL string `toml:"base_url" json:"base_url"`

	// TimeoutSeconds bounds a single request round trip.
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds"`

	// RateLimitPerMin caps record submissions per minute.
	RateLimitPerMin int `toml:"rate_limit_per_min" json:"rate_limit_per_min"`
}

// AuthConfig configures authentication.
type AuthConfig struct {
	// ClientID is the Google OAuth client ID, shown on the login screen
	// so the user obtains a token for the right application.
	ClientID string `toml:"client_id" json:"client_id"`
}

// ExportConfig configures CSV export.
type ExportConfig struct {
	// Dir is where export files are written.
	Dir string `toml:"dir" json:"dir"`
}

// RefreshConfig configures store reloading.
type RefreshConfig struct {
	// Policy decides which stores reload after a submit: "own" or "all".
	Policy string `toml:"policy" json:"policy"`
}

// ModelsConfig lists the model names offered per record kind. The
// backend passes the name through to its upstream, so these track what
// the service account has access to.
type ModelsConfig struct {
	Chat  []string `toml:"chat" json:"chat"`
	Image []string `toml:"image" json:"image"`
	Video []string `toml:"video" json:"video"`
}

// UIConfig configures the TUI.
type UIConfig struct {
	// Theme selects the color theme ("dark" or "light").
	Theme string `toml:"theme" json:"theme"`

	// DefaultTab is the tab shown after login: chats, images or videos.
	DefaultTab string `toml:"default_tab" json:"default_tab"`
}

// CLIConfig configures the non-TUI commands.
type CLIConfig struct {
	// RenderMarkdown renders answers through glamour in the terminal.
	RenderMarkdown bool `toml:"render_markdown" json:"render_markdown"`

	// OpenAIKey is the optional upstream key forwarded with submissions.
	OpenAIKey string `toml:"openai_key" json:"openai_key"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		API: APIConfig{
			TimeoutSeconds:  30,
			RateLimitPerMin: 30,
		},
		Export:  ExportConfig{Dir: "."},
		Refresh: RefreshConfig{Policy: "own"},
		Models: ModelsConfig{
			Chat:  []string{"gpt-4", "gpt-3.5-turbo"},
			Image: []string{"dall-e-3", "dall-e-2"},
			Video: []string{"sora"},
		},
		UI:      UIConfig{Theme: "dark", DefaultTab: "chats"},
		CLI:     CLIConfig{RenderMarkdown: true},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the configuration directory (~/.config/askai).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "askai"), nil
}

// ConfigPathTOML returns the TOML config path.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the JSON fallback config path.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ensureSecurePermissions tightens a config file to 0600. The file may
// carry the upstream API key.
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0077 != 0 {
		return os.Chmod(path, 0600)
	}
	return nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads config from disk (TOML first, JSON fallback), then applies
// env overrides, defaults and validation. Missing files yield defaults.
func Load() (*Config, error) {
	cfg := Default()

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			return finishLoad(cfg)
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			return finishLoad(cfg)
		}
	}

	return finishLoad(cfg)
}

func finishLoad(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
// SECURITY: tightens file permissions on load.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads and validates a config from an explicit path, by
// extension.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := LoadTOML(cfg, path); err != nil {
			return nil, err
		}
	case ".json":
		if err := LoadJSON(cfg, path); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
	return finishLoad(cfg)
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the config as TOML with 0600 permissions.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the config to a TOML file atomically.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
	}
	// SECURITY: 0600, the file may hold the upstream API key.
	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}

// =============================================================================
// DEFAULTS, OVERRIDES, VALIDATION
// =============================================================================

// SetDefaults fills zero values with the built-in defaults.
func (c *Config) SetDefaults() {
	def := Default()
	if c.API.TimeoutSeconds == 0 {
		c.API.TimeoutSeconds = def.API.TimeoutSeconds
	}
	if c.API.RateLimitPerMin == 0 {
		c.API.RateLimitPerMin = def.API.RateLimitPerMin
	}
	if c.Export.Dir == "" {
		c.Export.Dir = def.Export.Dir
	}
	if c.Refresh.Policy == "" {
		c.Refresh.Policy = def.Refresh.Policy
	}
	if len(c.Models.Chat) == 0 {
		c.Models.Chat = def.Models.Chat
	}
	if len(c.Models.Image) == 0 {
		c.Models.Image = def.Models.Image
	}
	if len(c.Models.Video) == 0 {
		c.Models.Video = def.Models.Video
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
	if c.UI.DefaultTab == "" {
		c.UI.DefaultTab = def.UI.DefaultTab
	}
}

// ApplyEnvOverrides applies ASKAI_* environment variables over the
// loaded values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("ASKAI_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("ASKAI_EXPORT_DIR"); v != "" {
		c.Export.Dir = v
	}
	if v := os.Getenv("ASKAI_REFRESH_POLICY"); v != "" {
		c.Refresh.Policy = v
	}
	if v := os.Getenv("ASKAI_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("ASKAI_OPENAI_KEY"); v != "" {
		c.CLI.OpenAIKey = v
	}
}

// ValidationError describes one invalid config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.API.BaseURL != "" &&
		!strings.HasPrefix(c.API.BaseURL, "http://") &&
		!strings.HasPrefix(c.API.BaseURL, "https://") {
		return ValidationError{Field: "api.base_url", Message: "must start with http:// or https://"}
	}
	if c.API.TimeoutSeconds < 0 {
		return ValidationError{Field: "api.timeout_seconds", Message: "must not be negative"}
	}
	if c.API.RateLimitPerMin < 0 {
		return ValidationError{Field: "api.rate_limit_per_min", Message: "must not be negative"}
	}
	switch c.Refresh.Policy {
	case "", "own", "all":
	default:
		return ValidationError{Field: "refresh.policy", Message: `must be "own" or "all"`}
	}
	switch c.UI.Theme {
	case "", "dark", "light":
	default:
		return ValidationError{Field: "ui.theme", Message: `must be "dark" or "light"`}
	}
	switch c.UI.DefaultTab {
	case "", "chats", "images", "videos":
	default:
		return ValidationError{Field: "ui.default_tab", Message: "must be chats, images or videos"}
	}
	return nil
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a value by dot notation key (e.g. "api.base_url").
func (c *Config) Get(key string) (interface{}, error) {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return nil, errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return nil, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			return field.Interface(), nil
		}
		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return nil, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}
	return nil, fmt.Errorf("invalid key: %s", key)
}

// Set assigns a value by dot notation key, converting strings to the
// field's type.
func (c *Config) Set(key string, value interface{}) error {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			if !field.CanSet() {
				return fmt.Errorf("cannot set field: %s", key)
			}
			return setFieldValue(field, value)
		}
		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}
	return fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts snake_case or kebab-case to the Go field
// name, with special cases for initialisms.
func normalizeFieldName(name string) string {
	switch strings.ToLower(name) {
	case "api":
		return "API"
	case "ui":
		return "UI"
	case "cli":
		return "CLI"
	case "base_url", "baseurl":
		return "BaseURL"
	case "openai_key", "openaikey":
		return "OpenAIKey"
	case "client_id", "clientid":
		return "ClientID"
	}

	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue assigns with type conversion from string input.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			boolVal := strVal == "1" || strings.EqualFold(strVal, "true") || strings.EqualFold(strVal, "yes")
			field.SetBool(boolVal)
			return nil
		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				// Comma-separated input, e.g. `config set models.chat gpt-4,o1`.
				var items []string
				for _, part := range strings.Split(strVal, ",") {
					if p := strings.TrimSpace(part); p != "" {
						items = append(items, p)
					}
				}
				if len(items) == 0 {
					return errors.New("list value must name at least one entry")
				}
				field.Set(reflect.ValueOf(items))
				return nil
			}
		}
	}

	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// Keys lists all configuration keys in dot notation, for `config list`.
func Keys() []string {
	return []string{
		"api.base_url",
		"api.timeout_seconds",
		"api.rate_limit_per_min",
		"auth.client_id",
		"export.dir",
		"refresh.policy",
		"models.chat",
		"models.image",
		"models.video",
		"ui.theme",
		"ui.default_tab",
		"cli.render_markdown",
		"cli.openai_key",
	}
}

// =============================================================================
// GLOBAL SINGLETON
// =============================================================================

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// Global returns the process-wide config, loading it on first use.
func Global() *Config {
	globalMu.RLock()
	if globalCfg != nil {
		defer globalMu.RUnlock()
		return globalCfg
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalCfg == nil {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalCfg = cfg
	}
	return globalCfg
}

// SetGlobal replaces the process-wide config (reload, tests).
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}

// ReloadGlobal re-reads the config from disk.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}
