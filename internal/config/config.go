// Package config provides configuration types, defaults, and persistence for signup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/paths"
)

// DefaultPath is where a default config is written when none is found.
const DefaultPath = ".signup/config.yaml"

// Config holds all configuration options for signup.
type Config struct {
	Locale       string        `mapstructure:"locale"`
	MessagesFile string        `mapstructure:"messages_file"` // YAML key/value overrides for the catalog
	Account      AccountConfig `mapstructure:"account"`
	Theme        ThemeConfig   `mapstructure:"theme"`
	Tracing      TracingConfig `mapstructure:"tracing"`
	Flags        map[string]bool `mapstructure:"flags"` // feature flags, see internal/flags
}

// AccountConfig selects and tunes the account creation backend.
type AccountConfig struct {
	Backend         string        `mapstructure:"backend"`          // "simulated" (default) or "sqlite"
	Delay           time.Duration `mapstructure:"delay"`            // simulated network latency
	DuplicateWindow time.Duration `mapstructure:"duplicate_window"` // how long the simulated backend remembers emails
	FailEvery       int           `mapstructure:"fail_every"`       // simulated failure on every Nth call, 0 disables
	DBPath          string        `mapstructure:"db_path"`          // sqlite database file
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "catppuccin-latte",
	// "dracula", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	Mode string `mapstructure:"mode"`

	// Colors overrides individual color tokens. Supports nested YAML and
	// quoted dot notation:
	//   colors:
	//     status:
	//       error: "#FF0000"
	//     "text.primary": "#FFFFFF"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// TracingConfig holds distributed tracing configuration.
type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	Exporter     string  `mapstructure:"exporter"`      // "none", "file" (default), "stdout", "otlp"
	FilePath     string  `mapstructure:"file_path"`     // JSONL output for the file exporter
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"` // collector address for otlp
	SampleRate   float64 `mapstructure:"sample_rate"`   // 0.0 to 1.0
}


// DefaultDBPath returns the default sqlite database location.
func DefaultDBPath() string {
	if dir := paths.UserConfigDir(); dir != "" {
		return filepath.Join(dir, "accounts.db")
	}
	return filepath.Join(".signup", "accounts.db")
}

// DefaultTracesFilePath returns the default JSONL traces location.
func DefaultTracesFilePath() string {
	if dir := paths.UserConfigDir(); dir != "" {
		return filepath.Join(dir, "traces", "traces.jsonl")
	}
	return filepath.Join(".signup", "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Locale: "en",
		Account: AccountConfig{
			Backend:         "simulated",
			Delay:           1500 * time.Millisecond,
			DuplicateWindow: 10 * time.Minute,
			DBPath:          DefaultDBPath(),
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     DefaultTracesFilePath(),
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
		Flags: map[string]bool{
			"mouse":      true,
			"alt-screen": true,
		},
	}
}

// SetDefaults registers every default with v so unset keys resolve.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("locale", d.Locale)
	v.SetDefault("messages_file", d.MessagesFile)
	v.SetDefault("account.backend", d.Account.Backend)
	v.SetDefault("account.delay", d.Account.Delay)
	v.SetDefault("account.duplicate_window", d.Account.DuplicateWindow)
	v.SetDefault("account.fail_every", d.Account.FailEvery)
	v.SetDefault("account.db_path", d.Account.DBPath)
	v.SetDefault("theme.preset", d.Theme.Preset)
	v.SetDefault("theme.mode", d.Theme.Mode)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	for name, enabled := range d.Flags {
		v.SetDefault("flags."+name, enabled)
	}
}

// Load decodes the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.MessagesFile = paths.Expand(cfg.MessagesFile)
	cfg.Account.DBPath = paths.Expand(cfg.Account.DBPath)
	cfg.Tracing.FilePath = paths.Expand(cfg.Tracing.FilePath)
	return cfg, nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# signup configuration

# Display language: "en" (English) or "my" (Burmese).
# Toggle inside the app with ctrl+l; the choice is saved here.
locale: en

# Optional YAML file of message overrides, e.g.
#   button.submit: Sign up
# messages_file: /path/to/messages.yaml

# Account creation backend
account:
  backend: simulated       # "simulated" (in-memory, default) or "sqlite"
  delay: 1500ms            # simulated network latency
  duplicate_window: 10m    # simulated backend refuses a repeated email within this window
  fail_every: 0            # simulated failure on every Nth submit (0 = never)
  # db_path: ~/.config/signup/accounts.db   # sqlite database file

# Theme configuration
theme:
  preset: default
  #
  # Available presets:
  #   default           - Default signup theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   catppuccin-latte  - Warm, cozy light theme
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - High contrast for accessibility
  #
  # mode: dark             # force "light" or "dark"
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   status.error: "#FF0000"
  #   border.highlight: "#54A0FF"

# Tracing (OpenTelemetry)
tracing:
  enabled: false
  exporter: file           # "none", "file", "stdout", or "otlp"
  # file_path: ~/.config/signup/traces/traces.jsonl
  # otlp_endpoint: localhost:4317
  sample_rate: 1.0

# Feature flags
# flags:
#   mouse: true            # click fields, options and the button
#   alt-screen: true       # run full screen; false keeps the form in scrollback
`
}

// WriteDefaultConfig creates a config file at the given path with default settings.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
