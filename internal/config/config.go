package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// LanguageAuto defers language selection to the environment.
const LanguageAuto = "auto"

// Default feedback timings.
const (
	DefaultToastDuration  = 3 * time.Second
	DefaultCopiedDuration = 2 * time.Second
)

// ThemeConfig holds UI color settings
type ThemeConfig struct {
	Name     string `toml:"name" json:"name"`                   // preset family
	Mode     string `toml:"mode" json:"mode"`                   // auto, light, dark
	Primary  string `toml:"primary" json:"primary,omitempty"`   // color overrides
	Accent   string `toml:"accent" json:"accent,omitempty"`
	Success  string `toml:"success" json:"success,omitempty"`
	Error    string `toml:"error" json:"error,omitempty"`
	Muted    string `toml:"muted" json:"muted,omitempty"`
	Normal   string `toml:"normal" json:"normal,omitempty"`
	Info     string `toml:"info" json:"info,omitempty"`
	Warning  string `toml:"warning" json:"warning,omitempty"`
	Nerdfont bool   `toml:"nerdfont" json:"nerdfont"`
}

// FeedbackConfig holds the copy feedback timings as duration strings.
type FeedbackConfig struct {
	ToastDuration  string `toml:"toast_duration" json:"toast_duration"`
	CopiedDuration string `toml:"copied_duration" json:"copied_duration"`
}

// Toast returns the toast visibility duration.
func (f FeedbackConfig) Toast() time.Duration {
	return parseDurationOr(f.ToastDuration, DefaultToastDuration)
}

// Copied returns how long a copied card keeps its checkmark.
func (f FeedbackConfig) Copied() time.Duration {
	return parseDurationOr(f.CopiedDuration, DefaultCopiedDuration)
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// Config holds the gitref configuration
type Config struct {
	Language string         `toml:"language" json:"language"`
	Theme    ThemeConfig    `toml:"theme" json:"theme"`
	Feedback FeedbackConfig `toml:"feedback" json:"feedback"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Language: LanguageAuto,
		Theme: ThemeConfig{
			Name: "default",
			Mode: "auto",
		},
		Feedback: FeedbackConfig{
			ToastDuration:  DefaultToastDuration.String(),
			CopiedDuration: DefaultCopiedDuration.String(),
		},
	}
}

// Path returns the config file location, honoring GITREF_CONFIG.
func Path() (string, error) {
	if p := os.Getenv("GITREF_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitref", "config.toml"), nil
}

// Load reads config from Path().
// Returns Default() if the file doesn't exist (no error).
// Returns Default() and an error if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config file at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	// Decode over defaults so omitted keys keep their default values.
	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	if cfg.Language == "" {
		cfg.Language = LanguageAuto
	}
	if cfg.Theme.Mode == "" {
		cfg.Theme.Mode = "auto"
	}

	return cfg, nil
}

// ResolveLanguage returns the language preferences in precedence order:
// the flag value, GITREF_LANG, the configured language and finally the
// locale environment variables. Empty and "auto" entries are skipped.
// The result feeds catalog.Match.
func (c *Config) ResolveLanguage(flag string) []string {
	candidates := []string{
		flag,
		os.Getenv("GITREF_LANG"),
		c.Language,
		os.Getenv("LC_ALL"),
		os.Getenv("LC_MESSAGES"),
		os.Getenv("LANG"),
	}

	prefs := make([]string, 0, len(candidates))
	for _, s := range candidates {
		if s == "" || s == LanguageAuto {
			continue
		}
		prefs = append(prefs, s)
	}
	return prefs
}

// configKey is the context key for Config
type configKey struct{}

// WithConfig returns a new context with the Config stored in it.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the Config from context.
// Returns a pointer to Default() if none is stored.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok && cfg != nil {
		return cfg
	}
	d := Default()
	return &d
}

// DefaultConfig returns the commented default config file content.
func DefaultConfig() string {
	return defaultConfig
}

const defaultConfig = `# gitref configuration
# Config location: ~/.config/gitref/config.toml (override with GITREF_CONFIG)

# Display language: "auto" (use LANG), "en" or "gu"
# GITREF_LANG and --lang take precedence over this setting.
language = "auto"

[theme]
# Color preset: "none", "default", "dracula", "nord", "gruvbox", "catppuccin"
name = "default"

# "auto" detects the terminal background, "light" or "dark" force a variant
mode = "auto"

# Use nerd font glyphs for the copy and expand controls
nerdfont = false

# Individual color overrides (hex or ANSI 256 codes)
# primary = "#89b4fa"
# accent = "#f5c2e7"

[feedback]
# How long the "copied" toast stays visible
toast_duration = "3s"

# How long a card shows its checkmark after copying
copied_duration = "2s"
`

// Init creates a default config file at Path().
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := writeAtomic(path, []byte(defaultConfig)); err != nil {
		return "", err
	}

	return path, nil
}

// writeAtomic writes data to a temp file next to path and renames it into
// place, creating the parent directory if needed.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}
