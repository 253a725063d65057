// Package config handles loading and validation of gitref configuration.
//
// Configuration is read from ~/.config/gitref/config.toml. The GITREF_CONFIG
// environment variable points at a different file.
//
// # Language Selection (highest priority first)
//
//   - --lang flag
//   - GITREF_LANG env var
//   - language setting in the config file ("auto" defers to LANG)
//   - LANG / LC_ALL / LC_MESSAGES matched against the catalog languages
//   - English
//
// # Key Settings
//
//   - language: "auto" or a catalog language code ("en", "gu")
//   - theme.name: color preset (none, default, dracula, nord, gruvbox, catppuccin)
//   - theme.mode: "auto", "light" or "dark"
//   - theme.nerdfont: use nerd font glyphs for card controls
//   - feedback.toast_duration: how long the copy toast stays visible (default "3s")
//   - feedback.copied_duration: how long a card shows its checkmark (default "2s")
//
// Load never fails hard: a broken file yields Default() plus the error so the
// CLI can warn and continue.
package config
