package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Valid enum values for configuration fields.
var (
	ValidThemeNames = []string{"none", "default", "dracula", "nord", "gruvbox", "catppuccin"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

// Validate checks enum fields and durations.
// Language codes are checked against the catalog by the caller.
func (c *Config) Validate() error {
	var errs []error
	if err := validateEnum(c.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		errs = append(errs, err)
	}
	if err := validateEnum(c.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		errs = append(errs, err)
	}
	if err := validateDuration(c.Feedback.ToastDuration, "feedback.toast_duration"); err != nil {
		errs = append(errs, err)
	}
	if err := validateDuration(c.Feedback.CopiedDuration, "feedback.copied_duration"); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ValidateLanguage checks a language setting against the supported codes.
func ValidateLanguage(lang string, supported []string) error {
	if lang == LanguageAuto {
		return nil
	}
	return validateEnum(lang, "language", append([]string{LanguageAuto}, supported...))
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// validateDuration checks that value (if non-empty) parses as a positive duration.
func validateDuration(value, field string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	if d <= 0 {
		return fmt.Errorf("invalid %s %q: must be positive", field, value)
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
