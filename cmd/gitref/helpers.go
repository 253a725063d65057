package main

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/gitref/internal/catalog"
	"github.com/raphi011/gitref/internal/config"
)

// isInteractive reports whether prompts and the browser can take over the
// terminal. Tests run with redirected stdin and get false.
var isInteractive = func() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// resolveLocale picks the display language. An explicit --lang must name a
// catalog locale. Otherwise GITREF_LANG, the config file and the locale
// environment are matched against the catalog, falling back to English.
func resolveLocale(ctx context.Context, cat *catalog.Catalog, flag string) (*catalog.Locale, error) {
	if flag != "" && flag != config.LanguageAuto {
		return cat.Locale(flag)
	}
	prefs := config.FromContext(ctx).ResolveLanguage("")
	return cat.Locale(cat.Match(prefs...))
}
