package main

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/raphi011/gitref/internal/catalog"
)

var anchorStrip = regexp.MustCompile(`[^\p{L}\p{M}\p{N}-]`)

// RenderMarkdown writes the locale's sections as a markdown reference.
func RenderMarkdown(w io.Writer, loc *catalog.Locale) error {
	fmt.Fprintf(w, "# %s\n\n", loc.Title)
	if loc.Subtitle != "" {
		fmt.Fprintf(w, "%s\n\n", loc.Subtitle)
	}

	// Summary
	fmt.Fprintf(w, "| # | Section | Commands |\n")
	fmt.Fprintf(w, "|---|---------|----------|\n")
	for _, s := range loc.Sections {
		fmt.Fprintf(w, "| %s | [%s](#%s) | %d |\n", s.Number, escapeCell(s.Title), toAnchor(heading(s)), len(s.Commands))
	}
	fmt.Fprintf(w, "| | **Total** | **%d** |\n\n", loc.CommandCount())

	for _, s := range loc.Sections {
		renderSection(w, loc, s)
	}
	return nil
}

func renderSection(w io.Writer, loc *catalog.Locale, s catalog.Section) {
	fmt.Fprintf(w, "## %s\n\n", heading(s))
	if s.Description != "" {
		fmt.Fprintf(w, "%s\n\n", s.Description)
	}
	fmt.Fprintf(w, "| Command | Description | %s |\n", escapeCell(loc.ExampleLabel))
	fmt.Fprintf(w, "|---------|-------------|---------|\n")
	for _, c := range s.Commands {
		fmt.Fprintf(w, "| `%s` | %s | %s |\n", escapeCell(c.Command), escapeCell(c.Description), escapeCell(c.Example))
	}
	fmt.Fprintf(w, "\n")
}

func heading(s catalog.Section) string {
	return s.Number + ". " + s.Title
}

// escapeCell makes text safe inside a markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

// toAnchor converts a heading to a GitHub-style markdown anchor.
// Gujarati letters and combining marks are kept.
func toAnchor(h string) string {
	anchor := strings.ReplaceAll(strings.ToLower(h), " ", "-")
	return anchorStrip.ReplaceAllString(anchor, "")
}
