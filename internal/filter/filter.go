// Package filter computes which sections and commands are visible for a
// language, a category and a search query.
package filter

import (
	"strings"

	"github.com/raphi011/gitref/internal/catalog"
)

// ComputeVisible returns the sections of lang's locale that survive the
// category and query filters. Sections keep catalog order, commands keep
// section order, and sections left without commands are dropped.
//
// category "all" matches every section; any other value must be one of the
// locale's categories. The query is a case-insensitive substring matched
// against command, description and example. An empty query matches all.
//
// The returned sections are copies and may be modified by the caller.
func ComputeVisible(cat *catalog.Catalog, lang, category, query string) ([]catalog.Section, error) {
	loc, err := cat.Locale(lang)
	if err != nil {
		return nil, err
	}
	if category != catalog.AllCategory {
		if _, err := loc.CategoryLabel(category); err != nil {
			return nil, err
		}
	}

	needle := strings.ToLower(query)

	var visible []catalog.Section
	for _, s := range loc.Sections {
		if category != catalog.AllCategory && s.ID != category {
			continue
		}

		var cmds []catalog.CommandEntry
		for _, cmd := range s.Commands {
			if matchesLower(cmd, needle) {
				cmds = append(cmds, cmd)
			}
		}
		if len(cmds) == 0 {
			continue
		}

		s.Commands = cmds
		visible = append(visible, s)
	}
	return visible, nil
}

// Matches reports whether query (case-insensitive) is a substring of the
// entry's command, description or example.
func Matches(e catalog.CommandEntry, query string) bool {
	return matchesLower(e, strings.ToLower(query))
}

func matchesLower(e catalog.CommandEntry, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Command), needle) ||
		strings.Contains(strings.ToLower(e.Description), needle) ||
		strings.Contains(strings.ToLower(e.Example), needle)
}

// Count returns the number of commands across sections.
func Count(sections []catalog.Section) int {
	n := 0
	for _, s := range sections {
		n += len(s.Commands)
	}
	return n
}
