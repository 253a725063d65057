// Package state holds the view state of the command browser and the pure
// transitions applied to it.
//
// A [ViewState] is a value: every transition returns a new state and never
// mutates the receiver, so a previous state can be kept and compared. The
// search query is deliberately not part of the state; callers pass the live
// input value to the filter on every render.
//
// Expansion is keyed by the literal command text. Two cards with the same
// text, even in different sections, expand and collapse together.
package state

import (
	"maps"
	"slices"

	"github.com/raphi011/gitref/internal/catalog"
)

// ViewState is the session-lifetime record of the user's selections.
type ViewState struct {
	Language string
	Category string
	Expanded map[string]struct{} // command texts shown expanded
}

// New returns the initial state for lang: category "all", nothing expanded.
func New(lang string) ViewState {
	return ViewState{
		Language: lang,
		Category: catalog.AllCategory,
		Expanded: map[string]struct{}{},
	}
}

// IsExpanded reports whether cards with this command text are expanded.
func (s ViewState) IsExpanded(command string) bool {
	_, ok := s.Expanded[command]
	return ok
}

// ExpandedCommands returns the expanded command texts, sorted.
func (s ViewState) ExpandedCommands() []string {
	return slices.Sorted(maps.Keys(s.Expanded))
}

// ToggleLanguage switches to the next catalog language. Category and
// expansion are kept.
func (s ViewState) ToggleLanguage(c *catalog.Catalog) ViewState {
	s.Expanded = cloneSet(s.Expanded)
	s.Language = c.NextLanguage(s.Language)
	return s
}

// SelectCategory sets the active category.
func (s ViewState) SelectCategory(id string) ViewState {
	s.Expanded = cloneSet(s.Expanded)
	s.Category = id
	return s
}

// ToggleExpansion expands command if it is collapsed and collapses it
// otherwise. Applying it twice restores the original set.
func (s ViewState) ToggleExpansion(command string) ViewState {
	s.Expanded = cloneSet(s.Expanded)
	if _, ok := s.Expanded[command]; ok {
		delete(s.Expanded, command)
	} else {
		s.Expanded[command] = struct{}{}
	}
	return s
}

// ExpandAll marks every currently rendered command as expanded. Commands
// hidden by the current filters are left untouched.
func (s ViewState) ExpandAll(rendered []string) ViewState {
	s.Expanded = cloneSet(s.Expanded)
	for _, cmd := range rendered {
		s.Expanded[cmd] = struct{}{}
	}
	return s
}

// CollapseAll clears the whole expansion set, including commands that are
// currently filtered out.
func (s ViewState) CollapseAll() ViewState {
	s.Expanded = map[string]struct{}{}
	return s
}

// cloneSet copies m, returning an empty non-nil set for nil input.
func cloneSet(m map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(m)+1)
	maps.Copy(out, m)
	return out
}
