// Package render turns visible sections and the view state into a
// toolkit-independent tree. Painting the tree onto a terminal is left to the
// ui packages.
package render

import (
	"github.com/raphi011/gitref/internal/catalog"
	"github.com/raphi011/gitref/internal/filter"
	"github.com/raphi011/gitref/internal/state"
)

// Tree is everything a painter needs for one frame.
type Tree struct {
	Header    Header
	Nav       []NavItem
	Sections  []SectionNode
	NoResults *NoResults // set instead of Sections when nothing matched
}

// Header carries the locale's top-of-page text.
type Header struct {
	Title             string
	Subtitle          string
	SearchPlaceholder string
	LangButton        string
	ExpandAll         string
	CollapseAll       string
}

// NavItem is one category control. Exactly one item is active.
type NavItem struct {
	ID     string
	Label  string
	Active bool
}

// SectionNode is a visible section with its cards.
type SectionNode struct {
	ID          string
	Number      string
	Title       string
	Description string
	Cards       []Card
}

// Card is one command. Expanded cards show their example.
type Card struct {
	Command      string
	Description  string
	Example      string
	ExampleLabel string
	Expanded     bool
}

// NoResults is the placeholder shown when the filters match nothing.
type NoResults struct {
	Title string
	Hint  string
}

// Render builds the tree for loc from already filtered sections. A card is
// expanded exactly when its command text is in st.Expanded.
func Render(loc *catalog.Locale, visible []catalog.Section, st state.ViewState) Tree {
	t := Tree{
		Header: Header{
			Title:             loc.Title,
			Subtitle:          loc.Subtitle,
			SearchPlaceholder: loc.SearchPlaceholder,
			LangButton:        loc.LangButtonLabel,
			ExpandAll:         loc.ExpandAllLabel,
			CollapseAll:       loc.CollapseAllLabel,
		},
		Nav: make([]NavItem, len(loc.Categories)),
	}

	for i, c := range loc.Categories {
		t.Nav[i] = NavItem{ID: c.ID, Label: c.Label, Active: c.ID == st.Category}
	}

	if len(visible) == 0 {
		t.NoResults = &NoResults{Title: loc.NoResultsTitle, Hint: loc.NoResultsHint}
		return t
	}

	t.Sections = make([]SectionNode, len(visible))
	for i, s := range visible {
		node := SectionNode{
			ID:          s.ID,
			Number:      s.Number,
			Title:       s.Title,
			Description: s.Description,
			Cards:       make([]Card, len(s.Commands)),
		}
		for j, e := range s.Commands {
			node.Cards[j] = Card{
				Command:      e.Command,
				Description:  e.Description,
				Example:      e.Example,
				ExampleLabel: loc.ExampleLabel,
				Expanded:     st.IsExpanded(e.Command),
			}
		}
		t.Sections[i] = node
	}
	return t
}

// Build filters the catalog for st and query, then renders the result.
func Build(cat *catalog.Catalog, st state.ViewState, query string) (Tree, error) {
	loc, err := cat.Locale(st.Language)
	if err != nil {
		return Tree{}, err
	}
	visible, err := filter.ComputeVisible(cat, st.Language, st.Category, query)
	if err != nil {
		return Tree{}, err
	}
	return Render(loc, visible, st), nil
}

// Commands returns the command text of every rendered card, in order.
func (t Tree) Commands() []string {
	var out []string
	for _, s := range t.Sections {
		for _, c := range s.Cards {
			out = append(out, c.Command)
		}
	}
	return out
}

// CardCount returns the number of rendered cards.
func (t Tree) CardCount() int {
	n := 0
	for _, s := range t.Sections {
		n += len(s.Cards)
	}
	return n
}

// CardAt returns the i-th card in reading order.
func (t Tree) CardAt(i int) (Card, bool) {
	if i < 0 {
		return Card{}, false
	}
	for _, s := range t.Sections {
		if i < len(s.Cards) {
			return s.Cards[i], true
		}
		i -= len(s.Cards)
	}
	return Card{}, false
}

// ActiveCategory returns the id of the active nav item.
func (t Tree) ActiveCategory() string {
	for _, n := range t.Nav {
		if n.Active {
			return n.ID
		}
	}
	return ""
}
