package filter

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/raphi011/gitref/internal/catalog"
)

func sectionIDs(sections []catalog.Section) []string {
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	return ids
}

func commandTexts(s catalog.Section) []string {
	out := make([]string, len(s.Commands))
	for i, c := range s.Commands {
		out[i] = c.Command
	}
	return out
}

func TestComputeVisible_AllSections(t *testing.T) {
	t.Parallel()

	got, err := ComputeVisible(catalog.Default(), "en", catalog.AllCategory, "")
	if err != nil {
		t.Fatalf("ComputeVisible() error = %v", err)
	}

	wantIDs := []string{"config", "workflow", "branching", "remote", "inspection", "undo"}
	if diff := cmp.Diff(wantIDs, sectionIDs(got)); diff != "" {
		t.Errorf("section ids mismatch (-want +got):\n%s", diff)
	}

	wantCounts := []int{7, 9, 10, 8, 7, 5}
	for i, s := range got {
		if len(s.Commands) != wantCounts[i] {
			t.Errorf("section %q: %d commands, want %d", s.ID, len(s.Commands), wantCounts[i])
		}
	}
}

func TestComputeVisible_BranchingMerge(t *testing.T) {
	t.Parallel()

	got, err := ComputeVisible(catalog.Default(), "en", "branching", "merge")
	if err != nil {
		t.Fatalf("ComputeVisible() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "branching" {
		t.Fatalf("sections = %v, want only branching", sectionIDs(got))
	}

	want := []string{
		"git branch -d <name>", // "unmerged" in the description
		"git branch -D <name>",
		"git merge <branch>",
		"git merge --abort",
	}
	if diff := cmp.Diff(want, commandTexts(got[0])); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeVisible_NoMatch(t *testing.T) {
	t.Parallel()

	got, err := ComputeVisible(catalog.Default(), "en", catalog.AllCategory, "zzz-no-match")
	if err != nil {
		t.Fatalf("ComputeVisible() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d sections, want none", len(got))
	}
}

func TestComputeVisible_CaseInsensitive(t *testing.T) {
	t.Parallel()

	lower, _ := ComputeVisible(catalog.Default(), "en", catalog.AllCategory, "rebase")
	upper, _ := ComputeVisible(catalog.Default(), "en", catalog.AllCategory, "REBASE")
	if diff := cmp.Diff(lower, upper); diff != "" {
		t.Errorf("case changed the result (-lower +upper):\n%s", diff)
	}
	if Count(lower) == 0 {
		t.Error("expected at least one rebase command")
	}
}

func TestComputeVisible_ExampleOnlyMatch(t *testing.T) {
	t.Parallel()

	// "diagram" appears only in the example of git log --graph.
	got, err := ComputeVisible(catalog.Default(), "en", catalog.AllCategory, "Diagram")
	if err != nil {
		t.Fatalf("ComputeVisible() error = %v", err)
	}
	if len(got) != 1 || len(got[0].Commands) != 1 {
		t.Fatalf("got %v, want exactly one command", got)
	}
	e := got[0].Commands[0]
	if e.Command != "git log --graph" {
		t.Errorf("command = %q, want git log --graph", e.Command)
	}
	if strings.Contains(strings.ToLower(e.Command+e.Description), "diagram") {
		t.Error("test data drifted: query must only be in the example")
	}
}

func TestComputeVisible_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lang     string
		category string
	}{
		{"unknown language", "fr", catalog.AllCategory},
		{"unknown category", "en", "rebasing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ComputeVisible(catalog.Default(), tt.lang, tt.category, "")
			if !errors.Is(err, catalog.ErrNotFound) {
				t.Errorf("error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestComputeVisible_CategoryWithoutSection(t *testing.T) {
	t.Parallel()

	// The Gujarati locale lists "remote" but has no sections translated yet.
	got, err := ComputeVisible(catalog.Default(), "gu", "remote", "")
	if err != nil {
		t.Fatalf("ComputeVisible() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want no sections", sectionIDs(got))
	}
}

func TestComputeVisible_Properties(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	queries := []string{"", "git", "merge", "BRANCH", "--", "zzz-no-match", "ફાઇલ", "a"}

	for _, lang := range cat.Languages() {
		loc, _ := cat.Locale(lang)
		for _, c := range loc.Categories {
			for _, q := range queries {
				first, err := ComputeVisible(cat, lang, c.ID, q)
				if err != nil {
					t.Fatalf("ComputeVisible(%s, %s, %q) error = %v", lang, c.ID, q, err)
				}

				// Idempotence.
				second, _ := ComputeVisible(cat, lang, c.ID, q)
				if diff := cmp.Diff(first, second); diff != "" {
					t.Errorf("%s/%s/%q not idempotent:\n%s", lang, c.ID, q, diff)
				}

				for _, s := range first {
					// Dropped-when-empty.
					if len(s.Commands) == 0 {
						t.Errorf("%s/%s/%q: empty section %q returned", lang, c.ID, q, s.ID)
					}
					// Subset of the locale, category respected.
					orig, ok := loc.Section(s.ID)
					if !ok {
						t.Fatalf("%s/%s/%q: unknown section %q", lang, c.ID, q, s.ID)
					}
					if c.ID != catalog.AllCategory && s.ID != c.ID {
						t.Errorf("%s/%s/%q: section %q outside category", lang, c.ID, q, s.ID)
					}
					for _, e := range s.Commands {
						if !slices.Contains(orig.Commands, e) {
							t.Errorf("%s/%s/%q: command %q not in section %q", lang, c.ID, q, e.Command, s.ID)
						}
						if !Matches(e, q) {
							t.Errorf("%s/%s/%q: command %q does not match", lang, c.ID, q, e.Command)
						}
					}
				}

				// Completeness: every matching command of a selected section is kept.
				if c.ID == catalog.AllCategory && Count(first) != countMatching(loc, q) {
					t.Errorf("%s/%q: kept %d commands, want %d", lang, q, Count(first), countMatching(loc, q))
				}
			}
		}
	}
}

func countMatching(loc *catalog.Locale, q string) int {
	n := 0
	for _, s := range loc.Sections {
		for _, e := range s.Commands {
			if Matches(e, q) {
				n++
			}
		}
	}
	return n
}

func TestComputeVisible_DoesNotAliasCatalog(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	got, _ := ComputeVisible(cat, "en", "undo", "")
	got[0].Commands[0].Command = "mutated"

	loc, _ := cat.Locale("en")
	s, _ := loc.Section("undo")
	if s.Commands[0].Command == "mutated" {
		t.Error("ComputeVisible result aliases catalog storage")
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()

	e := catalog.CommandEntry{
		Command:     "git stash",
		Description: "Set aside changes",
		Example:     "An urgent BUG interrupts you",
	}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"STASH", true},
		{"aside", true},
		{"urgent bug", true},
		{"stash aside", false}, // substring, not tokenized
		{"gt stsh", false},     // not fuzzy
	}
	for _, tt := range tests {
		if got := Matches(e, tt.query); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}
