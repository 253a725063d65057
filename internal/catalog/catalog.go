package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// AllCategory is the pseudo-category matching every section.
const AllCategory = "all"

// ErrNotFound is returned for unknown language codes and category ids.
var ErrNotFound = errors.New("not found")

// CommandEntry is one documented command.
type CommandEntry struct {
	Command     string `toml:"command" json:"command"`         // literal CLI invocation
	Description string `toml:"description" json:"description"` // what it does
	Example     string `toml:"example" json:"example"`         // real-world usage
}

// Section is a named group of related commands.
type Section struct {
	ID          string         `toml:"id" json:"id"`
	Number      string         `toml:"number" json:"number"` // display label, e.g. "03"
	Title       string         `toml:"title" json:"title"`
	Description string         `toml:"description" json:"description"`
	Commands    []CommandEntry `toml:"commands" json:"commands"`
}

// Category is one entry of a locale's category navigation.
type Category struct {
	ID    string `toml:"id" json:"id"`
	Label string `toml:"label" json:"label"`
}

// Locale is one language's display text and command sections.
type Locale struct {
	Code              string `toml:"code" json:"code"`
	Title             string `toml:"title" json:"title"`
	Subtitle          string `toml:"subtitle" json:"subtitle"`
	SearchPlaceholder string `toml:"search_placeholder" json:"search_placeholder"`
	LangButtonLabel   string `toml:"lang_button" json:"lang_button"`
	ExpandAllLabel    string `toml:"expand_all" json:"expand_all"`
	CollapseAllLabel  string `toml:"collapse_all" json:"collapse_all"`
	ExampleLabel      string `toml:"example_label" json:"example_label"`
	NoResultsTitle    string `toml:"no_results_title" json:"no_results_title"`
	NoResultsHint     string `toml:"no_results_hint" json:"no_results_hint"`
	CopiedToast       string `toml:"copied_toast" json:"copied_toast"`
	CopyLabel         string `toml:"copy_label" json:"copy_label"`

	Categories []Category `toml:"categories" json:"categories"`
	Sections   []Section  `toml:"sections" json:"sections"`
}

// HasCategory reports whether id is one of the locale's categories.
func (l *Locale) HasCategory(id string) bool {
	_, err := l.CategoryLabel(id)
	return err == nil
}

// CategoryLabel returns the display label of a category.
func (l *Locale) CategoryLabel(id string) (string, error) {
	for _, c := range l.Categories {
		if c.ID == id {
			return c.Label, nil
		}
	}
	return "", fmt.Errorf("category %q in locale %q: %w", id, l.Code, ErrNotFound)
}

// Section returns the section with the given id.
func (l *Locale) Section(id string) (Section, bool) {
	for _, s := range l.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// CommandCount returns the number of commands across all sections.
func (l *Locale) CommandCount() int {
	n := 0
	for _, s := range l.Sections {
		n += len(s.Commands)
	}
	return n
}

// CategoryCount returns the number of commands shown under a category.
// "all" counts every command; a category without a section counts zero.
func (l *Locale) CategoryCount(id string) int {
	if id == AllCategory {
		return l.CommandCount()
	}
	if s, ok := l.Section(id); ok {
		return len(s.Commands)
	}
	return 0
}

// Catalog maps language codes to locales. It is read-only once built.
type Catalog struct {
	order   []string
	locales map[string]*Locale
}

// Locale returns the locale for lang.
func (c *Catalog) Locale(lang string) (*Locale, error) {
	if loc, ok := c.locales[lang]; ok {
		return loc, nil
	}
	return nil, fmt.Errorf("language %q: %w", lang, ErrNotFound)
}

// Languages returns the language codes in catalog order.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.order)
}

// NextLanguage returns the language following lang in catalog order,
// wrapping around. With two languages this flips between them.
// Unknown codes yield the first language.
func (c *Catalog) NextLanguage(lang string) string {
	i := slices.Index(c.order, lang)
	if i < 0 {
		return c.order[0]
	}
	return c.order[(i+1)%len(c.order)]
}

// Hit is a command entry together with the section it belongs to.
type Hit struct {
	Section Section
	Entry   CommandEntry
}

// Lookup returns every entry whose command text equals command, in catalog
// order. The same text may appear in more than one section.
func (l *Locale) Lookup(command string) []Hit {
	var hits []Hit
	for _, s := range l.Sections {
		for _, cmd := range s.Commands {
			if cmd.Command == command {
				hits = append(hits, Hit{Section: s, Entry: cmd})
			}
		}
	}
	return hits
}
