package catalog

import "github.com/sahilm/fuzzy"

// commandSource implements fuzzy.Source over a locale's command texts.
type commandSource []string

func (s commandSource) String(i int) string { return s[i] }
func (s commandSource) Len() int            { return len(s) }

// Commands returns the distinct command texts of a locale in catalog order.
func (l *Locale) Commands() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range l.Sections {
		for _, cmd := range s.Commands {
			if !seen[cmd.Command] {
				seen[cmd.Command] = true
				out = append(out, cmd.Command)
			}
		}
	}
	return out
}

// Suggest returns up to n command texts that fuzzy-match text, best first.
// Used for "did you mean" hints when an exact lookup fails.
func Suggest(loc *Locale, text string, n int) []string {
	if text == "" || n <= 0 {
		return nil
	}
	matches := fuzzy.FindFrom(text, commandSource(loc.Commands()))
	out := make([]string, 0, min(n, len(matches)))
	for _, m := range matches {
		if len(out) == n {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
