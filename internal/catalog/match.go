package catalog

import (
	"strings"

	"golang.org/x/text/language"
)

// Match picks the catalog language that best fits the given preferences,
// in priority order. Preferences may be BCP 47 tags ("gu", "en-GB") or POSIX
// locale names ("gu_IN.UTF-8"). Empty, "auto" and unparseable values are
// ignored. Falls back to the first catalog language.
func (c *Catalog) Match(preferred ...string) string {
	supported := make([]language.Tag, len(c.order))
	for i, code := range c.order {
		supported[i] = language.Make(code)
	}
	matcher := language.NewMatcher(supported)

	for _, p := range preferred {
		if _, ok := c.locales[p]; ok {
			return p
		}
		tag, ok := parsePreference(p)
		if !ok {
			continue
		}
		if _, idx, conf := matcher.Match(tag); conf != language.No {
			return c.order[idx]
		}
	}
	return c.order[0]
}

func parsePreference(p string) (language.Tag, bool) {
	p = strings.TrimSpace(p)
	if p == "" || strings.EqualFold(p, "auto") {
		return language.Und, false
	}
	// gu_IN.UTF-8@euro -> gu-IN
	if i := strings.IndexAny(p, ".@"); i >= 0 {
		p = p[:i]
	}
	p = strings.ReplaceAll(p, "_", "-")
	tag, err := language.Parse(p)
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}
