package catalog

// ParityGap describes how a locale's section ids differ from the reference
// (first) language.
type ParityGap struct {
	Language string
	Missing  []string // in the reference language, absent here
	Extra    []string // here, absent in the reference language
}

// Parity compares every locale against the reference language and returns
// one gap per locale whose section ids differ. An empty result means all
// locales are structurally identical.
func Parity(c *Catalog) []ParityGap {
	ref := c.locales[c.order[0]]
	refIDs := sectionIDs(ref)

	var gaps []ParityGap
	for _, code := range c.order[1:] {
		loc := c.locales[code]
		ids := sectionIDs(loc)

		gap := ParityGap{Language: code}
		for _, s := range ref.Sections {
			if !ids[s.ID] {
				gap.Missing = append(gap.Missing, s.ID)
			}
		}
		for _, s := range loc.Sections {
			if !refIDs[s.ID] {
				gap.Extra = append(gap.Extra, s.ID)
			}
		}
		if len(gap.Missing) > 0 || len(gap.Extra) > 0 {
			gaps = append(gaps, gap)
		}
	}
	return gaps
}

func sectionIDs(loc *Locale) map[string]bool {
	ids := make(map[string]bool, len(loc.Sections))
	for _, s := range loc.Sections {
		ids[s.ID] = true
	}
	return ids
}
