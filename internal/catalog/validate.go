package catalog

import (
	"errors"
	"fmt"
)

// Validate checks the per-locale invariants and returns every violation
// joined into one error.
func Validate(c *Catalog) error {
	var errs []error
	for _, code := range c.order {
		errs = append(errs, validateLocale(c.locales[code])...)
	}
	return errors.Join(errs...)
}

func validateLocale(loc *Locale) []error {
	var errs []error

	if !loc.HasCategory(AllCategory) {
		errs = append(errs, fmt.Errorf("locale %q: missing %q category", loc.Code, AllCategory))
	}

	seenCategories := make(map[string]bool, len(loc.Categories))
	for _, cat := range loc.Categories {
		if cat.ID == "" {
			errs = append(errs, fmt.Errorf("locale %q: category with empty id", loc.Code))
			continue
		}
		if seenCategories[cat.ID] {
			errs = append(errs, fmt.Errorf("locale %q: duplicate category %q", loc.Code, cat.ID))
		}
		seenCategories[cat.ID] = true
	}

	seenSections := make(map[string]bool, len(loc.Sections))
	for _, s := range loc.Sections {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("locale %q: section %q has empty id", loc.Code, s.Title))
			continue
		}
		if s.ID == AllCategory {
			errs = append(errs, fmt.Errorf("locale %q: section id %q is reserved", loc.Code, AllCategory))
		}
		if seenSections[s.ID] {
			errs = append(errs, fmt.Errorf("locale %q: duplicate section %q", loc.Code, s.ID))
		}
		seenSections[s.ID] = true

		if !seenCategories[s.ID] {
			errs = append(errs, fmt.Errorf("locale %q: section %q has no category", loc.Code, s.ID))
		}

		for i, cmd := range s.Commands {
			if err := validateEntry(cmd); err != nil {
				errs = append(errs, fmt.Errorf("locale %q: section %q command %d: %w", loc.Code, s.ID, i, err))
			}
		}
	}

	return errs
}

func validateEntry(e CommandEntry) error {
	switch {
	case e.Command == "":
		return errors.New("empty command")
	case e.Description == "":
		return fmt.Errorf("%q: empty description", e.Command)
	case e.Example == "":
		return fmt.Errorf("%q: empty example", e.Command)
	}
	return nil
}
