package doctor

import (
	"fmt"
	"strings"

	"github.com/raphi011/gitref/internal/catalog"
	"github.com/raphi011/gitref/internal/config"
)

// Input holds everything doctor inspects.
type Input struct {
	Catalog    *catalog.Catalog // nil when CatalogErr is set
	CatalogErr error            // parse or validation failure of the catalog
	Config     *config.Config
	ConfigPath string
	ConfigErr  error // error returned by config.Load
	Clipboard  bool  // clipboard.Available()
}

// Check runs all checks and returns the report.
func Check(in Input) Report {
	var r Report

	r.Issues = append(r.Issues, checkCatalog(in.Catalog, in.CatalogErr)...)
	if in.Catalog != nil {
		for _, code := range in.Catalog.Languages() {
			loc, err := in.Catalog.Locale(code)
			if err != nil {
				continue
			}
			r.Stats.Locales++
			r.Stats.Sections += len(loc.Sections)
			r.Stats.Commands += loc.CommandCount()
		}
		gaps := checkParity(in.Catalog)
		r.Stats.Gaps = len(gaps)
		r.Issues = append(r.Issues, gaps...)
	}

	configIssues := checkConfig(in)
	r.Stats.ConfigOK = len(configIssues) == 0
	r.Issues = append(r.Issues, configIssues...)

	r.Stats.Clipboard = in.Clipboard
	if !in.Clipboard {
		r.Issues = append(r.Issues, Issue{
			Key:         "clipboard",
			Description: "no clipboard utility found (install xclip, xsel or wl-clipboard); copying is disabled",
			Category:    CategoryClipboard,
			Severity:    SeverityWarning,
		})
	}

	return r
}

// checkCatalog reports one issue per joined validation error.
func checkCatalog(cat *catalog.Catalog, loadErr error) []Issue {
	err := loadErr
	if err == nil && cat != nil {
		err = catalog.Validate(cat)
	}
	if err == nil {
		return nil
	}

	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	issues := make([]Issue, 0, len(errs))
	for _, e := range errs {
		issues = append(issues, Issue{
			Key:         "catalog",
			Description: e.Error(),
			Category:    CategoryCatalog,
			Severity:    SeverityError,
		})
	}
	return issues
}

func checkParity(cat *catalog.Catalog) []Issue {
	var issues []Issue
	for _, gap := range catalog.Parity(cat) {
		var parts []string
		if len(gap.Missing) > 0 {
			parts = append(parts, "missing sections: "+strings.Join(gap.Missing, ", "))
		}
		if len(gap.Extra) > 0 {
			parts = append(parts, "extra sections: "+strings.Join(gap.Extra, ", "))
		}
		issues = append(issues, Issue{
			Key:         gap.Language,
			Description: strings.Join(parts, "; "),
			Category:    CategoryParity,
			Severity:    SeverityWarning,
		})
	}
	return issues
}

func checkConfig(in Input) []Issue {
	key := in.ConfigPath
	if key == "" {
		key = "config"
	}

	var issues []Issue
	if in.ConfigErr != nil {
		issues = append(issues, Issue{
			Key:         key,
			Description: in.ConfigErr.Error(),
			Category:    CategoryConfig,
			Severity:    SeverityError,
		})
	}
	if in.Config != nil && in.Catalog != nil {
		if err := config.ValidateLanguage(in.Config.Language, in.Catalog.Languages()); err != nil {
			issues = append(issues, Issue{
				Key:         key,
				Description: fmt.Sprintf("%v (falling back to automatic selection)", err),
				Category:    CategoryConfig,
				Severity:    SeverityWarning,
			})
		}
	}
	return issues
}
