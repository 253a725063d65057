package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryCatalog represents invalid catalog data.
	CategoryCatalog IssueCategory = "catalog"
	// CategoryParity represents translation gaps between locales.
	CategoryParity IssueCategory = "parity"
	// CategoryConfig represents problems with the config file.
	CategoryConfig IssueCategory = "config"
	// CategoryClipboard represents a missing clipboard utility.
	CategoryClipboard IssueCategory = "clipboard"
)

// Severity tells whether an issue breaks gitref or only degrades it.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        `json:"key"`         // locale code, config path or component
	Description string        `json:"description"` // human-readable description
	Category    IssueCategory `json:"category"`
	Severity    Severity      `json:"severity"`
}

// Stats summarizes what was checked.
type Stats struct {
	Locales   int  `json:"locales"`   // locales loaded
	Sections  int  `json:"sections"`  // sections across all locales
	Commands  int  `json:"commands"`  // command entries across all locales
	Gaps      int  `json:"gaps"`      // locales with parity gaps
	ConfigOK  bool `json:"config_ok"` // config loaded and valid
	Clipboard bool `json:"clipboard"` // clipboard utility available
}

// Report is the outcome of a doctor run.
type Report struct {
	Stats  Stats   `json:"stats"`
	Issues []Issue `json:"issues"`
}

// Errors returns the number of error-severity issues.
func (r Report) Errors() int {
	n := 0
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			n++
		}
	}
	return n
}
