package doctor

import (
	"context"
	"fmt"

	"github.com/raphi011/gitref/internal/output"
	"github.com/raphi011/gitref/internal/ui/styles"
)

// Run performs all checks and prints a summary and the issues found.
// It returns an error when at least one error-severity issue exists.
func Run(ctx context.Context, in Input) error {
	out := output.FromContext(ctx)

	out.Println("Checking catalog...")
	out.Println("Checking locale parity...")
	out.Println("Checking config...")
	out.Println("Checking clipboard...")

	report := Check(in)
	printSummary(out, report.Stats)

	if len(report.Issues) == 0 {
		out.Printf("\n%s No issues found\n", styles.SuccessStyle.Render("✓"))
		return nil
	}

	out.Printf("\nFound %d issues:\n", len(report.Issues))
	printIssuesByCategory(out, report.Issues)

	if n := report.Errors(); n > 0 {
		return fmt.Errorf("doctor found %d errors", n)
	}
	return nil
}

// printSummary prints a categorized summary.
func printSummary(out *output.Printer, stats Stats) {
	ok := styles.SuccessStyle.Render("✓")
	warn := styles.WarningStyle.Render("⚠")
	bad := styles.ErrorStyle.Render("✗")

	out.Println()
	out.Printf("  %s %d locales, %d sections, %d commands\n", ok, stats.Locales, stats.Sections, stats.Commands)
	if stats.Gaps > 0 {
		out.Printf("  %s %d incomplete translations\n", warn, stats.Gaps)
	}
	if stats.ConfigOK {
		out.Printf("  %s config valid\n", ok)
	} else {
		out.Printf("  %s config has problems\n", bad)
	}
	if stats.Clipboard {
		out.Printf("  %s clipboard available\n", ok)
	} else {
		out.Printf("  %s clipboard unavailable\n", warn)
	}
}

// printIssuesByCategory groups and prints issues.
func printIssuesByCategory(out *output.Printer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryCatalog:   "Catalog issues",
		CategoryParity:    "Translation gaps",
		CategoryConfig:    "Config issues",
		CategoryClipboard: "Clipboard",
	}

	for _, cat := range []IssueCategory{CategoryCatalog, CategoryParity, CategoryConfig, CategoryClipboard} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		out.Printf("\n%s:\n", categoryNames[cat])
		for _, issue := range catIssues {
			out.Printf("  • %s: %s\n", issue.Key, issue.Description)
		}
	}
}
