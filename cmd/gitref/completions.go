package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitref/internal/catalog"
)

// completionLocale resolves the locale named by --lang for completion,
// falling back to the reference language.
func completionLocale(cmd *cobra.Command) *catalog.Locale {
	cat := catalog.Default()
	lang, _ := cmd.Flags().GetString("lang")
	if loc, err := cat.Locale(lang); err == nil {
		return loc
	}
	loc, _ := cat.Locale(cat.Languages()[0])
	return loc
}

// completeLanguages provides language code completion for --lang.
func completeLanguages(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cat := catalog.Default()
	var matches []string
	for _, code := range cat.Languages() {
		if !strings.HasPrefix(code, toComplete) {
			continue
		}
		loc, _ := cat.Locale(code)
		matches = append(matches, code+"\t"+loc.Title)
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeCategories provides category id completion with localized labels.
func completeCategories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	loc := completionLocale(cmd)
	var matches []string
	for _, c := range loc.Categories {
		if strings.HasPrefix(c.ID, toComplete) {
			matches = append(matches, c.ID+"\t"+c.Label)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeCommands provides command text completion for the first argument.
func completeCommands(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var matches []string
	for _, c := range completionLocale(cmd).Commands() {
		if strings.HasPrefix(c, toComplete) {
			matches = append(matches, c)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
