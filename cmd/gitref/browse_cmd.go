package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitref/internal/catalog"
	"github.com/raphi011/gitref/internal/clipboard"
	"github.com/raphi011/gitref/internal/config"
	"github.com/raphi011/gitref/internal/log"
	"github.com/raphi011/gitref/internal/state"
	"github.com/raphi011/gitref/internal/ui/browser"
)

var errNotTerminal = errors.New("the browser needs an interactive terminal (use 'gitref list' instead)")

func newBrowseCmd(flags *globalFlags) *cobra.Command {
	var (
		category string
		query    string
	)

	cmd := &cobra.Command{
		Use:     "browse",
		Short:   "Open the interactive browser",
		Aliases: []string{"b"},
		GroupID: GroupReference,
		Args:    cobra.NoArgs,
		Long: `Open the interactive command browser.

Keys:
  /            search (esc leaves the input, esc again clears it)
  tab          next category (shift+tab previous, 1-9 and 0 jump)
  j/k          move between cards
  enter        expand or collapse the focused card
  e / c        expand all / collapse all visible cards
  y            copy the focused command
  L            switch language
  ?            full help
  q            quit

Set GITREF_LOG to a file path to write debug output while browsing.`,
		Example: `  gitref browse
  gitref browse -c remote
  gitref browse --query rebase -L en`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isInteractive() {
				return errNotTerminal
			}
			return runBrowse(cmd.Context(), flags.lang, category, query)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Start in this category")
	cmd.Flags().StringVar(&query, "query", "", "Start with this search query")
	cmd.RegisterFlagCompletionFunc("category", completeCategories)

	return cmd
}

func runBrowse(ctx context.Context, lang, category, query string) error {
	cat := catalog.Default()
	cfg := config.FromContext(ctx)

	loc, err := resolveLocale(ctx, cat, lang)
	if err != nil {
		return err
	}

	st := state.New(loc.Code)
	if category != "" {
		if _, err := loc.CategoryLabel(category); err != nil {
			return err
		}
		st = st.SelectCategory(category)
	}

	// The browser owns the terminal, so debug output goes to a file or nowhere.
	logger := log.New(io.Discard, false, true)
	if path := os.Getenv("GITREF_LOG"); path != "" {
		l, f, err := log.OpenFile(path)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = l
	}

	return browser.Run(ctx, browser.Options{
		Catalog:        cat,
		State:          st,
		Query:          query,
		Clipboard:      clipboard.FromContext(ctx),
		Logger:         logger,
		ToastDuration:  cfg.Feedback.Toast(),
		CopiedDuration: cfg.Feedback.Copied(),
	})
}
