package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitref/internal/catalog"
	"github.com/raphi011/gitref/internal/filter"
	"github.com/raphi011/gitref/internal/log"
	"github.com/raphi011/gitref/internal/output"
	"github.com/raphi011/gitref/internal/render"
	"github.com/raphi011/gitref/internal/state"
	"github.com/raphi011/gitref/internal/ui/static"
)

type listOptions struct {
	lang     string
	category string
	query    string
	examples bool
	json     bool
}

// listJSON is the --json shape of gitref list.
type listJSON struct {
	Language string            `json:"language"`
	Category string            `json:"category"`
	Query    string            `json:"query,omitempty"`
	Count    int               `json:"count"`
	Sections []catalog.Section `json:"sections"`
}

func newListCmd(flags *globalFlags) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:     "list [query]",
		Short:   "Print commands as tables",
		Aliases: []string{"ls"},
		GroupID: GroupReference,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the visible sections of the reference.

The optional query is matched case-insensitively against each command, its
description and its example. Sections without a match are left out.`,
		Example: `  gitref list                  # Everything
  gitref list merge            # Commands mentioning "merge"
  gitref list -c remote -e     # Remote commands with examples
  gitref list -L gu --json     # Gujarati reference as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.lang = flags.lang
			if len(args) == 1 {
				opts.query = args[0]
			}
			return runList(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "Only show this category")
	cmd.Flags().BoolVarP(&opts.examples, "examples", "e", false, "Include usage examples")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")
	cmd.RegisterFlagCompletionFunc("category", completeCategories)

	return cmd
}

func runList(ctx context.Context, opts listOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)
	cat := catalog.Default()

	loc, err := resolveLocale(ctx, cat, opts.lang)
	if err != nil {
		return err
	}

	st := state.New(loc.Code)
	if opts.category != "" {
		st = st.SelectCategory(opts.category)
	}
	l.Debug("list", "lang", st.Language, "category", st.Category, "query", opts.query)

	if opts.json {
		visible, err := filter.ComputeVisible(cat, st.Language, st.Category, opts.query)
		if err != nil {
			return err
		}
		if visible == nil {
			visible = []catalog.Section{}
		}
		return out.JSON(listJSON{
			Language: st.Language,
			Category: st.Category,
			Query:    opts.query,
			Count:    filter.Count(visible),
			Sections: visible,
		})
	}

	tree, err := render.Build(cat, st, opts.query)
	if err != nil {
		return err
	}
	if opts.examples {
		tree, err = render.Build(cat, st.ExpandAll(tree.Commands()), opts.query)
		if err != nil {
			return err
		}
	}

	out.Print(static.RenderTree(tree, opts.examples))
	return nil
}
