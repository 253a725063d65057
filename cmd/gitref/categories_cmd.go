package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gitref/internal/catalog"
	"github.com/raphi011/gitref/internal/output"
	"github.com/raphi011/gitref/internal/ui/static"
)

// categoryJSON is one entry of gitref categories --json.
type categoryJSON struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Commands int    `json:"commands"`
}

func newCategoriesCmd(flags *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "categories",
		Short:   "List categories",
		Aliases: []string{"cat"},
		GroupID: GroupReference,
		Args:    cobra.NoArgs,
		Long: `List the category ids, their labels and how many commands each holds.

The ids are what --category accepts.`,
		Example: `  gitref categories
  gitref categories -L gu --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			loc, err := resolveLocale(ctx, catalog.Default(), flags.lang)
			if err != nil {
				return err
			}

			if !jsonOutput {
				out.Print(static.RenderCategories(loc))
				return nil
			}

			result := make([]categoryJSON, 0, len(loc.Categories))
			for _, c := range loc.Categories {
				result = append(result, categoryJSON{
					ID:       c.ID,
					Label:    c.Label,
					Commands: loc.CategoryCount(c.ID),
				})
			}
			return out.JSON(result)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
