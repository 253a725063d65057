package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitref/internal/catalog"
	"github.com/raphi011/gitref/internal/output"
	"github.com/raphi011/gitref/internal/render"
	"github.com/raphi011/gitref/internal/ui/static"
)

func newShowCmd(flags *globalFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "show <command>",
		Short:   "Show a command with its example",
		GroupID: GroupReference,
		Args:    cobra.ExactArgs(1),
		Long: `Show the card for a command, including its example.

The argument must equal the command text exactly. When the same command is
documented in several sections, every card is shown.`,
		Example: `  gitref show "git status"
  gitref show "git rebase <branch>" -L en`,
		ValidArgsFunction: completeCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			loc, err := resolveLocale(ctx, catalog.Default(), flags.lang)
			if err != nil {
				return err
			}

			hits := loc.Lookup(args[0])
			if len(hits) == 0 {
				return unknownCommandError(loc, args[0])
			}

			if jsonOutput {
				entries := make([]catalog.CommandEntry, len(hits))
				for i, h := range hits {
					entries[i] = h.Entry
				}
				return out.JSON(entries)
			}

			for i, h := range hits {
				if i > 0 {
					out.Println()
				}
				out.Print(static.RenderCard(cardFor(loc, h), h.Section.Title))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// cardFor builds an expanded card for a lookup hit.
func cardFor(loc *catalog.Locale, h catalog.Hit) render.Card {
	return render.Card{
		Command:      h.Entry.Command,
		Description:  h.Entry.Description,
		Example:      h.Entry.Example,
		ExampleLabel: loc.ExampleLabel,
		Expanded:     true,
	}
}

// unknownCommandError wraps catalog.ErrNotFound and lists close matches.
func unknownCommandError(loc *catalog.Locale, text string) error {
	suggestions := catalog.Suggest(loc, text, 3)
	if len(suggestions) == 0 {
		return fmt.Errorf("command %q: %w", text, catalog.ErrNotFound)
	}
	return fmt.Errorf("command %q: %w\n\nDid you mean:\n  %s",
		text, catalog.ErrNotFound, strings.Join(suggestions, "\n  "))
}
