package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitref/internal/catalog"
	"github.com/raphi011/gitref/internal/clipboard"
	"github.com/raphi011/gitref/internal/filter"
	"github.com/raphi011/gitref/internal/log"
	"github.com/raphi011/gitref/internal/ui/prompt"
	"github.com/raphi011/gitref/internal/ui/styles"
)

var errNoCommand = errors.New("requires a command or search query")

func newCopyCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "copy [command|query]",
		Short:   "Copy a command to the clipboard",
		Aliases: []string{"cp"},
		GroupID: GroupUtility,
		Args:    cobra.MaximumNArgs(1),
		Long: `Copy a command to the system clipboard.

An argument that equals a command text is copied directly. Otherwise it is
used as a search query: a single match is copied, several matches open a
selection prompt on a terminal and are listed otherwise. Without an
argument a terminal prompts for the query.`,
		Example: `  gitref copy "git status"    # Exact command
  gitref copy reset           # Pick among reset commands
  gitref copy                 # Prompt for a query`,
		ValidArgsFunction: completeCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			loc, err := resolveLocale(ctx, catalog.Default(), flags.lang)
			if err != nil {
				return err
			}

			var text string
			if len(args) == 1 {
				text = args[0]
			}
			if text == "" {
				if !isInteractive() {
					return errNoCommand
				}
				res, err := prompt.TextInput("Search commands", loc.SearchPlaceholder)
				if err != nil {
					return err
				}
				if res.Cancelled || strings.TrimSpace(res.Value) == "" {
					return nil
				}
				text = res.Value
			}

			command, err := pickCommand(loc, text)
			if err != nil || command == "" {
				return err
			}
			return copyCommand(ctx, loc, command)
		},
	}

	return cmd
}

// pickCommand resolves text to a single command. An empty result without
// error means the user cancelled the selection.
func pickCommand(loc *catalog.Locale, text string) (string, error) {
	if len(loc.Lookup(text)) > 0 {
		return text, nil
	}

	candidates := matchingCommands(loc, text)
	switch len(candidates) {
	case 0:
		return "", unknownCommandError(loc, text)
	case 1:
		return candidates[0].Command, nil
	}

	if !isInteractive() {
		lines := make([]string, len(candidates))
		for i, c := range candidates {
			lines[i] = c.Command
		}
		return "", fmt.Errorf("%d commands match %q:\n  %s", len(candidates), text, strings.Join(lines, "\n  "))
	}

	options := make([]prompt.Option, len(candidates))
	for i, c := range candidates {
		options[i] = prompt.Option{Title: c.Command, Detail: c.Description}
	}
	res, err := prompt.Select(fmt.Sprintf("%d commands match %q", len(candidates), text), options)
	if err != nil || res.Cancelled {
		return "", err
	}
	return res.Value, nil
}

// matchingCommands returns the entries matching query across all sections,
// one per distinct command text, in catalog order.
func matchingCommands(loc *catalog.Locale, query string) []catalog.CommandEntry {
	seen := make(map[string]bool)
	var out []catalog.CommandEntry
	for _, s := range loc.Sections {
		for _, e := range s.Commands {
			if seen[e.Command] || !filter.Matches(e, query) {
				continue
			}
			seen[e.Command] = true
			out = append(out, e)
		}
	}
	return out
}

func copyCommand(ctx context.Context, loc *catalog.Locale, command string) error {
	l := log.FromContext(ctx)

	if err := clipboard.FromContext(ctx).WriteAll(command); err != nil {
		l.Debug("clipboard write failed", "command", command, "err", err)
		return fmt.Errorf("copy %q: %w", command, err)
	}

	l.Printf("%s %s\n", styles.SuccessStyle.Render(styles.CurrentSymbols().Copied+" "+loc.CopiedToast), command)
	return nil
}
