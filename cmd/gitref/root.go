package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitref/internal/config"
	"github.com/raphi011/gitref/internal/log"
	"github.com/raphi011/gitref/internal/output"
	"github.com/raphi011/gitref/internal/ui/styles"
)

// Command group IDs for organizing help output
const (
	GroupReference = "reference"
	GroupUtility   = "utility"
	GroupConfig    = "config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	quiet   bool
	lang    string
}

// configErr holds the error returned by config.Load, reported by doctor.
var configErr error

func newRootCmd() *cobra.Command {
	var (
		flags    globalFlags
		category string
		query    string
	)

	cmd := &cobra.Command{
		Use:   "gitref",
		Short: "Bilingual Git command reference",
		Long: `gitref is a searchable Git command reference in English and Gujarati.

On a terminal it opens an interactive browser with category navigation,
live search, expandable examples and copy to clipboard. When output is
redirected it prints the same reference as tables.`,
		Example: `  gitref                       # Open the browser
  gitref -L gu -c branching    # Browser in Gujarati, branching category
  gitref --query merge | less  # Print matching commands`,
		Args:                       cobra.NoArgs,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = log.WithLogger(ctx, log.New(os.Stderr, flags.verbose, flags.quiet))
			cmd.SetContext(ctx)

			// Completion output must not depend on the terminal.
			if cmd.Name() == "completion" || cmd.Name() == cobra.ShellCompRequestCmd {
				return nil
			}
			styles.Init(config.FromContext(ctx).Theme)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if isInteractive() && isTerminal(os.Stdout) {
				return runBrowse(cmd.Context(), flags.lang, category, query)
			}
			return runList(cmd.Context(), listOptions{
				lang:     flags.lang,
				category: category,
				query:    query,
			})
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show debug output")
	cmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress all log output")
	cmd.PersistentFlags().StringVarP(&flags.lang, "lang", "L", "", "Display language (en, gu)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.RegisterFlagCompletionFunc("lang", completeLanguages)

	cmd.Flags().StringVarP(&category, "category", "c", "", "Start in this category")
	cmd.Flags().StringVar(&query, "query", "", "Start with this search query")
	cmd.RegisterFlagCompletionFunc("category", completeCategories)

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: GroupReference, Title: "Reference Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Reference commands
	cmd.AddCommand(newBrowseCmd(&flags))
	cmd.AddCommand(newListCmd(&flags))
	cmd.AddCommand(newCategoriesCmd(&flags))
	cmd.AddCommand(newShowCmd(&flags))

	// Utility commands
	cmd.AddCommand(newCopyCmd(&flags))

	// Config commands
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// Execute builds the root command and runs it.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		configErr = err
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, &loadedCfg)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'gitref -h' for help")
		cancel()
		os.Exit(1)
	}
}
