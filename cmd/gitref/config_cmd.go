package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitref/internal/catalog"
	"github.com/raphi011/gitref/internal/config"
	"github.com/raphi011/gitref/internal/output"
	"github.com/raphi011/gitref/internal/ui/prompt"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage gitref configuration.

Config file: ~/.config/gitref/config.toml (override with GITREF_CONFIG)`,
		Example: `  gitref config init      # Create default config
  gitref config show      # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  gitref config init      # Create config
  gitref config init -f   # Overwrite existing config
  gitref config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Print(config.DefaultConfig())
				return nil
			}

			if !force && isInteractive() {
				path, err := config.Path()
				if err != nil {
					return err
				}
				if _, err := os.Stat(path); err == nil {
					res, err := prompt.Confirm(fmt.Sprintf("Overwrite %s?", path))
					if err != nil {
						return err
					}
					if !res.Confirmed {
						return nil
					}
					force = true
				}
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}
			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Example: `  gitref config show
  gitref config show --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if jsonOutput {
				return out.JSON(cfg)
			}

			path, err := config.Path()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				path += " (not found, using defaults)"
			}
			out.Printf("Config file: %s\n\n", path)

			cat := catalog.Default()
			resolved := cat.Match(cfg.ResolveLanguage("")...)
			out.Printf("language: %s (resolved: %s)\n", cfg.Language, resolved)
			out.Printf("theme.name: %s\n", cfg.Theme.Name)
			out.Printf("theme.mode: %s\n", cfg.Theme.Mode)
			out.Printf("theme.nerdfont: %v\n", cfg.Theme.Nerdfont)
			out.Printf("feedback.toast_duration: %s\n", cfg.Feedback.Toast())
			out.Printf("feedback.copied_duration: %s\n", cfg.Feedback.Copied())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
