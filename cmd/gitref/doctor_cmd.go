package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitref/internal/catalog"
	"github.com/raphi011/gitref/internal/clipboard"
	"github.com/raphi011/gitref/internal/config"
	"github.com/raphi011/gitref/internal/doctor"
	"github.com/raphi011/gitref/internal/output"
)

func newDoctorCmd() *cobra.Command {
	var (
		catalogDir string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose catalog and config issues",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Diagnose catalog, translation and configuration issues.

Checks:
- Every locale is structurally valid (ids, numbers, non-empty commands)
- Every language documents the same sections as English
- The config file parses and names a supported language
- A clipboard utility is available

With --catalog, the *.toml locale files in the given directory are checked
instead of the built-in catalog.`,
		Example: `  gitref doctor                     # Check the built-in catalog
  gitref doctor --catalog ./locales # Check translations being edited
  gitref doctor --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			in := doctor.Input{
				Config:    config.FromContext(ctx),
				ConfigErr: configErr,
				Clipboard: clipboard.Available(),
			}

			if catalogDir != "" {
				in.Catalog, in.CatalogErr = catalog.Load(os.DirFS(catalogDir), ".")
			} else {
				in.Catalog = catalog.Default()
			}
			if path, err := config.Path(); err == nil {
				in.ConfigPath = path
			}

			if !jsonOutput {
				return doctor.Run(ctx, in)
			}

			report := doctor.Check(in)
			if err := output.FromContext(ctx).JSON(report); err != nil {
				return err
			}
			if n := report.Errors(); n > 0 {
				return fmt.Errorf("doctor found %d errors", n)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogDir, "catalog", "", "Check locale files in this directory")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.MarkFlagDirname("catalog")

	return cmd
}
