// Package main generates a markdown command reference from the catalog.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/gitref/internal/catalog"
)

func main() {
	var (
		catalogDir string
		outputFile string
		lang       string
	)

	flag.StringVar(&catalogDir, "catalog", "", "directory with locale *.toml files (default: built-in catalog)")
	flag.StringVar(&outputFile, "out", "docs/COMMANDS.md", "output markdown file")
	flag.StringVar(&lang, "lang", "en", "language to render")
	flag.Parse()

	cat := catalog.Default()
	if catalogDir != "" {
		var err error
		cat, err = catalog.Load(os.DirFS(catalogDir), ".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading catalog: %v\n", err)
			os.Exit(1)
		}
	}

	loc, err := cat.Locale(lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating output directory: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := RenderMarkdown(f, loc); err != nil {
		fmt.Fprintf(os.Stderr, "error rendering markdown: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s with %d sections\n", outputFile, len(loc.Sections))
}
