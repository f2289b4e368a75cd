// docs renders the loaded catalogs into a markdown reference and an HTML
// page for the project site.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"lerian-claude-advisor/internal/catalog"
)

func main() {
	var (
		catalogDir = flag.String("catalog-dir", "", "Optional catalog override directory")
		outDir     = flag.String("out", "docs", "Output directory")
	)
	flag.Parse()

	store, err := catalog.Load(*catalogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load catalogs: %v\n", err)
		os.Exit(1)
	}

	markdown := renderMarkdown(store)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output dir: %v\n", err)
		os.Exit(1)
	}

	mdPath := filepath.Join(*outDir, "catalog.md")
	if err := os.WriteFile(mdPath, []byte(markdown), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", mdPath, err)
		os.Exit(1)
	}

	var html bytes.Buffer
	html.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>Claude Setup Advisor Catalog</title></head><body>\n")
	if err := goldmark.New().Convert([]byte(markdown), &html); err != nil {
		fmt.Fprintf(os.Stderr, "failed to render HTML: %v\n", err)
		os.Exit(1)
	}
	html.WriteString("</body></html>\n")

	htmlPath := filepath.Join(*outDir, "catalog.html")
	if err := os.WriteFile(htmlPath, html.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", htmlPath, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s and %s\n", mdPath, htmlPath)
}

func renderMarkdown(store *catalog.Store) string {
	var b strings.Builder

	b.WriteString("# Claude Setup Advisor Catalog\n\n")

	b.WriteString("## Categories\n\n")
	for _, c := range store.Categories() {
		fmt.Fprintf(&b, "### %s (`%s`)\n\n%s\n\n", c.Name, c.ID, c.Description)
		fmt.Fprintf(&b, "Keywords: %s\n\n", strings.Join(c.Keywords, ", "))
	}

	b.WriteString("## Features\n\n")
	for _, t := range catalog.FeatureTypes {
		features := store.FeaturesByType(t)
		if len(features) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", t.Plural())
		for i := range features {
			f := &features[i]
			fmt.Fprintf(&b, "#### %s (`%s`)\n\n%s\n\n", f.Name, f.ID, f.Description)
			if f.WhenToUse != "" {
				fmt.Fprintf(&b, "*When to use:* %s\n\n", f.WhenToUse)
			}
			if f.InstallCommand != "" {
				fmt.Fprintf(&b, "*Install:* `%s`\n\n", f.InstallCommand)
			}
		}
	}

	b.WriteString("## Task patterns\n\n")
	for _, p := range store.Patterns() {
		fmt.Fprintf(&b, "- `%s` — %s (boosts: %s)\n", p.Pattern, p.Description, strings.Join(p.Boost, ", "))
	}
	b.WriteString("\n")

	return b.String()
}
