// advisor is a local CLI front end for the recommendation engine: it
// analyzes a task description given on the command line and prints a
// colored, human-readable report without needing a running server.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"lerian-claude-advisor/internal/analysis"
	"lerian-claude-advisor/internal/catalog"
	"lerian-claude-advisor/internal/config"
	"lerian-claude-advisor/internal/recommend"
)

var (
	headerColor   = color.New(color.FgCyan, color.Bold)
	featureColor  = color.New(color.FgGreen, color.Bold)
	priorityColor = color.New(color.FgYellow, color.Bold)
	reasonColor   = color.New(color.Faint)
	errColor      = color.New(color.FgRed, color.Bold)
)

func main() {
	var (
		quick   = flag.Bool("quick", false, "Print only the quick analysis (keywords, categories, complexity)")
		noColor = flag.Bool("no-color", false, "Disable colored output")
	)
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	task := strings.Join(flag.Args(), " ")
	if err := analysis.ValidateTask(task); err != nil {
		errColor.Fprintln(os.Stderr, "error:", err)
		fmt.Fprintln(os.Stderr, "usage: advisor [-quick] <task description>")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		errColor.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	store, err := catalog.Load(cfg.Catalog.Dir)
	if err != nil {
		errColor.Fprintln(os.Stderr, "error loading catalogs:", err)
		os.Exit(1)
	}

	generator := recommend.NewGenerator(store)

	if *quick {
		printQuick(generator.Analyzer().Quick(task))
		return
	}
	printReport(generator.Recommend(task))
}

func printQuick(q *analysis.QuickResult) {
	headerColor.Println("Quick analysis")
	fmt.Printf("  complexity: %s\n", q.Complexity)
	fmt.Printf("  keywords:   %s\n", strings.Join(q.Keywords, ", "))
	fmt.Printf("  categories: %s\n", strings.Join(q.TopCategories, ", "))
}

func printReport(result *recommend.Result) {
	headerColor.Printf("Task: %s\n", result.Analysis.Task)
	fmt.Printf("Complexity: %s\n", result.Analysis.Complexity)
	if len(result.Analysis.TopCategories) > 0 {
		fmt.Printf("Categories: %s\n", strings.Join(result.Analysis.TopCategories, ", "))
	}
	if len(result.Analysis.DetectedKeywords) > 0 {
		fmt.Printf("Keywords:   %s\n", strings.Join(result.Analysis.DetectedKeywords, ", "))
	}

	if result.Summary.TotalRecommendations == 0 {
		fmt.Println("\nNo specific recommendations found for this task.")
		return
	}

	if len(result.Summary.TopPriority) > 0 {
		fmt.Println()
		priorityColor.Println("Top priority")
		for i := range result.Summary.TopPriority {
			printFeature(&result.Summary.TopPriority[i])
		}
	}

	if len(result.Summary.QuickWins) > 0 {
		fmt.Println()
		priorityColor.Println("Quick wins")
		for i := range result.Summary.QuickWins {
			printFeature(&result.Summary.QuickWins[i])
		}
	}

	for _, t := range catalog.FeatureTypes {
		features := result.Recommendations.ByType(t)
		if len(features) == 0 {
			continue
		}
		fmt.Println()
		headerColor.Printf("%s\n", cases.Title(language.English).String(t.Plural()))
		for i := range features {
			printFeature(&features[i])
		}
	}

	fmt.Println()
	fmt.Printf("%d recommendations total\n", result.Summary.TotalRecommendations)
}

func printFeature(sf *recommend.ScoredFeature) {
	marker := " "
	if sf.IsPriority {
		marker = "*"
	}
	featureColor.Printf("  %s %s", marker, sf.Feature.Name)
	fmt.Printf(" (%d)\n", sf.Score)
	if sf.Feature.InstallCommand != "" {
		fmt.Printf("      install: %s\n", sf.Feature.InstallCommand)
	}
	for _, reason := range sf.MatchReasons {
		reasonColor.Printf("      - %s\n", reason)
	}
}
