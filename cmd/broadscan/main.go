// Package main provides the broad-recall candidate scan. It is
// intentionally permissive and may include false positives; the output is a
// candidate list to review and clean manually.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"courseaudit/internal/analysis"
)

func main() {
	input := flag.String("input", "outputs/courses.csv", "Path to the course CSV")
	output := flag.String("output", "outputs/courses_ai_candidates.csv", "Output path for the AI candidate list")
	prefixCol := flag.String("prefix-col", "prefix", "Column name for course prefix")
	numberCol := flag.String("number-col", "number", "Column name for course number")
	titleCol := flag.String("title-col", "title", "Column name for course title")
	descriptionCol := flag.String("description-col", "description", "Column name for course description")
	fuzzyThreshold := flag.Int("fuzzy-threshold", 85, "Fuzzy match threshold 0-100")
	disableFuzzy := flag.Bool("disable-fuzzy", false, "Disable fuzzy matching")
	workers := flag.Int("workers", runtime.NumCPU(), "Parallel classification workers")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		fmt.Println("Usage: ./bin/broadscan [OPTIONS]")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *fuzzyThreshold < 0 || *fuzzyThreshold > 100 {
		log.Fatalf("❌ Fuzzy threshold must be between 0 and 100, got %d\n", *fuzzyThreshold)
	}

	fmt.Printf("📂 Reading: %s\n", *input)

	count, err := analysis.RunBroad(analysis.BroadOptions{
		InputCourses: *input,
		OutputCSV:    *output,
		Columns: analysis.ColumnNames{
			Prefix:      *prefixCol,
			Number:      *numberCol,
			Title:       *titleCol,
			Description: *descriptionCol,
		},
		FuzzyThreshold: *fuzzyThreshold,
		FuzzyEnabled:   !*disableFuzzy,
		Workers:        *workers,
	})
	if err != nil {
		log.Fatalf("❌ Broad scan failed: %v\n", err)
	}

	fmt.Printf("✅ Wrote %d AI candidates to %s\n", count, *output)
}
