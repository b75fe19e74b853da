// Package main renders the prefix and global summary CSVs as a markdown
// report with display-width-aligned tables.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"courseaudit/internal/models"
	"courseaudit/internal/report"
	"courseaudit/internal/table"
)

func main() {
	prefixSummaryPath := flag.String("prefix-summary", "outputs/prefix_summary.csv", "Path to the prefix summary CSV")
	summaryPath := flag.String("summary", "outputs/summary.csv", "Path to the global summary CSV")
	output := flag.String("output", "", "Output markdown path (default: print to stdout)")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		fmt.Println("Usage: ./bin/report [OPTIONS]")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(0)
	}

	prefixes, err := readPrefixSummaries(*prefixSummaryPath)
	if err != nil {
		log.Fatalf("❌ Failed to read prefix summary: %v\n", err)
	}

	global, err := readGlobalSummary(*summaryPath)
	if err != nil {
		log.Fatalf("❌ Failed to read summary: %v\n", err)
	}

	md := report.Render(prefixes, global)

	if *output == "" {
		fmt.Print(md)

		return
	}

	if err := os.WriteFile(*output, []byte(md), 0644); err != nil {
		log.Fatalf("❌ Failed to write report: %v\n", err)
	}

	fmt.Printf("✅ Report written to %s\n", *output)
}

func readPrefixSummaries(path string) ([]models.PrefixSummary, error) {
	tbl, err := table.Read(path)
	if err != nil {
		return nil, err
	}

	if err := tbl.RequireColumns("prefix", "total_courses"); err != nil {
		return nil, err
	}

	summaries := make([]models.PrefixSummary, 0, len(tbl.Rows))

	for _, row := range tbl.Rows {
		total, err := strconv.Atoi(row["total_courses"])
		if err != nil {
			return nil, fmt.Errorf("bad total_courses value %q: %w", row["total_courses"], err)
		}

		// ai_related_courses is optional in older summary files.
		aiCount := 0
		if v, ok := row["ai_related_courses"]; ok && v != "" {
			aiCount, err = strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("bad ai_related_courses value %q: %w", v, err)
			}
		}

		summaries = append(summaries, models.PrefixSummary{
			Prefix:           row["prefix"],
			TotalCourses:     total,
			AIRelatedCourses: aiCount,
		})
	}

	return summaries, nil
}

func readGlobalSummary(path string) (models.GlobalSummary, error) {
	tbl, err := table.Read(path)
	if err != nil {
		return models.GlobalSummary{}, err
	}

	if err := tbl.RequireColumns("metric", "value"); err != nil {
		return models.GlobalSummary{}, err
	}

	if len(tbl.Rows) == 0 {
		return models.GlobalSummary{}, fmt.Errorf("%w: %s", table.ErrEmptyTable, path)
	}

	row := tbl.Rows[0]

	value, err := strconv.Atoi(row["value"])
	if err != nil {
		return models.GlobalSummary{}, fmt.Errorf("bad value %q: %w", row["value"], err)
	}

	return models.GlobalSummary{Metric: row["metric"], Value: value}, nil
}
