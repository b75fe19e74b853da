// Package main provides the catalog scraper command-line tool. It iterates
// academic terms and course prefixes, scrapes course pages, and appends the
// results to a resumable CSV.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"courseaudit/internal/catalog"
	"courseaudit/internal/config"
	"courseaudit/internal/logger"
	"courseaudit/internal/models"
	"courseaudit/internal/table"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	prefixesPath := flag.String("prefixes", "", "Path to JSON file with course prefixes (overrides config)")
	outputCSV := flag.String("output", "", "Path to the course CSV (overrides config)")
	overwrite := flag.Bool("overwrite", false, "Re-scrape everything and rewrite the CSV once at the end")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		fmt.Println("Usage: ./bin/scraper [OPTIONS]")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(0)
	}

	cfg := config.DefaultConfig()

	if *configFile != "" {
		fmt.Printf("⚙️  Loading configuration from: %s\n", *configFile)

		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("❌ Failed to load config: %v\n", err)
		}

		cfg = loaded
	}

	if *prefixesPath != "" {
		cfg.Scraper.PrefixesPath = *prefixesPath
	}

	if *outputCSV != "" {
		cfg.Scraper.OutputCSV = *outputCSV
	}

	lg := logger.NewLogger(cfg.Logging.Level).With("component", "scraper")

	prefixes, err := catalog.LoadPrefixes(cfg.Scraper.PrefixesPath)
	if err != nil {
		log.Fatalf("❌ Failed to load prefixes: %v\n", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Scraper.OutputCSV), 0755); err != nil {
		log.Fatalf("❌ Failed to create output directory: %v\n", err)
	}

	scraper := catalog.NewScraper(&cfg.Scraper)
	headers := models.CourseFieldNames()

	// Resume: URLs already in the CSV are skipped unless -overwrite.
	seenURLs := make(map[string]bool)

	if !*overwrite {
		if existing, err := table.Read(cfg.Scraper.OutputCSV); err == nil {
			for _, row := range existing.Rows {
				if row["url"] != "" {
					seenURLs[row["url"]] = true
				}
			}
		}
	}

	var appendWriter *table.AppendWriter

	// Overwrite mode collects rows in scrape order so repeated runs over
	// identical input produce identical files.
	var collected []map[string]string

	if *overwrite {
		fmt.Println("✍️  Overwrite enabled: will write CSV once at the end.")
	} else {
		appendWriter, err = table.OpenAppendWriter(cfg.Scraper.OutputCSV, headers)
		if err != nil {
			log.Fatalf("❌ Failed to open output CSV: %v\n", err)
		}
		defer appendWriter.Close()
	}

	emptyLog, err := catalog.OpenEmptyPrefixLog(cfg.Scraper.EmptyPrefixCSV)
	if err != nil {
		log.Fatalf("❌ Failed to open empty-prefix log: %v\n", err)
	}
	defer emptyLog.Close()

	totalSteps := len(prefixes) * len(cfg.Scraper.Terms)
	step := 1
	newTotal := 0

	for _, term := range cfg.Scraper.Terms {
		for _, prefix := range prefixes {
			fmt.Printf("[%d/%d] %s %s: fetching list...\n", step, totalSteps, term.Label, prefix)

			links, err := scraper.CourseLinks(prefix, term.Code)
			if err != nil {
				lg.Warn("course list fetch failed", "term", term.Label, "prefix", prefix, "error", err)

				if logErr := emptyLog.Log(term.Label, term.Code, prefix, "fetch_failed"); logErr != nil {
					lg.Error("empty-prefix log write failed", "error", logErr)
				}

				step++

				continue
			}

			fmt.Printf("[%d/%d] %s %s: %d courses found\n", step, totalSteps, term.Label, prefix, len(links))

			if len(links) == 0 {
				if logErr := emptyLog.Log(term.Label, term.Code, prefix, "empty"); logErr != nil {
					lg.Error("empty-prefix log write failed", "error", logErr)
				}

				step++

				continue
			}

			newCount := 0

			for _, link := range links {
				if seenURLs[link] {
					continue
				}

				course, err := scraper.ScrapeCourse(link, term.Label)
				if err != nil {
					lg.Warn("course scrape failed", "url", link, "error", err)

					continue
				}

				seenURLs[link] = true
				row := course.ToRow()

				if *overwrite {
					collected = append(collected, row)
				} else if err := appendWriter.Append(row); err != nil {
					log.Fatalf("❌ Failed to append course row: %v\n", err)
				}

				newCount++
			}

			if newCount > 0 {
				newTotal += newCount

				fmt.Printf("[%d/%d] %s %s: scraped %d new courses\n", step, totalSteps, term.Label, prefix, newCount)

				if appendWriter != nil {
					if err := appendWriter.Flush(); err != nil {
						log.Fatalf("❌ Failed to flush output CSV: %v\n", err)
					}
				}
			}

			step++
		}
	}

	if *overwrite {
		if err := table.Write(cfg.Scraper.OutputCSV, headers, collected); err != nil {
			log.Fatalf("❌ Failed to write output CSV: %v\n", err)
		}

		fmt.Printf("✅ Finished. Total courses in CSV: %d\n", len(collected))

		return
	}

	fmt.Printf("✅ Finished. Scraped %d new courses into %s\n", newTotal, cfg.Scraper.OutputCSV)
}
