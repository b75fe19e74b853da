// Package main provides the course analyzer command-line tool. It flags
// AI-related and ethics-related courses and writes the summary tables.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"courseaudit/internal/analysis"
	"courseaudit/internal/classifier"
	"courseaudit/internal/config"
	"courseaudit/internal/ethics"
	"courseaudit/internal/logger"
)

// legacyFuzzyThreshold is the looser default the legacy keyword scan
// historically ran with. It applies only when neither the flag nor a config
// file sets a threshold.
const legacyFuzzyThreshold = 85

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	input := flag.String("input", "", "Path to the course CSV (overrides config)")
	emptyPrefixes := flag.String("empty-prefixes", "", "Path to the empty-prefix CSV (overrides config)")
	outputDir := flag.String("output-dir", "", "Directory to write outputs (overrides config)")
	prefixCol := flag.String("prefix-col", "", "Column name for course prefix (overrides config)")
	numberCol := flag.String("number-col", "", "Column name for course number (overrides config)")
	titleCol := flag.String("title-col", "", "Column name for course title (overrides config)")
	descriptionCol := flag.String("description-col", "", "Column name for course description (overrides config)")
	fuzzyThreshold := flag.Int("fuzzy-threshold", -1, "Fuzzy match threshold 0-100 (precedence: this flag, then config file, then 85 for -ruleset legacy)")
	disableFuzzy := flag.Bool("disable-fuzzy", false, "Disable fuzzy matching")
	ruleSetName := flag.String("ruleset", "precise", "Rule set to apply: precise or legacy")
	workers := flag.Int("workers", runtime.NumCPU(), "Parallel classification workers")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	cfg := loadConfig(*configFile)

	// Explicit flags win over config file values.
	if *input != "" {
		cfg.Analysis.InputCourses = *input
	}

	if *emptyPrefixes != "" {
		cfg.Analysis.InputEmptyPrefixes = *emptyPrefixes
	}

	if *outputDir != "" {
		cfg.Analysis.OutputDir = *outputDir
	}

	applyColumnOverrides(&cfg.Analysis.Columns, *prefixCol, *numberCol, *titleCol, *descriptionCol)

	cfg.Analysis.Fuzzy.Threshold = resolveFuzzyThreshold(*fuzzyThreshold, *configFile != "", *ruleSetName, cfg.Analysis.Fuzzy.Threshold)

	if *disableFuzzy {
		cfg.Analysis.Fuzzy.Disable = true
	}

	opts := analysis.Options{
		InputCourses:       cfg.Analysis.InputCourses,
		InputEmptyPrefixes: cfg.Analysis.InputEmptyPrefixes,
		OutputDir:          cfg.Analysis.OutputDir,
		Columns:            cfg.Analysis.Columns,
		FuzzyThreshold:     cfg.Analysis.Fuzzy.Threshold,
		FuzzyEnabled:       !cfg.Analysis.Fuzzy.Disable,
		Ethics:             ethics.NewMatcher(),
		Workers:            *workers,
	}

	switch *ruleSetName {
	case "precise":
		opts.RuleSet = classifier.AIRules()
		opts.FuzzyPhrases = classifier.AIFuzzyPhrases()
	case "legacy":
		opts.RuleSet = classifier.LegacyKeywordRules()
		opts.FuzzyPhrases = classifier.LegacyFuzzyPhrases()
	default:
		log.Fatalf("❌ Unknown ruleset: %s (expected precise or legacy)\n", *ruleSetName)
	}

	lg := logger.NewLogger(cfg.Logging.Level).With("component", "analyzer")
	lg.Debug("analysis options",
		"input", opts.InputCourses,
		"ruleset", *ruleSetName,
		"fuzzy_threshold", opts.FuzzyThreshold,
		"fuzzy_enabled", opts.FuzzyEnabled,
		"workers", opts.Workers)

	fmt.Printf("📂 Reading: %s\n", opts.InputCourses)

	outputs, result, err := analysis.Run(opts)
	if err != nil {
		log.Fatalf("❌ Analysis failed: %v\n", err)
	}

	fmt.Println("✅ Analysis complete.")
	fmt.Printf("  Unique courses: %d\n", result.Global.Value)
	fmt.Printf("  AI-related:     %d\n", len(result.AISubset()))
	fmt.Printf("  Full course list with flags: %s\n", outputs.FullCSV)
	fmt.Printf("  AI-only subset:              %s\n", outputs.AISubsetCSV)
	fmt.Printf("  Prefix summary:              %s\n", outputs.PrefixSummaryCSV)
	fmt.Printf("  Summary:                     %s\n", outputs.SummaryCSV)
	fmt.Printf("  Gap report:                  %s\n", outputs.GapReportCSV)
}

// resolveFuzzyThreshold picks the effective threshold: an explicit flag value
// wins, then a value from a config file, then the legacy ruleset default.
// A config file's threshold is never overridden by the ruleset choice.
func resolveFuzzyThreshold(flagValue int, haveConfigFile bool, ruleSetName string, configValue int) int {
	if flagValue >= 0 {
		return flagValue
	}

	if !haveConfigFile && ruleSetName == "legacy" {
		return legacyFuzzyThreshold
	}

	return configValue
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.DefaultConfig()
	}

	fmt.Printf("⚙️  Loading configuration from: %s\n", path)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v\n", err)
	}

	return cfg
}

func applyColumnOverrides(cols *config.ColumnsConfig, prefix, number, title, description string) {
	if prefix != "" {
		cols.Prefix = prefix
	}

	if number != "" {
		cols.Number = number
	}

	if title != "" {
		cols.Title = title
	}

	if description != "" {
		cols.Description = description
	}
}

func printUsage() {
	fmt.Println("Usage: ./bin/analyzer [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/analyzer -input outputs/courses.csv -output-dir outputs")
	fmt.Println("  ./bin/analyzer -config configs/pipeline.yaml -ruleset legacy")
}
