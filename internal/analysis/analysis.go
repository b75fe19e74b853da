// Package analysis orchestrates the batch classification pipeline: load,
// classify, aggregate, emit. It performs the file I/O on behalf of the
// binaries; the classification and aggregation stages stay pure.
package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"courseaudit/internal/aggregate"
	"courseaudit/internal/catalog"
	"courseaudit/internal/classifier"
	"courseaudit/internal/concurrency"
	"courseaudit/internal/config"
	"courseaudit/internal/models"
	"courseaudit/internal/table"
)

// Options configures one analysis run.
type Options struct {
	InputCourses       string
	InputEmptyPrefixes string
	OutputDir          string
	Columns            config.ColumnsConfig
	RuleSet            classifier.RuleSet
	FuzzyPhrases       []string
	FuzzyThreshold     int
	FuzzyEnabled       bool
	Ethics             classifier.EthicsClassifier
	Workers            int
}

// Outputs lists the artifact paths written by Run.
type Outputs struct {
	FullCSV          string
	AISubsetCSV      string
	PrefixSummaryCSV string
	SummaryCSV       string
	GapReportCSV     string
}

// Run executes the precise analysis: classify every row, aggregate into
// unique courses, and write the full, subset, summary, and gap artifacts.
// Missing input or missing required columns fail before any classification.
func Run(opts Options) (Outputs, aggregate.Result, error) {
	tbl, rows, err := loadCourses(opts)
	if err != nil {
		return Outputs{}, aggregate.Result{}, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return Outputs{}, aggregate.Result{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	rc := classifier.NewRowClassifier(opts.RuleSet, opts.FuzzyPhrases, opts.Ethics, opts.FuzzyThreshold, opts.FuzzyEnabled)

	results := concurrency.Map(tbl.Rows, opts.Workers, func(_ int, row map[string]string) models.ClassificationResult {
		return rc.ClassifyRow(row[opts.Columns.Title], row[opts.Columns.Description])
	})

	outputs := Outputs{
		FullCSV:          filepath.Join(opts.OutputDir, "courses_with_flags.csv"),
		AISubsetCSV:      filepath.Join(opts.OutputDir, "courses_ai_subset.csv"),
		PrefixSummaryCSV: filepath.Join(opts.OutputDir, "prefix_summary.csv"),
		SummaryCSV:       filepath.Join(opts.OutputDir, "summary.csv"),
		GapReportCSV:     filepath.Join(opts.OutputDir, "gap_report.csv"),
	}

	// Full row-level table: input columns plus the two flag columns.
	fullHeaders := append(append([]string{}, tbl.Headers...), "is_ai_related", "is_ethics_related")
	fullRows := make([]map[string]string, len(tbl.Rows))

	for i, row := range tbl.Rows {
		out := make(map[string]string, len(row)+2)
		for k, v := range row {
			out[k] = v
		}

		out["is_ai_related"] = strconv.FormatBool(results[i].AIRelated)
		out["is_ethics_related"] = strconv.FormatBool(results[i].EthicsRelated)
		fullRows[i] = out
	}

	if err := table.Write(outputs.FullCSV, fullHeaders, fullRows); err != nil {
		return Outputs{}, aggregate.Result{}, err
	}

	for i := range rows {
		rows[i].Result = results[i]
	}

	result := aggregate.Aggregate(rows)

	subsetHeaders := append(append([]string{}, tbl.Headers...), "is_ai_related")

	var subsetRows []map[string]string

	for _, course := range result.AISubset() {
		out := make(map[string]string, len(course.Data)+1)
		for k, v := range course.Data {
			out[k] = v
		}

		out["is_ai_related"] = strconv.FormatBool(course.AIRelated)
		subsetRows = append(subsetRows, out)
	}

	if err := table.Write(outputs.AISubsetCSV, subsetHeaders, subsetRows); err != nil {
		return Outputs{}, aggregate.Result{}, err
	}

	if err := writePrefixSummary(outputs.PrefixSummaryCSV, result.PrefixSummaries); err != nil {
		return Outputs{}, aggregate.Result{}, err
	}

	if err := writeGlobalSummary(outputs.SummaryCSV, result.Global); err != nil {
		return Outputs{}, aggregate.Result{}, err
	}

	if err := writeGapReport(outputs.GapReportCSV, opts.InputEmptyPrefixes); err != nil {
		return Outputs{}, aggregate.Result{}, err
	}

	return outputs, result, nil
}

// loadCourses reads the input table, checks required columns, and builds
// the aggregation rows (classification filled in later).
func loadCourses(opts Options) (*table.Table, []aggregate.Row, error) {
	tbl, err := table.Read(opts.InputCourses)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load course table: %w", err)
	}

	cols := opts.Columns
	if err := tbl.RequireColumns(cols.Prefix, cols.Number, cols.Title, cols.Description); err != nil {
		return nil, nil, err
	}

	rows := make([]aggregate.Row, len(tbl.Rows))
	for i, row := range tbl.Rows {
		rows[i] = aggregate.Row{
			Key: aggregate.Key{
				Prefix: row[cols.Prefix],
				Number: row[cols.Number],
			},
			Data: row,
		}
	}

	return tbl, rows, nil
}

func writePrefixSummary(path string, summaries []models.PrefixSummary) error {
	headers := []string{"prefix", "total_courses", "ai_related_courses"}

	rows := make([]map[string]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, map[string]string{
			"prefix":             s.Prefix,
			"total_courses":      strconv.Itoa(s.TotalCourses),
			"ai_related_courses": strconv.Itoa(s.AIRelatedCourses),
		})
	}

	return table.Write(path, headers, rows)
}

func writeGlobalSummary(path string, global models.GlobalSummary) error {
	rows := []map[string]string{
		{
			"metric": global.Metric,
			"value":  strconv.Itoa(global.Value),
		},
	}

	return table.Write(path, []string{"metric", "value"}, rows)
}

// writeGapReport emits the prefixes that yielded no courses. A missing
// empty-prefix input is treated as zero gap records, not an error.
func writeGapReport(path, emptyPrefixesPath string) error {
	var prefixes []string

	if emptyPrefixesPath != "" {
		var err error

		prefixes, err = catalog.ReadEmptyPrefixes(emptyPrefixesPath)
		if err != nil {
			return err
		}
	}

	rows := make([]map[string]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		rows = append(rows, map[string]string{"prefix": prefix})
	}

	return table.Write(path, []string{"prefix"}, rows)
}

// RenderReason converts match reasons and fuzzy diagnostics into the human
// review string used by the candidate output. Exact-rule labels win over a
// fuzzy-only match.
func RenderReason(result models.ClassificationResult) string {
	if len(result.MatchReasons) > 0 {
		return strings.Join(result.MatchReasons, ",")
	}

	if result.FuzzyPhrase != "" {
		return "fuzzy:" + result.FuzzyPhrase
	}

	return ""
}
