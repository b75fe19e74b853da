package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"courseaudit/internal/aggregate"
	"courseaudit/internal/classifier"
	"courseaudit/internal/concurrency"
	"courseaudit/internal/models"
	"courseaudit/internal/table"
)

// BroadOptions configures a broad-recall candidate run.
type BroadOptions struct {
	InputCourses   string
	OutputCSV      string
	Columns        ColumnNames
	FuzzyThreshold int
	FuzzyEnabled   bool
	Workers        int
}

// ColumnNames aliases the column override set for the broad run, which has
// no config-file surface of its own.
type ColumnNames struct {
	Prefix      string
	Number      string
	Title       string
	Description string
}

// RunBroad executes the permissive candidate search. Every labeled rule
// fires independently; matched labels and fuzzy diagnostics are written per
// row. The output is a candidate list for manual review, deduped by
// (prefix, number) and sorted.
func RunBroad(opts BroadOptions) (int, error) {
	tbl, err := table.Read(opts.InputCourses)
	if err != nil {
		return 0, fmt.Errorf("failed to load course table: %w", err)
	}

	cols := opts.Columns
	if err := tbl.RequireColumns(cols.Prefix, cols.Number, cols.Title, cols.Description); err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(opts.OutputCSV), 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	rc := classifier.NewRowClassifier(classifier.BroadRules(), classifier.BroadFuzzyPhrases(), nil, opts.FuzzyThreshold, opts.FuzzyEnabled)

	results := concurrency.Map(tbl.Rows, opts.Workers, func(_ int, row map[string]string) models.ClassificationResult {
		return rc.ClassifyRow(row[cols.Title], row[cols.Description])
	})

	var candidates []aggregate.Row

	for i, row := range tbl.Rows {
		if !results[i].AIRelated {
			continue
		}

		out := make(map[string]string, len(row)+4)
		for k, v := range row {
			out[k] = v
		}

		out["is_ai_candidate"] = strconv.FormatBool(true)
		out["ai_candidate_reason"] = RenderReason(results[i])
		out["ai_candidate_fuzzy_phrase"] = results[i].FuzzyPhrase
		out["ai_candidate_fuzzy_score"] = strconv.Itoa(results[i].FuzzyScore)

		candidates = append(candidates, aggregate.Row{
			Key: aggregate.Key{
				Prefix: row[cols.Prefix],
				Number: row[cols.Number],
			},
			Result: results[i],
			Data:   out,
		})
	}

	// Reuse the dedup engine for the deterministic (prefix, number) order.
	deduped := aggregate.Aggregate(candidates).UniqueCourses

	headers := append(append([]string{}, tbl.Headers...),
		"is_ai_candidate",
		"ai_candidate_reason",
		"ai_candidate_fuzzy_phrase",
		"ai_candidate_fuzzy_score",
	)

	rows := make([]map[string]string, 0, len(deduped))
	for _, course := range deduped {
		rows = append(rows, course.Data)
	}

	if err := table.Write(opts.OutputCSV, headers, rows); err != nil {
		return 0, err
	}

	return len(rows), nil
}
