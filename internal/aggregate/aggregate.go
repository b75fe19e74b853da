// Package aggregate collapses classified course rows into unique courses
// and produces prefix-level and global summary statistics.
package aggregate

import (
	"sort"

	"courseaudit/internal/models"
)

// Key identifies one logical course. Duplicate rows for the same key occur
// when a course appears in multiple term snapshots.
type Key struct {
	Prefix string
	Number string
}

// Row pairs a classified row with its identity key and original columns.
type Row struct {
	Key    Key
	Result models.ClassificationResult
	Data   map[string]string
}

// UniqueCourse is one record per key after deduplication. Data carries the
// canonical row's columns; AIRelated is the logical OR across every
// duplicate row for the key, not the canonical row's own flag.
type UniqueCourse struct {
	Key       Key
	Data      map[string]string
	AIRelated bool
}

// Result holds every aggregation artifact for a batch run.
type Result struct {
	UniqueCourses   []UniqueCourse
	PrefixSummaries []models.PrefixSummary
	Global          models.GlobalSummary
}

// Aggregate groups rows by (prefix, number), resolves conflicting AI flags
// with a logical OR, and tabulates per-prefix and global totals. The
// canonical row per key is the first one after sorting rows by key (ties
// broken by input position), so identical input yields identical output.
func Aggregate(rows []Row) Result {
	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := rows[order[a]].Key, rows[order[b]].Key
		if ka.Prefix != kb.Prefix {
			return ka.Prefix < kb.Prefix
		}

		return ka.Number < kb.Number
	})

	// OR the AI flag over the full group, independent of canonical choice.
	aiByKey := make(map[Key]bool)
	for _, row := range rows {
		if row.Result.AIRelated {
			aiByKey[row.Key] = true
		}
	}

	seen := make(map[Key]bool)

	var uniques []UniqueCourse

	for _, idx := range order {
		row := rows[idx]
		if seen[row.Key] {
			continue
		}

		seen[row.Key] = true

		uniques = append(uniques, UniqueCourse{
			Key:       row.Key,
			Data:      row.Data,
			AIRelated: aiByKey[row.Key],
		})
	}

	return Result{
		UniqueCourses:   uniques,
		PrefixSummaries: summarizePrefixes(uniques),
		Global: models.GlobalSummary{
			Metric: "total_unique_courses",
			Value:  len(uniques),
		},
	}
}

// AISubset returns the unique courses whose aggregated flag is true,
// in (prefix, number) order.
func (r Result) AISubset() []UniqueCourse {
	var subset []UniqueCourse

	for _, course := range r.UniqueCourses {
		if course.AIRelated {
			subset = append(subset, course)
		}
	}

	return subset
}

// summarizePrefixes counts unique courses per prefix. Courses with an empty
// prefix are tabulated under the empty bucket rather than dropped, and the
// AI count is zero (not missing) for prefixes with no AI-related courses.
func summarizePrefixes(uniques []UniqueCourse) []models.PrefixSummary {
	totals := make(map[string]int)
	aiCounts := make(map[string]int)

	for _, course := range uniques {
		totals[course.Key.Prefix]++

		if course.AIRelated {
			aiCounts[course.Key.Prefix]++
		}
	}

	prefixes := make([]string, 0, len(totals))
	for prefix := range totals {
		prefixes = append(prefixes, prefix)
	}

	sort.Strings(prefixes)

	summaries := make([]models.PrefixSummary, 0, len(prefixes))
	for _, prefix := range prefixes {
		summaries = append(summaries, models.PrefixSummary{
			Prefix:           prefix,
			TotalCourses:     totals[prefix],
			AIRelatedCourses: aiCounts[prefix],
		})
	}

	return summaries
}
