// Package report renders run summaries as markdown with aligned tables.
package report

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"courseaudit/internal/models"
)

// Render produces a markdown report from the prefix summaries and the
// global summary. The empty-prefix bucket is shown as "(none)".
func Render(prefixes []models.PrefixSummary, global models.GlobalSummary) string {
	var sb strings.Builder

	sb.WriteString("# Course Classification Summary\n\n")

	sb.WriteString("## Totals\n\n")

	totalsRows := [][]string{
		{global.Metric, strconv.Itoa(global.Value)},
	}
	for _, line := range renderTable([]string{"metric", "value"}, totalsRows) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n## Courses per prefix\n\n")

	prefixRows := make([][]string, 0, len(prefixes))
	for _, p := range prefixes {
		label := p.Prefix
		if label == "" {
			label = "(none)"
		}

		prefixRows = append(prefixRows, []string{
			label,
			strconv.Itoa(p.TotalCourses),
			strconv.Itoa(p.AIRelatedCourses),
		})
	}

	for _, line := range renderTable([]string{"prefix", "total_courses", "ai_related_courses"}, prefixRows) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderTable builds a markdown table with columns padded to equal display
// width, so the raw text stays readable next to the rendered form.
func renderTable(headers []string, rows [][]string) []string {
	colCount := len(headers)

	// Calculate max widths (using display width)
	colWidths := make([]int, colCount)
	for i, h := range headers {
		colWidths[i] = runewidth.StringWidth(h)
	}

	for _, row := range rows {
		for i := 0; i < len(row) && i < colCount; i++ {
			width := runewidth.StringWidth(row[i])
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Ensure min width for separator (usually 3 dashes "---")
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, renderRow(headers, colWidths))
	lines = append(lines, renderSeparator(colWidths))

	for _, row := range rows {
		lines = append(lines, renderRow(row, colWidths))
	}

	return lines
}

func renderRow(cells []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for i, width := range colWidths {
		content := ""
		if i < len(cells) {
			content = cells[i]
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		// Pad with spaces based on display width
		padding := width - runewidth.StringWidth(content)
		if padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

func renderSeparator(colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	return sb.String()
}
