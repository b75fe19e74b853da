package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"courseaudit/internal/table"
)

// LoadPrefixes reads the course prefix list from a JSON array file. The
// list is produced upstream from the university's prefix index; this code
// never reads the source documents itself.
func LoadPrefixes(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prefixes file: %w", err)
	}

	var prefixes []string
	if err := json.Unmarshal(data, &prefixes); err != nil {
		return nil, fmt.Errorf("failed to parse prefixes JSON: %w", err)
	}

	return prefixes, nil
}

// EmptyPrefixLog records (term, prefix) combinations that yielded no
// courses, feeding the analyzer's gap report.
type EmptyPrefixLog struct {
	writer *table.AppendWriter
}

var emptyPrefixHeaders = []string{"term", "term_code", "prefix", "reason"}

// OpenEmptyPrefixLog opens or creates the empty-prefix CSV for appending.
func OpenEmptyPrefixLog(path string) (*EmptyPrefixLog, error) {
	w, err := table.OpenAppendWriter(path, emptyPrefixHeaders)
	if err != nil {
		return nil, err
	}

	return &EmptyPrefixLog{writer: w}, nil
}

// Log appends one empty-prefix record.
func (l *EmptyPrefixLog) Log(term string, termCode int, prefix, reason string) error {
	err := l.writer.Append(map[string]string{
		"term":      term,
		"term_code": fmt.Sprintf("%d", termCode),
		"prefix":    prefix,
		"reason":    reason,
	})
	if err != nil {
		return err
	}

	return l.writer.Flush()
}

// Close closes the underlying CSV file.
func (l *EmptyPrefixLog) Close() error {
	return l.writer.Close()
}

// ReadEmptyPrefixes loads the distinct prefixes recorded in an empty-prefix
// CSV, sorted. A missing file is not an error: it means zero gap records.
// Both the full (term, term_code, prefix, reason) layout and bare
// one-column files are accepted; header rows are skipped.
func ReadEmptyPrefixes(path string) ([]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open empty-prefix csv: %w", err)
	}
	defer f.Close()

	rows, err := readLooseCSV(f)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)

	var prefixes []string

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}

		first := lowerTrim(row[0])
		if first == "term" || first == "prefix" {
			continue
		}

		prefix := trimCell(row[0])
		if len(row) >= 3 {
			prefix = trimCell(row[2])
		}

		if prefix == "" || seen[prefix] {
			continue
		}

		seen[prefix] = true

		prefixes = append(prefixes, prefix)
	}

	sort.Strings(prefixes)

	return prefixes, nil
}

// readLooseCSV reads all records without enforcing a uniform column count.
func readLooseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read empty-prefix csv: %w", err)
	}

	return rows, nil
}

func trimCell(s string) string {
	return strings.TrimSpace(s)
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
