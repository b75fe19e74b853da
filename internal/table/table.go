// Package table reads and writes CSV tables while preserving columns the
// pipeline does not know about.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Table errors.
var (
	ErrEmptyTable     = errors.New("csv file has no header row")
	ErrMissingColumns = errors.New("missing required columns")
)

// Table is an in-memory CSV table. Rows are keyed by header name so extra
// passthrough columns survive a read/write round trip.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// Read loads a CSV file into a Table. Short records are padded with empty
// cells; long records keep only the headed columns.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrEmptyTable, path)
		}

		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	t := &Table{Headers: headers}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}

		row := make(map[string]string, len(headers))
		for i, name := range headers {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}

		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// RequireColumns verifies that every named column exists in the header.
func (t *Table) RequireColumns(names ...string) error {
	present := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		present[h] = true
	}

	var missing []string

	for _, name := range names {
		if !present[name] {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingColumns, missing)
	}

	return nil
}

// Write saves rows under the given headers. Cells absent from a row are
// written as empty strings.
func Write(path string, headers []string, rows []map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(headers); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	record := make([]string, len(headers))

	for _, row := range rows {
		for i, name := range headers {
			record[i] = row[name]
		}

		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()

	return w.Error()
}

// AppendWriter appends rows to a CSV file across runs. The header is
// written only when the file is new or empty, so interrupted runs can
// resume without duplicating it.
type AppendWriter struct {
	file    *os.File
	writer  *csv.Writer
	headers []string
}

// OpenAppendWriter opens path for appending, creating it (and writing the
// header) when missing or empty.
func OpenAppendWriter(path string, headers []string) (*AppendWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv for append: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()

		return nil, fmt.Errorf("failed to stat csv: %w", err)
	}

	aw := &AppendWriter{
		file:    f,
		writer:  csv.NewWriter(f),
		headers: headers,
	}

	if info.Size() == 0 {
		if err := aw.writer.Write(headers); err != nil {
			f.Close()

			return nil, fmt.Errorf("failed to write csv header: %w", err)
		}
	}

	return aw, nil
}

// Append writes one row in header order.
func (aw *AppendWriter) Append(row map[string]string) error {
	record := make([]string, len(aw.headers))
	for i, name := range aw.headers {
		record[i] = row[name]
	}

	if err := aw.writer.Write(record); err != nil {
		return fmt.Errorf("failed to append csv record: %w", err)
	}

	return nil
}

// Flush pushes buffered rows to disk.
func (aw *AppendWriter) Flush() error {
	aw.writer.Flush()

	return aw.writer.Error()
}

// Close flushes and closes the underlying file.
func (aw *AppendWriter) Close() error {
	aw.writer.Flush()

	if err := aw.writer.Error(); err != nil {
		aw.file.Close()

		return err
	}

	return aw.file.Close()
}
