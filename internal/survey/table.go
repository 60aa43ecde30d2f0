package survey

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Row maps column names to cell values for one survey response.
type Row map[string]string

// Table is an ordered survey export: named columns and one row per response.
type Table struct {
	Headers []string
	Rows    []Row
}

// Load reads a CSV survey export. The first record supplies the column names.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open survey table: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse survey table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("survey table %s has no header row", path)
	}

	headers := records[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}

	table := &Table{Headers: headers, Rows: make([]Row, 0, len(records)-1)}
	for _, record := range records[1:] {
		row := make(Row, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			} else {
				row[header] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// Clone returns a deep copy suitable for mutation during a run.
func (t *Table) Clone() *Table {
	headers := make([]string, len(t.Headers))
	copy(headers, t.Headers)
	rows := make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		clone := make(Row, len(row))
		for key, value := range row {
			clone[key] = value
		}
		rows = append(rows, clone)
	}
	return &Table{Headers: headers, Rows: rows}
}

// SaveAtomic writes the table to path via a temp file in the same directory
// followed by an atomic rename. On any failure the temp file is removed and
// the original file at path is left untouched.
func (t *Table) SaveAtomic(path string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".outreach-*.tmp")
	if err != nil {
		return fmt.Errorf("create working copy: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	writer := csv.NewWriter(tmp)
	if err = writer.Write(t.Headers); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write working copy: %w", err)
	}
	for _, row := range t.Rows {
		record := make([]string, len(t.Headers))
		for i, header := range t.Headers {
			record[i] = row[header]
		}
		if err = writer.Write(record); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("write working copy: %w", err)
		}
	}
	writer.Flush()
	if err = writer.Error(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("flush working copy: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close working copy: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace survey table: %w", err)
	}
	return nil
}
