// Package fileio parses and writes the flat tabular files the pipeline
// trades in. CSV is the native format; xlsx and xls price sheets are
// accepted too, dispatched by file extension.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrSourceUnavailable wraps open and fetch failures.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrMalformedSource marks a tabular body with no header row.
	ErrMalformedSource = errors.New("malformed source: missing header row")
)

// ReadFile parses the file at path into one map per data row, keyed by the
// header row. The parser is chosen by extension.
func ReadFile(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses tabular data from r, picking the parser from name's
// extension (.xlsx, .xls, anything else is CSV; remote feeds serve CSV
// bodies from extensionless URLs).
func Read(r io.Reader, name string) ([]map[string]string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	default:
		return ReadCSV(r)
	}
}

// tableToMaps turns raw rows into maps keyed by the first row. Blank header
// cells get positional names, rows with no content at all are dropped, and
// short rows read as empty strings for their trailing columns.
func tableToMaps(rows [][]string) ([]map[string]string, error) {
	if len(rows) == 0 {
		return nil, ErrMalformedSource
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			cell = fmt.Sprintf("column-%d", i+1)
		}
		header[i] = cell
	}

	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		m := make(map[string]string, len(header))
		empty := true
		for i, col := range header {
			var v string
			if i < len(row) {
				v = row[i]
			}
			if empty && strings.TrimSpace(v) != "" {
				empty = false
			}
			m[col] = v
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out, nil
}
