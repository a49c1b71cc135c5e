package fileio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Write serializes records to w as CSV. The column list is the header and
// the only columns written: a record lacking one writes it empty, keys the
// header omits are dropped. The header goes out even for zero records.
func Write(w io.Writer, columns []string, records []map[string]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(columns))
	for _, rec := range records {
		for i, col := range columns {
			row[i] = rec[col]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile truncates path and writes records there.
func WriteFile(path string, columns []string, records []map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(f, columns, records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
