package fileio

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	xls "github.com/extrame/xls"
	excelize "github.com/xuri/excelize/v2"
)

func readXLSX(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx sheet: %w", err)
	}
	return tableToMaps(rows)
}

func readXLS(r io.Reader) ([]map[string]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read xls body: %w", err)
	}
	wb, err := xls.OpenReader(bytes.NewReader(b), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrMalformedSource
	}

	width := sheetWidth(sheet)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		cells := make([]string, width)
		if row != nil {
			for j := 0; j < width; j++ {
				cells[j] = row.Col(j)
			}
		}
		rows = append(rows, cells)
	}
	return tableToMaps(rows)
}

// sheetWidth probes every row for its rightmost populated cell; Row.LastCol
// is unreliable on sheets written by some exporters.
func sheetWidth(sheet *xls.WorkSheet) int {
	const probe = 256
	width := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		for j := 0; j < probe; j++ {
			if strings.TrimSpace(row.Col(j)) != "" && j+1 > width {
				width = j + 1
			}
		}
	}
	if width == 0 {
		width = 1
	}
	return width
}
