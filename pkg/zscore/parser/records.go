// Package parser reads tabular records from Excel sheets.
package parser

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
	"github.com/xuri/excelize/v2"
)

// Table is a header row plus the records below it.
type Table struct {
	// Headers holds the header names in column order.
	Headers []string
	// Records holds data rows in sheet order.
	Records []models.Record
}

// ExtractRecords reads a sheet as a table. The first non-empty row is the
// header row; every following non-empty row becomes a record keyed by
// header name. Columns without a header are ignored.
func ExtractRecords(f *excelize.File, sheetName string) (*Table, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	minRow, minCol := findDataOrigin(rows)
	if minRow < 0 {
		return &Table{}, nil
	}

	var headers []string
	columns := make(map[int]string)
	for colIdx := minCol; colIdx < len(rows[minRow]); colIdx++ {
		name := strings.TrimSpace(rows[minRow][colIdx])
		if name == "" {
			continue
		}
		if slices.Contains(headers, name) {
			continue
		}
		headers = append(headers, name)
		columns[colIdx] = name
	}

	table := &Table{Headers: headers}
	for rowIdx := minRow + 1; rowIdx < len(rows); rowIdx++ {
		values := make(map[string]interface{})
		for colIdx, cellValue := range rows[rowIdx] {
			name, ok := columns[colIdx]
			if !ok || cellValue == "" {
				continue
			}
			values[name] = parseValue(cellValue)
		}
		if len(values) == 0 {
			continue
		}
		table.Records = append(table.Records, models.Record{
			R:      rowIdx + 1, // 1-based row index
			Values: values,
		})
	}

	return table, nil
}

// findDataOrigin returns the 0-based row and column of the first non-empty
// row and its first non-empty cell, or -1, -1 for an empty sheet.
func findDataOrigin(rows [][]string) (minRow, minCol int) {
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return rowIdx, colIdx
			}
		}
	}
	return -1, -1
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && finite(f) {
		return f
	}
	return s
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Numeric converts a parsed cell value to float64. Non-finite values are
// rejected.
func Numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, finite(n)
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil && finite(f)
	}
	return 0, false
}

// NumericFields returns the headers whose values are numeric in every
// record that has them, in header order. Headers with no values at all are
// skipped.
func (t *Table) NumericFields() []string {
	var fields []string
	for _, h := range t.Headers {
		seen := false
		numeric := true
		for _, r := range t.Records {
			v, ok := r.Values[h]
			if !ok {
				continue
			}
			seen = true
			if _, ok := Numeric(v); !ok {
				numeric = false
				break
			}
		}
		if seen && numeric {
			fields = append(fields, h)
		}
	}
	return fields
}

// HasField reports whether name is one of the table headers.
func (t *Table) HasField(name string) bool {
	return slices.Contains(t.Headers, name)
}
