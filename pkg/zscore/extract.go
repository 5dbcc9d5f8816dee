package zscore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/calc"
	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
	"github.com/Renegatto/line-chart-test-task/pkg/zscore/parser"
	"github.com/xuri/excelize/v2"
)

// HighlightFile highlights opts.Field of a sheet in an Excel file.
func HighlightFile(path string, opts Options) (*models.Report, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return HighlightWorkbook(f, filepath.Base(path), opts)
}

// HighlightFileAll highlights every numeric field of a sheet except the
// label field, in header order.
func HighlightFileAll(path string, opts Options) ([]models.Report, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName, table, err := readTable(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	var reports []models.Report
	for _, field := range table.NumericFields() {
		if field == opts.LabelField {
			continue
		}
		report, err := HighlightTable(table, sheetName, opts.WithField(field))
		if err != nil {
			return nil, err
		}
		report.BookName = filepath.Base(path)
		reports = append(reports, *report)
	}
	return reports, nil
}

// HighlightWorkbook highlights opts.Field of a sheet in an open workbook.
func HighlightWorkbook(f *excelize.File, bookName string, opts Options) (*models.Report, error) {
	sheetName, table, err := readTable(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	report, err := HighlightTable(table, sheetName, opts)
	if err != nil {
		return nil, err
	}
	report.BookName = bookName
	return report, nil
}

// HighlightTable highlights opts.Field of an extracted table. Every record
// must carry a finite number in the field.
func HighlightTable(table *parser.Table, sheetName string, opts Options) (*models.Report, error) {
	if !table.HasField(opts.Field) {
		return nil, NewFieldError(sheetName, opts.Field, 0, ErrFieldNotFound)
	}
	if opts.LabelField != "" && !table.HasField(opts.LabelField) {
		return nil, NewFieldError(sheetName, opts.LabelField, 0, ErrFieldNotFound)
	}

	for _, r := range table.Records {
		if _, ok := parser.Numeric(r.Values[opts.Field]); !ok {
			return nil, NewFieldError(sheetName, opts.Field, r.R, fmt.Errorf("%w: %v", ErrNonNumeric, r.Values[opts.Field]))
		}
	}

	valueOf := func(r models.Record) float64 {
		v, _ := parser.Numeric(r.Values[opts.Field])
		return v
	}
	var labelOf func(models.Record) string
	if opts.LabelField != "" {
		labelOf = func(r models.Record) string {
			if v, ok := r.Values[opts.LabelField]; ok {
				return fmt.Sprint(v)
			}
			return ""
		}
	}

	h := Highlight(table.Records, NewConfig(opts, valueOf, labelOf))
	report := NewReport(h, opts.Field, opts.Deviation)
	report.SheetName = sheetName
	return report, nil
}

// NewReport assembles the serializable report of h.
func NewReport(h *Highlighted, field string, d calc.Deviation) *models.Report {
	if d == "" {
		d = calc.Population
	}
	return &models.Report{
		Field:      field,
		Deviation:  string(d),
		Count:      len(h.series),
		Bounds:     h.Bounds(),
		Range:      h.Range(),
		Gradient:   h.Gradient(),
		LineStroke: h.LineStrokeRef(),
		Points:     h.Points(),
	}
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return excelize.OpenFile(path)
}

// readTable resolves the sheet name (first sheet if empty) and extracts it.
func readTable(f *excelize.File, sheet string) (string, *parser.Table, error) {
	sheetList := f.GetSheetList()
	if sheet == "" {
		if len(sheetList) == 0 {
			return "", nil, ErrSheetNotFound
		}
		sheet = sheetList[0]
	} else if !slices.Contains(sheetList, sheet) {
		return "", nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	table, err := parser.ExtractRecords(f, sheet)
	if err != nil {
		return "", nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return sheet, table, nil
}
