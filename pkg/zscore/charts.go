package zscore

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
	"github.com/Renegatto/line-chart-test-task/pkg/zscore/parser"
	"github.com/xuri/excelize/v2"
)

// chartPoint is one cell of a charted series.
type chartPoint struct {
	label string
	value float64
}

// HighlightCharts highlights every series of every line chart in an Excel
// file. Sheets are visited in name order, series in chart order. Empty
// value cells are skipped together with their category.
func HighlightCharts(path string, opts Options) ([]models.Report, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bySheet, err := parser.ExtractChartSeries(path)
	if err != nil {
		return nil, fmt.Errorf("reading charts: %w", err)
	}

	sheets := make([]string, 0, len(bySheet))
	for sheet := range bySheet {
		sheets = append(sheets, sheet)
	}
	sort.Strings(sheets)

	var reports []models.Report
	for _, sheet := range sheets {
		if opts.Sheet != "" && sheet != opts.Sheet {
			continue
		}
		for _, s := range bySheet[sheet] {
			if !parser.IsLineType(s.ChartType) || s.YRange == "" {
				continue
			}
			report, err := highlightChartSeries(f, s, opts)
			if err != nil {
				return nil, err
			}
			report.BookName = filepath.Base(path)
			reports = append(reports, *report)
		}
	}
	return reports, nil
}

func highlightChartSeries(f *excelize.File, s models.ChartSeries, opts Options) (*models.Report, error) {
	name := seriesName(f, s)

	values, err := parser.ReadRange(f, s.YRange)
	if err != nil {
		return nil, NewFieldError(s.Sheet, name, 0, err)
	}
	var labels []string
	if s.XRange != "" {
		if labels, err = parser.ReadRange(f, s.XRange); err != nil {
			return nil, NewFieldError(s.Sheet, name, 0, err)
		}
	}

	_, area, _ := parser.ParseRangeRef(s.YRange)
	points := make([]chartPoint, 0, len(values))
	for i, raw := range values {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		v, ok := parser.Numeric(raw)
		if !ok {
			col, row := area.At(i)
			cell, _ := excelize.CoordinatesToCellName(col, row)
			return nil, NewFieldError(s.Sheet, name, row, fmt.Errorf("%w: %v in %s", ErrNonNumeric, raw, cell))
		}
		p := chartPoint{value: v}
		if i < len(labels) {
			p.label = labels[i]
		}
		points = append(points, p)
	}

	opts = opts.WithField(name)
	cfg := NewConfig(opts,
		func(p chartPoint) float64 { return p.value },
		func(p chartPoint) string { return p.label },
	)
	report := NewReport(Highlight(points, cfg), name, opts.Deviation)
	report.SheetName = s.Sheet
	return report, nil
}

// seriesName resolves a series name that is still a cell reference.
func seriesName(f *excelize.File, s models.ChartSeries) string {
	if s.Name != s.NameRange || s.NameRange == "" {
		if s.Name != "" {
			return s.Name
		}
		return s.YRange
	}
	if values, err := parser.ReadRange(f, s.NameRange); err == nil && len(values) > 0 && values[0] != "" {
		return values[0]
	}
	return s.NameRange
}
