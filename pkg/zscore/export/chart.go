package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/color"
	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
	"github.com/xuri/excelize/v2"
)

// Column layout of a report sheet.
const (
	colLabel = iota + 1
	colValue
	colDeviant
	colLower
	colUpper
	colStatsName  = colUpper + 2
	colStatsValue = colStatsName + 1
)

// maxSheetName is the Excel limit on sheet name length.
const maxSheetName = 31

// ChartSize is the chart size in pixels.
var ChartSize = excelize.ChartDimension{Width: 640, Height: 320}

// WriteReports writes one sheet with data and a line chart per report to a
// new workbook at path.
func WriteReports(path string, reports []models.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	for i := range reports {
		name := SheetNameFor(reports[i].Field, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}
		if err := AddReportSheet(f, name, &reports[i]); err != nil {
			return fmt.Errorf("writing sheet %q: %w", name, err)
		}
	}

	return f.SaveAs(path)
}

// SheetNameFor returns a valid sheet name for a field. index disambiguates
// fields that collide after sanitizing.
func SheetNameFor(field string, index int) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']', '\'':
			return '_'
		}
		return r
	}, field)
	if name == "" {
		name = fmt.Sprintf("Series%d", index+1)
	} else if index > 0 {
		name = fmt.Sprintf("%d_%s", index+1, name)
	}
	if len([]rune(name)) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}
	return name
}

// AddReportSheet writes the report data, its statistics and a line chart
// to an existing sheet. Deviant points are repeated in a separate column
// that is drawn as marker-only overlay series.
func AddReportSheet(f *excelize.File, sheet string, r *models.Report) error {
	header := []interface{}{"label", r.Field, "deviant", "lower", "upper"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, p := range r.Points {
		row := i + 2
		label := p.Label
		if label == "" {
			label = fmt.Sprint(p.Index + 1)
		}
		if err := setCell(f, sheet, colLabel, row, label); err != nil {
			return err
		}
		if err := setNumber(f, sheet, colValue, row, p.Value); err != nil {
			return err
		}
		if p.Deviant {
			if err := setNumber(f, sheet, colDeviant, row, p.Value); err != nil {
				return err
			}
		}
		if err := setNumber(f, sheet, colLower, row, r.Bounds.Lower); err != nil {
			return err
		}
		if err := setNumber(f, sheet, colUpper, row, r.Bounds.Upper); err != nil {
			return err
		}
	}

	stats := []struct {
		name  string
		value float64
	}{
		{"mean", r.Bounds.Mean},
		{"std_dev", r.Bounds.StdDev},
		{"lower", r.Bounds.Lower},
		{"upper", r.Bounds.Upper},
		{"min", r.Range.Min},
		{"max", r.Range.Max},
		{"deviant", float64(r.DeviantCount())},
	}
	for i, s := range stats {
		if err := setCell(f, sheet, colStatsName, i+1, s.name); err != nil {
			return err
		}
		if err := setNumber(f, sheet, colStatsValue, i+1, s.value); err != nil {
			return err
		}
	}

	if len(r.Points) == 0 {
		return nil
	}

	chart, err := lineChart(sheet, r)
	if err != nil {
		return err
	}
	anchor, _ := excelize.CoordinatesToCellName(colStatsName, len(stats)+3)
	return f.AddChart(sheet, anchor, chart)
}

// palette holds the spreadsheet colors derived from a report.
type palette struct {
	line    string
	band    string
	marker  string
	deviant string
}

func paletteOf(r *models.Report) (palette, error) {
	p := palette{line: "82CA9D", band: "FF0000", marker: "FFFFFF", deviant: "FF0000"}

	set := func(dst *string, src string) error {
		if src == "" {
			return nil
		}
		hex, err := color.ExcelHex(src)
		if err != nil {
			return err
		}
		*dst = hex
		return nil
	}

	if len(r.Gradient.Stops) == 4 {
		if err := set(&p.band, r.Gradient.Stops[0].Color); err != nil {
			return p, err
		}
		if err := set(&p.line, r.Gradient.Stops[1].Color); err != nil {
			return p, err
		}
	}
	for _, pt := range r.Points {
		if pt.Deviant {
			if err := set(&p.deviant, pt.Style.Fill); err != nil {
				return p, err
			}
			break
		}
	}
	for _, pt := range r.Points {
		if !pt.Deviant {
			if err := set(&p.marker, pt.Style.Fill); err != nil {
				return p, err
			}
			break
		}
	}
	return p, nil
}

func lineChart(sheet string, r *models.Report) (*excelize.Chart, error) {
	pal, err := paletteOf(r)
	if err != nil {
		return nil, err
	}

	last := len(r.Points) + 1
	categories := rangeRef(sheet, colLabel, 2, last)
	series := func(col int, fill string, line excelize.ChartLine, marker excelize.ChartMarker) excelize.ChartSeries {
		return excelize.ChartSeries{
			Name:       rangeRef(sheet, col, 1, 1),
			Categories: categories,
			Values:     rangeRef(sheet, col, 2, last),
			Fill:       solid(fill),
			Line:       line,
			Marker:     marker,
		}
	}
	noMarker := excelize.ChartMarker{Symbol: "none"}

	return &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			series(colValue, pal.line, excelize.ChartLine{Width: 2},
				excelize.ChartMarker{Symbol: "circle", Size: 7, Fill: solid(pal.marker)}),
			series(colDeviant, pal.deviant, excelize.ChartLine{Type: excelize.ChartLineNone},
				excelize.ChartMarker{Symbol: "circle", Size: 8, Fill: solid(pal.deviant)}),
			series(colLower, pal.band, excelize.ChartLine{Width: 1}, noMarker),
			series(colUpper, pal.band, excelize.ChartLine{Width: 1}, noMarker),
		},
		Title:        []excelize.RichTextRun{{Text: r.Field}},
		Legend:       excelize.ChartLegend{Position: "bottom"},
		ShowBlanksAs: "gap",
		Dimension:    ChartSize,
	}, nil
}

func solid(hex string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex}}
}

// rangeRef returns an absolute reference like 'Sheet'!$B$2:$B$8.
func rangeRef(sheet string, col, fromRow, toRow int) string {
	name, _ := excelize.ColumnNumberToName(col)
	quoted := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	if fromRow == toRow {
		return fmt.Sprintf("%s!$%s$%d", quoted, name, fromRow)
	}
	return fmt.Sprintf("%s!$%s$%d:$%s$%d", quoted, name, fromRow, name, toRow)
}

func setCell(f *excelize.File, sheet string, col, row int, v interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, v)
}

// setNumber writes v, or its string form if it is not finite.
func setNumber(f *excelize.File, sheet string, col, row int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return setCell(f, sheet, col, row, fmt.Sprint(v))
	}
	return setCell(f, sheet, col, row, v)
}
