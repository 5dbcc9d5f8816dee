package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/calc"
	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
	"github.com/Renegatto/line-chart-test-task/pkg/zscore/parser"
)

func sampleReport(field string, values []float64) models.Report {
	b := calc.ComputeBounds(values)
	r := calc.ValueRangeOf(values)
	report := models.Report{
		Field:  field,
		Count:  len(values),
		Bounds: b,
		Range:  r,
		Gradient: models.GradientDef{
			ID:    "g",
			Stops: calc.BuildChunk("red", "#82ca9d", r.Size())(calc.Normalize(r, b.Lower), calc.Normalize(r, b.Upper)),
		},
	}
	for i, v := range values {
		deviant := calc.IsDeviant(b, v)
		style := models.PointStyle{Fill: "white", Stroke: "#82ca9d"}
		if deviant {
			style = models.PointStyle{Fill: "red", Stroke: "red"}
		}
		report.Points = append(report.Points, models.Point{Index: i, Value: v, Deviant: deviant, Style: style})
	}
	return report
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.xlsx")
	require.NoError(t, WriteSample(path, "Data"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Data"}, f.GetSheetList())
	table, err := parser.ExtractRecords(f, "Data")
	require.NoError(t, err)
	assert.Equal(t, SampleHeaders(), table.Headers)
	require.Len(t, table.Records, len(SampleRows()))
	assert.Equal(t, int64(9800), table.Records[2].Values["pv"])
}

func TestWriteReports(t *testing.T) {
	pv := []float64{2400, 1398, 9800, 3908, 4800, 3800, 4300}
	reports := []models.Report{
		sampleReport("pv", pv),
		sampleReport("uv", []float64{4000, 3000, 2000, 2780, 1890, 2390, 3490}),
	}

	path := filepath.Join(t.TempDir(), "chart.xlsx")
	require.NoError(t, WriteReports(path, reports))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"pv", "2_uv"}, f.GetSheetList())

	value, err := f.GetCellValue("pv", "B4")
	require.NoError(t, err)
	assert.Equal(t, "9800", value)

	// Only deviant rows carry an overlay value.
	overlay, err := parser.ReadRange(f, "pv!$C$2:$C$8")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "1398", "9800", "", "", "", ""}, overlay)

	label, err := f.GetCellValue("pv", "A2")
	require.NoError(t, err)
	assert.Equal(t, "1", label)

	series, err := parser.ExtractChartSeries(path)
	require.NoError(t, err)
	require.Len(t, series["pv"], 4)
	assert.Equal(t, "Line", series["pv"][0].ChartType)
	assert.Equal(t, "'pv'!$B$2:$B$8", series["pv"][0].YRange)
	assert.Equal(t, "'pv'!$A$2:$A$8", series["pv"][0].XRange)
	assert.Equal(t, "'pv'!$C$2:$C$8", series["pv"][1].YRange)
	require.Len(t, series["2_uv"], 4)
}

func TestWriteReportsNonFiniteBounds(t *testing.T) {
	report := sampleReport("empty", nil)

	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteReports(path, []models.Report{report}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	mean, err := f.GetCellValue("empty", "H1")
	require.NoError(t, err)
	assert.Equal(t, "NaN", mean)
}

func TestWriteReportsStatsBlock(t *testing.T) {
	report := sampleReport("pv", []float64{2400, 1398, 9800, 3908, 4800, 3800, 4300})

	path := filepath.Join(t.TempDir(), "stats.xlsx")
	require.NoError(t, WriteReports(path, []models.Report{report}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	names, err := parser.ReadRange(f, "pv!$G$1:$G$7")
	require.NoError(t, err)
	assert.Equal(t, []string{"mean", "std_dev", "lower", "upper", "min", "max", "deviant"}, names)

	tests := []struct {
		cell     string
		expected string
	}{
		{"H5", "1398"},
		{"H6", "9800"},
		{"H7", "2"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue("pv", tt.cell)
		require.NoError(t, err)
		if got != tt.expected {
			t.Errorf("GetCellValue(%q) = %q, expected %q", tt.cell, got, tt.expected)
		}
	}
}

func TestSheetNameFor(t *testing.T) {
	tests := []struct {
		field    string
		index    int
		expected string
	}{
		{"pv", 0, "pv"},
		{"pv", 2, "3_pv"},
		{"a/b:c", 0, "a_b_c"},
		{"", 4, "Series5"},
		{"abcdefghijklmnopqrstuvwxyz0123456789", 0, "abcdefghijklmnopqrstuvwxyz01234"},
	}

	for _, tt := range tests {
		if got := SheetNameFor(tt.field, tt.index); got != tt.expected {
			t.Errorf("SheetNameFor(%q, %d) = %q, expected %q", tt.field, tt.index, got, tt.expected)
		}
	}
}

func TestRangeRef(t *testing.T) {
	assert.Equal(t, "'pv'!$B$2:$B$8", rangeRef("pv", colValue, 2, 8))
	assert.Equal(t, "'It''s'!$A$1", rangeRef("It's", colLabel, 1, 1))
}
