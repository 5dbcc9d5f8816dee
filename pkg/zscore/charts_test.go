package zscore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/export"
	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
)

func TestHighlightChartsRoundTrip(t *testing.T) {
	src := writeSample(t)

	opts := DefaultOptions()
	opts.LabelField = "name"
	reports, err := HighlightFileAll(src, opts)
	require.NoError(t, err)

	charted := filepath.Join(t.TempDir(), "charted.xlsx")
	require.NoError(t, export.WriteReports(charted, reports))

	found, err := HighlightCharts(charted, DefaultOptions())
	require.NoError(t, err)

	// Each written chart has the value, deviant overlay and two bound lines.
	byName := make(map[string][]models.Report)
	for _, r := range found {
		byName[r.Field] = append(byName[r.Field], r)
	}
	require.Contains(t, byName, "pv")

	pv := byName["pv"][0]
	assert.Equal(t, "charted.xlsx", pv.BookName)
	assert.Equal(t, 7, pv.Count)
	assert.Equal(t, "Page C", pv.Points[2].Label)
	assert.InDelta(t, reports[1].Bounds.Mean, pv.Bounds.Mean, 1e-9)
	assert.Equal(t, reports[1].DeviantCount(), pv.DeviantCount())

	// The overlay only holds the deviant points.
	require.Contains(t, byName, "deviant")
	for _, r := range byName["deviant"] {
		assert.LessOrEqual(t, r.Count, 7)
	}
}

func TestHighlightChartsNoCharts(t *testing.T) {
	reports, err := HighlightCharts(writeSample(t), DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestHighlightChartsNonNumericInRowSeries(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"name", "Page A", "Page B", "Page C", "Page D"},
		{"pv", 10, 20, "n/a", 40},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.AddChart("Sheet1", "G2", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       "Sheet1!$A$2",
			Categories: "Sheet1!$B$1:$E$1",
			Values:     "Sheet1!$B$2:$E$2",
		}},
	}))

	path := filepath.Join(t.TempDir(), "row-series.xlsx")
	require.NoError(t, f.SaveAs(path))

	_, err := HighlightCharts(path, DefaultOptions())
	require.Error(t, err)

	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, 2, fieldErr.Row)
	assert.Equal(t, "pv", fieldErr.Field)
	assert.ErrorIs(t, err, ErrNonNumeric)
	assert.Contains(t, err.Error(), "D2")
}
