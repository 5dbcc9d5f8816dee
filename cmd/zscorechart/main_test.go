package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(os.Stderr)
	cmd.SetErr(os.Stderr)
	return cmd.Execute()
}

func writeSampleFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.xlsx")
	require.NoError(t, execute(t, "sample", "-o", path, "--sheet", "Data"))
	return path
}

func TestSampleCommand(t *testing.T) {
	path := writeSampleFile(t)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Data"}, f.GetSheetList())
	v, err := f.GetCellValue("Data", "A1")
	require.NoError(t, err)
	assert.Equal(t, "name", v)
}

func TestRunSingleField(t *testing.T) {
	input := writeSampleFile(t)
	out := filepath.Join(t.TempDir(), "pv.json")

	require.NoError(t, execute(t, input, "--field", "pv", "--label", "name", "-o", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var report models.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "pv", report.Field)
	assert.Equal(t, "zScoreLinePv", report.Gradient.ID)
	assert.Equal(t, "url(#zScoreLinePv)", report.LineStroke)
	assert.Equal(t, 7, report.Count)
	assert.Equal(t, 2, report.DeviantCount())
}

func TestRunFieldsDirAndWorkbook(t *testing.T) {
	input := writeSampleFile(t)
	dir := t.TempDir()
	fieldsDir := filepath.Join(dir, "fields")
	chart := filepath.Join(dir, "chart.xlsx")

	require.NoError(t, execute(t, input, "--label", "name", "--fields-dir", fieldsDir, "--xlsx", chart, "--format", "yaml"))

	entries, err := os.ReadDir(fieldsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, ".yaml", filepath.Ext(e.Name()))
	}

	f, err := excelize.OpenFile(chart)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 3)
}

func TestRunRendererColors(t *testing.T) {
	input := writeSampleFile(t)
	out := filepath.Join(t.TempDir(), "pv.json")

	require.NoError(t, execute(t, input, "--field", "pv", "--highlight", "rgb(130 202 157 / 50%)", "--deviant", "darkorange", "-o", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var report models.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "rgb(130 202 157 / 50%)", report.Gradient.Stops[1].Color)
	assert.Equal(t, "darkorange", report.Points[2].Style.Fill)
}

func TestRunErrors(t *testing.T) {
	input := writeSampleFile(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing field flag", []string{input}},
		{"unknown field", []string{input, "--field", "nope"}},
		{"missing file", []string{filepath.Join(t.TempDir(), "none.xlsx"), "--field", "pv"}},
		{"bad color", []string{input, "--field", "pv", "--primary", "not-a-color"}},
		{"bad deviation", []string{input, "--field", "pv", "--deviation", "median"}},
		{"bad log level", []string{input, "--field", "pv", "--log-level", "loud"}},
		{"translucent workbook color", []string{input, "--field", "pv", "--highlight", "#82ca9d80", "--xlsx", filepath.Join(t.TempDir(), "out.xlsx")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := execute(t, tt.args...); err == nil {
				t.Errorf("execute(%v) succeeded, expected error", tt.args)
			}
		})
	}
}
