// Package export writes highlighting reports back to Excel workbooks.
package export

import (
	"github.com/xuri/excelize/v2"
)

// SampleHeaders returns the header row of the demo dataset.
func SampleHeaders() []string {
	return []string{"name", "uv", "pv", "amt"}
}

// SampleRows returns the demo dataset: seven pages with uv, pv and amt
// counts.
func SampleRows() [][]interface{} {
	return [][]interface{}{
		{"Page A", 4000, 2400, 2400},
		{"Page B", 3000, 1398, 2210},
		{"Page C", 2000, 9800, 2290},
		{"Page D", 2780, 3908, 2000},
		{"Page E", 1890, 4800, 2181},
		{"Page F", 2390, 3800, 2500},
		{"Page G", 3490, 4300, 2100},
	}
}

// WriteSample writes the demo dataset to sheetName of a new workbook.
func WriteSample(path, sheetName string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	headers := SampleHeaders()
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &row); err != nil {
		return err
	}
	for i, r := range SampleRows() {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, &r); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
