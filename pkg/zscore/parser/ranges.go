package parser

import (
	"fmt"
	"strings"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
	"github.com/xuri/excelize/v2"
)

// ParseRangeRef parses a reference such as 'Sheet 1'!$B$2:$B$8 or
// Sheet1!A1 into its sheet name and cell bounds.
func ParseRangeRef(ref string) (string, models.CellRange, error) {
	ref = strings.TrimSpace(ref)
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", models.CellRange{}, fmt.Errorf("range %q has no sheet name", ref)
	}

	sheet := ref[:idx]
	if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}

	cells := strings.Split(strings.ReplaceAll(ref[idx+1:], "$", ""), ":")
	if len(cells) == 1 {
		cells = append(cells, cells[0])
	}
	if len(cells) != 2 {
		return "", models.CellRange{}, fmt.Errorf("invalid range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(cells[0])
	if err != nil {
		return "", models.CellRange{}, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(cells[1])
	if err != nil {
		return "", models.CellRange{}, err
	}

	return sheet, models.CellRange{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}

// ReadRange returns the raw cell values of a range reference in row-major
// order. Empty cells are returned as "".
func ReadRange(f *excelize.File, ref string) ([]string, error) {
	sheet, area, err := ParseRangeRef(ref)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, area.Len())
	for row := area.R1; row <= area.R2; row++ {
		for col := area.C1; col <= area.C2; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	return values, nil
}
