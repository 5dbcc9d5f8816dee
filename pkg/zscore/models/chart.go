package models

// ChartSeries represents one series of a chart embedded in a sheet.
type ChartSeries struct {
	// Sheet is the sheet the chart is drawn on.
	Sheet string `json:"sheet"`
	// Chart is the chart name.
	Chart string `json:"chart"`
	// ChartType is the chart type (e.g., Line, Bar).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// Name is the series display name.
	Name string `json:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for category values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for plotted values.
	YRange string `json:"y_range,omitempty"`
}

// CellRange represents cell coordinate bounds of a range reference.
type CellRange struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Len returns the number of cells in the range.
func (c CellRange) Len() int {
	return (c.R2 - c.R1 + 1) * (c.C2 - c.C1 + 1)
}

// At returns the column and row of the i-th cell in row-major order.
func (c CellRange) At(i int) (col, row int) {
	width := c.C2 - c.C1 + 1
	return c.C1 + i%width, c.R1 + i/width
}
