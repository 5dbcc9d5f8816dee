package models

// Report represents the highlighting result for a single field.
type Report struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name,omitempty" yaml:"book_name,omitempty"`
	// SheetName is the sheet the records were read from.
	SheetName string `json:"sheet_name,omitempty" yaml:"sheet_name,omitempty"`
	// Field is the header of the highlighted column.
	Field string `json:"field" yaml:"field"`
	// Deviation is the standard deviation variant used.
	Deviation string `json:"deviation" yaml:"deviation"`
	// Count is the number of points.
	Count int `json:"count" yaml:"count"`
	// Bounds is the one-sigma band.
	Bounds Bounds `json:"bounds" yaml:"bounds"`
	// Range is the observed value range.
	Range ValueRange `json:"range" yaml:"range"`
	// Gradient is the line stroke gradient definition.
	Gradient GradientDef `json:"gradient" yaml:"gradient"`
	// LineStroke references Gradient as stroke paint.
	LineStroke string `json:"line_stroke" yaml:"line_stroke"`
	// Points lists per-marker decisions in series order.
	Points []Point `json:"points" yaml:"points"`
}

// DeviantCount returns how many points are deviant.
func (r *Report) DeviantCount() int {
	n := 0
	for _, p := range r.Points {
		if p.Deviant {
			n++
		}
	}
	return n
}
