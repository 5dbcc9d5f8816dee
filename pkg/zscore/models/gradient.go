package models

// GradientStop is one color stop of a linear gradient.
type GradientStop struct {
	// Offset is the stop position along the gradient vector.
	Offset Number `json:"offset" yaml:"offset"`
	// Color is the stop color in any renderer-accepted notation.
	Color string `json:"color" yaml:"color"`
}

// GradientChunk is the four-stop sequence primary, highlight, highlight,
// primary describing a single highlighted band.
type GradientChunk []GradientStop

// GradientDef is an addressable linear gradient a renderer registers once
// and references by ID as stroke paint.
type GradientDef struct {
	// ID is the gradient identifier (e.g. referenced as url(#ID)).
	ID string `json:"id" yaml:"id"`
	// X1, Y1, X2, Y2 is the gradient vector in bounding-box units.
	X1 float64 `json:"x1" yaml:"x1"`
	Y1 float64 `json:"y1" yaml:"y1"`
	X2 float64 `json:"x2" yaml:"x2"`
	Y2 float64 `json:"y2" yaml:"y2"`
	// Stops is the ordered list of stops.
	Stops GradientChunk `json:"stops" yaml:"stops"`
}
