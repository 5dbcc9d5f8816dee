package models

import "encoding/json"

// PointStyle is the marker paint chosen for one data point.
type PointStyle struct {
	Fill   string `json:"fill" yaml:"fill"`
	Stroke string `json:"stroke,omitempty" yaml:"stroke,omitempty"`
}

// Point describes one rendered marker.
type Point struct {
	// Index is the position in the series.
	Index int `json:"index" yaml:"index"`
	// Label is the category label (empty if no label field was given).
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	// Value is the plotted value. NaN and ±Inf are written as strings in
	// JSON.
	Value float64 `json:"value" yaml:"value"`
	// ZScore is (value - mean) / stdDev; omitted when not finite.
	ZScore *float64 `json:"z_score,omitempty" yaml:"z_score,omitempty"`
	// Deviant reports whether the value lies outside the one-sigma band.
	Deviant bool `json:"deviant" yaml:"deviant"`
	// Style is the marker paint.
	Style PointStyle `json:"style" yaml:"style"`
	// ActiveStyle is the marker paint while hovered.
	ActiveStyle PointStyle `json:"active_style" yaml:"active_style"`
}

// pointFields has the fields of Point without its methods.
type pointFields Point

type pointJSON struct {
	pointFields
	Value Number `json:"value"`
}

// MarshalJSON implements json.Marshaler.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(pointJSON{pointFields: pointFields(p), Value: Number(p.Value)})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Point) UnmarshalJSON(data []byte) error {
	var v pointJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Point(v.pointFields)
	p.Value = float64(v.Value)
	return nil
}
