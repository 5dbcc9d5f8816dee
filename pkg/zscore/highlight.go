package zscore

import (
	"math"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/calc"
	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
)

// Config configures Highlight for records of type R.
type Config[R any] struct {
	PrimaryColor   string
	HighlightColor string
	DeviantColor   string
	NormalFill     string
	NormalStroke   string
	ActiveFill     string
	GradientID     string
	Deviation      calc.Deviation
	// ValueOf extracts the plotted value of a record.
	ValueOf func(R) float64
	// LabelOf extracts the category label of a record (optional).
	LabelOf func(R) string
}

// NewConfig builds a Config from options.
func NewConfig[R any](o Options, valueOf func(R) float64, labelOf func(R) string) Config[R] {
	return Config[R]{
		PrimaryColor:   o.PrimaryColor,
		HighlightColor: o.HighlightColor,
		DeviantColor:   o.DeviantColor,
		NormalFill:     o.NormalFill,
		NormalStroke:   o.normalStroke(),
		ActiveFill:     o.ActiveFill,
		GradientID:     o.GradientIDFor(o.Field),
		Deviation:      o.Deviation,
		ValueOf:        valueOf,
		LabelOf:        labelOf,
	}
}

// Highlighted is the highlighting of one series. It is immutable and safe
// for concurrent use.
type Highlighted struct {
	series   []float64
	labels   []string
	bounds   models.Bounds
	rng      models.ValueRange
	gradient models.GradientDef

	deviantColor string
	normalFill   string
	normalStroke string
	activeFill   string
}

// Highlight computes the one-sigma bounds of the values of records and the
// gradient that paints the line in HighlightColor between the bounds and in
// PrimaryColor outside them. records is only read.
func Highlight[R any](records []R, cfg Config[R]) *Highlighted {
	series := make([]float64, len(records))
	var labels []string
	if cfg.LabelOf != nil {
		labels = make([]string, len(records))
	}
	for i, r := range records {
		series[i] = cfg.ValueOf(r)
		if labels != nil {
			labels[i] = cfg.LabelOf(r)
		}
	}

	bounds := calc.ComputeBoundsWith(series, cfg.Deviation)
	rng := calc.ValueRangeOf(series)
	chunk := calc.BuildChunk(cfg.PrimaryColor, cfg.HighlightColor, rng.Size())(
		calc.Normalize(rng, bounds.Lower),
		calc.Normalize(rng, bounds.Upper),
	)

	normalStroke := cfg.NormalStroke
	if normalStroke == "" {
		normalStroke = cfg.PrimaryColor
	}

	return &Highlighted{
		series: series,
		labels: labels,
		bounds: bounds,
		rng:    rng,
		gradient: models.GradientDef{
			ID: cfg.GradientID,
			// Offset 0 is the series minimum, at the bottom of the line.
			X1: 0, Y1: 1, X2: 0, Y2: 0,
			Stops: chunk,
		},
		deviantColor: cfg.DeviantColor,
		normalFill:   cfg.NormalFill,
		normalStroke: normalStroke,
		activeFill:   cfg.ActiveFill,
	}
}

// Bounds returns the one-sigma bounds.
func (h *Highlighted) Bounds() models.Bounds { return h.bounds }

// Range returns the observed value range.
func (h *Highlighted) Range() models.ValueRange { return h.rng }

// Series returns a copy of the extracted values.
func (h *Highlighted) Series() []float64 {
	return append([]float64(nil), h.series...)
}

// Gradient returns the line gradient definition.
func (h *Highlighted) Gradient() models.GradientDef {
	g := h.gradient
	g.Stops = append(models.GradientChunk(nil), h.gradient.Stops...)
	return g
}

// LineStrokeRef returns the stroke paint referencing the gradient.
func (h *Highlighted) LineStrokeRef() string {
	return "url(#" + h.gradient.ID + ")"
}

// IsDeviant reports whether value lies outside the one-sigma band.
func (h *Highlighted) IsDeviant(value float64) bool {
	return calc.IsDeviant(h.bounds, value)
}

// PointColor returns the marker paint for value.
func (h *Highlighted) PointColor(value float64) models.PointStyle {
	return h.styles(h.IsDeviant(value)).normal
}

// ActivePointColor returns the hovered marker paint for value.
func (h *Highlighted) ActivePointColor(value float64) models.PointStyle {
	return h.styles(h.IsDeviant(value)).active
}

type pointStyles struct {
	normal models.PointStyle
	active models.PointStyle
}

func (h *Highlighted) styles(deviant bool) pointStyles {
	if deviant {
		return pointStyles{
			normal: models.PointStyle{Fill: h.deviantColor, Stroke: h.deviantColor},
			active: models.PointStyle{Fill: h.deviantColor},
		}
	}
	return pointStyles{
		normal: models.PointStyle{Fill: h.normalFill, Stroke: h.normalStroke},
		active: models.PointStyle{Fill: h.activeFill},
	}
}

// Deviant returns the indices of deviant points in series order.
func (h *Highlighted) Deviant() []int {
	var idx []int
	for i, v := range h.series {
		if h.IsDeviant(v) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Points returns the per-marker decisions in series order.
func (h *Highlighted) Points() []models.Point {
	points := make([]models.Point, len(h.series))
	for i, v := range h.series {
		deviant := h.IsDeviant(v)
		s := h.styles(deviant)
		p := models.Point{
			Index:       i,
			Value:       v,
			Deviant:     deviant,
			Style:       s.normal,
			ActiveStyle: s.active,
		}
		if h.labels != nil {
			p.Label = h.labels[i]
		}
		if z := h.bounds.ZScore(v); !math.IsNaN(z) && !math.IsInf(z, 0) {
			p.ZScore = &z
		}
		points[i] = p
	}
	return points
}
