package calc

import (
	"math"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
)

// ChunkFunc builds a gradient chunk highlighting [start, end].
type ChunkFunc func(start, end float64) models.GradientChunk

// BuildChunk returns a ChunkFunc that maps start and end onto gradient
// offsets by dividing by size. The chunk is primaryColor up to start,
// highlightColor between start and end, then primaryColor again.
//
// Offsets are not clamped and stops are never reordered: start > end or
// size == 0 produce out-of-range or non-finite offsets that are passed on
// to the renderer as is.
func BuildChunk(primaryColor, highlightColor string, size float64) ChunkFunc {
	return func(start, end float64) models.GradientChunk {
		from := models.Number(start / size)
		to := models.Number(end / size)
		return models.GradientChunk{
			{Offset: from, Color: primaryColor},
			{Offset: from, Color: highlightColor},
			{Offset: to, Color: highlightColor},
			{Offset: to, Color: primaryColor},
		}
	}
}

// Normalize maps a value into the coordinate frame of r: |v - r.Min|.
func Normalize(r models.ValueRange, v float64) float64 {
	return math.Abs(v - r.Min)
}
