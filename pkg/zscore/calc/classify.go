package calc

import (
	"math"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
)

// IsDeviant reports whether x lies strictly outside [b.Lower, b.Upper].
// NaN bounds compare false, so nothing is deviant for an empty series.
func IsDeviant(b models.Bounds, x float64) bool {
	return x < b.Lower || x > b.Upper
}

// IsDeviantZ reports whether |z(x)| > 1. A non-finite z-score (zero or
// undefined standard deviation) is never deviant.
func IsDeviantZ(b models.Bounds, x float64) bool {
	z := b.ZScore(x)
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return false
	}
	return math.Abs(z) > 1
}
