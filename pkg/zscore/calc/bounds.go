// Package calc implements the one-sigma statistics and gradient arithmetic
// behind deviation highlighting.
package calc

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
)

// Deviation selects the standard deviation variant.
type Deviation string

const (
	// Population divides the sum of squares by n.
	Population Deviation = "population"
	// Sample divides the sum of squares by n-1.
	Sample Deviation = "sample"
)

// Valid reports whether d names a known variant. The empty value counts as
// Population.
func (d Deviation) Valid() bool {
	switch d {
	case "", Population, Sample:
		return true
	}
	return false
}

// ComputeBounds returns the population one-sigma bounds of xs.
func ComputeBounds(xs []float64) models.Bounds {
	return ComputeBoundsWith(xs, Population)
}

// ComputeBoundsWith returns the one-sigma bounds of xs using the given
// deviation variant. An empty series yields NaN for every field.
func ComputeBoundsWith(xs []float64, d Deviation) models.Bounds {
	mean, err := stats.Mean(xs)
	if err != nil {
		mean = math.NaN()
	}

	var sd float64
	if d == Sample {
		sd, err = stats.StandardDeviationSample(xs)
	} else {
		sd, err = stats.StandardDeviation(xs)
	}
	if err != nil {
		sd = math.NaN()
	}

	b1 := mean + sd
	b2 := mean - sd
	return models.Bounds{
		Mean:   mean,
		StdDev: sd,
		Lower:  math.Min(b1, b2),
		Upper:  math.Max(b1, b2),
	}
}

// ValueRangeOf returns the smallest and largest value of xs without
// reordering it. An empty series yields {0, 0}.
func ValueRangeOf(xs []float64) models.ValueRange {
	lo, err := stats.Min(xs)
	if err != nil {
		return models.ValueRange{}
	}
	hi, err := stats.Max(xs)
	if err != nil {
		return models.ValueRange{}
	}
	return models.ValueRange{Min: lo, Max: hi}
}
