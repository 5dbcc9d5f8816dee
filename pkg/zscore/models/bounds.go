package models

import (
	"encoding/json"
	"math"
)

// Bounds holds the one-sigma band of a series.
type Bounds struct {
	// Mean is the arithmetic mean of the series.
	Mean float64 `json:"mean" yaml:"mean"`
	// StdDev is the standard deviation of the series.
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
	// Lower is the smaller of mean-stdDev and mean+stdDev.
	Lower float64 `json:"lower" yaml:"lower"`
	// Upper is the larger of mean-stdDev and mean+stdDev.
	Upper float64 `json:"upper" yaml:"upper"`
}

// ZScore returns (x - mean) / stdDev. The result is NaN or ±Inf when
// stdDev is zero or the bounds were computed from an empty series.
func (b Bounds) ZScore(x float64) float64 {
	return (x - b.Mean) / b.StdDev
}

type boundsJSON struct {
	Mean   Number `json:"mean"`
	StdDev Number `json:"std_dev"`
	Lower  Number `json:"lower"`
	Upper  Number `json:"upper"`
}

// MarshalJSON keeps the NaN bounds of an empty series representable.
func (b Bounds) MarshalJSON() ([]byte, error) {
	return json.Marshal(boundsJSON{
		Mean:   Number(b.Mean),
		StdDev: Number(b.StdDev),
		Lower:  Number(b.Lower),
		Upper:  Number(b.Upper),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bounds) UnmarshalJSON(data []byte) error {
	var v boundsJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = Bounds{
		Mean:   float64(v.Mean),
		StdDev: float64(v.StdDev),
		Lower:  float64(v.Lower),
		Upper:  float64(v.Upper),
	}
	return nil
}

// ValueRange is the smallest and largest value of a series.
type ValueRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Size returns |Max - Min|.
func (r ValueRange) Size() float64 {
	return math.Abs(r.Max - r.Min)
}

type valueRangeJSON struct {
	Min Number `json:"min"`
	Max Number `json:"max"`
}

// MarshalJSON implements json.Marshaler.
func (r ValueRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(valueRangeJSON{Min: Number(r.Min), Max: Number(r.Max)})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *ValueRange) UnmarshalJSON(data []byte) error {
	var v valueRangeJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = ValueRange{Min: float64(v.Min), Max: float64(v.Max)}
	return nil
}
