package interpolation

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// SampleTable is an immutable sequence of function values sampled at
// uniform spacing. Sample i lies at x = i*Step(); x-coordinates are never
// stored.
//
// A SampleTable may be shared by any number of interpolators and
// goroutines.
type SampleTable struct {
	values []float64
	step   float64
}

// NewSampleTable copies values into a new table with the given spacing.
// values must be non-empty and finite; step must be positive and finite.
func NewSampleTable(values []float64, step float64) (*SampleTable, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrInvalidTable)
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: step must be positive and finite, got %v", ErrInvalidTable, step)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: sample %d is %v", ErrInvalidTable, i, v)
		}
	}

	owned := make([]float64, len(values))
	copy(owned, values)
	return &SampleTable{values: owned, step: step}, nil
}

// Len returns the number of samples.
func (t *SampleTable) Len() int {
	return len(t.values)
}

// Step returns the spacing between samples.
func (t *SampleTable) Step() float64 {
	return t.step
}

// At returns sample i. It panics if i is out of range, like a slice index.
func (t *SampleTable) At(i int) float64 {
	return t.values[i]
}

// X returns the x-coordinate of sample i.
func (t *SampleTable) X(i int) float64 {
	return float64(i) * t.step
}

// Span returns the x-coordinates of the first and last samples.
func (t *SampleTable) Span() (first, last float64) {
	return 0, t.X(len(t.values) - 1)
}

// Values returns a copy of the samples.
func (t *SampleTable) Values() []float64 {
	out := make([]float64, len(t.values))
	copy(out, t.values)
	return out
}

// Points returns the samples as (x, y) pairs.
func (t *SampleTable) Points() []Point {
	pts := make([]Point, len(t.values))
	for i, y := range t.values {
		pts[i] = Point{X: t.X(i), Y: y}
	}
	return pts
}

// Summary describes the sample values.
type Summary struct {
	Min, Max float64
	Mean     float64
	StdDev   float64
	Median   float64
}

// Summary computes descriptive statistics of the sample values.
func (t *SampleTable) Summary() (Summary, error) {
	data := stats.Float64Data(t.values)

	var (
		s   Summary
		err error
	)
	if s.Min, err = data.Min(); err != nil {
		return Summary{}, fmt.Errorf("min: %w", err)
	}
	if s.Max, err = data.Max(); err != nil {
		return Summary{}, fmt.Errorf("max: %w", err)
	}
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, fmt.Errorf("mean: %w", err)
	}
	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return Summary{}, fmt.Errorf("standard deviation: %w", err)
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, fmt.Errorf("median: %w", err)
	}
	return s, nil
}
