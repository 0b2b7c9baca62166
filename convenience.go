package interpolation

import (
	"fmt"
	"math"

	"github.com/tphakala/go-interpolation/internal/engine"
)

// NewLinear builds a table from values and step and returns a linear
// interpolator over it.
func NewLinear(values []float64, step float64) (*Linear, error) {
	table, err := NewSampleTable(values, step)
	if err != nil {
		return nil, err
	}
	if err := checkLength(table, MethodLinear); err != nil {
		return nil, err
	}
	return newLinear(table)
}

// NewQuadratic builds a table from values and step and returns a quadratic
// interpolator over it.
func NewQuadratic(values []float64, step float64) (*Quadratic, error) {
	table, err := NewSampleTable(values, step)
	if err != nil {
		return nil, err
	}
	if err := checkLength(table, MethodQuadratic); err != nil {
		return nil, err
	}
	return newQuadratic(table)
}

// NewCubicSpline builds a table from values and step and returns a natural
// cubic spline over it.
func NewCubicSpline(values []float64, step float64) (*CubicSpline, error) {
	table, err := NewSampleTable(values, step)
	if err != nil {
		return nil, err
	}
	if err := checkLength(table, MethodCubicSpline); err != nil {
		return nil, err
	}
	return newCubicSpline(table, BoundaryNatural)
}

// InterpolateAt is a convenience function for a single query. It builds an
// interpolator with the given method, evaluates it at x and discards it.
func InterpolateAt(values []float64, step float64, method Method, x float64) (float64, error) {
	table, err := NewSampleTable(values, step)
	if err != nil {
		return 0, err
	}
	ip, err := New(table, &Config{Method: method})
	if err != nil {
		return 0, err
	}
	return ip.Evaluate(x)
}

func checkLength(table *SampleTable, method Method) error {
	if table.Len() < method.MinSamples() {
		return (&Config{Method: method}).tooShort(table.Len())
	}
	return nil
}

// =============================================================================
// Float32 Native API
// =============================================================================
//
// Float32Interpolator evaluates in single precision end to end. Use it when
// the samples are already float32, for example PCM audio, and 24-bit
// accuracy is enough.

// Float32Interpolator wraps a float32 engine interpolator.
// It is immutable and safe for concurrent use.
type Float32Interpolator struct {
	engine engine.Evaluator[float32]
	method Method
}

// NewFloat32 creates a float32 interpolator over a copy of values.
// boundary is only used by MethodCubicSpline.
//
// Example:
//
//	ip, err := interpolation.NewFloat32(interpolation.MethodCubicSpline, pcm, 1, interpolation.BoundaryNatural)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, _ := ip.Evaluate(10.25)
func NewFloat32(method Method, values []float32, step float32, boundary SplineBoundary) (*Float32Interpolator, error) {
	config := &Config{Method: method, Boundary: boundary}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if s := float64(step); !(s > 0) || math.IsInf(s, 0) {
		return nil, fmt.Errorf("%w: step must be positive and finite, got %v", ErrInvalidTable, step)
	}
	if len(values) < method.MinSamples() {
		return nil, config.tooShort(len(values))
	}
	for i, v := range values {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: sample %d is %v", ErrInvalidTable, i, v)
		}
	}

	owned := make([]float32, len(values))
	copy(owned, values)

	ev, err := engine.New(method.engineMethod(), owned, step, boundary.engineBoundary())
	if err != nil {
		return nil, err
	}
	return &Float32Interpolator{engine: ev, method: method}, nil
}

// Evaluate returns the interpolated value at x.
func (f *Float32Interpolator) Evaluate(x float32) (float32, error) {
	return f.engine.Evaluate(x)
}

// Domain returns the interval on which Evaluate succeeds.
func (f *Float32Interpolator) Domain() (lo, hi float32) {
	return f.engine.Domain()
}

// Method returns the interpolation method.
func (f *Float32Interpolator) Method() Method {
	return f.method
}

// EvaluateInto evaluates every query in xs and writes the results to dst,
// which must be at least len(xs) long. It stops at the first failing query
// and returns the number of values written along with the error.
func (f *Float32Interpolator) EvaluateInto(dst, xs []float32) (int, error) {
	if len(dst) < len(xs) {
		return 0, fmt.Errorf("%w: output buffer too small: need %d, have %d",
			ErrInvalidConfig, len(xs), len(dst))
	}
	for i, x := range xs {
		y, err := f.engine.Evaluate(x)
		if err != nil {
			return i, err
		}
		dst[i] = y
	}
	return len(xs), nil
}
