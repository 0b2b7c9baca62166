// Package engine implements the interpolation algorithms.
//
// Every interpolator is generic over float32 and float64 and is immutable
// once constructed, so a single instance may be evaluated from many
// goroutines without locking.
package engine

import (
	"fmt"
	"math"

	"github.com/tphakala/go-interpolation/internal/simdops"
)

// Method selects the interpolation algorithm.
type Method int

const (
	// MethodLinear fits a line through the two bracketing samples.
	MethodLinear Method = iota
	// MethodQuadratic fits a parabola through the bracketing sample and
	// one neighbour on each side.
	MethodQuadratic
	// MethodCubicSpline evaluates a natural cubic spline.
	MethodCubicSpline
)

// String returns the method name used in errors and logs.
func (m Method) String() string {
	switch m {
	case MethodLinear:
		return "linear"
	case MethodQuadratic:
		return "quadratic"
	case MethodCubicSpline:
		return "cubic-spline"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// MinSamples returns the smallest table length the method accepts.
func (m Method) MinSamples() int {
	switch m {
	case MethodQuadratic:
		return quadraticMinSamples
	case MethodCubicSpline:
		return splineMinSamples
	default:
		return linearMinSamples
	}
}

// Evaluator is the capability shared by all interpolators.
type Evaluator[F simdops.Float] interface {
	// Evaluate returns the interpolated value at x.
	Evaluate(x F) (F, error)

	// EvaluateAt is Evaluate with the query held in float64. Only the
	// offset from the bracketing sample is rounded to F, so float32
	// evaluators keep sub-sample resolution far from the origin.
	EvaluateAt(x float64) (F, error)

	// Domain returns the half-open interval [lo, hi) on which Evaluate
	// succeeds. The spline accepts any x; its Domain is the sampled range.
	Domain() (lo, hi F)

	// Method reports the algorithm in use.
	Method() Method
}

var (
	_ Evaluator[float64] = (*Linear[float64])(nil)
	_ Evaluator[float64] = (*Quadratic[float64])(nil)
	_ Evaluator[float64] = (*CubicSpline[float64])(nil)
)

// New creates the evaluator for method over values spaced step apart.
// boundary is only consulted for MethodCubicSpline.
//
// values must not be modified for the lifetime of the evaluator.
func New[F simdops.Float](method Method, values []F, step F, boundary Boundary) (Evaluator[F], error) {
	var (
		ev  Evaluator[F]
		err error
	)
	switch method {
	case MethodLinear:
		ev, err = NewLinear(values, step)
	case MethodQuadratic:
		ev, err = NewQuadratic(values, step)
	case MethodCubicSpline:
		ev, err = NewCubicSpline(values, step, boundary)
	default:
		return nil, fmt.Errorf("unknown interpolation method %d", int(method))
	}
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// checkTable validates the shared (values, step) pair.
func checkTable[F simdops.Float](method Method, values []F, step F) error {
	s := float64(step)
	if !(s > 0) || math.IsInf(s, 0) {
		return fmt.Errorf("%s: %w: step=%v", method, ErrInvalidStep, s)
	}
	if minLen := method.MinSamples(); len(values) < minLen {
		return fmt.Errorf("%s: %w: have %d samples, need at least %d",
			method, ErrTableTooShort, len(values), minLen)
	}
	return nil
}

// bracket returns i = floor(x/step) when it lies in [lo, hi], along with
// the fractional offset t = x/step - i in [0, 1).
// NaN and infinite queries never bracket.
func bracket(x, step float64, lo, hi int) (i int, t float64, ok bool) {
	u := x / step
	f := math.Floor(u)
	if math.IsNaN(f) || f < float64(lo) || f > float64(hi) {
		return 0, 0, false
	}
	return int(f), u - f, true
}
