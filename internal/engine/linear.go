package engine

import (
	"github.com/tphakala/go-interpolation/internal/simdops"
)

// Linear implements linear (2-point, 1st order) interpolation over a
// uniformly spaced table.
type Linear[F simdops.Float] struct {
	values []F
	step   F
}

// NewLinear creates a linear interpolator for values spaced step apart.
func NewLinear[F simdops.Float](values []F, step F) (*Linear[F], error) {
	if err := checkTable(MethodLinear, values, step); err != nil {
		return nil, err
	}
	return &Linear[F]{values: values, step: step}, nil
}

// Evaluate returns the value at x of the line through samples i and i+1,
// where i = floor(x/step). It fails with *OutOfDomainError when either
// sample is missing, which includes x at the last knot.
func (l *Linear[F]) Evaluate(x F) (F, error) {
	return l.EvaluateAt(float64(x))
}

// EvaluateAt is Evaluate for a float64 query.
func (l *Linear[F]) EvaluateAt(x float64) (F, error) {
	i, t, ok := bracket(x, float64(l.step), 0, len(l.values)-linearInterpolationPoints)
	if !ok {
		return 0, l.outOfDomain(x)
	}

	y1, y2 := l.values[i], l.values[i+1]
	return y1 + (y2-y1)*F(t), nil
}

// Domain returns [0, (n-1)*step).
func (l *Linear[F]) Domain() (lo, hi F) {
	return 0, F(len(l.values)-1) * l.step
}

// Method returns MethodLinear.
func (l *Linear[F]) Method() Method {
	return MethodLinear
}

func (l *Linear[F]) outOfDomain(x float64) error {
	lo, hi := l.Domain()
	return &OutOfDomainError{X: x, Lo: float64(lo), Hi: float64(hi), Method: MethodLinear}
}
