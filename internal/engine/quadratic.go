package engine

import (
	"github.com/tphakala/go-interpolation/internal/simdops"
)

// Quadratic implements 3-point, 2nd order interpolation over a uniformly
// spaced table. The parabola passes through the sample at or before x and
// one neighbour on each side, so the first and last segments are not
// covered.
type Quadratic[F simdops.Float] struct {
	values []F
	step   F
}

// NewQuadratic creates a quadratic interpolator for values spaced step apart.
func NewQuadratic[F simdops.Float](values []F, step F) (*Quadratic[F], error) {
	if err := checkTable(MethodQuadratic, values, step); err != nil {
		return nil, err
	}
	return &Quadratic[F]{values: values, step: step}, nil
}

// Evaluate returns the value at x of the parabola through samples c-1, c
// and c+1, where c = floor(x/step). It fails with *OutOfDomainError unless
// 1 <= c <= n-2.
func (q *Quadratic[F]) Evaluate(x F) (F, error) {
	return q.EvaluateAt(float64(x))
}

// EvaluateAt is Evaluate for a float64 query.
func (q *Quadratic[F]) EvaluateAt(x float64) (F, error) {
	c, t, ok := bracket(x, float64(q.step), 1, len(q.values)-2)
	if !ok {
		return 0, q.outOfDomain(x)
	}
	yPrev, yCurr, yNext := q.values[c-1], q.values[c], q.values[c+1]

	// Parabola through (-1, yPrev), (0, yCurr), (1, yNext) in units of step
	slope := (yNext - yPrev) / quadraticHalf
	curve := (yNext - quadraticCenterWeight*yCurr + yPrev) / quadraticHalf
	u := F(t)

	return yCurr + (slope+curve*u)*u, nil
}

// Domain returns [step, (n-1)*step).
func (q *Quadratic[F]) Domain() (lo, hi F) {
	return q.step, F(len(q.values)-1) * q.step
}

// Method returns MethodQuadratic.
func (q *Quadratic[F]) Method() Method {
	return MethodQuadratic
}

func (q *Quadratic[F]) outOfDomain(x float64) error {
	lo, hi := q.Domain()
	return &OutOfDomainError{X: x, Lo: float64(lo), Hi: float64(hi), Method: MethodQuadratic}
}
