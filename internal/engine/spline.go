package engine

import (
	"fmt"
	"sort"

	"github.com/tphakala/go-interpolation/internal/simdops"
)

// Boundary selects how the right end of a cubic spline is closed.
// The left end always has a zero second derivative.
type Boundary int

const (
	// BoundaryNatural pins the second derivative at the last knot to zero.
	BoundaryNatural Boundary = iota

	// BoundaryForwardSweep takes the last second-derivative coefficient
	// from the final row of the forward sweep instead of pinning it.
	// The resulting spline is still C2 at every interior knot but its
	// right end is not natural.
	BoundaryForwardSweep
)

// String returns the boundary name.
func (b Boundary) String() string {
	switch b {
	case BoundaryNatural:
		return "natural"
	case BoundaryForwardSweep:
		return "forward-sweep"
	default:
		return fmt.Sprintf("boundary(%d)", int(b))
	}
}

// Segment is one cubic piece of a spline in Taylor form around its
// right anchor X:
//
//	S(x) = A + B*dx + (C/2)*dx^2 + (D/6)*dx^3,  dx = x - X
//
// Segment i covers [X(i-1), X(i)]. Segment 0 only carries X, A and C.
type Segment[F simdops.Float] struct {
	X, A, B, C, D F
}

// Value evaluates the segment polynomial at x.
func (s Segment[F]) Value(x F) F {
	return s.valueAt(x - s.X)
}

func (s Segment[F]) valueAt(dx F) F {
	return s.A + (s.B+(s.C/splineHalf+s.D*dx/splineSixth)*dx)*dx
}

// Derivative evaluates the first derivative of the segment at x.
func (s Segment[F]) Derivative(x F) F {
	return s.derivativeAt(x - s.X)
}

func (s Segment[F]) derivativeAt(dx F) F {
	return s.B + (s.C+s.D*dx/splineHalf)*dx
}

// SecondDerivative evaluates the second derivative of the segment at x.
func (s Segment[F]) SecondDerivative(x F) F {
	return s.secondDerivativeAt(x - s.X)
}

func (s Segment[F]) secondDerivativeAt(dx F) F {
	return s.C + s.D*dx
}

// CubicSpline implements a cubic spline with zero curvature at the left
// boundary over a uniformly spaced table.
//
// Coefficients are computed once in NewCubicSpline (O(n)); Evaluate is a
// binary search plus one polynomial (O(log n)). Queries outside the sampled
// range are never rejected: they use the first or last segment's polynomial.
type CubicSpline[F simdops.Float] struct {
	segments []Segment[F]
	step     F
	boundary Boundary

	// SIMD operations for type F
	ops *simdops.Ops[F]
}

// NewCubicSpline builds the spline segments for values spaced step apart.
func NewCubicSpline[F simdops.Float](values []F, step F, boundary Boundary) (*CubicSpline[F], error) {
	if err := checkTable(MethodCubicSpline, values, step); err != nil {
		return nil, err
	}
	if boundary != BoundaryNatural && boundary != BoundaryForwardSweep {
		return nil, fmt.Errorf("%s: unknown boundary %d", MethodCubicSpline, int(boundary))
	}

	s := &CubicSpline[F]{
		segments: make([]Segment[F], len(values)),
		step:     step,
		boundary: boundary,
		ops:      simdops.For[F](),
	}
	s.build(values)
	return s, nil
}

// build solves the tridiagonal second-derivative system with the Thomas
// algorithm and derives per-segment coefficients.
func (s *CubicSpline[F]) build(y []F) {
	n := len(y)
	h := s.step
	seg := s.segments

	for i := range n {
		seg[i].X = F(i) * h
		seg[i].A = y[i]
	}
	seg[0].C = 0

	// Forward sweep. Row i:
	//   h*c[i-1] + 4h*c[i] + h*c[i+1] = 6*((y[i+1]-y[i])/h - (y[i]-y[i-1])/h)
	alpha := make([]F, n-1)
	beta := make([]F, n-1)
	lower, diag, upper := h, splineDiagonalWeight*(h+h), h
	var rhs F
	for i := 1; i < n-1; i++ {
		rhs = splineRHSWeight * ((y[i+1]-y[i])/h - (y[i]-y[i-1])/h)
		z := lower*alpha[i-1] + diag
		alpha[i] = -upper / z
		beta[i] = (rhs - lower*beta[i-1]) / z
	}

	// Right boundary
	seg[n-1].C = 0
	if s.boundary == BoundaryForwardSweep && n > splineMinSamples {
		// Re-apply the last sweep row's coefficients to its own
		// elimination factors.
		seg[n-1].C = (rhs - lower*beta[n-2]) / (diag + lower*alpha[n-2])
	}

	// Back substitution
	for i := n - 2; i > 0; i-- {
		seg[i].C = alpha[i]*seg[i+1].C + beta[i]
	}

	for i := n - 1; i > 0; i-- {
		seg[i].D = (seg[i].C - seg[i-1].C) / h
		seg[i].B = h*(splineSlopeWeight*seg[i].C+seg[i-1].C)/splineSixth + (y[i]-y[i-1])/h
	}
}

// locate returns the segment whose polynomial is used at x and the offset
// of x from that segment's anchor. The offset is taken in float64.
func (s *CubicSpline[F]) locate(x float64) (*Segment[F], F) {
	h := float64(s.step)
	last := len(s.segments) - 1

	j := last
	switch {
	case x <= 0:
		j = 1
	case x < float64(last)*h:
		// Smallest j with x <= j*h; j is in [1, last] here.
		j = sort.Search(len(s.segments), func(k int) bool {
			return x <= float64(k)*h
		})
	}
	// NaN falls through to the last segment and evaluates to NaN.
	return &s.segments[j], F(x - float64(j)*h)
}

// Evaluate returns the spline value at x. It never fails; the error is
// always nil and exists to satisfy Evaluator. NaN queries yield NaN.
func (s *CubicSpline[F]) Evaluate(x F) (F, error) {
	return s.At(x), nil
}

// EvaluateAt is Evaluate for a float64 query.
func (s *CubicSpline[F]) EvaluateAt(x float64) (F, error) {
	seg, dx := s.locate(x)
	return seg.valueAt(dx), nil
}

// At returns the spline value at x.
func (s *CubicSpline[F]) At(x F) F {
	seg, dx := s.locate(float64(x))
	return seg.valueAt(dx)
}

// Derivative returns the first derivative of the spline at x.
func (s *CubicSpline[F]) Derivative(x F) F {
	seg, dx := s.locate(float64(x))
	return seg.derivativeAt(dx)
}

// SecondDerivative returns the second derivative of the spline at x.
func (s *CubicSpline[F]) SecondDerivative(x F) F {
	seg, dx := s.locate(float64(x))
	return seg.secondDerivativeAt(dx)
}

// Integral returns the integral of the spline over the sampled range.
func (s *CubicSpline[F]) Integral() F {
	h := s.step
	h2 := h * h
	h3 := h2 * h
	h4 := h3 * h

	parts := make([]F, len(s.segments)-1)
	for i := 1; i < len(s.segments); i++ {
		seg := s.segments[i]
		parts[i-1] = seg.A*h - seg.B*h2/splineHalf + seg.C*h3/splineIntegralCubic - seg.D*h4/splineIntegralQuartic
	}
	return s.ops.Sum(parts)
}

// Segments returns a copy of the segment table.
func (s *CubicSpline[F]) Segments() []Segment[F] {
	out := make([]Segment[F], len(s.segments))
	copy(out, s.segments)
	return out
}

// Domain returns the sampled range [0, (n-1)*step]. Evaluate accepts
// queries outside it.
func (s *CubicSpline[F]) Domain() (lo, hi F) {
	return s.segments[0].X, s.segments[len(s.segments)-1].X
}

// Boundary reports the right boundary convention.
func (s *CubicSpline[F]) Boundary() Boundary {
	return s.boundary
}

// Method returns MethodCubicSpline.
func (s *CubicSpline[F]) Method() Method {
	return MethodCubicSpline
}
