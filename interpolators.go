package interpolation

import (
	"github.com/tphakala/go-interpolation/internal/engine"
)

var (
	_ Interpolator = (*Linear)(nil)
	_ Interpolator = (*Quadratic)(nil)
	_ Interpolator = (*CubicSpline)(nil)
)

// Linear is a piecewise-linear interpolator.
type Linear struct {
	table *SampleTable
	impl  *engine.Linear[float64]
}

func newLinear(table *SampleTable) (*Linear, error) {
	impl, err := engine.NewLinear(table.values, table.step)
	if err != nil {
		return nil, err
	}
	return &Linear{table: table, impl: impl}, nil
}

// Evaluate returns the value at x of the line through the two samples
// bracketing x. Fails with *OutOfDomainError outside [0, (n-1)*step).
func (l *Linear) Evaluate(x float64) (float64, error) {
	return l.impl.Evaluate(x)
}

// Domain returns [0, (n-1)*step).
func (l *Linear) Domain() (lo, hi float64) {
	return l.impl.Domain()
}

// Method returns MethodLinear.
func (l *Linear) Method() Method {
	return MethodLinear
}

// Table returns the table the interpolator was built from.
func (l *Linear) Table() *SampleTable {
	return l.table
}

// GetInfo implements infoProvider.
func (l *Linear) GetInfo() Info {
	return tableInfo(l, l.table, false)
}

// Quadratic is a three-point piecewise-quadratic interpolator.
type Quadratic struct {
	table *SampleTable
	impl  *engine.Quadratic[float64]
}

func newQuadratic(table *SampleTable) (*Quadratic, error) {
	impl, err := engine.NewQuadratic(table.values, table.step)
	if err != nil {
		return nil, err
	}
	return &Quadratic{table: table, impl: impl}, nil
}

// Evaluate returns the value at x of the parabola through the sample at or
// before x and its two neighbours. Fails with *OutOfDomainError outside
// [step, (n-1)*step).
func (q *Quadratic) Evaluate(x float64) (float64, error) {
	return q.impl.Evaluate(x)
}

// Domain returns [step, (n-1)*step).
func (q *Quadratic) Domain() (lo, hi float64) {
	return q.impl.Domain()
}

// Method returns MethodQuadratic.
func (q *Quadratic) Method() Method {
	return MethodQuadratic
}

// Table returns the table the interpolator was built from.
func (q *Quadratic) Table() *SampleTable {
	return q.table
}

// GetInfo implements infoProvider.
func (q *Quadratic) GetInfo() Info {
	return tableInfo(q, q.table, false)
}

// SplineSegment is one cubic piece of a spline:
//
//	S(x) = A + B*dx + (C/2)*dx^2 + (D/6)*dx^3,  dx = x - X
//
// Segment i covers [x(i-1), x(i)] and is anchored at its right end X.
type SplineSegment = engine.Segment[float64]

// CubicSpline is a cubic spline interpolator. Coefficients are computed
// once at construction; each evaluation is a binary search over the knots.
//
// Unlike Linear and Quadratic, CubicSpline never rejects a query: points
// left of the first knot use the first segment's polynomial and points
// right of the last knot use the last segment's polynomial.
type CubicSpline struct {
	table *SampleTable
	impl  *engine.CubicSpline[float64]
}

func newCubicSpline(table *SampleTable, boundary SplineBoundary) (*CubicSpline, error) {
	impl, err := engine.NewCubicSpline(table.values, table.step, boundary.engineBoundary())
	if err != nil {
		return nil, err
	}
	return &CubicSpline{table: table, impl: impl}, nil
}

// Evaluate returns the spline value at x. The error is always nil.
func (s *CubicSpline) Evaluate(x float64) (float64, error) {
	return s.impl.At(x), nil
}

// At returns the spline value at x.
func (s *CubicSpline) At(x float64) float64 {
	return s.impl.At(x)
}

// Derivative returns the first derivative of the spline at x.
func (s *CubicSpline) Derivative(x float64) float64 {
	return s.impl.Derivative(x)
}

// SecondDerivative returns the second derivative of the spline at x.
func (s *CubicSpline) SecondDerivative(x float64) float64 {
	return s.impl.SecondDerivative(x)
}

// Integral returns the integral of the spline over [0, (n-1)*step].
func (s *CubicSpline) Integral() float64 {
	return s.impl.Integral()
}

// Segments returns a copy of the spline's segment table, one entry per
// sample. Entry 0 is a placeholder carrying only the first knot.
func (s *CubicSpline) Segments() []SplineSegment {
	return s.impl.Segments()
}

// Domain returns the sampled range [0, (n-1)*step]. Evaluate accepts
// queries outside it.
func (s *CubicSpline) Domain() (lo, hi float64) {
	return s.impl.Domain()
}

// Method returns MethodCubicSpline.
func (s *CubicSpline) Method() Method {
	return MethodCubicSpline
}

// Boundary returns the right boundary convention.
func (s *CubicSpline) Boundary() SplineBoundary {
	if s.impl.Boundary() == engine.BoundaryForwardSweep {
		return BoundaryForwardSweep
	}
	return BoundaryNatural
}

// Table returns the table the interpolator was built from.
func (s *CubicSpline) Table() *SampleTable {
	return s.table
}

// GetInfo implements infoProvider.
func (s *CubicSpline) GetInfo() Info {
	info := tableInfo(s, s.table, true)
	info.Boundary = s.Boundary()
	return info
}

func tableInfo(ip Interpolator, table *SampleTable, clamped bool) Info {
	lo, hi := ip.Domain()
	return Info{
		Method:   ip.Method(),
		Samples:  table.Len(),
		Step:     table.Step(),
		DomainLo: lo,
		DomainHi: hi,
		Clamped:  clamped,
	}
}
