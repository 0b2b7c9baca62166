// Package interpolation provides one-dimensional interpolation over
// uniformly spaced samples in pure Go.
//
// A [SampleTable] holds function values y[i] taken at x = i*step. An
// [Interpolator] built over it estimates the function between samples.
//
// # Features
//
//   - Linear interpolation through the two bracketing samples
//   - Quadratic interpolation through three neighbouring samples
//   - Cubic splines with continuous first and second derivatives, solved
//     in O(n) with the Thomas tridiagonal algorithm
//   - Spline derivatives and a closed-form integral
//   - Batch and parallel evaluation over query grids
//   - A float32 path for audio and other single-precision data
//   - Optional SIMD acceleration via github.com/tphakala/simd
//
// # Quick Start
//
// For a single query:
//
//	y, err := interpolation.InterpolateAt([]float64{0, 1, 0, -1, 0}, 1, interpolation.MethodLinear, 0.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated queries against one table:
//
//	table, err := interpolation.NewSampleTable(values, 0.1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ip, err := interpolation.New(table, &interpolation.Config{
//	    Method: interpolation.MethodCubicSpline,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := interpolation.Sample(ip, 0, 2, 201)
//
// # Methods
//
//   - [MethodLinear]: domain [0, (n-1)*step). Needs 2 samples.
//   - [MethodQuadratic]: domain [step, (n-1)*step). Needs 3 samples. Exact
//     for polynomials of degree two or less.
//   - [MethodCubicSpline]: accepts any x. Needs 2 samples. Queries outside
//     the sampled range extend the nearest boundary segment.
//
// Linear and quadratic interpolators return an [*OutOfDomainError] for
// queries without bracketing samples; test for it with
// errors.Is(err, [ErrOutOfDomain]).
//
// # Spline Boundaries
//
// The spline's second derivative is zero at the first knot. At the last
// knot [BoundaryNatural] also pins it to zero. [BoundaryForwardSweep]
// instead reuses the last row of the tridiagonal system, which keeps the
// curve closer to the data near the right end.
//
// # Thread Safety
//
// Tables and interpolators are immutable once constructed and may be shared
// by any number of goroutines. [EvaluateParallel] relies on this.
package interpolation
