package engine

// Linear interpolation constants
const (
	// Linear interpolation fits a line through a 2-point window
	linearInterpolationPoints = 2

	// Smallest table a linear interpolator accepts
	linearMinSamples = linearInterpolationPoints
)

// Quadratic interpolation constants
const (
	// Quadratic interpolation fits a parabola through a 3-point window
	// (previous, current and next sample)
	quadraticInterpolationPoints = 3

	// Smallest table a quadratic interpolator accepts
	quadraticMinSamples = quadraticInterpolationPoints

	// Centered first and second differences
	//   slope = (y[c+1] - y[c-1]) / 2
	//   curve = (y[c+1] - 2*y[c] + y[c-1]) / 2
	quadraticHalf         = 2.0
	quadraticCenterWeight = 2.0
)

// Cubic spline constants
const (
	// A spline needs at least one segment
	splineMinSamples = 2

	// Spline coefficients are stored in the Taylor form
	//   S(x) = a + b*dx + (c/2)*dx^2 + (d/6)*dx^3
	// so c and d are the second and third derivatives at the anchor.
	splineHalf  = 2.0
	splineSixth = 6.0

	// Diagonal weight of the second-derivative continuity system
	// h*c[i-1] + 2*(h+h)*c[i] + h*c[i+1] = 6*(...)
	splineDiagonalWeight = 2.0

	// Right-hand side weight of the continuity system
	splineRHSWeight = 6.0

	// Weight of the segment's own curvature in the slope at its right anchor
	//   b[i] = h*(2*c[i] + c[i-1])/6 + (y[i]-y[i-1])/h
	splineSlopeWeight = 2.0

	// Integral of the Taylor form over one segment [-h, 0]:
	//   a*h - b*h^2/2 + c*h^3/6 - d*h^4/24
	splineIntegralCubic   = 6.0
	splineIntegralQuartic = 24.0
)
