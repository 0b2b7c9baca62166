package interpolation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tphakala/go-interpolation/internal/engine"
)

// Interpolator is the evaluation capability shared by every interpolation
// method. Implementations are immutable once constructed and safe for
// concurrent use.
type Interpolator interface {
	// Evaluate returns the interpolated value at x.
	// Linear and quadratic interpolators return an *OutOfDomainError when
	// x has no bracketing samples. The cubic spline never fails; queries
	// outside the sampled range use the nearest boundary segment.
	Evaluate(x float64) (float64, error)

	// Domain returns the half-open interval [lo, hi) on which Evaluate
	// succeeds. For the cubic spline this is the sampled range, although
	// it accepts any x.
	Domain() (lo, hi float64)

	// Method reports the interpolation method in use.
	Method() Method
}

// Config holds interpolator configuration.
type Config struct {
	// Method selects the interpolation algorithm.
	Method Method

	// Boundary selects the right-end condition of the cubic spline.
	// Ignored by the other methods.
	Boundary SplineBoundary
}

// Method enumerates the interpolation algorithms.
type Method int

const (
	// MethodLinear fits a line through the two samples bracketing x.
	// Domain: [0, (n-1)*step).
	MethodLinear Method = iota

	// MethodQuadratic fits a parabola through the sample at or before x
	// and one neighbour on each side. Domain: [step, (n-1)*step).
	MethodQuadratic

	// MethodCubicSpline evaluates a cubic spline with continuous first and
	// second derivatives. Accepts any x.
	MethodCubicSpline
)

// String returns the method name accepted by ParseMethod.
func (m Method) String() string {
	return m.engineMethod().String()
}

// MinSamples returns the smallest table length the method accepts.
func (m Method) MinSamples() int {
	return m.engineMethod().MinSamples()
}

func (m Method) engineMethod() engine.Method {
	switch m {
	case MethodLinear:
		return engine.MethodLinear
	case MethodQuadratic:
		return engine.MethodQuadratic
	case MethodCubicSpline:
		return engine.MethodCubicSpline
	default:
		return engine.Method(m)
	}
}

// ParseMethod maps a method name to a Method. Matching is case-insensitive.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "lin":
		return MethodLinear, nil
	case "quadratic", "square", "quad":
		return MethodQuadratic, nil
	case "cubic-spline", "cubic", "spline":
		return MethodCubicSpline, nil
	default:
		return 0, fmt.Errorf("%w: unknown method %q", ErrInvalidConfig, s)
	}
}

// SplineBoundary selects how the right end of the cubic spline is closed.
// The left end always has zero second derivative.
type SplineBoundary int

const (
	// BoundaryNatural pins the second derivative at the last knot to zero,
	// giving a natural cubic spline. This is the default.
	BoundaryNatural SplineBoundary = iota

	// BoundaryForwardSweep derives the last second-derivative coefficient
	// from the final row of the tridiagonal forward sweep. The right end is
	// not natural; interior knots remain C2.
	BoundaryForwardSweep
)

// String returns the boundary name accepted by ParseBoundary.
func (b SplineBoundary) String() string {
	return b.engineBoundary().String()
}

func (b SplineBoundary) engineBoundary() engine.Boundary {
	switch b {
	case BoundaryNatural:
		return engine.BoundaryNatural
	case BoundaryForwardSweep:
		return engine.BoundaryForwardSweep
	default:
		return engine.Boundary(b)
	}
}

// ParseBoundary maps a boundary name to a SplineBoundary. The empty string
// selects BoundaryNatural.
func ParseBoundary(s string) (SplineBoundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "natural":
		return BoundaryNatural, nil
	case "forward-sweep", "sweep":
		return BoundaryForwardSweep, nil
	default:
		return 0, fmt.Errorf("%w: unknown spline boundary %q", ErrInvalidConfig, s)
	}
}

// Common errors returned by the package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid interpolation configuration")

	// ErrInvalidTable indicates a sample table that cannot be built:
	// no samples, non-finite samples, or a non-positive step.
	ErrInvalidTable = errors.New("invalid sample table")

	// ErrTableTooShort indicates fewer samples than the method needs.
	ErrTableTooShort = engine.ErrTableTooShort

	// ErrOutOfDomain indicates a query point without bracketing samples.
	// Evaluate returns it wrapped in an *OutOfDomainError.
	ErrOutOfDomain = engine.ErrOutOfDomain
)

// OutOfDomainError reports a query point rejected by a linear or quadratic
// interpolator. It carries the offending x and the accepted interval.
type OutOfDomainError = engine.OutOfDomainError

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Method {
	case MethodLinear, MethodQuadratic, MethodCubicSpline:
	default:
		return fmt.Errorf("%w: unknown method %d", ErrInvalidConfig, int(c.Method))
	}

	switch c.Boundary {
	case BoundaryNatural, BoundaryForwardSweep:
	default:
		return fmt.Errorf("%w: unknown spline boundary %d", ErrInvalidConfig, int(c.Boundary))
	}

	return nil
}

func (c *Config) tooShort(have int) error {
	return fmt.Errorf("%w: %s needs at least %d samples, have %d",
		ErrTableTooShort, c.Method, c.Method.MinSamples(), have)
}

// New creates an interpolator over table with the specified configuration.
// The table is shared, not copied.
func New(table *SampleTable, config *Config) (Interpolator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if table == nil {
		return nil, fmt.Errorf("%w: table is nil", ErrInvalidTable)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if table.Len() < config.Method.MinSamples() {
		return nil, config.tooShort(table.Len())
	}

	var (
		ip  Interpolator
		err error
	)
	switch config.Method {
	case MethodLinear:
		ip, err = newLinear(table)
	case MethodQuadratic:
		ip, err = newQuadratic(table)
	default:
		ip, err = newCubicSpline(table, config.Boundary)
	}
	if err != nil {
		return nil, err
	}
	return ip, nil
}

// Info describes a constructed interpolator.
type Info struct {
	// Method is the interpolation method.
	Method Method

	// Samples is the table length.
	Samples int

	// Step is the table spacing.
	Step float64

	// DomainLo and DomainHi bound the interval [DomainLo, DomainHi) on
	// which Evaluate succeeds.
	DomainLo, DomainHi float64

	// Clamped is true when Evaluate accepts points outside the domain.
	Clamped bool

	// Boundary is the spline boundary; zero for other methods.
	Boundary SplineBoundary
}

// infoProvider is implemented by the interpolators in this package.
type infoProvider interface {
	GetInfo() Info
}

// GetInfo returns information about an interpolator.
// If the interpolator implements the infoProvider interface, it returns actual values.
// Otherwise, it returns what the Interpolator interface exposes.
func GetInfo(ip Interpolator) Info {
	if provider, ok := ip.(infoProvider); ok {
		return provider.GetInfo()
	}

	lo, hi := ip.Domain()
	return Info{
		Method:   ip.Method(),
		DomainLo: lo,
		DomainHi: hi,
		Clamped:  ip.Method() == MethodCubicSpline,
	}
}
