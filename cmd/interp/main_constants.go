package main

// Default command-line flag values
const (
	defaultMethod     = "cubic-spline"
	defaultBoundary   = "natural"
	defaultCount      = 41  // Generated samples
	defaultStep       = 5.0 // Sample spacing
	defaultResolution = 0.1 // Query point spacing
	defaultSeed       = 1
	defaultColumn     = 0
)

// Query grid
const (
	// resolutionSlack absorbs rounding when the span is an exact multiple
	// of the resolution.
	resolutionSlack = 1e-9

	// minQueryPoints covers both ends of the span.
	minQueryPoints = 2
)
