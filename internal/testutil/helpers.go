// Package testutil provides reusable test helper functions for interpolation tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	KnotTolerance    = 1e-9
	Float32Tolerance = 1e-4
	OracleTolerance  = 1e-8
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertSlicesInDelta verifies element-wise closeness of two equally long slices.
func AssertSlicesInDelta(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"element %d: expected %f, got %f", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// Ramp returns n samples of a*i + b.
func Ramp(n int, a, b float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = a*float64(i) + b
	}
	return s
}

// Sine returns n samples of sin(omega*i*step).
func Sine(n int, omega, step float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Sin(omega * float64(i) * step)
	}
	return s
}
