package engine

import (
	"testing"

	"github.com/tphakala/go-interpolation/internal/testutil"
)

const benchSamples = 4096

// BenchmarkCubicSpline_Build benchmarks the O(n) coefficient solve.
func BenchmarkCubicSpline_Build(b *testing.B) {
	values := testutil.Sine(benchSamples, 0.05, 1)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = NewCubicSpline(values, 1.0, BoundaryNatural)
	}
}

// BenchmarkCubicSpline_Evaluate benchmarks the binary search plus polynomial.
func BenchmarkCubicSpline_Evaluate(b *testing.B) {
	s, err := NewCubicSpline(testutil.Sine(benchSamples, 0.05, 1), 1.0, BoundaryNatural)
	if err != nil {
		b.Fatal(err)
	}

	x := 0.0
	b.ResetTimer()
	for b.Loop() {
		_ = s.At(x)
		x += 0.37
		if x > benchSamples {
			x = 0
		}
	}
}

// BenchmarkLinear_Evaluate benchmarks the O(1) linear lookup.
func BenchmarkLinear_Evaluate(b *testing.B) {
	lin, err := NewLinear(testutil.Sine(benchSamples, 0.05, 1), 1.0)
	if err != nil {
		b.Fatal(err)
	}

	x := 0.0
	b.ResetTimer()
	for b.Loop() {
		_, _ = lin.Evaluate(x)
		x += 0.37
		if x > benchSamples-2 {
			x = 0
		}
	}
}

// BenchmarkQuadratic_Evaluate benchmarks the O(1) three-point fit.
func BenchmarkQuadratic_Evaluate(b *testing.B) {
	q, err := NewQuadratic(testutil.Sine(benchSamples, 0.05, 1), 1.0)
	if err != nil {
		b.Fatal(err)
	}

	x := 1.0
	b.ResetTimer()
	for b.Loop() {
		_, _ = q.Evaluate(x)
		x += 0.37
		if x > benchSamples-2 {
			x = 1
		}
	}
}
