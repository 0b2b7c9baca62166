package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-interpolation/internal/testutil"
)

func TestQuadratic_ReproducesKnots(t *testing.T) {
	values := []float64{3, -1, 4, 1, -5, 9, 2, 6}
	step := 0.25

	q, err := NewQuadratic(values, step)
	require.NoError(t, err)

	for i := 1; i <= len(values)-2; i++ {
		got, err := q.Evaluate(float64(i) * step)
		require.NoError(t, err, "knot %d", i)
		assert.InDelta(t, values[i], got, testutil.KnotTolerance, "knot %d", i)
	}
}

func TestQuadratic_ExactForParabola(t *testing.T) {
	// y = 2x^2 - 3x + 1 sampled at step 0.5
	f := func(x float64) float64 { return 2*x*x - 3*x + 1 }
	step := 0.5
	values := make([]float64, 10)
	for i := range values {
		values[i] = f(float64(i) * step)
	}

	q, err := NewQuadratic(values, step)
	require.NoError(t, err)

	lo, hi := q.Domain()
	for x := lo; x < hi; x += 0.07 {
		got, err := q.Evaluate(x)
		require.NoError(t, err, "x=%f", x)
		assert.InDelta(t, f(x), got, 1e-9, "x=%f", x)
	}
}

func TestQuadratic_Linear(t *testing.T) {
	q, err := NewQuadratic([]float64{0, 1, 2, 3}, 1)
	require.NoError(t, err)

	got, err := q.Evaluate(1.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got, testutil.DefaultTolerance)

	got, err = q.Evaluate(2.9)
	require.NoError(t, err)
	assert.InDelta(t, 2.9, got, testutil.DefaultTolerance)
}

func TestQuadratic_OutOfDomain(t *testing.T) {
	q, err := NewQuadratic([]float64{0, 1, 2, 3}, 1)
	require.NoError(t, err)

	for _, x := range []float64{0.5, 0, -1, 3, 3.5, math.NaN(), math.Inf(1)} {
		_, err := q.Evaluate(x)
		require.Error(t, err, "x=%v", x)
		assert.ErrorIs(t, err, ErrOutOfDomain)

		var domainErr *OutOfDomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, MethodQuadratic, domainErr.Method)
		assert.Equal(t, 1.0, domainErr.Lo)
		assert.Equal(t, 3.0, domainErr.Hi)
	}
}

func TestQuadratic_MinimumTable(t *testing.T) {
	q, err := NewQuadratic([]float64{1, 0, 1}, 1)
	require.NoError(t, err)

	// Only [1, 2) is covered; y = (x-1)^2
	got, err := q.Evaluate(1.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got, testutil.DefaultTolerance)

	_, err = q.Evaluate(2)
	assert.ErrorIs(t, err, ErrOutOfDomain)

	_, err = NewQuadratic([]float64{1, 0}, 1)
	assert.ErrorIs(t, err, ErrTableTooShort)
}

func TestQuadratic_Float32(t *testing.T) {
	q, err := NewQuadratic([]float32{0, 1, 4, 9, 16}, 1)
	require.NoError(t, err)

	got, err := q.Evaluate(2.5)
	require.NoError(t, err)
	assert.InDelta(t, 6.25, float64(got), testutil.Float32Tolerance)
}
