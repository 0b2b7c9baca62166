package interpolation

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSampleTable(t *testing.T) {
	table := mustTable(t, []float64{3, 1, 4, 1, 5}, 0.5)

	assert.Equal(t, 5, table.Len())
	assert.InDelta(t, 0.5, table.Step(), 0)
	assert.InDelta(t, 4.0, table.At(2), 0)
	assert.InDelta(t, 1.5, table.X(3), 0)

	first, last := table.Span()
	assert.InDelta(t, 0.0, first, 0)
	assert.InDelta(t, 2.0, last, 0)
}

func TestNewSampleTable_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		step   float64
	}{
		{"empty", nil, 1},
		{"zero step", []float64{1, 2}, 0},
		{"negative step", []float64{1, 2}, -1},
		{"NaN step", []float64{1, 2}, math.NaN()},
		{"infinite step", []float64{1, 2}, math.Inf(1)},
		{"NaN sample", []float64{1, math.NaN()}, 1},
		{"infinite sample", []float64{math.Inf(-1), 2}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewSampleTable(tt.values, tt.step)
			require.ErrorIs(t, err, ErrInvalidTable)
			assert.Nil(t, table)
		})
	}
}

func TestSampleTable_CopiesInput(t *testing.T) {
	values := []float64{1, 2, 3}
	table := mustTable(t, values, 1)

	values[0] = 100
	assert.InDelta(t, 1.0, table.At(0), 0)

	out := table.Values()
	out[1] = 200
	assert.InDelta(t, 2.0, table.At(1), 0)
}

func TestSampleTable_Points(t *testing.T) {
	table := mustTable(t, []float64{2, 4, 8}, 0.25)

	want := []Point{{0, 2}, {0.25, 4}, {0.5, 8}}
	if diff := cmp.Diff(want, table.Points()); diff != "" {
		t.Errorf("Points() mismatch (-want +got):\n%s", diff)
	}
}

func TestSampleTable_Summary(t *testing.T) {
	table := mustTable(t, []float64{2, 4, 4, 4, 5, 5, 7, 9}, 1)

	s, err := table.Summary()
	require.NoError(t, err)

	assert.InDelta(t, 2.0, s.Min, 1e-12)
	assert.InDelta(t, 9.0, s.Max, 1e-12)
	assert.InDelta(t, 5.0, s.Mean, 1e-12)
	assert.InDelta(t, 2.0, s.StdDev, 1e-12)
	assert.InDelta(t, 4.5, s.Median, 1e-12)
}
