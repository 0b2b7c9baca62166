package interpolation

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generate returns a table of count samples drawn uniformly from
// [GenerateMin, GenerateMax) and spaced step apart.
//
// src seeds the draw; a nil src uses the global generator. Passing the same
// seeded source yields the same table.
func Generate(count int, step float64, src rand.Source) (*SampleTable, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", ErrInvalidConfig, count)
	}

	dist := distuv.Uniform{Min: GenerateMin, Max: GenerateMax, Src: src}
	values := make([]float64, count)
	for i := range values {
		values[i] = dist.Rand()
	}

	return NewSampleTable(values, step)
}

// NewSeededSource returns a deterministic source for Generate.
func NewSeededSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}
