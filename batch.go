package interpolation

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Point is an (x, y) pair.
type Point struct {
	X, Y float64
}

// BatchResult holds the outcome of evaluating many query points.
type BatchResult struct {
	// Points holds the successfully evaluated queries in input order.
	Points []Point

	// Skipped holds one error per query outside the interpolator's domain,
	// in input order. Each unwraps to ErrOutOfDomain.
	Skipped []error
}

// EvaluateAll evaluates ip at every x. Out-of-domain queries are recorded in
// Skipped and do not stop the batch; any other error aborts it.
func EvaluateAll(ip Interpolator, xs []float64) (*BatchResult, error) {
	res := &BatchResult{Points: make([]Point, 0, len(xs))}
	if err := evaluateInto(context.Background(), ip, xs, res); err != nil {
		return nil, err
	}
	return res, nil
}

// evaluateInto appends the outcome for each x to res, checking ctx every
// ctxCheckInterval queries.
func evaluateInto(ctx context.Context, ip Interpolator, xs []float64, res *BatchResult) error {
	for i, x := range xs {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		y, err := ip.Evaluate(x)
		switch {
		case err == nil:
			res.Points = append(res.Points, Point{X: x, Y: y})
		case errors.Is(err, ErrOutOfDomain):
			res.Skipped = append(res.Skipped, err)
		default:
			return err
		}
	}
	return nil
}

// Grid returns count evenly spaced points from from to to inclusive.
func Grid(from, to float64, count int) ([]float64, error) {
	if count < minSamplePoints {
		return nil, fmt.Errorf("%w: grid needs at least %d points, got %d",
			ErrInvalidConfig, minSamplePoints, count)
	}
	if !(from <= to) {
		return nil, fmt.Errorf("%w: grid bounds [%v, %v] are reversed or NaN", ErrInvalidConfig, from, to)
	}
	return floats.Span(make([]float64, count), from, to), nil
}

// Sample evaluates ip on count evenly spaced points covering [from, to].
func Sample(ip Interpolator, from, to float64, count int) (*BatchResult, error) {
	xs, err := Grid(from, to, count)
	if err != nil {
		return nil, err
	}
	return EvaluateAll(ip, xs)
}

// EvaluateParallel is EvaluateAll split across up to workers goroutines.
// workers <= 0 uses GOMAXPROCS. The result is identical to EvaluateAll,
// order included.
//
// Interpolators are immutable, so all workers share ip.
func EvaluateParallel(ctx context.Context, ip Interpolator, xs []float64, workers int) (*BatchResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunks := min(workers, (len(xs)+minParallelChunk-1)/minParallelChunk)
	if chunks <= 1 {
		res := &BatchResult{Points: make([]Point, 0, len(xs))}
		if err := evaluateInto(ctx, ip, xs, res); err != nil {
			return nil, err
		}
		return res, nil
	}

	size := (len(xs) + chunks - 1) / chunks
	parts := make([]BatchResult, chunks)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for c := range chunks {
		lo := c * size
		hi := min(lo+size, len(xs))
		g.Go(func() error {
			parts[c].Points = make([]Point, 0, hi-lo)
			return evaluateInto(ctx, ip, xs[lo:hi], &parts[c])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &BatchResult{Points: make([]Point, 0, len(xs))}
	for i := range parts {
		res.Points = append(res.Points, parts[i].Points...)
		res.Skipped = append(res.Skipped, parts[i].Skipped...)
	}
	return res, nil
}

// Values returns the y-coordinates of r.Points.
func (r *BatchResult) Values() []float64 {
	ys := make([]float64, len(r.Points))
	for i, p := range r.Points {
		ys[i] = p.Y
	}
	return ys
}
