package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"golang.org/x/sync/errgroup"

	"github.com/tphakala/go-interpolation/internal/engine"
	"github.com/tphakala/go-interpolation/internal/simdops"
)

// wavInput holds a decoded input file.
type wavInput struct {
	rate     int
	channels int
	bitDepth int
	data     []int // interleaved
}

// readWAV opens and decodes a whole PCM WAV file.
func readWAV(path string, verbose bool) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	in := &wavInput{
		rate:     buf.Format.SampleRate,
		channels: buf.Format.NumChannels,
		bitDepth: int(decoder.BitDepth),
	}
	if in.channels < 1 {
		return nil, fmt.Errorf("invalid channel count %d in %s", in.channels, path)
	}
	switch in.bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return nil, fmt.Errorf("unsupported bit depth %d in %s", in.bitDepth, path)
	}
	// Drop a trailing partial frame.
	in.data = buf.Data[:len(buf.Data)/in.channels*in.channels]

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit, %d frames",
			in.rate, in.channels, in.bitDepth, len(in.data)/in.channels)
	}
	return in, nil
}

// writeWAV encodes interleaved samples as a PCM WAV file.
func writeWAV(path string, data []int, sampleRate, bitDepth, channels int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, wavPCMFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	// Close rewrites the header sizes.
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV header: %w", err)
	}
	return nil
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// deinterleave splits interleaved int samples into per-channel slices
// scaled by scale.
func deinterleave[F simdops.Float](data []int, channels int, scale F) [][]F {
	ops := simdops.For[F]()
	frames := len(data) / channels

	out := make([][]F, channels)
	for ch := range channels {
		buf := make([]F, frames)
		for i := range frames {
			buf[i] = F(data[i*channels+ch])
		}
		ops.Scale(buf, buf, scale)
		out[ch] = buf
	}
	return out
}

// interleave merges per-channel samples in [-1, 1] into int samples,
// clamping out-of-range values.
func interleave[F simdops.Float](channels [][]F, maxVal float64) []int {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil
	}

	numChannels := len(channels)
	frames := len(channels[0])
	out := make([]int, frames*numChannels)
	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			sample := max(-1.0, min(1.0, float64(channels[ch][i])))
			out[base+ch] = int(math.Round(sample * maxVal))
		}
	}
	return out
}

// outputLength returns the number of output frames covering n input frames
// from inputRate to outputRate. The first and last input frames map to
// output frames.
func outputLength(n, inputRate, outputRate int) int {
	if n == 0 {
		return 0
	}
	return int(int64(n-1)*int64(outputRate)/int64(inputRate)) + 1
}

// interpolateChannel evaluates an interpolator over values, which are spaced
// one input frame apart, at every output frame position. Positions outside
// the interpolator's domain take the nearest input sample; the count of
// such positions is returned.
func interpolateChannel[F simdops.Float](
	values []F,
	inputRate, outputRate int,
	method engine.Method,
	boundary engine.Boundary,
) (out []F, clamped int, err error) {
	ev, err := engine.New(method, values, 1, boundary)
	if err != nil {
		return nil, 0, err
	}

	out = make([]F, outputLength(len(values), inputRate, outputRate))
	ratio := float64(inputRate) / float64(outputRate)
	last := len(values) - 1

	for k := range out {
		pos := float64(k) * ratio
		y, err := ev.EvaluateAt(pos)
		switch {
		case err == nil:
			out[k] = y
		case errors.Is(err, engine.ErrOutOfDomain):
			out[k] = values[max(0, min(last, int(math.Round(pos))))]
			clamped++
		default:
			return nil, 0, err
		}
	}
	return out, clamped, nil
}

// interpolateChannels runs interpolateChannel on every channel, concurrently
// when opts.parallel is set.
func interpolateChannels[F simdops.Float](
	channels [][]F,
	inputRate int,
	opts convertOptions,
) ([][]F, int, error) {
	out := make([][]F, len(channels))
	clamped := make([]int, len(channels))

	var g errgroup.Group
	if !opts.parallel {
		g.SetLimit(1)
	}
	for ch := range channels {
		g.Go(func() error {
			res, n, err := interpolateChannel(channels[ch], inputRate, opts.targetRate, opts.method, opts.boundary)
			if err != nil {
				return fmt.Errorf("interpolation failed on channel %d: %w", ch, err)
			}
			out[ch], clamped[ch] = res, n
			if opts.verbose {
				log.Printf("Channel %d: %d -> %d samples", ch, len(channels[ch]), len(res))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	total := 0
	for _, n := range clamped {
		total += n
	}
	return out, total, nil
}
