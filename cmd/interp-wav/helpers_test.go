package main

import (
	"math"
	"math/cmplx"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-interpolation/internal/engine"
	"gonum.org/v1/gonum/dsp/fourier"
)

// writeSineWAV writes a 16-bit file whose channel ch carries a sine with
// phase ch*pi/4.
func writeSineWAV(t *testing.T, rate, channels, frames int) string {
	t.Helper()
	data := make([]int, frames*channels)
	for i := range frames {
		for ch := range channels {
			phase := float64(ch) * math.Pi / 4
			v := 0.5 * math.Sin(2*math.Pi*440*float64(i)/float64(rate)+phase)
			data[i*channels+ch] = int(math.Round(v * maxInt16))
		}
	}

	path := filepath.Join(t.TempDir(), "in.wav")
	require.NoError(t, writeWAV(path, data, rate, bitsPerSample16, channels))
	return path
}

func TestReadWAV_FileNotFound(t *testing.T) {
	_, err := readWAV("/nonexistent/file.wav", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestReadWAV_InvalidWAV(t *testing.T) {
	invalidFile := filepath.Join(t.TempDir(), "invalid.wav")
	require.NoError(t, os.WriteFile(invalidFile, []byte("not a wav file"), 0o644))

	_, err := readWAV(invalidFile, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestWriteWAV_InvalidDirectory(t *testing.T) {
	err := writeWAV("/nonexistent/dir/output.wav", []int{0, 0}, 48000, 16, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestWriteReadWAV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt.wav")
	data := []int{0, 100, -100, 32767, -32767, 7}

	require.NoError(t, writeWAV(path, data, 22050, bitsPerSample16, 2))

	in, err := readWAV(path, false)
	require.NoError(t, err)
	assert.Equal(t, 22050, in.rate)
	assert.Equal(t, 2, in.channels)
	assert.Equal(t, bitsPerSample16, in.bitDepth)
	assert.Equal(t, data, in.data)
}

func TestDeinterleaveInterleave(t *testing.T) {
	data := []int{1000, -1000, 2000, -2000, 32767, -32767}

	channels := deinterleave[float64](data, 2, 1/maxInt16)
	require.Len(t, channels, 2)
	assert.InDeltaSlice(t, []float64{1000 / maxInt16, 2000 / maxInt16, 1}, channels[0], 1e-12)
	assert.InDeltaSlice(t, []float64{-1000 / maxInt16, -2000 / maxInt16, -1}, channels[1], 1e-12)

	assert.Equal(t, data, interleave(channels, maxInt16))
}

func TestInterleave_Clamps(t *testing.T) {
	out := interleave([][]float32{{1.5, -2, 0.5}}, maxInt16)
	assert.Equal(t, []int{32767, -32767, 16384}, out)

	assert.Nil(t, interleave[float64](nil, maxInt16))
}

func TestOutputLength(t *testing.T) {
	tests := []struct {
		n, in, out int
		want       int
	}{
		{0, 44100, 48000, 0},
		{1, 44100, 48000, 1},
		{101, 8000, 16000, 201},
		{201, 16000, 8000, 101},
		{44101, 44100, 48000, 48001},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, outputLength(tt.n, tt.in, tt.out), "%d frames %d->%d", tt.n, tt.in, tt.out)
	}
}

func TestInterpolateChannel_Upsample2x(t *testing.T) {
	values := []float64{0, 1, 0, -1, 0}

	for _, method := range []engine.Method{engine.MethodLinear, engine.MethodQuadratic, engine.MethodCubicSpline} {
		t.Run(method.String(), func(t *testing.T) {
			out, _, err := interpolateChannel(values, 1, 2, method, engine.BoundaryNatural)
			require.NoError(t, err)
			require.Len(t, out, 9)

			// Even output frames land on input frames.
			for i, want := range values {
				assert.InDelta(t, want, out[2*i], 1e-12, "frame %d", i)
			}
		})
	}
}

func TestInterpolateChannel_EdgeFallback(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5}

	// Linear rejects only the last knot.
	out, clamped, err := interpolateChannel(values, 1, 2, engine.MethodLinear, engine.BoundaryNatural)
	require.NoError(t, err)
	assert.Equal(t, 1, clamped)
	assert.InDelta(t, 5.0, out[8], 0)

	// Quadratic also rejects [0, 1).
	out, clamped, err = interpolateChannel(values, 1, 2, engine.MethodQuadratic, engine.BoundaryNatural)
	require.NoError(t, err)
	assert.Equal(t, 3, clamped)
	assert.InDelta(t, 3.0, out[0], 0)
	assert.InDelta(t, 1.0, out[1], 0, "x=0.5 rounds to frame 1")

	// The spline never falls back.
	_, clamped, err = interpolateChannel(values, 1, 2, engine.MethodCubicSpline, engine.BoundaryNatural)
	require.NoError(t, err)
	assert.Zero(t, clamped)
}

func TestInterpolateChannel_TooShort(t *testing.T) {
	_, _, err := interpolateChannel([]float32{1, 2}, 1, 2, engine.MethodQuadratic, engine.BoundaryNatural)
	require.ErrorIs(t, err, engine.ErrTableTooShort)
}

// Positions past 2^22 frames are not representable in float32 at
// sub-sample resolution; the float32 path must still interpolate between
// frames rather than snap to a coarse grid.
func TestInterpolateChannel_Float32FarFromOrigin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long-table test in short mode")
	}

	const (
		frames    = 1<<22 + 4096
		omega     = 0.01
		inRate    = 7
		outRate   = 3
		tolerance = 1e-4
	)
	last := float64(frames - 1)

	// Zero at the last frame, so the natural right boundary is exact.
	values := make([]float32, frames)
	for i := range values {
		values[i] = float32(math.Sin(omega * (float64(i) - last)))
	}

	for _, method := range []engine.Method{engine.MethodLinear, engine.MethodQuadratic, engine.MethodCubicSpline} {
		t.Run(method.String(), func(t *testing.T) {
			out, _, err := interpolateChannel(values, inRate, outRate, method, engine.BoundaryNatural)
			require.NoError(t, err)

			ratio := float64(inRate) / float64(outRate)
			first := int(math.Ceil(float64(1<<22) / ratio))
			for k := first; k < len(out); k++ {
				pos := float64(k) * ratio
				want := math.Sin(omega * (pos - last))
				if !assert.InDelta(t, want, float64(out[k]), tolerance, "frame position %.4f", pos) {
					return
				}
			}
		})
	}
}

func TestInterpolateChannels_ParallelMatchesSequential(t *testing.T) {
	channels := make([][]float64, 6)
	for ch := range channels {
		channels[ch] = make([]float64, 500)
		for i := range channels[ch] {
			channels[ch][i] = math.Sin(0.05*float64(i) + float64(ch))
		}
	}

	seqOpts := convertOptions{targetRate: 48000, method: engine.MethodCubicSpline}
	parOpts := seqOpts
	parOpts.parallel = true

	seq, _, err := interpolateChannels(channels, 44100, seqOpts)
	require.NoError(t, err)
	par, _, err := interpolateChannels(channels, 44100, parOpts)
	require.NoError(t, err)

	require.Len(t, par, len(seq))
	for ch := range seq {
		assert.Equal(t, seq[ch], par[ch], "channel %d", ch)
	}
}

func TestConvertWAV(t *testing.T) {
	const (
		inRate  = 8000
		outRate = 16000
		frames  = 400
	)
	input := writeSineWAV(t, inRate, 2, frames)
	src, err := readWAV(input, false)
	require.NoError(t, err)

	methods := []engine.Method{engine.MethodLinear, engine.MethodQuadratic, engine.MethodCubicSpline}
	for _, method := range methods {
		t.Run(method.String(), func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "out.wav")
			opts := convertOptions{targetRate: outRate, method: method, parallel: true}

			stats, err := convertWAV[float64](input, output, opts)
			require.NoError(t, err)
			assert.Equal(t, frames, stats.inputSamples)
			assert.Equal(t, outputLength(frames, inRate, outRate), stats.outputSamples)

			dst, err := readWAV(output, false)
			require.NoError(t, err)
			assert.Equal(t, outRate, dst.rate)
			assert.Equal(t, 2, dst.channels)
			assert.Equal(t, bitsPerSample16, dst.bitDepth)
			require.Len(t, dst.data, stats.outputSamples*2)

			// Every second output frame reproduces an input frame.
			for i := range frames {
				for ch := range 2 {
					assert.InDelta(t, src.data[i*2+ch], dst.data[2*i*2+ch], 1, "frame %d channel %d", i, ch)
				}
			}
		})
	}
}

// The dominant frequency of the tone survives the rate change.
func TestConvertWAV_PreservesTone(t *testing.T) {
	const (
		outRate = 16000
		fftSize = 1024
	)
	input := writeSineWAV(t, 8000, 1, 800)
	output := filepath.Join(t.TempDir(), "out.wav")

	_, err := convertWAV[float64](input, output, convertOptions{targetRate: outRate, method: engine.MethodCubicSpline})
	require.NoError(t, err)

	dst, err := readWAV(output, false)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(dst.data), fftSize)

	seq := make([]float64, fftSize)
	for i := range seq {
		seq[i] = float64(dst.data[i]) / maxInt16
	}
	fft := fourier.NewFFT(fftSize)
	coeffs := fft.Coefficients(nil, seq)

	peak := 1
	for k := 2; k < len(coeffs); k++ {
		if cmplx.Abs(coeffs[k]) > cmplx.Abs(coeffs[peak]) {
			peak = k
		}
	}
	binWidth := float64(outRate) / fftSize
	assert.InDelta(t, 440.0, fft.Freq(peak)*outRate, binWidth)
}

func TestConvertWAV_Float32(t *testing.T) {
	input := writeSineWAV(t, 8000, 1, 200)
	output := filepath.Join(t.TempDir(), "out.wav")

	stats, err := convertWAV[float32](input, output, convertOptions{targetRate: 11025, method: engine.MethodCubicSpline})
	require.NoError(t, err)
	assert.Equal(t, outputLength(200, 8000, 11025), stats.outputSamples)
	assert.Zero(t, stats.clamped)
}

func TestConvertWAV_Errors(t *testing.T) {
	input := writeSineWAV(t, 8000, 1, 50)
	output := filepath.Join(t.TempDir(), "out.wav")

	_, err := convertWAV[float64](input, output, convertOptions{targetRate: 8000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already at target rate")

	_, err = convertWAV[float64](input, output, convertOptions{targetRate: 0})
	require.Error(t, err)

	_, err = convertWAV[float64]("/nonexistent.wav", output, convertOptions{targetRate: 16000})
	require.Error(t, err)
}
