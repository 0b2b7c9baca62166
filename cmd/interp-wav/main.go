// Command interp-wav changes the sample rate of a WAV file by evaluating an
// interpolator over each channel.
//
// Usage:
//
//	interp-wav -rate 48 input.wav output.wav
//	interp-wav -rate 16 -method linear input.wav output.wav
//	interp-wav -rate 96 -fast input.wav output.wav            # float32 precision
//	interp-wav -rate 48 -parallel=false input.wav out.wav     # Disable parallel processing
//
// Every channel is loaded whole, since a cubic spline couples all of its
// samples. Channels are interpolated concurrently by default.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	interpolation "github.com/tphakala/go-interpolation"
	"github.com/tphakala/go-interpolation/internal/engine"
	"github.com/tphakala/go-interpolation/internal/simdops"
)

const (
	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	kHzToHz  = 1000
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// CLI defaults
	defaultRateKHz  = 48.0
	defaultMethod   = "cubic-spline"
	defaultBoundary = "natural"
	minRequiredArgs = 2

	// wavPCMFormat is the WAVE_FORMAT_PCM audio format tag.
	wavPCMFormat = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	rateKHz := flag.Float64("rate", defaultRateKHz, "Target sample rate in kHz (e.g., 16, 32, 44.1, 48, 96)")
	methodName := flag.String("method", defaultMethod, "Interpolation method: linear, quadratic, cubic-spline")
	boundaryName := flag.String("boundary", defaultBoundary, "Spline right boundary: natural, forward-sweep")
	fast := flag.Bool("fast", false, "Use float32 precision (sufficient for 16-bit audio)")
	parallel := flag.Bool("parallel", true, "Interpolate channels concurrently")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -rate 48 input.wav output.wav                 # Convert to 48kHz\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -rate 16 -method linear speech.wav out.wav    # Cheap downsample\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	method, err := interpolation.ParseMethod(*methodName)
	if err != nil {
		return err
	}
	boundary, err := interpolation.ParseBoundary(*boundaryName)
	if err != nil {
		return err
	}
	opts := convertOptions{
		targetRate: int(*rateKHz * kHzToHz),
		method:     engineMethod(method),
		boundary:   engineBoundary(boundary),
		parallel:   *parallel,
		verbose:    *verbose,
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	inputPath := args[0]
	outputPath := args[1]

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Target rate: %d Hz", opts.targetRate)
		log.Printf("Method: %s (%s boundary)", method, boundary)
		if *fast {
			log.Printf("Precision: float32 (fast mode)")
		} else {
			log.Printf("Precision: float64 (high precision)")
		}
	}

	start := time.Now()
	var stats *convertStats
	if *fast {
		stats, err = convertWAV[float32](inputPath, outputPath, opts)
	} else {
		stats, err = convertWAV[float64](inputPath, outputPath, opts)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Interpolated %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz -> %d Hz (%d channels, %d-bit, %s)\n",
		stats.inputRate, stats.outputRate, stats.channels, stats.bitDepth, method)
	fmt.Printf("  %d samples -> %d samples\n", stats.inputSamples, stats.outputSamples)
	if stats.clamped > 0 {
		fmt.Printf("  %d edge samples held at the nearest input sample\n", stats.clamped)
	}
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(),
		float64(stats.inputSamples)/float64(stats.inputRate)/elapsed.Seconds())

	return nil
}

type convertOptions struct {
	targetRate int
	method     engine.Method
	boundary   engine.Boundary
	parallel   bool
	verbose    bool
}

type convertStats struct {
	inputRate     int
	outputRate    int
	channels      int
	bitDepth      int
	inputSamples  int
	outputSamples int
	clamped       int
}

func engineMethod(m interpolation.Method) engine.Method {
	switch m {
	case interpolation.MethodLinear:
		return engine.MethodLinear
	case interpolation.MethodQuadratic:
		return engine.MethodQuadratic
	default:
		return engine.MethodCubicSpline
	}
}

func engineBoundary(b interpolation.SplineBoundary) engine.Boundary {
	if b == interpolation.BoundaryForwardSweep {
		return engine.BoundaryForwardSweep
	}
	return engine.BoundaryNatural
}

// convertWAV reads inputPath, interpolates every channel at the target
// rate and writes outputPath with the input's bit depth.
func convertWAV[F simdops.Float](inputPath, outputPath string, opts convertOptions) (*convertStats, error) {
	input, err := readWAV(inputPath, opts.verbose)
	if err != nil {
		return nil, err
	}
	if input.rate == opts.targetRate {
		return nil, fmt.Errorf("input already at target rate %d Hz", opts.targetRate)
	}
	if opts.targetRate <= 0 {
		return nil, fmt.Errorf("invalid target rate %d Hz", opts.targetRate)
	}

	maxVal := getMaxValue(input.bitDepth)
	channels := deinterleave[F](input.data, input.channels, F(1/maxVal))

	converted, clamped, err := interpolateChannels(channels, input.rate, opts)
	if err != nil {
		return nil, err
	}

	if err := writeWAV(outputPath, interleave(converted, maxVal), opts.targetRate, input.bitDepth, input.channels); err != nil {
		return nil, err
	}

	stats := &convertStats{
		inputRate:  input.rate,
		outputRate: opts.targetRate,
		channels:   input.channels,
		bitDepth:   input.bitDepth,
		clamped:    clamped,
	}
	if len(channels) > 0 {
		stats.inputSamples = len(channels[0])
		stats.outputSamples = len(converted[0])
	}
	return stats, nil
}
