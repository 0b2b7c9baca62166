// Command interp samples an interpolator over a table and prints the
// result as tab-separated x and y columns.
//
// The table is either generated (uniform random values in [-10, 10)) or read
// from one column of a whitespace-separated text file. Settings come from
// an optional INI file and are overridden by flags.
//
// Usage:
//
//	interp [flags]
//	interp -config run.ini -method quadratic > out.tsv
//	interp -table data.txt -column 2 -step 0.01
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	interpolation "github.com/tphakala/go-interpolation"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// options are the settings plus flags that only exist on the command line.
type options struct {
	settings
	configFile string
	summary    bool
	verbose    bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("interp", flag.ContinueOnError)

	var (
		flagVals = defaultSettings()
		opts     options
	)
	fs.StringVar(&opts.configFile, "config", "", "INI file with an [Interpolation] section")
	fs.StringVar(&flagVals.Method, "method", defaultMethod, "Interpolation method: linear, quadratic, cubic-spline")
	fs.StringVar(&flagVals.Boundary, "boundary", defaultBoundary, "Spline right boundary: natural, forward-sweep")
	fs.IntVar(&flagVals.Count, "count", defaultCount, "Number of generated samples")
	fs.Float64Var(&flagVals.Step, "step", defaultStep, "Spacing between samples")
	fs.Int64Var(&flagVals.Seed, "seed", defaultSeed, "Seed for generated samples")
	fs.Float64Var(&flagVals.Resolution, "resolution", defaultResolution, "Spacing between query points")
	fs.IntVar(&flagVals.Workers, "workers", 0, "Evaluation goroutines (0 = GOMAXPROCS)")
	fs.StringVar(&flagVals.Table, "table", "", "Read samples from this text file instead of generating them")
	fs.IntVar(&flagVals.Column, "column", defaultColumn, "Column of -table holding the samples")
	fs.BoolVar(&opts.summary, "summary", false, "Log sample statistics")
	fs.BoolVar(&opts.verbose, "v", false, "Log every skipped query point")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.settings = defaultSettings()
	if opts.configFile != "" {
		if err := readConfigFile(opts.configFile, &opts.settings); err != nil {
			return nil, err
		}
	}

	// Explicit flags win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "method":
			opts.Method = flagVals.Method
		case "boundary":
			opts.Boundary = flagVals.Boundary
		case "count":
			opts.Count = flagVals.Count
		case "step":
			opts.Step = flagVals.Step
		case "seed":
			opts.Seed = flagVals.Seed
		case "resolution":
			opts.Resolution = flagVals.Resolution
		case "workers":
			opts.Workers = flagVals.Workers
		case "table":
			opts.Table = flagVals.Table
		case "column":
			opts.Column = flagVals.Column
		}
	})

	return &opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	config, err := opts.interpolatorConfig()
	if err != nil {
		return err
	}

	samples, err := opts.loadTable()
	if err != nil {
		return err
	}

	if opts.summary {
		s, err := samples.Summary()
		if err != nil {
			return err
		}
		log.Printf("%d samples, step %g: min %.4f, max %.4f, mean %.4f, stddev %.4f",
			samples.Len(), samples.Step(), s.Min, s.Max, s.Mean, s.StdDev)
	}

	ip, err := interpolation.New(samples, config)
	if err != nil {
		return err
	}

	xs, err := queryGrid(samples, opts.Resolution)
	if err != nil {
		return err
	}

	res, err := interpolation.EvaluateParallel(context.Background(), ip, xs, opts.Workers)
	if err != nil {
		return err
	}

	if opts.verbose {
		for _, err := range res.Skipped {
			log.Printf("skipped: %v", err)
		}
	} else if len(res.Skipped) > 0 {
		lo, hi := ip.Domain()
		log.Printf("skipped %d of %d points outside [%g, %g)", len(res.Skipped), len(xs), lo, hi)
	}

	return writeTSV(stdout, res.Points)
}

// queryGrid covers the table's span with points resolution apart.
func queryGrid(samples *interpolation.SampleTable, resolution float64) ([]float64, error) {
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return nil, fmt.Errorf("resolution must be positive and finite, got %v", resolution)
	}
	first, last := samples.Span()
	count := max(int(math.Floor((last-first)/resolution+resolutionSlack))+1, minQueryPoints)
	return interpolation.Grid(first, first+float64(count-1)*resolution, count)
}

func writeTSV(w io.Writer, points []interpolation.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%g\t%g\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}
