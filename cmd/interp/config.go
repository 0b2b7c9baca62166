package main

import (
	"fmt"

	"github.com/phil-mansfield/table"
	"gopkg.in/gcfg.v1"

	interpolation "github.com/tphakala/go-interpolation"
)

// settings are the values shared by the INI file and the flags.
type settings struct {
	Method     string
	Boundary   string
	Count      int
	Step       float64
	Seed       int64
	Resolution float64
	Workers    int
	Table      string
	Column     int
}

func defaultSettings() settings {
	return settings{
		Method:     defaultMethod,
		Boundary:   defaultBoundary,
		Count:      defaultCount,
		Step:       defaultStep,
		Seed:       defaultSeed,
		Resolution: defaultResolution,
		Column:     defaultColumn,
	}
}

// iniFile mirrors the layout of a -config file:
//
//	[Interpolation]
//	Method = quadratic
//	Step = 0.5
type iniFile struct {
	Interpolation settings
}

// readConfigFile overlays the variables set in fname onto s.
func readConfigFile(fname string, s *settings) error {
	f := iniFile{Interpolation: *s}
	if err := gcfg.ReadFileInto(&f, fname); err != nil {
		return fmt.Errorf("reading %s: %w", fname, err)
	}
	*s = f.Interpolation
	return nil
}

// interpolatorConfig converts the textual method and boundary.
func (s *settings) interpolatorConfig() (*interpolation.Config, error) {
	method, err := interpolation.ParseMethod(s.Method)
	if err != nil {
		return nil, err
	}
	boundary, err := interpolation.ParseBoundary(s.Boundary)
	if err != nil {
		return nil, err
	}
	return &interpolation.Config{Method: method, Boundary: boundary}, nil
}

// loadTable reads column s.Column of s.Table, or generates s.Count random
// samples when no table file is given.
func (s *settings) loadTable() (*interpolation.SampleTable, error) {
	if s.Table == "" {
		return interpolation.Generate(s.Count, s.Step, interpolation.NewSeededSource(uint64(s.Seed)))
	}

	if s.Column < 0 {
		return nil, fmt.Errorf("column must be non-negative, got %d", s.Column)
	}
	cols, err := table.ReadTable(s.Table, []int{s.Column}, nil)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Table, err)
	}
	return interpolation.NewSampleTable(cols[0], s.Step)
}
