package analysis

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-sigview/dsp/filter/biquad"
	"github.com/cwbudde/algo-sigview/dsp/filter/design"
	"github.com/cwbudde/algo-sigview/dsp/spectrum"
	"github.com/cwbudde/algo-sigview/dsp/window"
	timestats "github.com/cwbudde/algo-sigview/stats/time"
)

const (
	opLoad   = "load"
	opFilter = "filter"
	opStats  = "stats"
)

// Option configures the pipeline entry points.
type Option func(*options)

type options struct {
	backend spectrum.Backend
	window  window.Type
	source  Source
}

// WithBackend selects the FFT engine for the spectrum.
func WithBackend(b spectrum.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithWindow tapers samples before the spectrum is taken. The samples
// stored in the record are not windowed.
func WithWindow(t window.Type) Option {
	return func(o *options) {
		o.window = t
	}
}

// WithSource records where the samples came from. It only affects
// [LoadAndAnalyze]; filtered records inherit their source.
func WithSource(name string, rows int, columns []string) Option {
	return func(o *options) {
		o.source = Source{Name: name, Rows: rows, Columns: slices.Clone(columns)}
	}
}

func applyOptions(opts []Option) options {
	o := options{backend: spectrum.BackendGonum}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// LoadAndAnalyze validates x and y, copies them and computes the spectrum.
func LoadAndAnalyze(x, y []float64, xLabel, yLabel string, opts ...Option) (*Record, error) {
	r, err := newRecord(slices.Clone(x), slices.Clone(y), xLabel, yLabel, applyOptions(opts))
	if err != nil {
		return nil, wrap(opLoad, err)
	}

	return r, nil
}

func newRecord(x, y []float64, xLabel, yLabel string, o options) (*Record, error) {
	switch {
	case len(x) != len(y):
		return nil, fmt.Errorf("%w: x has %d samples, y has %d", spectrum.ErrInvalidInput, len(x), len(y))
	case len(y) == 0:
		return nil, fmt.Errorf("%w: no samples", spectrum.ErrInvalidInput)
	}

	res, err := spectrum.Analyze(x, y, spectrum.WithBackend(o.backend), spectrum.WithWindow(o.window))
	if err != nil {
		return nil, err
	}

	return &Record{x: x, y: y, xLabel: xLabel, yLabel: yLabel, spec: res, source: o.source}, nil
}

// FilterAndAnalyze designs a Butterworth filter for spec at the sample
// interval of src, runs src's samples through it and returns the result with
// its own spectrum. The x axis and labels are carried over from src.
func FilterAndAnalyze(src *Record, spec design.Spec, opts ...Option) (*FilteredRecord, error) {
	if src == nil {
		return nil, &Error{Op: opFilter, Kind: InvalidInput, Err: errors.New("nil source record")}
	}

	dt, err := spectrum.SampleInterval(src.x)
	if err != nil {
		return nil, wrap(opFilter, err)
	}

	sections, err := design.Butterworth(spec, dt)
	if err != nil {
		return nil, wrap(opFilter, err)
	}

	y := biquad.Filter(sections, src.y)

	o := applyOptions(opts)
	o.source = src.source

	// src.x is never mutated, so the filtered record may share it.
	r, err := newRecord(src.x, y, src.xLabel, src.yLabel, o)
	if err != nil {
		return nil, wrap(opFilter, err)
	}

	return &FilteredRecord{Record: r, filter: spec, sections: sections}, nil
}

// Summary returns the descriptive statistics of r's samples.
func Summary(r *Record) (timestats.Summary, error) {
	if r == nil {
		return timestats.Summary{}, &Error{Op: opStats, Kind: EmptyInput, Err: timestats.ErrEmptyInput}
	}

	s, err := timestats.Describe(r.y)
	if err != nil {
		return timestats.Summary{}, wrap(opStats, err)
	}

	return s, nil
}

// ComputeStats returns the ordered statistics of r's samples: Mean, Median,
// Std Dev, Min, Max, Range, RMS, Peak to Peak.
func ComputeStats(r *Record) ([]timestats.Entry, error) {
	s, err := Summary(r)
	if err != nil {
		return nil, err
	}

	return s.Entries(), nil
}
