package analysis

import (
	"slices"

	"github.com/cwbudde/algo-sigview/dsp/filter/biquad"
	"github.com/cwbudde/algo-sigview/dsp/filter/design"
	"github.com/cwbudde/algo-sigview/dsp/spectrum"
)

// Source describes where a record's samples were loaded from.
type Source struct {
	Name    string   // file or example name
	Rows    int      // data rows in the loaded table
	Columns []string // every column of the loaded table, not only x and y
}

// Shape returns the rows and columns of the loaded table.
func (s Source) Shape() (rows, cols int) { return s.Rows, len(s.Columns) }

// Record is a labelled signal with its one-sided spectrum.
type Record struct {
	x, y           []float64
	xLabel, yLabel string
	spec           spectrum.Result
	source         Source
}

// X returns a copy of the x axis.
func (r *Record) X() []float64 { return slices.Clone(r.x) }

// Y returns a copy of the samples.
func (r *Record) Y() []float64 { return slices.Clone(r.y) }

// Len returns the number of samples.
func (r *Record) Len() int { return len(r.y) }

// XLabel returns the x axis label.
func (r *Record) XLabel() string { return r.xLabel }

// YLabel returns the sample label.
func (r *Record) YLabel() string { return r.yLabel }

// Source returns the load provenance given with [WithSource]. Filtered
// records report the source of the record they were derived from.
func (r *Record) Source() Source {
	s := r.source
	s.Columns = slices.Clone(s.Columns)

	return s
}

// Spectrum returns the spectrum computed when the record was built. The
// slices are shared with the record and must not be modified.
func (r *Record) Spectrum() spectrum.Result { return r.spec }

// SampleInterval returns the mean x step the spectrum was computed with.
func (r *Record) SampleInterval() float64 { return r.spec.SampleInterval }

// FilteredRecord is a Record produced by filtering another one. It keeps the
// request that produced it for display.
type FilteredRecord struct {
	*Record

	filter   design.Spec
	sections []biquad.Coefficients
}

// Spec returns the filter request.
func (f *FilteredRecord) Spec() design.Spec { return f.filter }

// Sections returns a copy of the second-order sections that were applied.
func (f *FilteredRecord) Sections() []biquad.Coefficients { return slices.Clone(f.sections) }
