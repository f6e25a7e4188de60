// Package plot builds renderer-agnostic figure descriptions of analyzed
// signals: a time-domain panel above a frequency-domain panel.
//
// Figures marshal to JSON and carry no styling beyond trace colours; any
// charting front end can draw them.
package plot

import (
	"encoding/json"
	"math"

	"github.com/cwbudde/algo-sigview/analysis"
	"github.com/cwbudde/algo-sigview/dsp/core"
)

// Panel and axis titles.
const (
	TitleTime                = "Time Domain"
	TitleFrequency           = "Frequency Domain"
	TitleTimeComparison      = "Time Domain Comparison"
	TitleFrequencyComparison = "Frequency Domain Comparison"
	AxisFrequency            = "Frequency (Hz)"
	AxisMagnitude            = "Magnitude"
	AxisMagnitudeDB          = "Magnitude (dB)"
)

// Trace colours.
const (
	ColorOriginal = "blue"
	ColorFiltered = "green"
)

// Figure is a stack of panels sharing nothing but the layout.
type Figure struct {
	Title  string  `json:"title,omitempty"`
	Panels []Panel `json:"panels"`
}

// Panel is one subplot.
type Panel struct {
	Title  string  `json:"title"`
	XTitle string  `json:"xTitle"`
	YTitle string  `json:"yTitle"`
	Traces []Trace `json:"traces"`
}

// Trace is one line series.
type Trace struct {
	Name  string    `json:"name,omitempty"`
	Color string    `json:"color"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
}

// JSON encodes the figure.
func (f Figure) JSON() ([]byte, error) {
	return json.Marshal(f)
}

// Option adjusts how a figure is built.
type Option func(*options)

type options struct {
	title   string
	dbFloor float64
	db      bool
}

// WithTitle sets the figure title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithDecibels plots magnitudes as 20*log10, clamped at floor dB.
func WithDecibels(floor float64) Option {
	return func(o *options) {
		o.db = true
		o.dbFloor = floor
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func (o options) magnitude(mag []float64) ([]float64, string) {
	if !o.db {
		return mag, AxisMagnitude
	}

	out := make([]float64, len(mag))
	for i, v := range mag {
		out[i] = core.LinearToDBFloor(v, o.dbFloor)
	}

	return out, AxisMagnitudeDB
}

// ForRecord describes a single record.
func ForRecord(r *analysis.Record, opts ...Option) Figure {
	o := applyOptions(opts)
	res := r.Spectrum()
	mag, magTitle := o.magnitude(res.Magnitude)

	return Figure{
		Title: o.title,
		Panels: []Panel{
			{
				Title:  TitleTime,
				XTitle: r.XLabel(),
				YTitle: r.YLabel(),
				Traces: []Trace{{Color: ColorOriginal, X: r.X(), Y: finite(r.Y())}},
			},
			{
				Title:  TitleFrequency,
				XTitle: AxisFrequency,
				YTitle: magTitle,
				Traces: []Trace{{Color: ColorFiltered, X: res.Frequencies, Y: finite(mag)}},
			},
		},
	}
}

// ForComparison overlays a filtered record on its source.
func ForComparison(orig *analysis.Record, filtered *analysis.FilteredRecord, opts ...Option) Figure {
	o := applyOptions(opts)
	if o.title == "" {
		o.title = filtered.Spec().String()
	}

	origRes := orig.Spectrum()
	filtRes := filtered.Spectrum()
	origMag, magTitle := o.magnitude(origRes.Magnitude)
	filtMag, _ := o.magnitude(filtRes.Magnitude)

	return Figure{
		Title: o.title,
		Panels: []Panel{
			{
				Title:  TitleTimeComparison,
				XTitle: orig.XLabel(),
				YTitle: orig.YLabel(),
				Traces: []Trace{
					{Name: "Original Signal", Color: ColorOriginal, X: orig.X(), Y: finite(orig.Y())},
					{Name: "Filtered Signal", Color: ColorFiltered, X: orig.X(), Y: finite(filtered.Y())},
				},
			},
			{
				Title:  TitleFrequencyComparison,
				XTitle: AxisFrequency,
				YTitle: magTitle,
				Traces: []Trace{
					{Name: "Original Spectrum", Color: ColorOriginal, X: origRes.Frequencies, Y: finite(origMag)},
					{Name: "Filtered Spectrum", Color: ColorFiltered, X: filtRes.Frequencies, Y: finite(filtMag)},
				},
			},
		},
	}
}

// finite replaces NaN and infinities, which JSON cannot encode, with 0.
func finite(v []float64) []float64 {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			out := make([]float64, len(v))
			copy(out, v[:i])

			for j := i; j < len(v); j++ {
				if y := v[j]; !math.IsNaN(y) && !math.IsInf(y, 0) {
					out[j] = y
				}
			}

			return out
		}
	}

	return v
}
