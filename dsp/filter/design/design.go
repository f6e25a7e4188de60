package design

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-sigview/dsp/filter/biquad"
	"github.com/cwbudde/algo-sigview/dsp/filter/design/pass"
)

var (
	// ErrInvalidCutoff is returned when a normalized cutoff is not inside (0, 1),
	// i.e. the cutoff is not strictly between 0 Hz and the Nyquist frequency.
	ErrInvalidCutoff = errors.New("design: cutoff must lie strictly between 0 and Nyquist")
	// ErrInvalidOrder is returned for negative filter orders.
	ErrInvalidOrder = errors.New("design: filter order must be >= 0")
	// ErrInvalidInterval is returned for a zero or non-finite sample interval.
	ErrInvalidInterval = errors.New("design: sample interval must be non-zero and finite")
	// ErrUnknownType is returned for a filter type outside the four band types.
	ErrUnknownType = errors.New("design: unknown filter type")
)

// Type selects the band type of a filter.
type Type int

const (
	LowPass Type = iota
	HighPass
	BandPass
	BandStop
)

var typeNames = [...]string{"LOWPASS", "HIGHPASS", "BANDPASS", "BANDSTOP"}

var typeLabels = [...]string{"Low pass", "High pass", "Band pass", "Band stop"}

// String returns the canonical upper-case name, e.g. "BANDPASS".
func (t Type) String() string {
	if t < LowPass || t > BandStop {
		return fmt.Sprintf("Type(%d)", int(t))
	}

	return typeNames[t]
}

// Label returns the human-readable label, e.g. "Band pass".
func (t Type) Label() string {
	if t < LowPass || t > BandStop {
		return t.String()
	}

	return typeLabels[t]
}

// IsBand reports whether the type needs two cutoffs.
func (t Type) IsBand() bool {
	return t == BandPass || t == BandStop
}

// Types lists all band types in display order.
func Types() []Type {
	return []Type{LowPass, HighPass, BandPass, BandStop}
}

// ParseType accepts canonical names ("LOWPASS"), labels ("Low pass") and
// common short forms ("lp", "low-pass"), case-insensitively.
func ParseType(s string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)

	switch key {
	case "lowpass", "lp", "low":
		return LowPass, nil
	case "highpass", "hp", "high":
		return HighPass, nil
	case "bandpass", "bp":
		return BandPass, nil
	case "bandstop", "bs", "notch", "bandreject":
		return BandStop, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if t < LowPass || t > BandStop {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// Spec describes a Butterworth filter request.
//
// CutoffLow is the sole cutoff for LowPass and HighPass and the lower edge
// for the band types. CutoffHigh is only read for BandPass and BandStop; the
// two edges may be given in either order.
type Spec struct {
	Type       Type    `json:"type"`
	CutoffLow  float64 `json:"cutoffLow"`
	CutoffHigh float64 `json:"cutoffHigh,omitempty"`
	Order      int     `json:"order"`
}

// String formats the spec for display.
func (s Spec) String() string {
	if s.Type.IsBand() {
		return fmt.Sprintf("%s %g-%g Hz, order %d", s.Type.Label(), s.CutoffLow, s.CutoffHigh, s.Order)
	}

	return fmt.Sprintf("%s %g Hz, order %d", s.Type.Label(), s.CutoffLow, s.Order)
}

// Nyquist returns the Nyquist frequency 0.5/sampleInterval. A negative
// interval (a decreasing x axis) yields a negative Nyquist frequency, which
// [Spec.NormalizedCutoffs] then rejects as an invalid cutoff.
func Nyquist(sampleInterval float64) (float64, error) {
	if sampleInterval == 0 || math.IsNaN(sampleInterval) || math.IsInf(sampleInterval, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInterval, sampleInterval)
	}

	return 0.5 / sampleInterval, nil
}

// NormalizedCutoffs returns the cutoffs divided by the Nyquist frequency.
// Band types return both edges sorted ascending; LowPass and HighPass return
// a single value. Every value must lie strictly inside (0, 1).
func (s Spec) NormalizedCutoffs(sampleInterval float64) ([]float64, error) {
	nyquist, err := Nyquist(sampleInterval)
	if err != nil {
		return nil, err
	}

	var wn []float64

	switch s.Type {
	case LowPass, HighPass:
		wn = []float64{s.CutoffLow / nyquist}
	case BandPass, BandStop:
		lo, hi := s.CutoffLow/nyquist, s.CutoffHigh/nyquist
		if hi < lo {
			lo, hi = hi, lo
		}

		wn = []float64{lo, hi}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(s.Type))
	}

	for _, w := range wn {
		if !(w > 0 && w < 1) {
			return nil, fmt.Errorf("%w: normalized cutoff %g (nyquist %g Hz)", ErrInvalidCutoff, w, nyquist)
		}
	}

	if len(wn) == 2 && wn[0] == wn[1] {
		return nil, fmt.Errorf("%w: band edges coincide at %g Hz", ErrInvalidCutoff, wn[0]*nyquist)
	}

	return wn, nil
}

// Butterworth designs a maximally-flat filter for spec and returns it as
// second-order sections.
//
// The cutoffs are validated against the Nyquist frequency of a signal
// sampled every sampleInterval seconds before anything else; order 0 then
// yields a single pass-through section.
func Butterworth(spec Spec, sampleInterval float64) ([]biquad.Coefficients, error) {
	wn, err := spec.NormalizedCutoffs(sampleInterval)
	if err != nil {
		return nil, err
	}

	if spec.Order < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, spec.Order)
	}

	if spec.Order == 0 {
		return []biquad.Coefficients{biquad.Passthrough()}, nil
	}

	// Designing at sampleRate 2 makes the normalized cutoffs plain Hz values.
	const sampleRate = 2.0

	var sections []biquad.Coefficients

	switch spec.Type {
	case LowPass:
		sections = pass.ButterworthLP(wn[0], spec.Order, sampleRate)
	case HighPass:
		sections = pass.ButterworthHP(wn[0], spec.Order, sampleRate)
	case BandPass:
		sections = pass.ButterworthBP(wn[0], wn[1], spec.Order, sampleRate)
	case BandStop:
		sections = pass.ButterworthBS(wn[0], wn[1], spec.Order, sampleRate)
	}

	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: no stable design for %s", ErrInvalidCutoff, spec)
	}

	return sections, nil
}
