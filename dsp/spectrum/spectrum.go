package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-sigview/dsp/window"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrInvalidInput is returned for empty or mismatched inputs and for an x
	// axis whose mean step is zero or not finite.
	ErrInvalidInput = errors.New("spectrum: invalid input")
	// ErrInsufficientSamples is returned when fewer than two samples are given.
	ErrInsufficientSamples = errors.New("spectrum: at least 2 samples required")
)

// Result is the one-sided spectrum of a real signal.
//
// Magnitude[i] equals cmplx.Abs(Spectrum[i]) bit for bit. All slices have
// length Size/2+1. Frequencies[0] is 0 and bins are spaced
// 1/(Size*SampleInterval) apart.
type Result struct {
	Frequencies    []float64
	Spectrum       []complex128
	Magnitude      []float64
	SampleInterval float64
	Size           int
	Window         window.Type
}

// Resolution returns the bin spacing in Hz.
func (r Result) Resolution() float64 {
	if r.Size == 0 || r.SampleInterval == 0 {
		return 0
	}

	return 1 / (float64(r.Size) * r.SampleInterval)
}

// Nyquist returns 0.5/SampleInterval.
func (r Result) Nyquist() float64 {
	if r.SampleInterval == 0 {
		return 0
	}

	return 0.5 / r.SampleInterval
}

// Peak returns the index of the largest magnitude bin, optionally ignoring
// the DC bin. It returns -1 for an empty result.
func (r Result) Peak(skipDC bool) int {
	start := 0
	if skipDC {
		start = 1
	}

	if len(r.Magnitude) <= start {
		return -1
	}

	return start + floats.MaxIdx(r.Magnitude[start:])
}

// Option configures [Analyze].
type Option func(*options)

type options struct {
	backend Backend
	window  window.Type
}

// WithBackend selects the FFT engine. The default is [BackendGonum].
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithWindow tapers y before the transform. The default is
// [window.TypeRectangular], which leaves y untouched. Magnitude stays the
// modulus of Spectrum; divide by [window.CoherentGain] to recover amplitudes.
func WithWindow(t window.Type) Option {
	return func(o *options) {
		o.window = t
	}
}

// SampleInterval returns the arithmetic mean of consecutive differences of
// x. Non-uniform spacing is not rejected; the mean step stands in for it.
func SampleInterval(x []float64) (float64, error) {
	if len(x) < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrInsufficientSamples, len(x))
	}

	diffs := make([]float64, len(x)-1)
	for i := range diffs {
		diffs[i] = x[i+1] - x[i]
	}

	dt := stat.Mean(diffs, nil)
	if dt == 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return 0, fmt.Errorf("%w: degenerate sample interval %v", ErrInvalidInput, dt)
	}

	return dt, nil
}

// RFFTFreq returns the n/2+1 bin frequencies k/(n*d) for an rfft of length n
// with sample spacing d.
func RFFTFreq(n int, d float64) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n/2+1)
	scale := 1 / (float64(n) * d)

	for k := range out {
		out[k] = float64(k) * scale
	}

	return out
}

// Analyze computes the one-sided spectrum of y sampled at the positions x.
func Analyze(x, y []float64, opts ...Option) (Result, error) {
	cfg := options{backend: BackendGonum}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(x) == 0 || len(y) == 0 {
		return Result{}, fmt.Errorf("%w: empty signal", ErrInvalidInput)
	}

	if len(x) != len(y) {
		return Result{}, fmt.Errorf("%w: x has %d samples, y has %d", ErrInvalidInput, len(x), len(y))
	}

	dt, err := SampleInterval(x)
	if err != nil {
		return Result{}, err
	}

	samples := y

	if cfg.window != window.TypeRectangular {
		coeffs := window.Generate(cfg.window, len(y))

		samples = append([]float64(nil), y...)
		if err := window.ApplyCoefficientsInPlace(samples, coeffs); err != nil {
			return Result{}, err
		}
	}

	bins, err := RFFT(samples, cfg.backend)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Frequencies:    RFFTFreq(len(y), dt),
		Spectrum:       bins,
		Magnitude:      modulus(bins),
		SampleInterval: dt,
		Size:           len(y),
		Window:         cfg.window,
	}, nil
}

// modulus is the exact counterpart of [Magnitude]; the SIMD kernel may differ
// from cmplx.Abs in the last ulp.
func modulus(bins []complex128) []float64 {
	out := make([]float64, len(bins))
	for i, c := range bins {
		out[i] = cmplx.Abs(c)
	}

	return out
}
