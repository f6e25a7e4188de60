package design

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-sigview/dsp/filter/biquad"
)

func magAt(sections []biquad.Coefficients, freq, sampleRate float64) float64 {
	return cmplx.Abs(biquad.CascadeResponse(sections, freq, sampleRate))
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"LOWPASS", LowPass},
		{"lowpass", LowPass},
		{"Low pass", LowPass},
		{"HIGHPASS", HighPass},
		{"High pass", HighPass},
		{"BANDPASS", BandPass},
		{"band-pass", BandPass},
		{"BANDSTOP", BandStop},
		{"Band stop", BandStop},
		{"bs", BandStop},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", tt.in, err)
		}

		if got != tt.want {
			t.Fatalf("ParseType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseType("comb"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("ParseType(comb) err = %v, want ErrUnknownType", err)
	}
}

func TestType_StringRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		if err != nil || got != typ {
			t.Fatalf("%v: round trip got %v, %v", typ, got, err)
		}

		got, err = ParseType(typ.Label())
		if err != nil || got != typ {
			t.Fatalf("%v: label round trip got %v, %v", typ, got, err)
		}
	}
}

func TestButterworth_OrderZeroIsPassthrough(t *testing.T) {
	for _, typ := range Types() {
		spec := Spec{Type: typ, CutoffLow: 5, CutoffHigh: 10, Order: 0}

		sections, err := Butterworth(spec, 0.01)
		if err != nil {
			t.Fatalf("%v: %v", typ, err)
		}

		if len(sections) != 1 || sections[0] != biquad.Passthrough() {
			t.Fatalf("%v: got %+v, want single pass-through", typ, sections)
		}
	}
}

func TestButterworth_OrderZeroStillValidatesCutoff(t *testing.T) {
	_, err := Butterworth(Spec{Type: LowPass, CutoffLow: 80, Order: 0}, 0.01)
	if !errors.Is(err, ErrInvalidCutoff) {
		t.Fatalf("err = %v, want ErrInvalidCutoff", err)
	}
}

func TestButterworth_CutoffAtOrAboveNyquist(t *testing.T) {
	// dt=1 gives Nyquist 0.5 Hz.
	tests := []Spec{
		{Type: LowPass, CutoffLow: 0.6, Order: 2},
		{Type: HighPass, CutoffLow: 0.5, Order: 2},
		{Type: LowPass, CutoffLow: 0, Order: 2},
		{Type: LowPass, CutoffLow: -0.1, Order: 2},
		{Type: BandPass, CutoffLow: 0.1, CutoffHigh: 0.5, Order: 2},
		{Type: BandStop, CutoffLow: 0, CutoffHigh: 0.2, Order: 2},
		{Type: LowPass, CutoffLow: math.NaN(), Order: 2},
	}

	for _, spec := range tests {
		if _, err := Butterworth(spec, 1.0); !errors.Is(err, ErrInvalidCutoff) {
			t.Fatalf("%v: err = %v, want ErrInvalidCutoff", spec, err)
		}
	}
}

func TestButterworth_ZeroBandwidth(t *testing.T) {
	_, err := Butterworth(Spec{Type: BandPass, CutoffLow: 5, CutoffHigh: 5, Order: 2}, 0.01)
	if !errors.Is(err, ErrInvalidCutoff) {
		t.Fatalf("err = %v, want ErrInvalidCutoff", err)
	}
}

func TestButterworth_NegativeIntervalIsInvalidCutoff(t *testing.T) {
	specs := []Spec{
		{Type: LowPass, CutoffLow: 2, Order: 4},
		{Type: HighPass, CutoffLow: 2, Order: 0},
		{Type: BandPass, CutoffLow: 1, CutoffHigh: 5, Order: 2},
		{Type: BandStop, CutoffLow: 5, CutoffHigh: 1, Order: 3},
	}

	for _, spec := range specs {
		_, err := Butterworth(spec, -0.01)
		if !errors.Is(err, ErrInvalidCutoff) {
			t.Fatalf("%v: err = %v, want ErrInvalidCutoff", spec, err)
		}

		if errors.Is(err, ErrInvalidInterval) {
			t.Fatalf("%v: negative interval reported as ErrInvalidInterval", spec)
		}
	}

	nyq, err := Nyquist(-0.01)
	if err != nil || nyq != -50 {
		t.Fatalf("Nyquist(-0.01) = %v, %v", nyq, err)
	}
}

func TestButterworth_InvalidOrderAndInterval(t *testing.T) {
	if _, err := Butterworth(Spec{Type: LowPass, CutoffLow: 5, Order: -1}, 0.01); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("negative order err = %v", err)
	}

	for _, dt := range []float64{0, math.Inf(1), math.Inf(-1), math.NaN()} {
		if _, err := Butterworth(Spec{Type: LowPass, CutoffLow: 5, Order: 2}, dt); !errors.Is(err, ErrInvalidInterval) {
			t.Fatalf("dt=%v err = %v, want ErrInvalidInterval", dt, err)
		}
	}

	if _, err := Butterworth(Spec{Type: Type(9), CutoffLow: 5, Order: 2}, 0.01); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("unknown type err = %v", err)
	}
}

func TestButterworth_BandEdgesSorted(t *testing.T) {
	for _, typ := range []Type{BandPass, BandStop} {
		a, err := Butterworth(Spec{Type: typ, CutoffLow: 5, CutoffHigh: 1, Order: 3}, 0.01)
		if err != nil {
			t.Fatal(err)
		}

		b, err := Butterworth(Spec{Type: typ, CutoffLow: 1, CutoffHigh: 5, Order: 3}, 0.01)
		if err != nil {
			t.Fatal(err)
		}

		if len(a) != len(b) {
			t.Fatalf("%v: section counts differ %d vs %d", typ, len(a), len(b))
		}

		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%v: section %d differs: %+v vs %+v", typ, i, a[i], b[i])
			}
		}
	}
}

func TestButterworth_SectionCounts(t *testing.T) {
	tests := []struct {
		spec Spec
		want int
	}{
		{Spec{Type: LowPass, CutoffLow: 10, Order: 4}, 2},
		{Spec{Type: LowPass, CutoffLow: 10, Order: 5}, 3},
		{Spec{Type: HighPass, CutoffLow: 10, Order: 1}, 1},
		{Spec{Type: BandPass, CutoffLow: 5, CutoffHigh: 15, Order: 4}, 4},
		{Spec{Type: BandStop, CutoffLow: 5, CutoffHigh: 15, Order: 3}, 3},
	}

	for _, tt := range tests {
		sections, err := Butterworth(tt.spec, 0.01)
		if err != nil {
			t.Fatalf("%v: %v", tt.spec, err)
		}

		if len(sections) != tt.want {
			t.Fatalf("%v: got %d sections, want %d", tt.spec, len(sections), tt.want)
		}
	}
}

func TestButterworth_HalfPowerAtCutoffHz(t *testing.T) {
	const (
		dt = 0.01
		fs = 1 / dt
	)

	want := 1 / math.Sqrt2

	lp, err := Butterworth(Spec{Type: LowPass, CutoffLow: 10, Order: 4}, dt)
	if err != nil {
		t.Fatal(err)
	}

	if got := magAt(lp, 10, fs); math.Abs(got-want) > 1e-9 {
		t.Fatalf("lowpass |H(10)| = %v, want %v", got, want)
	}

	bp, err := Butterworth(Spec{Type: BandPass, CutoffLow: 5, CutoffHigh: 15, Order: 2}, dt)
	if err != nil {
		t.Fatal(err)
	}

	for _, f := range []float64{5, 15} {
		if got := magAt(bp, f, fs); math.Abs(got-want) > 1e-9 {
			t.Fatalf("bandpass |H(%v)| = %v, want %v", f, got, want)
		}
	}
}

func TestButterworth_Deterministic(t *testing.T) {
	spec := Spec{Type: BandStop, CutoffLow: 3, CutoffHigh: 7, Order: 5}

	a, err := Butterworth(spec, 0.02)
	if err != nil {
		t.Fatal(err)
	}

	b, err := Butterworth(spec, 0.02)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("section %d differs between calls", i)
		}
	}
}

func TestSpec_NormalizedCutoffs(t *testing.T) {
	wn, err := Spec{Type: BandPass, CutoffLow: 20, CutoffHigh: 10, Order: 2}.NormalizedCutoffs(0.01)
	if err != nil {
		t.Fatal(err)
	}

	if len(wn) != 2 || math.Abs(wn[0]-0.2) > 1e-15 || math.Abs(wn[1]-0.4) > 1e-15 {
		t.Fatalf("wn = %v, want [0.2 0.4]", wn)
	}
}

func TestType_UnmarshalText(t *testing.T) {
	var typ Type
	if err := typ.UnmarshalText([]byte("Band pass")); err != nil {
		t.Fatal(err)
	}

	if typ != BandPass {
		t.Fatalf("got %v", typ)
	}
}
