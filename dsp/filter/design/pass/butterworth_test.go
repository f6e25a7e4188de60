package pass

import (
	"math"
	"testing"
)

func TestButterworthLP_SectionCount(t *testing.T) {
	for order := 1; order <= 9; order++ {
		want := (order + 1) / 2
		if got := ButterworthLP(1000, order, 48000); len(got) != want {
			t.Fatalf("order %d: sections=%d, want %d", order, len(got), want)
		}
	}
}

func TestButterworthHP_SectionCount(t *testing.T) {
	for order := 1; order <= 9; order++ {
		want := (order + 1) / 2
		if got := ButterworthHP(1000, order, 48000); len(got) != want {
			t.Fatalf("order %d: sections=%d, want %d", order, len(got), want)
		}
	}
}

func TestButterworth_OddOrderHasFirstOrderSection(t *testing.T) {
	for _, order := range []int{1, 3, 5, 7} {
		lp := ButterworthLP(1000, order, 48000)
		if !lp[len(lp)-1].IsFirstOrder() {
			t.Fatalf("LP order %d: last section not first-order: %+v", order, lp[len(lp)-1])
		}

		hp := ButterworthHP(1000, order, 48000)
		if !hp[len(hp)-1].IsFirstOrder() {
			t.Fatalf("HP order %d: last section not first-order: %+v", order, hp[len(hp)-1])
		}
	}
}

func TestButterworthLP_Minus3dBAtCutoff(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4, 5, 8, 12, 20} {
		sections := ButterworthLP(2, order, 100)
		if got := cascadeMag(sections, 2, 100); !almostEqual(got, 1/math.Sqrt2, 1e-9) {
			t.Fatalf("order %d: |H(fc)|=%v, want %v", order, got, 1/math.Sqrt2)
		}

		if got := cascadeMag(sections, 0, 100); !almostEqual(got, 1, 1e-9) {
			t.Fatalf("order %d: |H(0)|=%v, want 1", order, got)
		}

		assertStable(t, sections)
	}
}

func TestButterworthHP_Minus3dBAtCutoff(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4, 5, 8} {
		sections := ButterworthHP(1000, order, 48000)
		if got := cascadeMag(sections, 1000, 48000); !almostEqual(got, 1/math.Sqrt2, 1e-9) {
			t.Fatalf("order %d: |H(fc)|=%v, want %v", order, got, 1/math.Sqrt2)
		}

		if got := cascadeMag(sections, 24000, 48000); !almostEqual(got, 1, 1e-9) {
			t.Fatalf("order %d: |H(nyquist)|=%v, want 1", order, got)
		}

		assertStable(t, sections)
	}
}

func TestButterworthLP_HigherOrderSteeperRolloff(t *testing.T) {
	prev := 1.0

	for _, order := range []int{1, 2, 4, 6, 8} {
		got := cascadeMag(ButterworthLP(1000, order, 48000), 4000, 48000)
		if got >= prev {
			t.Fatalf("order %d: |H(4k)|=%v not below previous %v", order, got, prev)
		}

		prev = got
	}
}

func TestButterworthBP_Response(t *testing.T) {
	const sr, low, high = 100.0, 5.0, 15.0

	for order := 1; order <= 8; order++ {
		sections := ButterworthBP(low, high, order, sr)
		if len(sections) != order {
			t.Fatalf("order %d: sections=%d, want %d", order, len(sections), order)
		}

		assertStable(t, sections)

		for _, f := range []float64{low, high} {
			if got := cascadeMag(sections, f, sr); !almostEqual(got, 1/math.Sqrt2, 1e-9) {
				t.Fatalf("order %d: |H(%v)|=%v, want -3 dB", order, f, got)
			}
		}

		// Geometric center of the pre-warped edges has unity gain.
		center := math.Atan(math.Sqrt(math.Tan(math.Pi*low/sr)*math.Tan(math.Pi*high/sr))) * sr / math.Pi
		if got := cascadeMag(sections, center, sr); !almostEqual(got, 1, 1e-9) {
			t.Fatalf("order %d: |H(center)|=%v, want 1", order, got)
		}

		if got := cascadeMag(sections, 0, sr); got > 1e-9 {
			t.Fatalf("order %d: |H(0)|=%v, want 0", order, got)
		}
	}
}

func TestButterworthBS_Response(t *testing.T) {
	const sr, low, high = 100.0, 5.0, 15.0

	for order := 1; order <= 8; order++ {
		sections := ButterworthBS(low, high, order, sr)
		if len(sections) != order {
			t.Fatalf("order %d: sections=%d, want %d", order, len(sections), order)
		}

		assertStable(t, sections)

		for _, f := range []float64{low, high} {
			if got := cascadeMag(sections, f, sr); !almostEqual(got, 1/math.Sqrt2, 1e-9) {
				t.Fatalf("order %d: |H(%v)|=%v, want -3 dB", order, f, got)
			}
		}

		for _, f := range []float64{0, sr / 2} {
			if got := cascadeMag(sections, f, sr); !almostEqual(got, 1, 1e-9) {
				t.Fatalf("order %d: |H(%v)|=%v, want 1", order, f, got)
			}
		}
	}
}

func TestButterworthBP_WideBandRealPoles(t *testing.T) {
	// Edges far apart turn the real prototype pole into two real poles.
	sections := ButterworthBP(0.5, 45, 3, 100)
	if len(sections) != 3 {
		t.Fatalf("sections=%d, want 3", len(sections))
	}

	assertStable(t, sections)

	if got := cascadeMag(sections, 45, 100); !almostEqual(got, 1/math.Sqrt2, 1e-9) {
		t.Fatalf("|H(45)|=%v, want -3 dB", got)
	}
}

func TestButterworth_InvalidInputs(t *testing.T) {
	if ButterworthLP(1000, 0, 48000) != nil {
		t.Fatal("expected nil for order 0")
	}
	if ButterworthLP(1000, -1, 48000) != nil {
		t.Fatal("expected nil for negative order")
	}
	if ButterworthHP(24000, 2, 48000) != nil {
		t.Fatal("expected nil for cutoff at Nyquist")
	}
	if ButterworthLP(0, 2, 48000) != nil {
		t.Fatal("expected nil for zero cutoff")
	}
	if ButterworthBP(15, 5, 2, 100) != nil {
		t.Fatal("expected nil for unsorted band edges")
	}
	if ButterworthBS(5, 5, 2, 100) != nil {
		t.Fatal("expected nil for zero bandwidth")
	}
	if ButterworthBS(5, 60, 2, 100) != nil {
		t.Fatal("expected nil for edge above Nyquist")
	}
}

func TestButterworthQ_KnownValues(t *testing.T) {
	if got := butterworthQ(2, 0); !almostEqual(got, 1/math.Sqrt2, 1e-12) {
		t.Fatalf("order=2: Q=%v, want %v", got, 1/math.Sqrt2)
	}

	// Order 4: Q = 1/(2 sin(pi/8)) and 1/(2 sin(3pi/8)).
	if got := butterworthQ(4, 0); !almostEqual(got, 1.3065629648763766, 1e-12) {
		t.Fatalf("order=4 index=0: Q=%v", got)
	}
	if got := butterworthQ(4, 1); !almostEqual(got, 0.5411961001461969, 1e-12) {
		t.Fatalf("order=4 index=1: Q=%v", got)
	}
}

func TestButterworthPrototype_UnitCircleLeftHalf(t *testing.T) {
	for order := 1; order <= 10; order++ {
		poles := butterworthPrototype(order)
		if len(poles) != order {
			t.Fatalf("order %d: %d poles", order, len(poles))
		}

		for _, p := range poles {
			if real(p) >= 0 {
				t.Fatalf("order %d: pole %v not in left half-plane", order, p)
			}
			if r := math.Hypot(real(p), imag(p)); !almostEqual(r, 1, 1e-12) {
				t.Fatalf("order %d: |p|=%v, want 1", order, r)
			}
		}
	}
}
