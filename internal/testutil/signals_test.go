package testutil

import (
	"math"
	"testing"
)

func TestTimeAxis(t *testing.T) {
	x := TimeAxis(4, 0.25)
	RequireSliceNearlyEqual(t, x, []float64{0, 0.25, 0.5, 0.75}, 0)
}

func TestSine(t *testing.T) {
	s := Sine(1, 0.25, 2, 4)
	RequireSliceNearlyEqual(t, s, []float64{0, 2, 0, -2}, 1e-12)
}

func TestSum(t *testing.T) {
	got := Sum([]float64{1, 2}, []float64{3, 4}, []float64{-1, 0})
	RequireSliceNearlyEqual(t, got, []float64{3, 6}, 0)

	if Sum() != nil {
		t.Fatal("Sum() should be nil")
	}
}

func TestNoiseDeterministic(t *testing.T) {
	a := Noise(42, 1, 64)
	b := Noise(42, 1, 64)
	RequireSliceNearlyEqual(t, a, b, 0)

	for i, v := range a {
		if v < -1 || v >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, v)
		}
	}

	c := Noise(7, 1, 64)
	if d, _ := MaxAbsDiff(a, c); d == 0 {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestImpulseAndDC(t *testing.T) {
	RequireSliceNearlyEqual(t, Impulse(4, 2), []float64{0, 0, 1, 0}, 0)
	RequireSliceNearlyEqual(t, Impulse(2, 5), []float64{0, 0}, 0)
	RequireSliceNearlyEqual(t, DC(math.Pi, 2), []float64{math.Pi, math.Pi}, 0)
}
