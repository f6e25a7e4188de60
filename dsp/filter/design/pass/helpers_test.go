package pass

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-sigview/dsp/filter/biquad"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func cascadeMag(sections []biquad.Coefficients, freq, sr float64) float64 {
	return cmplx.Abs(biquad.CascadeResponse(sections, freq, sr))
}

func assertStable(t *testing.T, sections []biquad.Coefficients) {
	t.Helper()

	for i, s := range sections {
		v := []float64{s.B0, s.B1, s.B2, s.A1, s.A2}
		for j := range v {
			if math.IsNaN(v[j]) || math.IsInf(v[j], 0) {
				t.Fatalf("section %d: invalid coefficient[%d]=%v", i, j, v[j])
			}
		}

		if !s.IsStable() {
			t.Fatalf("section %d unstable: poles=%v coeff=%#v", i, s.Poles(), s)
		}
	}
}
