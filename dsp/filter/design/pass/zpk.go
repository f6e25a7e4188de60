package pass

import (
	"cmp"
	"errors"
	"math"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-sigview/dsp/filter/biquad"
	"github.com/cwbudde/algo-sigview/internal/polyroot"
)

var errSectionMismatch = errors.New("pass: zero and pole sections differ in count")

// zpk is a filter in zero/pole/gain form. Analog (s-plane) and digital
// (z-plane) filters share the representation.
type zpk struct {
	zeros []complex128
	poles []complex128
	gain  float64
}

// butterworthPrototype returns the poles of the normalized analog
// Butterworth lowpass of the given order (cutoff 1 rad/s, unity DC gain).
func butterworthPrototype(order int) []complex128 {
	poles := make([]complex128, 0, order)
	for m := -order + 1; m < order; m += 2 {
		poles = append(poles, -cmplx.Exp(complex(0, math.Pi*float64(m)/float64(2*order))))
	}

	return poles
}

// bandpassZPK transforms the prototype to an analog bandpass between the
// pre-warped edges kl and kh and maps it to the z-plane.
func bandpassZPK(order int, kl, kh float64) zpk {
	bw := kh - kl
	w0 := math.Sqrt(kl * kh)

	poles := make([]complex128, 0, 2*order)
	for _, p := range butterworthPrototype(order) {
		a := p * complex(bw/2, 0)
		d := cmplx.Sqrt(a*a - complex(w0*w0, 0))
		poles = append(poles, a+d, a-d)
	}

	analog := zpk{
		zeros: make([]complex128, order),
		poles: poles,
		gain:  math.Pow(bw, float64(order)),
	}

	return analog.bilinear()
}

// bandstopZPK transforms the prototype to an analog bandstop between the
// pre-warped edges kl and kh and maps it to the z-plane.
func bandstopZPK(order int, kl, kh float64) zpk {
	bw := kh - kl
	w0 := math.Sqrt(kl * kh)

	proto := butterworthPrototype(order)
	poles := make([]complex128, 0, 2*order)
	zeros := make([]complex128, 0, 2*order)
	prod := complex(1, 0)

	for _, p := range proto {
		prod *= -p
		a := complex(bw/2, 0) / p
		d := cmplx.Sqrt(a*a - complex(w0*w0, 0))
		poles = append(poles, a+d, a-d)
		zeros = append(zeros, complex(0, w0), complex(0, -w0))
	}

	analog := zpk{
		zeros: zeros,
		poles: poles,
		gain:  real(1 / prod),
	}

	return analog.bilinear()
}

// bilinear maps an analog zpk to the z-plane with s = (z-1)/(z+1), the
// transform whose frequency warping is Ω = tan(ω/2). Zeros at infinity land
// on z = -1 and are interleaved with the mapped finite zeros so that each
// section later receives one of each.
func (f zpk) bilinear() zpk {
	extra := len(f.poles) - len(f.zeros)
	zeros := make([]complex128, 0, len(f.poles))
	num := complex(1, 0)

	for _, z := range f.zeros {
		num *= 1 - z
		zeros = append(zeros, (1+z)/(1-z))

		if extra > 0 {
			zeros = append(zeros, -1)
			extra--
		}
	}

	for ; extra > 0; extra-- {
		zeros = append(zeros, -1)
	}

	poles := make([]complex128, len(f.poles))
	den := complex(1, 0)

	for i, p := range f.poles {
		den *= 1 - p
		poles[i] = (1 + p) / (1 - p)
	}

	return zpk{
		zeros: zeros,
		poles: poles,
		gain:  f.gain * real(num/den),
	}
}

// sections converts a digital zpk into second-order sections. Sections are
// ordered by increasing pole radius and the overall gain is folded into the
// first section's numerator.
func (f zpk) sections() ([]biquad.Coefficients, error) {
	zeroPairs, _, err := polyroot.PairRoots(f.zeros)
	if err != nil {
		return nil, err
	}

	polePairs, _, err := polyroot.PairRoots(f.poles)
	if err != nil {
		return nil, err
	}

	if len(zeroPairs) != len(polePairs) {
		return nil, errSectionMismatch
	}

	slices.SortStableFunc(polePairs, func(a, b [2]complex128) int {
		return cmp.Compare(pairRadius(a), pairRadius(b))
	})

	out := make([]biquad.Coefficients, len(polePairs))

	for i := range polePairs {
		b1, b2, err := polyroot.QuadFromRoots(zeroPairs[i])
		if err != nil {
			return nil, err
		}

		a1, a2, err := polyroot.QuadFromRoots(polePairs[i])
		if err != nil {
			return nil, err
		}

		out[i] = biquad.Coefficients{B0: 1, B1: b1, B2: b2, A1: a1, A2: a2}
	}

	if len(out) > 0 {
		out[0] = out[0].Scale(f.gain)
	}

	return out, nil
}

func pairRadius(p [2]complex128) float64 {
	return math.Max(cmplx.Abs(p[0]), cmplx.Abs(p[1]))
}
