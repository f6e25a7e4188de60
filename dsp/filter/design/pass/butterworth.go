package pass

import (
	"github.com/cwbudde/algo-sigview/dsp/filter/biquad"
)

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if order <= 0 || !ok {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, lowpassRBJ(freq, butterworthQ(order, i), sampleRate))
	}

	if order%2 != 0 {
		sections = append(sections, firstOrderLP(k))
	}

	return sections
}

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if order <= 0 || !ok {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, highpassRBJ(freq, butterworthQ(order, i), sampleRate))
	}

	if order%2 != 0 {
		sections = append(sections, firstOrderHP(k))
	}

	return sections
}

// ButterworthBP designs a bandpass Butterworth cascade passing low..high Hz.
//
// The resulting filter has order 2*order and consists of order sections.
// low must be below high.
func ButterworthBP(low, high float64, order int, sampleRate float64) []biquad.Coefficients {
	kl, kh, ok := bandK(low, high, order, sampleRate)
	if !ok {
		return nil
	}

	sections, err := bandpassZPK(order, kl, kh).sections()
	if err != nil {
		return nil
	}

	return sections
}

// ButterworthBS designs a bandstop Butterworth cascade rejecting low..high Hz.
//
// The resulting filter has order 2*order and consists of order sections.
// low must be below high.
func ButterworthBS(low, high float64, order int, sampleRate float64) []biquad.Coefficients {
	kl, kh, ok := bandK(low, high, order, sampleRate)
	if !ok {
		return nil
	}

	sections, err := bandstopZPK(order, kl, kh).sections()
	if err != nil {
		return nil
	}

	return sections
}

func bandK(low, high float64, order int, sampleRate float64) (float64, float64, bool) {
	if order <= 0 || !(low < high) {
		return 0, 0, false
	}

	kl, ok := bilinearK(low, sampleRate)
	if !ok {
		return 0, 0, false
	}

	kh, ok := bilinearK(high, sampleRate)
	if !ok {
		return 0, 0, false
	}

	return kl, kh, true
}
