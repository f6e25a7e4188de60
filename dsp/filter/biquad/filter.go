package biquad

// Filter runs x through the cascade described by coeffs and returns the
// filtered signal. Processing is forward-only with zero initial state; x is
// not modified and the output has the same length.
//
// Every call builds a fresh [Chain], so identical inputs always produce
// identical outputs.
func Filter(coeffs []Coefficients, x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	NewChain(coeffs).ProcessBlock(out)

	return out
}
