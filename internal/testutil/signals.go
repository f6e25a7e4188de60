// Package testutil holds signal fixtures and tolerance assertions shared by
// package tests.
package testutil

import (
	"math"
	"math/rand"
)

// TimeAxis returns n sample instants 0, dt, 2dt, ...
func TimeAxis(n int, dt float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * dt
	}

	return out
}

// Sine samples amplitude*sin(2*pi*freqHz*t) on the axis produced by TimeAxis.
func Sine(freqHz, dt, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freqHz * dt

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Sum adds signals of equal length element-wise into a new slice.
func Sum(signals ...[]float64) []float64 {
	if len(signals) == 0 {
		return nil
	}

	out := make([]float64, len(signals[0]))
	for _, s := range signals {
		for i := range out {
			out[i] += s[i]
		}
	}

	return out
}

// Noise generates uniform white noise in [-amplitude, amplitude) with a fixed seed.
func Noise(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Impulse generates a unit impulse at pos.
func Impulse(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}

	return out
}

// DC generates a constant signal.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}

	return out
}
