// Package spectrum computes one-sided amplitude spectra of real signals.
//
// [Analyze] takes an x axis and its samples, infers the sample interval from
// the mean x step and returns the rfft-layout bins (N/2+1 of them) together
// with their frequencies and magnitudes. The FFT engine is pluggable through
// [Backend]; all backends produce the same bin layout.
package spectrum
