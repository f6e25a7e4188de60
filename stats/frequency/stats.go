// Package frequency computes shape descriptors of one-sided magnitude spectra.
//
// Every function takes the bin frequencies explicitly, so spectra of odd
// length signals and arbitrary sample intervals are handled the same way as
// power-of-two FFT output.
package frequency

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch is returned when freqs and magnitude differ in length.
var ErrLengthMismatch = errors.New("frequency: freqs and magnitude length mismatch")

// DefaultRolloff is the energy fraction used by [Calculate] for Rolloff.
const DefaultRolloff = 0.85

// Stats holds spectral descriptors computed from a linear magnitude spectrum.
type Stats struct {
	BinCount      int
	PeakBin       int
	PeakFrequency float64 // Hz, DC excluded when other bins exist
	PeakMagnitude float64
	Energy        float64 // sum of squared magnitudes
	Centroid      float64 // Hz
	Spread        float64 // Hz
	Flatness      float64 // 0..1, DC excluded
	Rolloff       float64 // Hz below which 85% of the energy lies
	Bandwidth     float64 // 3 dB width around PeakBin, Hz
}

// Calculate computes all descriptors for magnitude sampled at freqs.
func Calculate(freqs, magnitude []float64) (Stats, error) {
	if len(freqs) != len(magnitude) {
		return Stats{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(freqs), len(magnitude))
	}

	n := len(magnitude)
	if n == 0 {
		return Stats{PeakBin: -1}, nil
	}

	peak := peakBin(magnitude, n > 1)

	return Stats{
		BinCount:      n,
		PeakBin:       peak,
		PeakFrequency: freqs[peak],
		PeakMagnitude: magnitude[peak],
		Energy:        floats.Dot(magnitude, magnitude),
		Centroid:      Centroid(freqs, magnitude),
		Spread:        Spread(freqs, magnitude),
		Flatness:      Flatness(magnitude),
		Rolloff:       Rolloff(freqs, magnitude, DefaultRolloff),
		Bandwidth:     bandwidthAt(freqs, magnitude, peak),
	}, nil
}

func peakBin(magnitude []float64, skipDC bool) int {
	if skipDC && len(magnitude) > 1 {
		return 1 + floats.MaxIdx(magnitude[1:])
	}

	return floats.MaxIdx(magnitude)
}

// DominantFrequency returns the frequency of the largest magnitude bin and
// that magnitude. With skipDC the bin at index 0 is ignored. It returns
// (0, 0) when there is no candidate bin.
func DominantFrequency(freqs, magnitude []float64, skipDC bool) (float64, float64) {
	n := min(len(freqs), len(magnitude))

	start := 0
	if skipDC {
		start = 1
	}

	if n <= start {
		return 0, 0
	}

	i := start + floats.MaxIdx(magnitude[start:n])

	return freqs[i], magnitude[i]
}

// Centroid returns the magnitude-weighted mean frequency, or 0 when the
// spectrum carries no magnitude.
func Centroid(freqs, magnitude []float64) float64 {
	if len(magnitude) == 0 || floats.Sum(magnitude) == 0 {
		return 0
	}

	return stat.Mean(freqs, magnitude)
}

// Spread returns the magnitude-weighted standard deviation of frequency
// around the centroid.
func Spread(freqs, magnitude []float64) float64 {
	if len(magnitude) < 2 || floats.Sum(magnitude) == 0 {
		return 0
	}

	return math.Sqrt(stat.PopVariance(freqs, magnitude))
}

// Flatness returns the spectral flatness (geometric over arithmetic mean) of
// bins 1..N-1. Any zero bin makes the result 0.
func Flatness(magnitude []float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	bins := magnitude[1:]
	if floats.Min(bins) <= 0 {
		return 0
	}

	return stat.GeometricMean(bins, nil) / stat.Mean(bins, nil)
}

// Rolloff returns the lowest bin frequency at which the cumulative energy
// reaches fraction of the total.
func Rolloff(freqs, magnitude []float64, fraction float64) float64 {
	if len(magnitude) == 0 {
		return 0
	}

	total := floats.Dot(magnitude, magnitude)
	if total == 0 {
		return 0
	}

	threshold := fraction * total
	cum := 0.0

	for i, v := range magnitude {
		cum += v * v
		if cum >= threshold {
			return freqs[i]
		}
	}

	return freqs[len(freqs)-1]
}

// Bandwidth returns the width between the points left and right of the
// dominant (non-DC) peak where the magnitude falls to peak/sqrt(2),
// interpolated linearly between bins. When a side never falls below the
// threshold the spectrum edge is used.
func Bandwidth(freqs, magnitude []float64) float64 {
	if len(magnitude) < 2 {
		return 0
	}

	return bandwidthAt(freqs, magnitude, peakBin(magnitude, true))
}

func bandwidthAt(freqs, magnitude []float64, peak int) float64 {
	n := len(magnitude)
	if n < 2 || magnitude[peak] == 0 {
		return 0
	}

	threshold := magnitude[peak] / math.Sqrt2

	lower := freqs[0]
	for i := peak; i >= 1; i-- {
		if magnitude[i-1] <= threshold && magnitude[i] > threshold {
			lower = crossing(freqs[i-1], freqs[i], magnitude[i-1], magnitude[i], threshold)
			break
		}
	}

	upper := freqs[n-1]
	for i := peak; i < n-1; i++ {
		if magnitude[i+1] <= threshold && magnitude[i] > threshold {
			upper = crossing(freqs[i], freqs[i+1], magnitude[i], magnitude[i+1], threshold)
			break
		}
	}

	return max(upper-lower, 0)
}

func crossing(f0, f1, m0, m1, threshold float64) float64 {
	if m1 == m0 {
		return (f0 + f1) / 2
	}

	return f0 + (threshold-m0)/(m1-m0)*(f1-f0)
}
