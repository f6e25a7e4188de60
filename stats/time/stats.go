// Package time computes descriptive statistics of sampled signals.
package time

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyInput is returned when statistics are requested for no samples.
var ErrEmptyInput = errors.New("stats: empty input")

// Summary holds the descriptive statistics of a signal.
//
// StdDev is the population standard deviation. Range and PeakToPeak are
// both max - min and are reported separately.
type Summary struct {
	Mean       float64
	Median     float64
	StdDev     float64
	Min        float64
	Max        float64
	Range      float64
	RMS        float64
	PeakToPeak float64
}

// Entry is one named statistic.
type Entry struct {
	Name  string
	Value float64
}

// String renders the entry with four significant digits.
func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Name, FormatValue(e.Value))
}

// FormatValue renders v with four significant digits.
func FormatValue(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

// Entry names in display order.
const (
	NameMean       = "Mean"
	NameMedian     = "Median"
	NameStdDev     = "Std Dev"
	NameMin        = "Min"
	NameMax        = "Max"
	NameRange      = "Range"
	NameRMS        = "RMS"
	NamePeakToPeak = "Peak to Peak"
)

// Entries returns the statistics as an ordered name/value list.
func (s Summary) Entries() []Entry {
	return []Entry{
		{NameMean, s.Mean},
		{NameMedian, s.Median},
		{NameStdDev, s.StdDev},
		{NameMin, s.Min},
		{NameMax, s.Max},
		{NameRange, s.Range},
		{NameRMS, s.RMS},
		{NamePeakToPeak, s.PeakToPeak},
	}
}

// Describe computes the summary statistics of y.
func Describe(y []float64) (Summary, error) {
	if len(y) == 0 {
		return Summary{}, ErrEmptyInput
	}

	minVal := floats.Min(y)
	maxVal := floats.Max(y)

	return Summary{
		Mean:       stat.Mean(y, nil),
		Median:     Median(y),
		StdDev:     stat.PopStdDev(y, nil),
		Min:        minVal,
		Max:        maxVal,
		Range:      maxVal - minVal,
		RMS:        RMS(y),
		PeakToPeak: maxVal - minVal,
	}, nil
}

// Median returns the middle value of y. For an even count it is the mean of
// the two middle values. Returns NaN for empty input.
func Median(y []float64) float64 {
	n := len(y)
	if n == 0 {
		return math.NaN()
	}

	sorted := slices.Clone(y)
	slices.Sort(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// RMS returns the root-mean-square of y, or 0 for empty input.
func RMS(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}

	return math.Sqrt(floats.Dot(y, y) / float64(len(y)))
}
